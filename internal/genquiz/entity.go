package genquiz

const (
	TypeMultipleChoice = "multiple-choice"
	TypeTrueFalse      = "true-false"
	TypeMatching       = "matching"
)

const (
	DefaultLevel = "Beginner"
	DefaultTopic = "General Knowledge"
)

// Question is a validated quiz question. Matching-only fields live on the
// embedded MatchingDetail, which is nil for every other question type; JSON
// field promotion keeps the wire shape flat.
type Question struct {
	Text    string   `json:"question"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
	Type    string   `json:"type"`
	Level   string   `json:"level"`
	Topic   string   `json:"topic"`

	*MatchingDetail
}

// MatchingDetail carries the reconstructed drag/drop structure of a
// matching question. DragItems and DropZones partition Options, and every
// AnswerMapping key is a drag item mapped to one of the drop zones.
type MatchingDetail struct {
	DragCount     int               `json:"drag_count"`
	DropCount     int               `json:"drop_count"`
	DragItems     []string          `json:"drag_items"`
	DropZones     []string          `json:"drop_zones"`
	AnswerMapping map[string]string `json:"answer_mapping"`
}
