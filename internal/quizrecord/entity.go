package quizrecord

import "time"

// StoredQuestion is the persisted shape of a question. Matching
// reconstruction data is per-generation state and is not stored.
type StoredQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
	Type     string   `json:"type"`
	Level    string   `json:"level"`
	Topic    string   `json:"topic"`
}

// Record is one generated quiz, keyed by name. The default name encodes the
// generation day, so repeated generations on the same day overwrite it.
type Record struct {
	Name           string           `json:"name"`
	GeneratedAt    time.Time        `json:"generated_at"`
	TotalQuestions int              `json:"total_questions"`
	Questions      []StoredQuestion `json:"questions"`
}

// Summary is the denormalized listing entry for a stored quiz.
type Summary struct {
	Name           string    `json:"name"`
	GeneratedAt    time.Time `json:"generated_at"`
	TotalQuestions int       `json:"total_questions"`
	Topics         []string  `json:"topics"`
}
