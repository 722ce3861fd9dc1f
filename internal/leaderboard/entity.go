package leaderboard

// Submission is a caller-supplied score record. The completion date is an
// opaque string and is never reformatted.
type Submission struct {
	PlayerName     string `json:"player_name"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	TimeTaken      int    `json:"time_taken"`
	QuizTopic      string `json:"quiz_topic"`
	CompletionDate string `json:"completion_date"`
}

// Entry is a stored leaderboard record with the derived percentage.
type Entry struct {
	PlayerName     string  `json:"player_name"`
	Score          int     `json:"score"`
	TotalQuestions int     `json:"total_questions"`
	Percentage     float64 `json:"percentage"`
	TimeTaken      int     `json:"time_taken"`
	QuizTopic      string  `json:"quiz_topic"`
	CompletionDate string  `json:"completion_date"`
}
