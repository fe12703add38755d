package domain

import "time"

// QuestionScore is the persisted outcome of one answered question within an
// attempt.
type QuestionScore struct {
	ID          string
	UserID      string
	QuestionID  int64
	Correct     bool
	Score       int64
	AttemptedAt time.Time
}

// AttemptScore is a score row of the user's most recent attempt.
type AttemptScore struct {
	Score       int64     `json:"score"`
	AttemptedAt time.Time `json:"attemptedAt"`
}

// QuestionScoreDetail is one history row joined with its question text.
type QuestionScoreDetail struct {
	ScoreID      string
	QuestionID   int64
	QuestionText string
	Correct      bool
	Score        int64
	AttemptedAt  time.Time
}
