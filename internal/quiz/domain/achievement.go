package domain

import "time"

// Achievement type categories.
const (
	AchievementTypeQuiz = "quiz"
	AchievementTypeGame = "game"
)

// AchievementDefinition describes an unlockable achievement and the progress
// threshold that satisfies it.
type AchievementDefinition struct {
	ID          int64
	Name        string
	Description string
	Type        string // quiz or game
	Criteria    int64
}

// Achievement is a per-user unlocked achievement row. A user holds each
// achievement type at most once.
type Achievement struct {
	ID        string
	UserID    string
	TypeID    int64
	CreatedAt time.Time
}

// AchievementProgress is the per-user additive progress counters used to
// evaluate definitions.
type AchievementProgress struct {
	UserID           string
	QuizAchievements int64
	GameAchievements int64
}
