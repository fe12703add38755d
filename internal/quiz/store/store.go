package store

import (
	"context"
	"errors"
	"time"

	"github.com/quizden/quizden/internal/quiz/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Questions() Questions
	Scores() Scores
	Achievements() Achievements
	OAuthStates() OAuthStates

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step operations that must be atomic
	// (e.g. recording a quiz attempt).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks up the (normalized) unique email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByGoogleID resolves a federated identity to its local record.
	GetUserByGoogleID(ctx context.Context, googleID string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// A duplicate email or google_id surfaces as ErrAlreadyExists; the
	// unique constraints, not any preceding lookup, are the correctness
	// boundary under concurrent registration.
	CreateUser(ctx context.Context, u domain.User) error
}

type Questions interface {
	// ListQuestionsWithAnswers returns every question with its answers,
	// ordered by question then answer id.
	ListQuestionsWithAnswers(ctx context.Context) ([]domain.Question, error)

	// ListQuizQuestions returns the grading view for one quiz.
	ListQuizQuestions(ctx context.Context, quizID int64) ([]domain.QuizQuestion, error)

	// CreateQuiz inserts a quiz and returns its id. Used by content seeding.
	CreateQuiz(ctx context.Context, title string) (int64, error)

	// CreateQuestion inserts a question under a quiz and returns its id.
	CreateQuestion(ctx context.Context, quizID int64, text string) (int64, error)

	// CreateAnswer inserts an answer option and returns its id. When correct
	// is true the question's correct_answer_id is updated to match.
	CreateAnswer(ctx context.Context, questionID int64, text string, correct bool) (int64, error)
}

type Scores interface {
	// CreateQuestionScores inserts the per-question outcome rows of an attempt.
	CreateQuestionScores(ctx context.Context, rows []domain.QuestionScore) error

	// UpsertQuizScore adds score to the user's aggregate for the quiz,
	// creating the aggregate row on first attempt.
	UpsertQuizScore(ctx context.Context, userID string, quizID int64, score int64, attemptedAt time.Time) error

	// ListRecentScores returns the score rows of the user's latest attempt.
	ListRecentScores(ctx context.Context, userID string) ([]domain.AttemptScore, error)

	// ListQuestionScores returns the user's full history joined with
	// question text, newest first.
	ListQuestionScores(ctx context.Context, userID string) ([]domain.QuestionScoreDetail, error)
}

type Achievements interface {
	// CreateAchievement records an unlocked achievement. A duplicate
	// (user, type) pair surfaces as ErrAlreadyExists.
	CreateAchievement(ctx context.Context, a domain.Achievement) error

	// CountAchievementsByCategory counts a user's unlocked achievements
	// whose definition belongs to the given category (quiz/game).
	CountAchievementsByCategory(ctx context.Context, userID, category string) (int64, error)

	// CountAchievements counts all unlocked achievements of a user.
	CountAchievements(ctx context.Context, userID string) (int64, error)

	// AddProgress additively bumps the user's progress counters and
	// returns the updated totals.
	AddProgress(ctx context.Context, userID string, quizDelta, gameDelta int64) (domain.AchievementProgress, error)

	// ListDefinitions returns every achievement definition.
	ListDefinitions(ctx context.Context) ([]domain.AchievementDefinition, error)
}

type OAuthStates interface {
	// CreateState stores a single-use federation state token.
	CreateState(ctx context.Context, state string, expiresAt time.Time) error

	// ConsumeState atomically deletes the state. Returns ErrNotFound when
	// the state is unknown, already consumed, or expired.
	ConsumeState(ctx context.Context, state string) error

	// DeleteExpiredStates is housekeeping.
	DeleteExpiredStates(ctx context.Context) error
}
