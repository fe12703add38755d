package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/quizden/quizden/internal/quiz/domain"
	"github.com/quizden/quizden/internal/quiz/store"
	"github.com/quizden/quizden/pkg/idx"
	"github.com/quizden/quizden/pkg/slogx"
)

var (
	ErrUnknownQuiz     = errors.New("unknown_quiz")
	ErrUnknownQuestion = errors.New("answer references a question outside the quiz")
	ErrNoScores        = errors.New("no_scores")
)

// PointsPerCorrectAnswer is awarded for each correctly answered question.
const PointsPerCorrectAnswer = 10

// ScoreService grades quiz submissions and serves score history.
type ScoreService struct {
	Store store.Store
}

// SubmitQuiz grades the submitted answers against the quiz's correct answers
// and persists the outcome: one row per question plus an additive aggregate
// per (user, quiz). The per-question rows and the aggregate move in one
// transaction. Returns the total score of the attempt.
func (s *ScoreService) SubmitQuiz(ctx context.Context, userID string, quizID int64, answers []domain.SubmittedAnswer) (int64, error) {
	l := slogx.FromContext(ctx)

	questions, err := s.Store.Questions().ListQuizQuestions(ctx, quizID)
	if err != nil {
		return 0, err
	}
	if len(questions) == 0 {
		return 0, ErrUnknownQuiz
	}

	correctByQuestion := make(map[int64]int64, len(questions))
	for _, q := range questions {
		correctByQuestion[q.ID] = q.CorrectAnswerID
	}

	attemptedAt := time.Now().UTC()

	var (
		rows  []domain.QuestionScore
		total int64
	)
	for _, a := range answers {
		correctID, ok := correctByQuestion[a.QuestionID]
		if !ok {
			return 0, ErrUnknownQuestion
		}

		correct := a.AnswerID == correctID
		var points int64
		if correct {
			points = PointsPerCorrectAnswer
		}
		total += points

		rows = append(rows, domain.QuestionScore{
			ID:          idx.New().String(),
			UserID:      userID,
			QuestionID:  a.QuestionID,
			Correct:     correct,
			Score:       points,
			AttemptedAt: attemptedAt,
		})
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Scores().CreateQuestionScores(ctx, rows); err != nil {
			return err
		}
		return tx.Scores().UpsertQuizScore(ctx, userID, quizID, total, attemptedAt)
	})
	if err != nil {
		return 0, err
	}

	l.Info("quiz attempt recorded",
		slog.String("user_id", userID),
		slog.Int64("quiz_id", quizID),
		slog.Int64("score", total))
	return total, nil
}

// RecentScores returns the score rows of the user's latest attempt.
// ErrNoScores when the user has never submitted.
func (s *ScoreService) RecentScores(ctx context.Context, userID string) ([]domain.AttemptScore, error) {
	scores, err := s.Store.Scores().ListRecentScores(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return nil, ErrNoScores
	}
	return scores, nil
}

// QuestionScores returns the user's full per-question history, newest first.
// ErrNoScores when the user has never submitted.
func (s *ScoreService) QuestionScores(ctx context.Context, userID string) ([]domain.QuestionScoreDetail, error) {
	scores, err := s.Store.Scores().ListQuestionScores(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return nil, ErrNoScores
	}
	return scores, nil
}
