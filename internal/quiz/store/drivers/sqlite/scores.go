package sqlite

import (
	"context"
	"time"

	"github.com/quizden/quizden/internal/quiz/domain"
)

type scoresRepo struct {
	db dbtx
}

func (r *scoresRepo) CreateQuestionScores(ctx context.Context, scores []domain.QuestionScore) error {
	for _, s := range scores {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO quiz_scores (id, user_id, question_id, is_correct, score, attempted_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			s.ID, s.UserID, s.QuestionID, s.Correct, s.Score, s.AttemptedAt)
		if err != nil {
			return mapConflict(err)
		}
	}
	return nil
}

func (r *scoresRepo) UpsertQuizScore(ctx context.Context, userID string, quizID int64, score int64, attemptedAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_scores (user_id, quiz_id, score, attempted_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (user_id, quiz_id) DO UPDATE SET
		     score = score + excluded.score,
		     attempted_at = excluded.attempted_at`,
		userID, quizID, score, attemptedAt)
	return err
}

// ListRecentScores returns the rows that share the user's most recent
// attempted_at timestamp, i.e. the outcome of their latest submission.
func (r *scoresRepo) ListRecentScores(ctx context.Context, userID string) ([]domain.AttemptScore, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT score, attempted_at FROM quiz_scores
		 WHERE user_id = ?
		   AND attempted_at = (SELECT MAX(attempted_at) FROM quiz_scores WHERE user_id = ?)
		 ORDER BY question_id`,
		userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []domain.AttemptScore
	for rows.Next() {
		var s domain.AttemptScore
		if err := rows.Scan(&s.Score, &s.AttemptedAt); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

func (r *scoresRepo) ListQuestionScores(ctx context.Context, userID string) ([]domain.QuestionScoreDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT s.id, s.question_id, q.question_text, s.is_correct, s.score, s.attempted_at
		 FROM quiz_scores s
		 JOIN questions q ON q.id = s.question_id
		 WHERE s.user_id = ?
		 ORDER BY s.attempted_at DESC, s.question_id`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []domain.QuestionScoreDetail
	for rows.Next() {
		var s domain.QuestionScoreDetail
		if err := rows.Scan(&s.ScoreID, &s.QuestionID, &s.QuestionText, &s.Correct, &s.Score, &s.AttemptedAt); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}
