package sqlite

import (
	"context"
	"time"

	"github.com/quizden/quizden/internal/quiz/domain"
)

type achievementsRepo struct {
	db dbtx
}

func (r *achievementsRepo) CreateAchievement(ctx context.Context, a domain.Achievement) error {
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO achievements (id, user_id, achievement_type_id, created_at)
		 VALUES (?, ?, ?, ?)`,
		a.ID, a.UserID, a.TypeID, createdAt)
	if err != nil {
		return mapConflict(err)
	}
	return nil
}

func (r *achievementsRepo) CountAchievementsByCategory(ctx context.Context, userID, category string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*)
		 FROM achievements a
		 JOIN achievement_types t ON t.id = a.achievement_type_id
		 WHERE a.user_id = ? AND t.type = ?`,
		userID, category).Scan(&count)
	return count, err
}

func (r *achievementsRepo) CountAchievements(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM achievements WHERE user_id = ?`, userID).Scan(&count)
	return count, err
}

func (r *achievementsRepo) AddProgress(ctx context.Context, userID string, quizDelta, gameDelta int64) (domain.AchievementProgress, error) {
	var p domain.AchievementProgress
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO achievement_progress (user_id, quiz_achievements, game_achievements, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET
		     quiz_achievements = quiz_achievements + excluded.quiz_achievements,
		     game_achievements = game_achievements + excluded.game_achievements,
		     updated_at = excluded.updated_at
		 RETURNING user_id, quiz_achievements, game_achievements`,
		userID, quizDelta, gameDelta, time.Now().UTC()).
		Scan(&p.UserID, &p.QuizAchievements, &p.GameAchievements)
	if err != nil {
		return domain.AchievementProgress{}, err
	}
	return p, nil
}

func (r *achievementsRepo) ListDefinitions(ctx context.Context) ([]domain.AchievementDefinition, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, type, criteria FROM achievement_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defs []domain.AchievementDefinition
	for rows.Next() {
		var d domain.AchievementDefinition
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.Type, &d.Criteria); err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, rows.Err()
}
