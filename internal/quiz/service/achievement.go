package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/quizden/quizden/internal/quiz/domain"
	"github.com/quizden/quizden/internal/quiz/store"
	"github.com/quizden/quizden/pkg/idx"
	"github.com/quizden/quizden/pkg/slogx"
)

var (
	ErrAlreadyUnlocked = errors.New("achievement_already_unlocked")
	ErrNegativeDelta   = errors.New("progress deltas must not be negative")
)

// AchievementService tracks unlocked achievements and progress counters.
type AchievementService struct {
	Store store.Store
}

// Unlock records an achievement for the user. A repeat unlock of the same
// type surfaces as ErrAlreadyUnlocked via the unique constraint.
func (s *AchievementService) Unlock(ctx context.Context, userID string, typeID int64) (domain.Achievement, error) {
	a := domain.Achievement{
		ID:     idx.New().String(),
		UserID: userID,
		TypeID: typeID,
	}
	if err := s.Store.Achievements().CreateAchievement(ctx, a); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Achievement{}, ErrAlreadyUnlocked
		}
		return domain.Achievement{}, err
	}
	return a, nil
}

// CountByCategory counts the user's unlocked achievements in one category
// (domain.AchievementTypeQuiz or domain.AchievementTypeGame).
func (s *AchievementService) CountByCategory(ctx context.Context, userID, category string) (int64, error) {
	return s.Store.Achievements().CountAchievementsByCategory(ctx, userID, category)
}

// CountTotal counts all of the user's unlocked achievements.
func (s *AchievementService) CountTotal(ctx context.Context, userID string) (int64, error) {
	return s.Store.Achievements().CountAchievements(ctx, userID)
}

// UpdateProgress additively bumps the user's progress counters, then unlocks
// every definition whose threshold the new totals satisfy. Definitions the
// user already holds are skipped silently. Returns the definitions newly
// unlocked by this update.
func (s *AchievementService) UpdateProgress(ctx context.Context, userID string, quizDelta, gameDelta int64) ([]domain.AchievementDefinition, error) {
	if quizDelta < 0 || gameDelta < 0 {
		return nil, ErrNegativeDelta
	}

	l := slogx.FromContext(ctx)

	progress, err := s.Store.Achievements().AddProgress(ctx, userID, quizDelta, gameDelta)
	if err != nil {
		return nil, err
	}

	defs, err := s.Store.Achievements().ListDefinitions(ctx)
	if err != nil {
		return nil, err
	}

	var unlocked []domain.AchievementDefinition
	for _, d := range defs {
		var current int64
		switch d.Type {
		case domain.AchievementTypeQuiz:
			current = progress.QuizAchievements
		case domain.AchievementTypeGame:
			current = progress.GameAchievements
		default:
			continue
		}
		if current < d.Criteria {
			continue
		}

		if _, err := s.Unlock(ctx, userID, d.ID); err != nil {
			if errors.Is(err, ErrAlreadyUnlocked) {
				continue
			}
			return nil, err
		}

		l.Info("achievement unlocked",
			slog.String("user_id", userID),
			slog.Int64("achievement_type_id", d.ID))
		unlocked = append(unlocked, d)
	}
	return unlocked, nil
}
