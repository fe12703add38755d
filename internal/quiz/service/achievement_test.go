package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quizden/quizden/internal/quiz/domain"
)

func TestAchievementService_Unlock(t *testing.T) {
	st := newTestStore(t)
	svc := &AchievementService{Store: st}
	ctx := context.Background()

	u := registerTestUser(t, st)

	defs, err := st.Achievements().ListDefinitions(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, defs)

	_, err = svc.Unlock(ctx, u.ID, defs[0].ID)
	require.NoError(t, err)

	_, err = svc.Unlock(ctx, u.ID, defs[0].ID)
	require.ErrorIs(t, err, ErrAlreadyUnlocked)

	total, err := svc.CountTotal(ctx, u.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
}

func TestAchievementService_UpdateProgress(t *testing.T) {
	st := newTestStore(t)
	svc := &AchievementService{Store: st}
	ctx := context.Background()

	u := registerTestUser(t, st)

	// one quiz completed: satisfies the criteria-1 quiz definition only
	unlocked, err := svc.UpdateProgress(ctx, u.ID, 1, 0)
	require.NoError(t, err)
	require.Len(t, unlocked, 1)
	require.Equal(t, domain.AchievementTypeQuiz, unlocked[0].Type)
	require.EqualValues(t, 1, unlocked[0].Criteria)

	// already-held definitions are not reported again
	unlocked, err = svc.UpdateProgress(ctx, u.ID, 1, 0)
	require.NoError(t, err)
	require.Empty(t, unlocked)

	// crossing a game threshold unlocks the game definition
	unlocked, err = svc.UpdateProgress(ctx, u.ID, 0, 1)
	require.NoError(t, err)
	require.Len(t, unlocked, 1)
	require.Equal(t, domain.AchievementTypeGame, unlocked[0].Type)

	quizCount, err := svc.CountByCategory(ctx, u.ID, domain.AchievementTypeQuiz)
	require.NoError(t, err)
	require.EqualValues(t, 1, quizCount)

	gameCount, err := svc.CountByCategory(ctx, u.ID, domain.AchievementTypeGame)
	require.NoError(t, err)
	require.EqualValues(t, 1, gameCount)
}

func TestAchievementService_NegativeProgressRejected(t *testing.T) {
	st := newTestStore(t)
	svc := &AchievementService{Store: st}

	u := registerTestUser(t, st)

	_, err := svc.UpdateProgress(context.Background(), u.ID, -1, 0)
	require.ErrorIs(t, err, ErrNegativeDelta)
}
