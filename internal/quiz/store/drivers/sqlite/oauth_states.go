package sqlite

import (
	"context"
	"time"

	"github.com/quizden/quizden/internal/quiz/store"
)

type oauthStatesRepo struct {
	db dbtx
}

func (r *oauthStatesRepo) CreateState(ctx context.Context, state string, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO oauth_states (state, expires_at, created_at) VALUES (?, ?, ?)`,
		state, expiresAt, time.Now().UTC())
	if err != nil {
		return mapConflict(err)
	}
	return nil
}

// ConsumeState deletes the state in a single statement so a token can only
// ever be redeemed once, even under concurrent callbacks.
func (r *oauthStatesRepo) ConsumeState(ctx context.Context, state string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM oauth_states WHERE state = ? AND expires_at > ?`,
		state, time.Now().UTC())
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *oauthStatesRepo) DeleteExpiredStates(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM oauth_states WHERE expires_at <= ?`, time.Now().UTC())
	return err
}
