package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quizden/quizden/internal/quiz/store"
	"github.com/quizden/quizden/internal/quiz/store/drivers/sqlite"
	"github.com/quizden/quizden/pkg/jwtx"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "quiz.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()

	accessSecret := []byte("access-secret-for-tests")
	refreshSecret := []byte("refresh-secret-for-tests")

	accessSigner, err := jwtx.NewHS256Signer(accessSecret)
	require.NoError(t, err)
	refreshSigner, err := jwtx.NewHS256Signer(refreshSecret)
	require.NoError(t, err)
	accessVerifier, err := jwtx.NewHS256Verifier(accessSecret)
	require.NoError(t, err)
	refreshVerifier, err := jwtx.NewHS256Verifier(refreshSecret)
	require.NoError(t, err)

	return &TokenService{
		AccessSigner:    accessSigner,
		RefreshSigner:   refreshSigner,
		AccessVerifier:  accessVerifier,
		RefreshVerifier: refreshVerifier,
	}
}
