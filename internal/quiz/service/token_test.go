package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/quizden/quizden/internal/quiz/domain"
	"github.com/quizden/quizden/pkg/jwtx"
)

func TestTokenService_Refresh(t *testing.T) {
	tokens := newTestTokenService(t)
	u := domain.User{ID: "user-1", Username: "alice", Email: "alice@example.com"}

	pair, err := tokens.IssuePair(u)
	require.NoError(t, err)

	access, err := tokens.Refresh(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := tokens.VerifyAccess(access)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "alice", claims.Username)

	// the refresh token is not rotated; the same one keeps working
	again, err := tokens.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	_, err = tokens.VerifyAccess(again)
	require.NoError(t, err)
}

func TestTokenService_RefreshRejectsAccessToken(t *testing.T) {
	tokens := newTestTokenService(t)
	u := domain.User{ID: "user-1", Username: "alice"}

	pair, err := tokens.IssuePair(u)
	require.NoError(t, err)

	// an access token is not a refresh token, even though both are HS256
	_, err = tokens.Refresh(pair.AccessToken)
	require.ErrorIs(t, err, ErrInvalidRefresh)

	_, err = tokens.Refresh("not-a-token")
	require.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestTokenService_RefreshRejectsExpired(t *testing.T) {
	tokens := newTestTokenService(t)

	claims := jwtx.NewClaims("user-1", "alice", "", -time.Minute, time.Now())
	refresh, err := tokens.RefreshSigner.Sign(claims)
	require.NoError(t, err)

	_, err = tokens.Refresh(refresh)
	require.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestTokenService_DefaultTTLs(t *testing.T) {
	tokens := newTestTokenService(t)
	u := domain.User{ID: "user-1"}

	pair, err := tokens.IssuePair(u)
	require.NoError(t, err)

	access, err := tokens.AccessVerifier.Verify(pair.AccessToken)
	require.NoError(t, err)
	require.WithinDuration(t,
		access.IssuedAt.Time.Add(jwtx.AccessTokenTTL), access.ExpiresAt.Time, time.Second)

	refresh, err := tokens.RefreshVerifier.Verify(pair.RefreshToken)
	require.NoError(t, err)
	require.WithinDuration(t,
		refresh.IssuedAt.Time.Add(jwtx.RefreshTokenTTL), refresh.ExpiresAt.Time, time.Second)
}
