package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quizden/quizden/internal/quiz/domain"
	"github.com/quizden/quizden/pkg/idx"
)

func TestAuthService_Register(t *testing.T) {
	st := newTestStore(t)
	tokens := newTestTokenService(t)
	svc := &AuthService{Store: st, Tokens: tokens}
	ctx := context.Background()

	u, pair, err := svc.Register(ctx, "alice", "  Alice@Example.COM ", "hunter22")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", u.Email)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	// tokens belong to disjoint families
	claims, err := tokens.AccessVerifier.Verify(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.Subject)
	require.Equal(t, "alice", claims.Username)

	_, err = tokens.RefreshVerifier.Verify(pair.AccessToken)
	require.Error(t, err)
	_, err = tokens.AccessVerifier.Verify(pair.RefreshToken)
	require.Error(t, err)

	// hash, never the password, is stored
	stored, err := st.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, stored.PasswordHash)
	require.NotEqual(t, "hunter22", stored.PasswordHash)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	st := newTestStore(t)
	svc := &AuthService{Store: st, Tokens: newTestTokenService(t)}
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	// same address, different casing
	_, _, err = svc.Register(ctx, "impostor", "ALICE@example.com", "password")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	st := newTestStore(t)
	svc := &AuthService{Store: st, Tokens: newTestTokenService(t)}
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	u, pair, err := svc.Login(ctx, "Alice@Example.com", "hunter22")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
}

func TestAuthService_LoginFailuresIndistinguishable(t *testing.T) {
	st := newTestStore(t)
	svc := &AuthService{Store: st, Tokens: newTestTokenService(t)}
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	// federated-only account: no password hash
	require.NoError(t, st.Users().CreateUser(ctx, domain.User{
		ID:       idx.New().String(),
		Username: "fed",
		Email:    "fed@example.com",
		GoogleID: "google-sub-1",
	}))

	_, _, err = svc.Login(ctx, "nobody@example.com", "hunter22")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "fed@example.com", "anything")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
