package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quizden/quizden/internal/quiz/domain"
)

type fakeProvider struct {
	profile domain.FederatedProfile
	err     error
}

func (p *fakeProvider) AuthURL(state string) string {
	return "https://provider.test/auth?state=" + state
}

func (p *fakeProvider) ResolveProfile(ctx context.Context, code string) (domain.FederatedProfile, error) {
	if p.err != nil {
		return domain.FederatedProfile{}, p.err
	}
	return p.profile, nil
}

func stateFromURL(t *testing.T, authURL string) string {
	t.Helper()
	_, state, ok := strings.Cut(authURL, "state=")
	require.True(t, ok)
	return state
}

func TestOAuthService_FirstLoginCreatesUser(t *testing.T) {
	st := newTestStore(t)
	provider := &fakeProvider{profile: domain.FederatedProfile{
		FederatedID: "google-sub-1",
		DisplayName: "Alice Example",
		Email:       "Alice@Example.com",
	}}
	svc := &OAuthService{Store: st, Tokens: newTestTokenService(t), Provider: provider}
	ctx := context.Background()

	authURL, err := svc.Begin(ctx)
	require.NoError(t, err)
	state := stateFromURL(t, authURL)

	u, pair, err := svc.Complete(ctx, state, "code")
	require.NoError(t, err)
	require.Equal(t, "Alice Example", u.Username)
	require.Equal(t, "alice@example.com", u.Email)
	require.Equal(t, "google-sub-1", u.GoogleID)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	stored, err := st.Users().GetUserByGoogleID(ctx, "google-sub-1")
	require.NoError(t, err)
	require.Empty(t, stored.PasswordHash)
}

func TestOAuthService_ReturningUserIsReused(t *testing.T) {
	st := newTestStore(t)
	provider := &fakeProvider{profile: domain.FederatedProfile{
		FederatedID: "google-sub-1",
		DisplayName: "Alice",
		Email:       "alice@example.com",
	}}
	svc := &OAuthService{Store: st, Tokens: newTestTokenService(t), Provider: provider}
	ctx := context.Background()

	first, _, err := svc.Complete(ctx, mustBeginState(t, svc, ctx), "code")
	require.NoError(t, err)

	second, _, err := svc.Complete(ctx, mustBeginState(t, svc, ctx), "code")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	// no second account appeared under the shared email
	existing, err := st.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, first.ID, existing.ID)
}

func TestOAuthService_StateIsSingleUse(t *testing.T) {
	st := newTestStore(t)
	provider := &fakeProvider{profile: domain.FederatedProfile{
		FederatedID: "google-sub-1",
		DisplayName: "Alice",
		Email:       "alice@example.com",
	}}
	svc := &OAuthService{Store: st, Tokens: newTestTokenService(t), Provider: provider}
	ctx := context.Background()

	state := mustBeginState(t, svc, ctx)

	_, _, err := svc.Complete(ctx, state, "code")
	require.NoError(t, err)

	_, _, err = svc.Complete(ctx, state, "code")
	require.ErrorIs(t, err, ErrInvalidState)

	_, _, err = svc.Complete(ctx, "forged-state", "code")
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestOAuthService_EmailCollisionRejected(t *testing.T) {
	st := newTestStore(t)
	tokens := newTestTokenService(t)
	auth := &AuthService{Store: st, Tokens: tokens}
	ctx := context.Background()

	_, _, err := auth.Register(ctx, "alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	provider := &fakeProvider{profile: domain.FederatedProfile{
		FederatedID: "google-sub-1",
		DisplayName: "Mallory",
		Email:       "alice@example.com",
	}}
	svc := &OAuthService{Store: st, Tokens: tokens, Provider: provider}

	_, _, err = svc.Complete(ctx, mustBeginState(t, svc, ctx), "code")
	require.ErrorIs(t, err, ErrEmailConflict)

	// the password account is untouched
	u, err := st.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, u.PasswordHash)
	require.Empty(t, u.GoogleID)
}

func mustBeginState(t *testing.T, svc *OAuthService, ctx context.Context) string {
	t.Helper()
	authURL, err := svc.Begin(ctx)
	require.NoError(t, err)
	return stateFromURL(t, authURL)
}
