package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/quizden/quizden/internal/quiz/domain"
	"github.com/quizden/quizden/internal/quiz/store"
	"github.com/quizden/quizden/pkg/cryptox"
	"github.com/quizden/quizden/pkg/idx"
	"github.com/quizden/quizden/pkg/slogx"
)

var (
	ErrInvalidState  = errors.New("invalid_state")
	ErrEmailConflict = errors.New("email already registered with a password account")
)

// DefaultStateTTL bounds how long a federation round trip may take.
const DefaultStateTTL = 10 * time.Minute

// FederationProvider abstracts the identity provider so the flow can be
// exercised without Google in tests.
type FederationProvider interface {
	AuthURL(state string) string
	ResolveProfile(ctx context.Context, code string) (domain.FederatedProfile, error)
}

// OAuthService drives the federated login flow: hand out a single-use state,
// redeem the provider callback, and map the provider profile to a local user.
type OAuthService struct {
	Store    store.Store
	Tokens   *TokenService
	Provider FederationProvider
	StateTTL time.Duration
}

// Begin creates a single-use state token and returns the provider URL the
// client should be redirected to.
func (s *OAuthService) Begin(ctx context.Context) (string, error) {
	state, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return "", err
	}

	ttl := s.StateTTL
	if ttl <= 0 {
		ttl = DefaultStateTTL
	}

	if err := s.Store.OAuthStates().CreateState(ctx, state, time.Now().Add(ttl)); err != nil {
		return "", err
	}
	return s.Provider.AuthURL(state), nil
}

// Complete redeems the provider callback: the state must be known, unexpired
// and unused, the code must exchange cleanly, and the profile must resolve to
// a local account. Returns the user with a fresh token pair.
func (s *OAuthService) Complete(ctx context.Context, state, code string) (domain.User, domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	if err := s.Store.OAuthStates().ConsumeState(ctx, state); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.TokenPair{}, ErrInvalidState
		}
		return domain.User{}, domain.TokenPair{}, err
	}

	profile, err := s.Provider.ResolveProfile(ctx, code)
	if err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}

	u, err := s.resolveUser(ctx, profile)
	if err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}

	pair, err := s.Tokens.IssuePair(u)
	if err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}

	l.Info("federated login", slog.String("user_id", u.ID))
	return u, pair, nil
}

// resolveUser finds the account linked to the federated identity, creating it
// on first login. An email already owned by a password account is rejected
// rather than silently linked, so a third party cannot take over an existing
// account by federating with the same address.
func (s *OAuthService) resolveUser(ctx context.Context, profile domain.FederatedProfile) (domain.User, error) {
	u, err := s.Store.Users().GetUserByGoogleID(ctx, profile.FederatedID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}

	u = domain.User{
		ID:       idx.New().String(),
		Username: profile.DisplayName,
		Email:    NormalizeEmail(profile.Email),
		GoogleID: profile.FederatedID,
	}

	err = s.Store.Users().CreateUser(ctx, u)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, store.ErrAlreadyExists) {
		return domain.User{}, err
	}

	// Conflict: either a concurrent first login won the insert (resolve by
	// google_id) or the email belongs to a password account (reject).
	existing, lookupErr := s.Store.Users().GetUserByGoogleID(ctx, profile.FederatedID)
	if lookupErr == nil {
		return existing, nil
	}
	if !errors.Is(lookupErr, store.ErrNotFound) {
		return domain.User{}, lookupErr
	}
	return domain.User{}, ErrEmailConflict
}
