package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/quizden/quizden/internal/quiz/domain"
	"github.com/quizden/quizden/internal/quiz/store"
	"github.com/quizden/quizden/pkg/cryptox"
	"github.com/quizden/quizden/pkg/idx"
	"github.com/quizden/quizden/pkg/slogx"
)

var ErrEmailTaken = errors.New("email_taken")

// AuthService handles password-based registration and login.
type AuthService struct {
	Store  store.Store
	Tokens *TokenService
}

// NormalizeEmail is the canonical form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a password account and returns the user with a fresh token
// pair. A duplicate email surfaces as ErrEmailTaken; the unique constraint in
// the store, not a preceding lookup, decides the winner under concurrent
// registration.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (domain.User, domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        NormalizeEmail(email),
		PasswordHash: hash,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, domain.TokenPair{}, ErrEmailTaken
		}
		return domain.User{}, domain.TokenPair{}, err
	}

	pair, err := s.Tokens.IssuePair(u)
	if err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}

	l.Info("user registered", slog.String("user_id", u.ID))
	return u, pair, nil
}

// Login verifies email/password and returns a fresh token pair. Unknown
// email, federated-only account, and wrong password are indistinguishable to
// the caller: all return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.TokenPair{}, ErrInvalidCredentials
		}
		return domain.User{}, domain.TokenPair{}, err
	}

	// Federated-only accounts carry no password hash and cannot log in here.
	if u.PasswordHash == "" {
		return domain.User{}, domain.TokenPair{}, ErrInvalidCredentials
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		l.Info("login failed", slog.String("user_id", u.ID))
		return domain.User{}, domain.TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.Tokens.IssuePair(u)
	if err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}

	l.Info("user logged in", slog.String("user_id", u.ID))
	return u, pair, nil
}
