package service

import (
	"errors"
	"time"

	"github.com/quizden/quizden/internal/quiz/domain"
	"github.com/quizden/quizden/pkg/jwtx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidRefresh     = errors.New("invalid_refresh_token")
)

// TokenService issues and verifies the two session token families. Access and
// refresh tokens are signed under disjoint secrets, so a token minted by one
// signer never verifies under the other family's verifier.
type TokenService struct {
	AccessSigner    jwtx.Signer
	RefreshSigner   jwtx.Signer
	AccessVerifier  jwtx.Verifier
	RefreshVerifier jwtx.Verifier
	AccessTTL       time.Duration
	RefreshTTL      time.Duration
}

// IssuePair mints a fresh access/refresh pair for the user. Both tokens carry
// the same identity claims; only the TTL and signing secret differ.
func (s *TokenService) IssuePair(u domain.User) (domain.TokenPair, error) {
	access, err := s.IssueAccessToken(u)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, err := s.IssueRefreshToken(u)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *TokenService) IssueAccessToken(u domain.User) (string, error) {
	claims := jwtx.NewClaims(u.ID, u.Username, u.Email, s.accessTTL(), time.Now())
	return s.AccessSigner.Sign(claims)
}

func (s *TokenService) IssueRefreshToken(u domain.User) (string, error) {
	claims := jwtx.NewClaims(u.ID, u.Username, u.Email, s.refreshTTL(), time.Now())
	return s.RefreshSigner.Sign(claims)
}

// Refresh exchanges a valid refresh token for a new access token. The refresh
// token itself is NOT rotated; the client keeps presenting the same one until
// it expires.
func (s *TokenService) Refresh(refreshToken string) (string, error) {
	claims, err := s.RefreshVerifier.Verify(refreshToken)
	if err != nil {
		return "", ErrInvalidRefresh
	}

	fresh := jwtx.NewClaims(claims.Subject, claims.Username, claims.Email, s.accessTTL(), time.Now())
	return s.AccessSigner.Sign(fresh)
}

// VerifyAccess validates an access token and returns its claims.
func (s *TokenService) VerifyAccess(token string) (jwtx.Claims, error) {
	return s.AccessVerifier.Verify(token)
}

func (s *TokenService) accessTTL() time.Duration {
	if s.AccessTTL > 0 {
		return s.AccessTTL
	}
	return jwtx.AccessTokenTTL
}

func (s *TokenService) refreshTTL() time.Duration {
	if s.RefreshTTL > 0 {
		return s.RefreshTTL
	}
	return jwtx.RefreshTokenTTL
}
