package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token TTL constants for the two token classes. These are deliberately
// fixed: an access token always lives 1 hour from issuance, a refresh token
// 182 days.
const (
	// AccessTokenTTL is the lifetime of access tokens.
	AccessTokenTTL = 1 * time.Hour

	// RefreshTokenTTL is the lifetime of refresh tokens.
	RefreshTokenTTL = 182 * 24 * time.Hour
)

// Claims are the identity claims embedded in both access and refresh tokens.
// The subject carries the user id; username and email ride along so a token
// is self-contained and no store lookup is needed per request.
type Claims struct {
	jwt.RegisteredClaims

	// Username is the display name of the authenticated user.
	Username string `json:"username,omitempty"`

	// Email is the unique account email of the authenticated user.
	Email string `json:"email,omitempty"`
}

// NewClaims builds minimally-correct claims for a user identity.
// IssuedAt reflects real time and is never backdated.
func NewClaims(subject, username, email string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Username: username,
		Email:    email,
	}
}

// ValidateExpiry ensures the token hasn't expired (exp).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}

	return nil
}
