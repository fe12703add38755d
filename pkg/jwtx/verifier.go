package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a token and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrInvalidSig = errors.New("jwtx: invalid signature")
	ErrExpired    = errors.New("jwtx: token expired")
)

// NewHS256Verifier creates a verifier bound to a single HMAC secret.
// A token signed under a different secret fails with ErrInvalidSig, so
// access and refresh tokens can never be confused for one another.
func NewHS256Verifier(secret []byte) (Verifier, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty verification secret")
	}
	return &hs256Verifier{secret: secret}, nil
}

type hs256Verifier struct {
	secret []byte
}

func (v *hs256Verifier) Verify(token string) (Claims, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(t *jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		default:
			return Claims{}, ErrMalformed
		}
	}

	if !parsed.Valid {
		return Claims{}, ErrMalformed
	}

	return claims, nil
}
