package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is our interface for anything that can sign token claims.
type Signer interface {
	Sign(Claims) (string, error)
}

// NewHS256Signer creates an HS256 signer from a secret. The access and
// refresh token classes each get their own signer constructed from disjoint
// secrets; there is no shared or ambient signing state.
func NewHS256Signer(secret []byte) (Signer, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty signing secret")
	}
	return &hs256Signer{secret: secret}, nil
}

type hs256Signer struct {
	secret []byte
}

func (s *hs256Signer) Sign(c Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(s.secret)
}
