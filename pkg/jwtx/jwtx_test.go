package jwtx_test

import (
	"testing"
	"time"

	"github.com/quizden/quizden/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var (
	accessSecret  = []byte("access-secret-for-tests")
	refreshSecret = []byte("refresh-secret-for-tests")
)

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewHS256Signer(accessSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewHS256Verifier(accessSecret)
	require.NoError(t, err)

	now := time.Now()
	claims := jwtx.NewClaims("01J0USER", "ana", "ana@x.com", jwtx.AccessTokenTTL, now)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01J0USER", got.Subject)
	require.Equal(t, "ana", got.Username)
	require.Equal(t, "ana@x.com", got.Email)
}

func TestVerifyWrongSecretFails(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewHS256Signer(accessSecret)
	require.NoError(t, err)
	refreshVerifier, err := jwtx.NewHS256Verifier(refreshSecret)
	require.NoError(t, err)

	token, err := signer.Sign(jwtx.NewClaims("u1", "ana", "ana@x.com", jwtx.AccessTokenTTL, time.Now()))
	require.NoError(t, err)

	// A token signed under the access secret must never validate under the
	// refresh secret.
	_, err = refreshVerifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewHS256Signer(accessSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewHS256Verifier(accessSecret)
	require.NoError(t, err)

	issued := time.Now().Add(-2 * time.Hour)
	token, err := signer.Sign(jwtx.NewClaims("u1", "ana", "ana@x.com", time.Hour, issued))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	verifier, err := jwtx.NewHS256Verifier(accessSecret)
	require.NoError(t, err)

	_, err = verifier.Verify("not.a.jwt")
	require.ErrorIs(t, err, jwtx.ErrMalformed)

	_, err = verifier.Verify("")
	require.ErrorIs(t, err, jwtx.ErrMalformed)
}

func TestTokenLifetimes(t *testing.T) {
	t.Parallel()

	now := time.Now()

	t.Run("access token lives exactly one hour", func(t *testing.T) {
		c := jwtx.NewClaims("u1", "ana", "ana@x.com", jwtx.AccessTokenTTL, now)
		require.Equal(t, int64(3600), c.ExpiresAt.Unix()-c.IssuedAt.Unix())
	})

	t.Run("refresh token lives exactly 182 days", func(t *testing.T) {
		c := jwtx.NewClaims("u1", "ana", "ana@x.com", jwtx.RefreshTokenTTL, now)
		require.Equal(t, int64(182*86400), c.ExpiresAt.Unix()-c.IssuedAt.Unix())
	})
}

func TestEmptySecretsRejected(t *testing.T) {
	t.Parallel()

	_, err := jwtx.NewHS256Signer(nil)
	require.Error(t, err)

	_, err = jwtx.NewHS256Verifier(nil)
	require.Error(t, err)
}
