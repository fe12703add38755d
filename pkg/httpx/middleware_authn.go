package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/quizden/quizden/pkg/jwtx"
	"github.com/quizden/quizden/pkg/slogx"
)

// AuthnMiddleware gates a route on a valid bearer access token.
//
// A missing token maps to 401, a malformed/bad-signature or expired token to
// 403. On success the verified identity is attached to the request context.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, "access token required")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
			if raw == "" {
				WriteError(w, http.StatusUnauthorized, "access token required")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				if errors.Is(err, jwtx.ErrExpired) {
					WriteError(w, http.StatusForbidden, "token expired")
					return
				}
				log.Warn("jwt verify failed", "err", err)
				WriteError(w, http.StatusForbidden, "invalid token")
				return
			}

			ctx = ContextWithIdentity(ctx, Identity{
				ID:       claims.Subject,
				Username: claims.Username,
				Email:    claims.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
