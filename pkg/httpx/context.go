package httpx

import "context"

// Identity is the authenticated caller attached to the request context by
// AuthnMiddleware. Downstream handlers read it instead of re-parsing tokens.
type Identity struct {
	ID       string
	Username string
	Email    string
}

type ctxKey struct{}

// ContextWithIdentity returns a copy of ctx carrying the identity.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFromContext extracts the authenticated identity, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
