package utils

import (
	"context"
)

type contextKey string

const (
	IdentityKey contextKey = "identity"
	TokenKey    contextKey = "token"
)

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID   int64
	Username string
	IsAdmin  bool
}

func SetIdentityContext(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(Identity)
	return identity, ok
}

// IsAdmin reports whether ctx carries an authenticated admin identity
func IsAdmin(ctx context.Context) bool {
	identity, ok := GetIdentityFromContext(ctx)
	return ok && identity.IsAdmin
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}
