package middleware

import (
	"context"
	"net/http"
	"strings"

	"murray-moving/pkg/utils"

	"go.uber.org/zap"
)

const SessionCookieName = "session_token"

// SessionAuthenticator resolves a session token to the caller's identity.
// Unknown, revoked and expired tokens yield (nil, nil).
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*utils.Identity, error)
}

// Authenticate attaches the caller's identity to the request context when a
// valid session token is presented. Anonymous requests pass through, and so
// does a request whose session lookup fails.
func Authenticate(auth SessionAuthenticator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session, continuing as anonymous",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			if identity == nil {
				logger.Debug("Invalid or expired session", zap.String("path", r.URL.Path))
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.SetIdentityContext(r.Context(), *identity)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := utils.GetIdentityFromContext(r.Context()); !ok {
				logger.Warn("Unauthenticated request", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin rejects with 401 unless the caller is an admin. Anonymous and
// non-admin callers get the same response.
func RequireAdmin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !utils.IsAdmin(r.Context()) {
				identity, _ := utils.GetIdentityFromContext(r.Context())
				logger.Warn("Admin check: access denied",
					zap.Int64("user_id", identity.UserID),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractToken reads "Authorization: Bearer <token>", falling back to the
// session cookie.
func extractToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
