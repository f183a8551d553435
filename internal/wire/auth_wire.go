package wire

import (
	"murray-moving/internal/adaptor"
	"murray-moving/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	limiter *middleware.RateLimiter,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.With(limiter.Middleware(log)).Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(log))

		r.Post("/api/logout", authHandler.Logout)
		r.Get("/api/user", authHandler.CurrentUser)
	})
}
