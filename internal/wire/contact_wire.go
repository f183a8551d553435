package wire

import (
	"murray-moving/internal/adaptor"
	"murray-moving/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireContact(
	r chi.Router,
	contactHandler *adaptor.ContactHandler,
	limiter *middleware.RateLimiter,
	log *zap.Logger,
) {
	r.Route("/api/contact", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.With(limiter.Middleware(log)).Post("/", contactHandler.Create)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(log))

			r.Get("/", contactHandler.List)
			r.Get("/{id}", contactHandler.Get)
			r.Patch("/{id}", contactHandler.UpdateRead)
		})
	})
}
