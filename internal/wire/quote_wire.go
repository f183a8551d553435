package wire

import (
	"murray-moving/internal/adaptor"
	"murray-moving/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireQuote(
	r chi.Router,
	quoteHandler *adaptor.QuoteHandler,
	limiter *middleware.RateLimiter,
	log *zap.Logger,
) {
	r.Route("/api/quotes", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.With(limiter.Middleware(log)).Post("/", quoteHandler.Create)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(log))

			r.Get("/", quoteHandler.List)
			r.Get("/{id}", quoteHandler.Get)
			r.Patch("/{id}", quoteHandler.UpdateStatus)
		})
	})
}
