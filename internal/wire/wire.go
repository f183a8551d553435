package wire

import (
	"net/http"

	"murray-moving/internal/adaptor"
	"murray-moving/internal/data/repository"
	"murray-moving/internal/usecase"
	"murray-moving/pkg/metrics"
	"murray-moving/pkg/middleware"
	"murray-moving/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired router and the services main needs for startup and
// housekeeping jobs.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
	Limiter *middleware.RateLimiter
}

// Deps are the infrastructure pieces built by main.
type Deps struct {
	Repo     *repository.Repository
	Notifier usecase.QuoteNotifier
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

// Wiring builds services, handlers and the router.
func Wiring(deps Deps, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(deps.Repo, deps.Notifier, config, deps.Metrics, logger)
	handler := adaptor.NewHandler(service, config, logger)
	limiter := middleware.NewRateLimiter(config.RateLimit.RPS, config.RateLimit.Burst)

	router := setupRouter(handler, service, limiter, deps, config, logger)

	return &App{
		Router:  router,
		Service: service,
		Limiter: limiter,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	limiter *middleware.RateLimiter,
	deps Deps,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	if config.App.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.Logger(logger))
	// Metrics wraps Recover so recovered panics are counted as 500s
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigins))
	r.Use(middleware.Authenticate(service.Auth, logger))

	// Apply routes
	wireAuth(r, handler.Auth, limiter, logger)
	wireQuote(r, handler.Quote, limiter, logger)
	wireContact(r, handler.Contact, limiter, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, map[string]string{"status": "ok"})
	})

	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Not found")
	})

	return r
}
