package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bookstand/internal/auth"
	"bookstand/internal/catalog"
	"bookstand/internal/platform/config"
	"bookstand/internal/platform/metrics"
	"bookstand/internal/ratelimit"
	"bookstand/internal/review"
)

// Handler is the thin HTTP layer. It delegates to domain services without
// embedding business logic so transport concerns remain isolated.
type Handler struct {
	auth    *auth.Service
	reviews *review.Service
	catalog catalog.Store
	logger  *slog.Logger
}

func NewHandler(authSvc *auth.Service, reviewSvc *review.Service, store catalog.Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{auth: authSvc, reviews: reviewSvc, catalog: store, logger: logger}
}

// RouterConfig carries the cross-cutting pieces the router mounts around the
// handlers: the token gate, the auth-endpoint throttle, and metrics.
type RouterConfig struct {
	TokenValidator auth.TokenValidator
	Metrics        *metrics.Metrics
	Buckets        ratelimit.BucketStore
	RateLimit      config.RateLimit
	Logger         *slog.Logger
}

// NewRouter wires all endpoints. Review mutation is the only protected
// operation; everything else is public read or credential exchange.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		if cfg.Buckets != nil {
			r.Use(ratelimit.Limit(cfg.Buckets, cfg.RateLimit, logger))
		}
		r.Post("/register", h.handleRegister)
		r.Post("/login", h.handleLogin)
	})

	r.Route("/books", func(r chi.Router) {
		r.Get("/", h.handleListBooks)
		r.Get("/isbn/{isbn}", h.handleBookByISBN)
		r.Get("/author/{author}", h.handleBooksByAuthor)
		r.Get("/title/{title}", h.handleBooksByTitle)
		r.Get("/{isbn}/reviews", h.handleGetReviews)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(cfg.TokenValidator, cfg.Metrics, logger))
			r.Put("/{isbn}/reviews", h.handleUpsertReview)
		})
	})

	return r
}
