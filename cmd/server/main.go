package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"bookstand/internal/auth"
	"bookstand/internal/catalog"
	"bookstand/internal/identity"
	"bookstand/internal/platform/config"
	"bookstand/internal/platform/httpserver"
	"bookstand/internal/platform/logger"
	"bookstand/internal/platform/metrics"
	"bookstand/internal/platform/redis"
	"bookstand/internal/ratelimit"
	"bookstand/internal/review"
	httptransport "bookstand/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	users := identity.NewInMemoryUserStore()
	books := catalog.NewInMemoryStore(catalog.SeedBooks())
	tokens := auth.NewTokenService(cfg.Auth)

	authSvc := auth.NewService(users, tokens,
		auth.WithLogger(log),
		auth.WithMetrics(m),
	)
	reviewSvc := review.NewService(books,
		review.WithLogger(log),
		review.WithMetrics(m),
	)

	// The login throttle shares state through redis when configured; a single
	// instance falls back to the in-process store.
	var buckets ratelimit.BucketStore = ratelimit.NewInMemoryBucketStore()
	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		log.Error("redis unavailable, using in-memory rate limiting", "error", err)
	} else if redisClient != nil {
		defer redisClient.Close()
		buckets = ratelimit.NewRedisBucketStore(redisClient.Client)
		log.Info("rate limiting backed by redis")
	}

	handler := httptransport.NewHandler(authSvc, reviewSvc, books, log)
	router := httptransport.NewRouter(handler, httptransport.RouterConfig{
		TokenValidator: tokens,
		Metrics:        m,
		Buckets:        buckets,
		RateLimit:      cfg.RateLimit,
		Logger:         log,
	})

	srv := httpserver.New(cfg.Server.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting bookstand", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
