package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	companyhandler "registro/internal/company/handler"
	companymetrics "registro/internal/company/metrics"
	"registro/internal/company/models"
	companyservice "registro/internal/company/service"
	companystore "registro/internal/company/store/company"
	countryhandler "registro/internal/country/handler"
	countrystore "registro/internal/country/store/country"
	"registro/internal/platform/config"
	"registro/internal/platform/httpserver"
	"registro/internal/platform/logger"
	"registro/internal/platform/middleware"
	"registro/internal/platform/postgres"
	"registro/internal/secrets"
	userhandler "registro/internal/user/handler"
	usermetrics "registro/internal/user/metrics"
	userservice "registro/internal/user/service"
	userstore "registro/internal/user/store/user"
	"registro/internal/validation"
)

// main wires dependencies and owns the server lifecycle. Business logic
// lives in the internal service packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		logger.New("info").Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	countries := countrystore.NewPostgres(pool)
	hasher := secrets.NewBcryptHasher(cfg.BcryptCost)
	validators := models.FormatValidators{
		TaxID: validation.NewTaxIDRegistry(),
		Zip:   validation.NewZipCodeRegistry(),
	}

	companySvc := companyservice.New(
		companystore.NewPostgres(pool),
		countries,
		validators,
		companyservice.WithLogger(log),
		companyservice.WithMetrics(companymetrics.New()),
	)
	userSvc := userservice.New(
		userstore.NewPostgres(pool),
		hasher,
		userservice.WithLogger(log),
		userservice.WithMetrics(usermetrics.New()),
	)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestTime)
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	router.Use(chimiddleware.Timeout(cfg.RequestTimeout))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := pool.Ping(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())

	companyhandler.New(companySvc, log).Register(router)
	userhandler.New(userSvc, log).Register(router)
	countryhandler.New(countries, log).Register(router)

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("server starting", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown incomplete", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
