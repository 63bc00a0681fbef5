package server

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"payguard/internal/domain/runs"
	"payguard/internal/platform/config"
	"payguard/internal/platform/db"
	"payguard/internal/platform/jobs"
	"payguard/internal/platform/metrics"
	"payguard/internal/transport/http/api"
	"payguard/internal/transport/http/handlers/authhandler"
	"payguard/internal/transport/http/handlers/compliance"
	"payguard/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()

	// The engine is fully functional without a database; runs and punch rows
	// simply are not journaled.
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		var err error
		pool, err = db.Connect(ctx, cfg)
		if err != nil {
			log.Fatalf("db connect failed: %v", err)
		}
		defer pool.Close()

		if cfg.RunMigrations {
			if err := db.Migrate(ctx, pool); err != nil {
				log.Fatalf("migrations failed: %v", err)
			}
		}
	} else {
		slog.Warn("DATABASE_URL not set, running without persistence")
	}

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	jobSvc := jobs.New(pool)
	jobSvc.Start(ctx)

	var runStore *runs.Store
	if pool != nil {
		runStore = runs.NewStore(pool)
	}
	runSvc := runs.NewService(runStore, jobSvc, collector, cfg.Defaults)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if pool == nil {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if collector != nil {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(cfg)
		r.Post("/auth/login", authHandler.HandleLogin)

		r.Group(func(protected chi.Router) {
			protected.Use(middleware.RequireAuth(cfg.JWTSecret))

			complianceHandler := compliance.NewHandler(runSvc, cfg.ReportDir, cfg.MaxBodyBytes)
			complianceHandler.RegisterRoutes(protected)
		})
	})

	log.Printf("payguard server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
