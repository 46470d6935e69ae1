package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/hostelbilling/internal/config"
	"github.com/mmynk/hostelbilling/internal/ledger"
	"github.com/mmynk/hostelbilling/internal/ledger/seed"
	"github.com/mmynk/hostelbilling/internal/metrics"
	"github.com/mmynk/hostelbilling/internal/middleware"
	"github.com/mmynk/hostelbilling/internal/reminder"
	"github.com/mmynk/hostelbilling/internal/service"
	"github.com/mmynk/hostelbilling/internal/storage/sqlite"
	"github.com/mmynk/hostelbilling/pkg/api/apiconnect"
	"github.com/mmynk/hostelbilling/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	// Load seed bills and build the ledger
	bills, err := seed.Load(cfg.SeedPath)
	if err != nil {
		slog.Error("Failed to load seed bills", "error", err)
		os.Exit(1)
	}
	loc := cfg.Location
	l, err := ledger.New(bills, ledger.WithClock(func() time.Time { return time.Now().In(loc) }))
	if err != nil {
		slog.Error("Failed to initialize ledger", "error", err)
		os.Exit(1)
	}
	slog.Info("Ledger initialized", "bills", l.Len(), "currency", l.Currency(), "seed", cfg.SeedPath)

	// Initialize receipt journal
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	m := metrics.New()
	m.ObserveStats(l.ComputeStats(l.Now()))

	if cfg.ReminderCron != "" {
		scheduler, err := reminder.Start(cfg.ReminderCron, loc, reminder.NewJob(l, m))
		if err != nil {
			slog.Error("Failed to start reminder scheduler", "error", err)
			os.Exit(1)
		}
		defer scheduler.Stop()
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(loggingMiddleware)
	r.Use(corsMiddleware)

	billing := service.NewBillingService(l, store, m)
	if err := billing.SyncJournal(context.Background()); err != nil {
		slog.Error("Failed to sync receipt journal", "error", err)
		os.Exit(1)
	}

	// Register Connect service
	billingPath, billingHandler := apiconnect.NewBillingServiceHandler(
		billing,
		connect.WithInterceptors(middleware.LoggingInterceptor(), middleware.MetricsInterceptor(m)),
	)
	r.Mount(billingPath, billingHandler)

	r.Handle("/metrics", m.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect gRPC clients)
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(r, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Connect server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}

// loggingMiddleware logs every HTTP request at debug level; RPC outcomes are
// logged by the Connect interceptor.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms, X-Request-Id")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms, X-Request-Id")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
