package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/config"
	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/handlers"
	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/ledger"
	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/middleware"
	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/service"
	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront ledger server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"storage", cfg.Storage.Driver,
		"timezone", cfg.Timezone,
		"log_level", cfg.LogLevel,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	store, err := newStore(cfg.Storage)
	if err != nil {
		return err
	}

	seed, err := repository.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("failed to load seed data: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	l, err := ledger.New(ctx, store,
		ledger.WithLogger(log),
		ledger.WithLocation(loc),
		ledger.WithSeed(seed),
	)
	if err != nil {
		return fmt.Errorf("failed to open ledger: %w", err)
	}

	stats := l.ComputeStats()
	log.Info("ledger loaded",
		"menu_items", stats.TotalProducts,
		"supplies", len(l.Supplies()),
		"sales", stats.TotalSales,
	)

	// Initialize services
	inventoryService := service.NewInventoryService(l)
	salesService := service.NewSalesService(l)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	handlers.Handlers{
		Health: handlers.NewHealthHandler(log, cfg.Storage.Driver),
		Supply: handlers.NewSupplyHandler(inventoryService, log),
		Menu:   handlers.NewMenuHandler(inventoryService, log),
		Cart:   handlers.NewCartHandler(salesService, log),
		Sale:   handlers.NewSaleHandler(salesService, log),
	}.Mount(r)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func newStore(cfg config.StorageConfig) (repository.Store, error) {
	switch cfg.Driver {
	case config.StorageMemory:
		return repository.NewInMemoryStore(), nil
	case config.StorageFile:
		store, err := repository.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open data directory: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}
