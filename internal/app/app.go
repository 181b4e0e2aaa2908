package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/kuvvetliisik/pharma-showcase/internal/config"
	handler "github.com/kuvvetliisik/pharma-showcase/internal/handler/http"
	"github.com/kuvvetliisik/pharma-showcase/internal/repository/jsondb"
	"github.com/kuvvetliisik/pharma-showcase/internal/service"
	"github.com/kuvvetliisik/pharma-showcase/internal/storage/disk"
	"github.com/kuvvetliisik/pharma-showcase/pkg/health"
)

// App wires together all dependencies and runs the showcase service.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	store      *jsondb.Store
	httpServer *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Open the JSON document store. Init seeds a fresh catalog when the
	// file does not exist and backfills collections missing from older
	// documents.
	store := jsondb.NewStore(cfg.DBPath, logger)
	if err := store.Init(ctx); err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}
	logger.Info("document store ready", slog.String("path", cfg.DBPath))

	// Build the dependency graph.
	productRepo := jsondb.NewProductRepository(store)
	brandRepo := jsondb.NewBrandRepository(store)
	messageRepo := jsondb.NewMessageRepository(store)
	sliderRepo := jsondb.NewSliderRepository(store)

	productService := service.NewProductService(productRepo, logger)

	uploadStorage := disk.New(cfg.UploadDir)
	uploadService := service.NewUploadService(uploadStorage, logger)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("store", func(ctx context.Context) error {
		return store.Ping(ctx)
	})

	// HTTP router.
	router := handler.NewRouter(handler.RouterConfig{
		Product: handler.NewProductHandler(productService, logger),
		Brand:   handler.NewBrandHandler(brandRepo, logger),
		Message: handler.NewMessageHandler(messageRepo, logger),
		Slider:  handler.NewSliderHandler(sliderRepo, logger),
		Upload:  handler.NewUploadHandler(uploadService, logger),

		Health: healthHandler,
		Logger: logger,

		UploadsDir:         uploadStorage.Root(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		ContactRateLimit:   cfg.ContactRateLimit,
		ContactRateBurst:   cfg.ContactRateBurst,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		store:      store,
		httpServer: httpServer,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
