package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"CapSwap/internal/usecase"
	"CapSwap/pkg/config"
	xhttp "CapSwap/pkg/http"
	applogger "CapSwap/pkg/logger"

	"github.com/go-co-op/gocron/v2"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	warmer     *usecase.CacheWarmer
	handler    xhttp.Handler
	httpServer *xhttp.Server
	scheduler  gocron.Scheduler
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, logger *applogger.Logger, warmer *usecase.CacheWarmer, handler xhttp.Handler) *App {
	return &App{
		cfg:     cfg,
		logger:  logger,
		warmer:  warmer,
		handler: handler,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Fire-and-forget cache population: the server accepts traffic while
	// the ticker list downloads, serving the live fallback meanwhile.
	go a.warmer.Warm(ctx)

	if interval := a.cfg.Cache.RefreshInterval; interval > 0 {
		sched, err := gocron.NewScheduler()
		if err != nil {
			return fmt.Errorf("scheduler: %w", err)
		}
		if _, err := sched.NewJob(
			gocron.DurationJob(interval),
			gocron.NewTask(func() { a.warmer.Refresh(ctx) }),
		); err != nil {
			return fmt.Errorf("refresh job: %w", err)
		}
		sched.Start()
		a.scheduler = sched
		a.logger.Info("ticker cache refresh scheduled", applogger.Duration("interval_ms", interval))
	}

	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
	}
	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(a.cfg.Server.CORS),
		xhttp.WithMetricsPath(metricsPath),
		xhttp.WithLogger(a.logger),
	)
	if err := a.httpServer.Start(); err != nil {
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	if a.scheduler != nil {
		if err := a.scheduler.Shutdown(); err != nil {
			a.logger.Warn("scheduler stop error", applogger.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		return err
	}

	a.logger.Info("shutdown complete")
	return nil
}
