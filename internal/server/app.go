// Package server initializes and runs the main application server.
// It selects the record store backend, runs migrations, handles graceful
// shutdown, and starts the HTTP server for the sightings API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/birdlog/internal/logging"
	"github.com/dmitrijs2005/birdlog/internal/server/config"
	"github.com/dmitrijs2005/birdlog/internal/server/httpapi"
	"github.com/dmitrijs2005/birdlog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/birdlog/internal/server/services"
	"github.com/jonboulle/clockwork"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager repomanager.RepositoryManager
	service *services.SightingService
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	var manager repomanager.RepositoryManager
	if c.UseInMemoryStore {
		manager = repomanager.NewInMemoryRepositoryManager()
	} else {
		pm, err := repomanager.NewPostgresRepositoryManager(c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		manager = pm
	}

	service := services.NewSightingService(manager.Sightings(), clockwork.NewRealClock())

	return &App{config: c, logger: logger, manager: manager, service: service}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config, app.logger, app.service)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if err := app.manager.RunMigrations(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}

	return nil
}
