// Package server initializes and runs the LegalLite application server.
// It wires configuration, storage backends, session state, the summarization
// dispatcher, and the HTTP endpoint, and handles graceful shutdown.
package server

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

	"github.com/redis/go-redis/v9"

	"github.com/legalease/legallite/internal/logging"
	"github.com/legalease/legallite/internal/server/config"
	"github.com/legalease/legallite/internal/server/httpapi"
	"github.com/legalease/legallite/internal/server/repositories/repomanager"
	"github.com/legalease/legallite/internal/server/services"
	"github.com/legalease/legallite/internal/server/session"
	"github.com/legalease/legallite/internal/server/storage"
	"github.com/legalease/legallite/internal/speech"
	"github.com/legalease/legallite/internal/summarize"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	repos   repomanager.RepositoryManager
	httpSrv *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	rm, err := repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	sessionStore, err := newSessionStore(cfg)
	if err != nil {
		return nil, err
	}

	blobStore, err := newBlobStore(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	openAI := summarize.NewOpenAI(cfg.ProviderTimeout)
	dispatcher := summarize.NewDispatcher(
		summarize.NewDemo(),
		openAI,
		summarize.NewHuggingFace(cfg.HFEndpoint, cfg.HFToken, cfg.ProviderTimeout),
	)

	srv := httpapi.NewServer(
		cfg,
		logger,
		services.NewUserService(rm.Users()),
		services.NewHistoryService(rm.Uploads()),
		sessionStore,
		dispatcher,
		openAI,
		blobStore,
		speech.NewSynthesizer(),
	)

	return &App{
		config: cfg,
		logger: logger,
		repos:  rm,
		httpSrv: &http.Server{
			Addr:    cfg.EndpointAddr,
			Handler: srv.Router(),
		},
	}, nil
}

func newSessionStore(cfg *config.Config) (session.Store, error) {
	if cfg.RedisAddr == "" {
		return session.NewMemoryStore(), nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	return session.NewRedisStore(client), nil
}

func newBlobStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	if cfg.S3BaseEndpoint == "" {
		return storage.NewFSStore(cfg.StorageDir)
	}
	return storage.NewS3Store(ctx, storage.S3Options{
		RootUser:     cfg.S3RootUser,
		RootPassword: cfg.S3RootPassword,
		Bucket:       cfg.S3Bucket,
		Region:       cfg.S3Region,
		BaseEndpoint: cfg.S3BaseEndpoint,
	})
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run migrates the schema, starts the HTTP server, and blocks until the
// context is canceled or the server fails.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.EndpointAddr)

	if err := app.repos.RunMigrations(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	app.initSignalHandler(cancelFunc)

	errCh := make(chan error, 1)
	go func() {
		if err := app.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
	}

	app.logger.Info(context.Background(), "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.httpSrv.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "shutdown error", "error", err)
	}

	if err := app.repos.Close(); err != nil {
		app.logger.Error(context.Background(), "db close error", "error", err)
	}

	return nil
}
