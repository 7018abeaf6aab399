// Package bootstrap holds the process lifecycle shared by every service binary:
// env loading, config, logging, store, schema, optional Redis and the HTTP server.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/angelmondragon/tienda-backend/pkg/config"
	"github.com/angelmondragon/tienda-backend/pkg/db"
	"github.com/angelmondragon/tienda-backend/pkg/env"
	"github.com/angelmondragon/tienda-backend/pkg/instance"
	"github.com/angelmondragon/tienda-backend/pkg/logger"
	"github.com/angelmondragon/tienda-backend/pkg/migrate"
	"github.com/angelmondragon/tienda-backend/pkg/redis"
)

const (
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 60 * time.Second
	idleTimeout       = 120 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// Service identifies a binary and its default listen port.
type Service struct {
	Name        string
	DefaultPort string
	// UseRedis connects to Redis when it is configured.
	UseRedis bool
}

// App is a booted service process.
type App struct {
	Service  Service
	Config   *config.Config
	Logger   *logger.Logger
	DB       *db.Client
	Redis    *redis.Client
	Registry *prometheus.Registry

	closers []namedCloser
}

type namedCloser struct {
	name  string
	close func() error
}

// Init loads .env and config, then boots the service through New.
func Init(ctx context.Context, svc Service) (*App, error) {
	bootLog := logger.New(logger.Options{ServiceName: svc.Name})
	if err := godotenv.Load(); err != nil {
		bootLog.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logg := logger.New(logger.Options{
		ServiceName: svc.Name,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	return New(ctx, svc, cfg, logg)
}

// New opens the store, bootstraps the schema and connects to Redis when requested.
func New(ctx context.Context, svc Service, cfg *config.Config, logg *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logg == nil {
		logg = logger.Nop()
	}

	app := &App{
		Service:  svc,
		Config:   cfg,
		Logger:   logg,
		Registry: newRegistry(),
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return nil, fmt.Errorf("bootstrap database: %w", err)
	}
	app.DB = dbClient
	app.onClose("database", dbClient.Close)

	if err := migrate.Bootstrap(ctx, dbClient, cfg.App, cfg.FeatureFlags, logg); err != nil {
		return nil, multierr.Append(fmt.Errorf("bootstrap schema: %w", err), app.Close())
	}

	if svc.UseRedis {
		if cfg.Redis.Enabled() {
			redisClient, err := redis.New(ctx, cfg.Redis, logg)
			if err != nil {
				return nil, multierr.Append(fmt.Errorf("bootstrap redis: %w", err), app.Close())
			}
			app.Redis = redisClient
			app.onClose("redis", redisClient.Close)
		} else {
			logg.Info(ctx, "redis not configured; login throttling disabled")
		}
	}

	return app, nil
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func (a *App) onClose(name string, fn func() error) {
	a.closers = append(a.closers, namedCloser{name: name, close: fn})
}

// Close releases every resource in reverse acquisition order.
func (a *App) Close() error {
	var errs error
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c.close(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("close %s: %w", c.name, err))
		}
	}
	a.closers = nil
	return errs
}

// Addr resolves the listen address: TIENDA_PORT or PORT, then TIENDA_APP_PORT,
// then the service default.
func (a *App) Addr() string {
	port, _ := env.Lookup("PORT")
	return ":" + resolvePort(port, a.Config.App.Port, a.Service.DefaultPort)
}

func resolvePort(candidates ...string) string {
	for _, c := range candidates {
		c = strings.TrimPrefix(strings.TrimSpace(c), ":")
		if c != "" {
			return c
		}
	}
	return "8080"
}

// NewServer builds the HTTP server with the standard timeouts.
func (a *App) NewServer(handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              a.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
}

// Serve runs handler until SIGINT/SIGTERM or ctx cancellation, then drains
// in-flight requests and closes every resource.
func (a *App) Serve(ctx context.Context, handler http.Handler) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := a.NewServer(handler)
	logCtx := a.Logger.WithFields(ctx, map[string]any{
		"env":      a.Config.App.Env,
		"addr":     server.Addr,
		"instance": instance.GetID(),
		"driver":   a.DB.Driver(),
	})
	a.Logger.Info(logCtx, "starting "+a.Service.Name+" service")

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var runErr error
	select {
	case err := <-errCh:
		runErr = err
	case <-ctx.Done():
		a.Logger.Info(logCtx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		runErr = multierr.Append(runErr, fmt.Errorf("shutdown http server: %w", err))
	}
	runErr = multierr.Append(runErr, a.Close())

	if runErr == nil {
		a.Logger.Info(logCtx, a.Service.Name+" service stopped")
	}
	return runErr
}

// Fatal logs err and exits; used by the mains.
func Fatal(logg *logger.Logger, msg string, err error) {
	if logg == nil {
		logg = logger.New(logger.Options{ServiceName: "bootstrap"})
	}
	logg.Error(context.Background(), msg, err)
	os.Exit(1)
}
