package application

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/slvrtrn/envfall/internal/api"
	"github.com/slvrtrn/envfall/internal/config"
)

const (
	readHeaderTimeout = 5 * time.Second
	writeTimeout      = 15 * time.Second
	idleTimeout       = 60 * time.Second

	defaultHeartbeatInterval = time.Minute
)

// App encapsulates the application dependencies, HTTP server, and background
// heartbeat.
type App struct {
	cfg     config.Config
	handler *api.Handler
	router  http.Handler
	logger  *zap.Logger
	server  *http.Server
	beat    *heartbeat
}

// Option configures optional application behaviour.
type Option func(*options)

type options struct {
	heartbeatInterval time.Duration
}

// WithHeartbeatInterval overrides the default heartbeat interval, primarily
// for tests.
func WithHeartbeatInterval(d time.Duration) Option {
	return func(o *options) {
		o.heartbeatInterval = d
	}
}

// New initializes the application with all dependencies from the provided
// configuration. The listen address is validated here so a malformed address
// fails startup before the server goroutine spawns.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	o := options{heartbeatInterval: defaultHeartbeatInterval}
	for _, opt := range opts {
		opt(&o)
	}

	if _, _, err := net.SplitHostPort(cfg.ListenAddr); err != nil {
		return nil, fmt.Errorf("invalid listen address %q: %w", cfg.ListenAddr, err)
	}

	handler := api.NewHandler(cfg)

	var routerOpts []api.RouterOption
	if cfg.AppEnv == config.EnvDevelopment {
		// Local development runs unthrottled.
		routerOpts = append(routerOpts, api.WithRateLimit(0, 0))
	}
	router := api.NewRouter(handler, logger, routerOpts...)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return &App{
		cfg:     cfg,
		handler: handler,
		router:  router,
		logger:  logger,
		server:  server,
		beat:    newHeartbeat(cfg, logger, o.heartbeatInterval),
	}, nil
}

// Start launches the HTTP server and the heartbeat in their own goroutines
// and logs the listening address.
func (a *App) Start() error {
	go a.beat.run()
	go func() {
		a.logger.Info("server listening",
			zap.String("addr", a.server.Addr),
			zap.String("app_env", string(a.cfg.AppEnv)),
		)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Shutdown stops the heartbeat and gracefully drains the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	a.beat.stop()
	return a.server.Shutdown(ctx)
}

// Close stops the heartbeat and closes the HTTP server immediately.
func (a *App) Close() error {
	a.beat.stop()
	return a.server.Close()
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}
