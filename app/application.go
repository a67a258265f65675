package app

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"frontdoor/config"
	"frontdoor/internal/errors"
	"frontdoor/internal/middleware"
	"frontdoor/routes"
)

const shutdownTimeout = 30 * time.Second

// Application represents the running front door server
type Application struct {
	container  *Container
	httpServer *http.Server
	listener   net.Listener
	serveErr   chan error
	started    chan struct{}
	stopOnce   sync.Once
}

// NewApplication creates a new application instance from cfg
func NewApplication(cfg *config.Config, logger *slog.Logger) *Application {
	container := NewContainer(cfg, logger)

	router := routes.Setup(container.Handlers())
	handler := middleware.ChainMiddleware(middleware.DefaultMiddleware(logger)...)(router)

	return &Application{
		container: container,
		httpServer: &http.Server{
			Addr:     cfg.HTTP.Addr(),
			Handler:  handler,
			ErrorLog: slog.NewLogLogger(logger.Handler(), slog.LevelError),
		},
		serveErr: make(chan error, 1),
		started:  make(chan struct{}),
	}
}

// Handler returns the HTTP handler served by the application
func (a *Application) Handler() http.Handler {
	return a.httpServer.Handler
}

// Addr returns the bound address once started, otherwise the configured one
func (a *Application) Addr() string {
	if a.listener != nil {
		return a.listener.Addr().String()
	}
	return a.httpServer.Addr
}

// Started is closed once the listening socket is bound
func (a *Application) Started() <-chan struct{} {
	return a.started
}

// Start binds the listening socket and serves requests in the background.
// A bind failure is returned before anything is served.
func (a *Application) Start() error {
	logger := a.container.Logger

	ln, err := net.Listen("tcp", a.httpServer.Addr)
	if err != nil {
		return errors.NewNetworkError("listen", err).WithContext("addr", a.httpServer.Addr)
	}
	a.listener = ln
	close(a.started)

	logger.Info("HTTP server started",
		slog.String("addr", ln.Addr().String()),
		slog.Bool("debug", a.container.Config.Debug),
		slog.String("template_dir", a.container.Config.Template.Dir),
	)
	if a.container.Config.Debug {
		logger.Warn("Debug mode is enabled. Do not use it in a production deployment.")
	}

	go func() {
		if err := a.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			a.serveErr <- errors.NewNetworkError("serve", err)
		}
		close(a.serveErr)
	}()

	return nil
}

// Stop gracefully shuts down the server and releases resources
func (a *Application) Stop() error {
	var stopErr error
	a.stopOnce.Do(func() {
		logger := a.container.Logger

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.httpServer.Shutdown(ctx); err != nil {
			logger.Error("Error shutting down HTTP server", slog.String("error", err.Error()))
			stopErr = errors.NewNetworkError("shutdown", err)
		}

		if err := a.container.Close(); err != nil {
			logger.Error("Error closing container", slog.String("error", err.Error()))
		}
	})
	return stopErr
}

// Run starts the application and blocks until SIGINT or SIGTERM
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.RunContext(ctx)
}

// RunContext starts the application and blocks until ctx is done or the server fails
func (a *Application) RunContext(ctx context.Context) error {
	if err := a.Start(); err != nil {
		a.container.Close()
		return errors.Wrap(err, "start_application")
	}

	logger := a.container.Logger
	logger.Info("Application started. Press Ctrl+C to stop.")

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutting down application")
	case err, ok := <-a.serveErr:
		if ok {
			runErr = err
		}
	}

	if err := a.Stop(); err != nil && runErr == nil {
		runErr = err
	}

	logger.Info("Application stopped")
	return runErr
}
