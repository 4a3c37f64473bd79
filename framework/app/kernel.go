package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/km-arc/expense-share/framework/config"
	"github.com/km-arc/expense-share/framework/container"
	"github.com/km-arc/expense-share/framework/providers"
	"github.com/km-arc/expense-share/routing"
	"github.com/km-arc/expense-share/screens"
)

// Application is the top-level application container. It embeds the IoC
// Container, so app.Singleton() and app.Make() work directly, like $app in
// Laravel's bootstrap/app.php.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// New creates the application and registers the framework providers.
// Call Register for application providers, then Boot or Run.
func New(envFiles ...string) *Application {
	c := container.New()
	registry := container.NewProviderRegistry(c)

	app := &Application{
		Container: c,
		Providers: registry,
	}

	registry.Register(&providers.ConfigServiceProvider{EnvFiles: envFiles})
	registry.Register(&providers.LogServiceProvider{})
	registry.Register(&providers.ScreenServiceProvider{})
	registry.Register(&providers.RoutingServiceProvider{})

	return app
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) {
	a.Providers.Register(provider)
}

// Boot runs the Boot() phase on all providers.
func (a *Application) Boot() {
	a.Providers.Boot()
}

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	return container.Resolve[*config.Config](a.Container, "config")
}

// Logger resolves the application logger from the container.
func (a *Application) Logger() *log.Logger {
	return container.Resolve[*log.Logger](a.Container, "log")
}

// Router resolves *routing.Router from the container.
func (a *Application) Router() *routing.Router {
	return container.Resolve[*routing.Router](a.Container, "router")
}

// Screens resolves the mounted screen store from the container.
func (a *Application) Screens() *screens.Store {
	return container.Resolve[*screens.Store](a.Container, "screens")
}

// Run boots the application (if needed) and serves HTTP on APP_PORT until
// ctx is cancelled, then shuts down gracefully.
func (a *Application) Run(ctx context.Context) error {
	if !a.Providers.Booted() {
		a.Boot()
	}
	cfg := a.Config()
	logger := a.Logger()

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           a.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if a.IsProduction() && a.IsDebug() {
		logger.Warn("APP_DEBUG is on in production")
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "name", cfg.App.Name, "addr", "http://localhost"+srv.Addr, "env", cfg.App.Env)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.HTTP.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }
