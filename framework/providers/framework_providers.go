package providers

import (
	"github.com/charmbracelet/log"

	"github.com/km-arc/expense-share/framework/config"
	"github.com/km-arc/expense-share/framework/container"
	"github.com/km-arc/expense-share/framework/http/middleware"
	"github.com/km-arc/expense-share/framework/logging"
	"github.com/km-arc/expense-share/routing"
	"github.com/km-arc/expense-share/screens"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it into the container as "config".
//
// Bound abstracts:
//   - "config"  → *config.Config
//
// Laravel equivalent:
//
//	// Illuminate\Foundation\Bootstrap\LoadConfiguration
//	$app->singleton('config', fn() => new Repository($items));
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	envFiles := p.EnvFiles
	app.Singleton("config", func(c *container.Container) any {
		return config.Load(envFiles...)
	})
	app.Alias("config", "configuration")
}

// ── LogServiceProvider ────────────────────────────────────────────────────────

// LogServiceProvider registers the application logger.
//
// Bound abstracts:
//   - "log"  → *log.Logger (charmbracelet)
type LogServiceProvider struct {
	container.BaseProvider
}

func (p *LogServiceProvider) Register(app *container.Container) {
	app.Singleton("log", func(c *container.Container) any {
		return logging.New(container.Resolve[*config.Config](c, "config"))
	})
	app.Alias("log", "logger")
}

// ── ScreenServiceProvider ─────────────────────────────────────────────────────

// ScreenServiceProvider registers the store of mounted screens.
//
// Bound abstracts:
//   - "screens"  → *screens.Store
//
// Configuration keys read from "config":
//   - Screens.Capacity
type ScreenServiceProvider struct {
	container.BaseProvider
}

func (p *ScreenServiceProvider) Register(app *container.Container) {
	app.Singleton("screens", func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")
		logger := container.Resolve[*log.Logger](c, "log")
		return screens.NewStore(cfg.Screens.Capacity, logger.WithPrefix("screens"))
	})
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router with request logging and
// throttling installed.
//
// Bound abstracts:
//   - "router"  → *routing.Router
//
// Laravel equivalent:
//
//	// Illuminate\Routing\RoutingServiceProvider
//	$app->singleton('router', fn($app) => new Router($app['events'], $app));
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) {
	app.Singleton("router", func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")
		logger := container.Resolve[*log.Logger](c, "log")
		return routing.New(
			middleware.RequestLogger(logger.WithPrefix("http")),
			middleware.Throttle(cfg.HTTP.ThrottleRPS, cfg.HTTP.ThrottleBurst),
		)
	})
}
