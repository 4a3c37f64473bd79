package container

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider mirrors Laravel's Illuminate\Support\ServiceProvider.
//
// Register binds services. Boot is called after ALL providers have been
// registered, making it safe to resolve other bindings inside Boot.
//
//	type ScreenServiceProvider struct{ container.BaseProvider }
//
//	func (p *ScreenServiceProvider) Register(app *container.Container) {
//	    app.Singleton("screens", func(c *container.Container) any {
//	        cfg := container.Resolve[*config.Config](c, "config")
//	        return screens.NewStore(cfg.Screens.Capacity, nil)
//	    })
//	}
type ServiceProvider interface {
	// Register binds services into the container.
	// Do NOT resolve other bindings here; use Boot() for that.
	Register(app *Container)

	// Boot is called after all providers are registered.
	Boot(app *Container)
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct with a no-op Boot().
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Container) {}

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry manages registration and booting of ServiceProviders.
type ProviderRegistry struct {
	app        *Container
	providers  []ServiceProvider
	booted     bool
	registered map[ServiceProvider]bool
}

// NewProviderRegistry creates a registry bound to app.
func NewProviderRegistry(app *Container) *ProviderRegistry {
	return &ProviderRegistry{
		app:        app,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Register() method. Registering the
// same provider twice is a no-op; registering after Boot boots it at once.
func (r *ProviderRegistry) Register(provider ServiceProvider) {
	if r.registered[provider] {
		return
	}
	r.registered[provider] = true

	provider.Register(r.app)
	r.providers = append(r.providers, provider)

	if r.booted {
		provider.Boot(r.app)
	}
}

// Boot calls Boot() on all providers, in registration order.
func (r *ProviderRegistry) Boot() {
	if r.booted {
		return
	}
	r.booted = true
	for _, provider := range r.providers {
		provider.Boot(r.app)
	}
}

// Booted returns true if Boot() has been called.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns all registered providers.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.providers }
