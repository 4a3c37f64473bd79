// Package container is a small IoC container with Laravel-style service
// providers.
//
// # Container Lifecycle
//
//  1. Create: c := container.New()
//  2. Register providers: registry.Register(&MyProvider{})
//  3. Boot: registry.Boot(), after which everything resolves
//  4. Serve requests
//
// # Bindings
//
//	// Transient: new instance every Make()
//	c.Bind("recorder", func(c *container.Container) any { return &screens.Recorder{} })
//
//	// Singleton: created once, reused
//	c.Singleton("logger", func(c *container.Container) any {
//	    return logging.New(container.Resolve[*config.Config](c, "config"))
//	})
//
//	// Pre-built value
//	c.Instance("config", cfg)
//
//	// Alias
//	c.Alias("config", "configuration")
//
// Because Go has no runtime constructor reflection, auto-wiring is replaced
// by explicit factory functions, and Resolve[T] type-asserts the result.
package container
