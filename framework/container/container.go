package container

import (
	"fmt"
	"sort"
	"sync"
)

// ── Binding types ─────────────────────────────────────────────────────────────

// Factory is a function that builds a concrete value from the container.
type Factory func(c *Container) any

// binding holds a registered factory and whether it is a singleton.
type binding struct {
	factory   Factory
	singleton bool
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the IoC container the application kernel wires its services
// into: config, logger, router and the screen store.
type Container struct {
	mu sync.RWMutex

	// abstract → binding
	bindings map[string]*binding

	// abstract → resolved singleton instance
	instances map[string]any

	// alias → abstract (canonical key)
	aliases map[string]string
}

// New creates an empty container.
func New() *Container {
	c := &Container{
		bindings:  make(map[string]*binding),
		instances: make(map[string]any),
		aliases:   make(map[string]string),
	}
	c.Instance("container", c)
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Bind registers a transient (new instance each Make) factory.
//
//	c.Bind("recorder", func(c *container.Container) any { return &screens.Recorder{} })
func (c *Container) Bind(abstract string, factory Factory) {
	c.register(abstract, factory, false)
}

// Singleton registers a factory whose result is cached after first resolution.
//
//	c.Singleton("logger", func(c *container.Container) any {
//	    return logging.New(container.Resolve[*config.Config](c, "config"))
//	})
func (c *Container) Singleton(abstract string, factory Factory) {
	c.register(abstract, factory, true)
}

// Instance registers a pre-built value as a singleton.
func (c *Container) Instance(abstract string, instance any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	delete(c.bindings, key)
	c.instances[key] = instance
}

func (c *Container) register(abstract string, factory Factory, singleton bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	// Drop any cached instance so it's rebuilt with the new factory
	delete(c.instances, key)
	c.bindings[key] = &binding{factory: factory, singleton: singleton}
}

// Alias registers an alternative name for an abstract.
func (c *Container) Alias(abstract, alias string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if abstract == alias {
		panic(fmt.Sprintf("container: [%s] is aliased to itself", abstract))
	}
	c.aliases[alias] = c.canonical(abstract)
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Make resolves an abstract from the container. Resolving an abstract that
// was never registered is a wiring bug and panics.
func (c *Container) Make(abstract string) any {
	c.mu.RLock()
	key := c.canonical(abstract)
	if inst, ok := c.instances[key]; ok {
		c.mu.RUnlock()
		return inst
	}
	b, ok := c.bindings[key]
	c.mu.RUnlock()

	if !ok {
		panic(fmt.Sprintf("container: no binding registered for [%s]", abstract))
	}

	// Factories may resolve other abstracts, so no lock is held here.
	instance := b.factory(c)
	if !b.singleton {
		return instance
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.instances[key]; ok {
		return existing // another goroutine won the race
	}
	c.instances[key] = instance
	return instance
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// Bound returns true if an abstract has been registered.
func (c *Container) Bound(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	key := c.canonical(abstract)
	_, hasBinding := c.bindings[key]
	_, hasInstance := c.instances[key]
	return hasBinding || hasInstance
}

// Resolved returns true if the abstract has a cached instance.
func (c *Container) Resolved(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.instances[c.canonical(abstract)]
	return ok
}

// Bindings returns all registered abstract keys, sorted.
func (c *Container) Bindings() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.bindings)+len(c.instances))
	for k := range c.bindings {
		out = append(out, k)
	}
	for k := range c.instances {
		if _, already := c.bindings[k]; !already {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// canonical resolves an alias to its canonical key (caller holds mu).
func (c *Container) canonical(abstract string) string {
	if target, ok := c.aliases[abstract]; ok {
		return target
	}
	return abstract
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Resolve is a generic helper that calls Make and type-asserts the result.
//
//	store := container.Resolve[*screens.Store](c, "screens")
func Resolve[T any](c *Container, abstract string) T {
	instance := c.Make(abstract)
	typed, ok := instance.(T)
	if !ok {
		panic(fmt.Sprintf("container: Resolve[%T]: [%s] resolved to %T", *new(T), abstract, instance))
	}
	return typed
}
