// Package catalog keeps record types by name.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/tessera/pkg/record"
)

// ErrTypeNotFound is returned when no type is registered under a name.
var ErrTypeNotFound = errors.New("record type not found")

// ErrDuplicateType is returned when a name is registered twice.
var ErrDuplicateType = errors.New("record type already registered")

// Catalog manages the available record types.
type Catalog struct {
	mu    sync.RWMutex
	types map[string]*record.Type
	ctor  *record.Constructor
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithConstructor sets the Constructor used by Construct and NewBuilder.
func WithConstructor(c *record.Constructor) Option {
	return func(cat *Catalog) {
		cat.ctor = c
	}
}

// New creates a new empty catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		types: make(map[string]*record.Type),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.ctor == nil {
		c.ctor = record.NewConstructor()
	}
	return c
}

// Register adds a type under its name.
// Unlike tools, types are never overwritten: a second type with the same
// name is rejected.
func (c *Catalog) Register(t *record.Type) error {
	if t == nil {
		return errors.New("register: nil record type")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.types[t.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateType, t.Name())
	}
	c.types[t.Name()] = t
	return nil
}

// MustRegister is like Register but panics on error.
func (c *Catalog) MustRegister(types ...*record.Type) {
	for _, t := range types {
		if err := c.Register(t); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the type registered under name.
func (c *Catalog) Lookup(name string) (*record.Type, bool) {
	c.mu.RLock()
	t, ok := c.types[name]
	c.mu.RUnlock()
	return t, ok
}

// Get is like Lookup but returns ErrTypeNotFound for unknown names.
func (c *Catalog) Get(name string) (*record.Type, error) {
	t, ok := c.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTypeNotFound, name)
	}
	return t, nil
}

// Names returns the registered type names, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.types))
	for name := range c.types {
		names = append(names, name)
	}
	c.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Len returns the number of registered types.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.types)
}

// Construct looks up a type by name and constructs an instance of it.
func (c *Catalog) Construct(name string, raw map[string]any) (*record.Record, error) {
	t, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	return c.ctor.Construct(t, raw)
}

// NewBuilder returns a staged builder for the named type.
func (c *Catalog) NewBuilder(name string) (*record.Builder, error) {
	t, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	return c.ctor.NewBuilder(t), nil
}
