package simpledi

import (
	"reflect"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Container holds bindings from abstract types to concrete types together
// with the constructors declared for those concrete types.
// Registration is expected to finish before providers are used concurrently.
type Container struct {
	id       string
	log      *zap.Logger
	mu       sync.RWMutex
	bindings map[reflect.Type]*binding
	catalog  map[reflect.Type]*declaration
}

// Option configures a Container.
type Option func(*Container)

// WithLogger sets the logger used for debug output. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *Container) {
		if l != nil {
			c.log = l
		}
	}
}

// WithID overrides the randomly generated container ID.
func WithID(id string) Option {
	return func(c *Container) {
		if id != "" {
			c.id = id
		}
	}
}

// New creates an empty container.
//
// Example:
//
//	c := simpledi.New(simpledi.WithLogger(log))
//	_ = simpledi.Declare[*InMemoryEventDAO](c, simpledi.Constructor(NewInMemoryEventDAO))
//	_ = simpledi.BindSingleton[EventDAO, *InMemoryEventDAO](c)
//	provider, err := simpledi.GetProvider[EventDAO](c)
func New(opts ...Option) *Container {
	c := &Container{
		id:       uuid.NewString(),
		log:      zap.NewNop(),
		bindings: make(map[reflect.Type]*binding, 32),
		catalog:  make(map[reflect.Type]*declaration, 32),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(zap.String("container", c.id))
	return c
}

// ID returns the container identifier attached to its log lines.
func (c *Container) ID() string {
	return c.id
}

// Reset clears all container state.
// It removes every binding, constructor declaration and cached singleton.
func (c *Container) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.bindings = make(map[reflect.Type]*binding, 32)
	c.catalog = make(map[reflect.Type]*declaration, 32)
	c.log.Debug("container reset")
}

// typeOf returns the reflect.Type of T, including interface types.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func mustContainer(c *Container) {
	if c == nil {
		panic("simpledi: nil container")
	}
}
