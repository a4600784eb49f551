package simpledi

import (
	"reflect"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// binding represents an abstract type bound to a concrete type.
// Singleton bindings also own the slot holding their single instance.
type binding struct {
	abstract reflect.Type
	concrete reflect.Type
	scope    Scope

	mu       sync.Mutex
	ready    atomic.Bool
	instance any
}

// cached returns the singleton instance if it has been created.
func (b *binding) cached() (any, bool) {
	if b.ready.Load() {
		return b.instance, true
	}
	return nil, false
}

// singleton returns the cached instance, creating it with create on first use.
// Concurrent first calls converge on a single create call.
func (b *binding) singleton(create func() (any, error)) (any, error) {
	// Fast path: already published
	if instance, ok := b.cached(); ok {
		return instance, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// Double-check after acquiring the slot lock
	if instance, ok := b.cached(); ok {
		return instance, nil
	}

	instance, err := create()
	if err != nil {
		return nil, err
	}
	b.instance = instance
	b.ready.Store(true)
	return instance, nil
}

// Bind registers a prototype binding: every resolution of A builds a new C.
// A previous binding for A is replaced.
// Returns TypeMismatchError if C is not assignable to A.
func Bind[A, C any](c *Container) error {
	mustContainer(c)
	return c.bind(typeOf[A](), typeOf[C](), ScopePrototype)
}

// BindSingleton registers a singleton binding: A resolves to one shared C.
// A previous binding for A is replaced.
// Returns TypeMismatchError if C is not assignable to A.
func BindSingleton[A, C any](c *Container) error {
	mustContainer(c)
	return c.bind(typeOf[A](), typeOf[C](), ScopeSingleton)
}

// Bound reports whether A has a binding.
func Bound[A any](c *Container) bool {
	mustContainer(c)
	return c.lookup(typeOf[A]()) != nil
}

func (c *Container) bind(abstract, concrete reflect.Type, scope Scope) error {
	if !concrete.AssignableTo(abstract) {
		return &TypeMismatchError{Expected: abstract.String(), Got: concrete.String()}
	}

	c.mu.Lock()
	c.bindings[abstract] = &binding{
		abstract: abstract,
		concrete: concrete,
		scope:    scope,
	}
	c.mu.Unlock()

	c.log.Debug("binding registered",
		zap.Stringer("abstract", abstract),
		zap.Stringer("concrete", concrete),
		zap.Stringer("scope", scope),
	)
	return nil
}

func (c *Container) lookup(abstract reflect.Type) *binding {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bindings[abstract]
}
