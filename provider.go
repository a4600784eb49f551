package simpledi

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// Provider yields instances of T according to the scope of its binding:
// the same instance for singletons, a new one per call for prototypes.
// A Provider is safe for concurrent use.
type Provider[T any] struct {
	get func() (any, error)
}

// GetProvider returns a Provider for T.
// It returns (nil, nil) when T has no binding. Errors found while planning
// the dependencies of T (BindingNotFoundError, ConstructorAmbiguityError,
// NoSuitableConstructorError, CircularDependencyError) are returned here,
// before any instance is built.
func GetProvider[T any](c *Container) (*Provider[T], error) {
	mustContainer(c)
	abstract := typeOf[T]()

	b := c.lookup(abstract)
	if b == nil {
		return nil, nil
	}

	if b.scope == ScopeSingleton {
		if instance, ok := b.cached(); ok {
			return &Provider[T]{get: func() (any, error) { return instance, nil }}, nil
		}
	}

	p, err := c.collect(abstract)
	if err != nil {
		return nil, err
	}

	c.log.Debug("resolution plan built",
		zap.Stringer("root", abstract),
		zap.Stringers("steps", p.types()),
	)

	return &Provider[T]{get: func() (any, error) { return c.execute(p) }}, nil
}

// Get returns an instance of T.
func (p *Provider[T]) Get() (T, error) {
	var zero T

	instance, err := p.get()
	if err != nil {
		return zero, err
	}
	if instance == nil {
		return zero, nil
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, &TypeMismatchError{
			Expected: typeOf[T]().String(),
			Got:      reflect.TypeOf(instance).String(),
		}
	}
	return typed, nil
}

// MustGet is like Get but panics on error.
func (p *Provider[T]) MustGet() T {
	instance, err := p.Get()
	if err != nil {
		panic(fmt.Sprintf("simpledi: %v", err))
	}
	return instance
}

// Resolve builds a provider for T and returns one instance from it.
// Unlike GetProvider, an unbound T is reported as BindingNotFoundError.
func Resolve[T any](c *Container) (T, error) {
	var zero T

	provider, err := GetProvider[T](c)
	if err != nil {
		return zero, err
	}
	if provider == nil {
		return zero, &BindingNotFoundError{Type: typeOf[T]().String()}
	}
	return provider.Get()
}
