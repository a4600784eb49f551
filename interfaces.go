// Package simpledi provides a small constructor-injection container.
package simpledi

// Scope defines the lifetime and sharing behavior of a bound type.
type Scope string

// Available binding scopes
const (
	// ScopePrototype creates a new instance for each resolution
	ScopePrototype Scope = "prototype"
	// ScopeSingleton shares a single instance across the container
	ScopeSingleton Scope = "singleton"
)

func (s Scope) String() string {
	return string(s)
}
