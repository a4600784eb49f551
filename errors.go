package simpledi

import (
	"fmt"
	"strings"
)

// BindingNotFoundError represents a type met during resolution that has no binding.
type BindingNotFoundError struct {
	Type string
	// RequiredBy names the dependent that declared Type as a constructor
	// parameter. Empty when Type is the root of the resolution.
	RequiredBy string
}

func (e *BindingNotFoundError) Error() string {
	if e.RequiredBy == "" {
		return fmt.Sprintf("no binding found for type: %s", e.Type)
	}
	return fmt.Sprintf("no binding found for type: %s (required by %s)", e.Type, e.RequiredBy)
}

// ConstructorAmbiguityError represents a concrete type with more than one injectable constructor.
type ConstructorAmbiguityError struct {
	Type  string
	Count int
}

func (e *ConstructorAmbiguityError) Error() string {
	return fmt.Sprintf("%d injectable constructors declared for type: %s", e.Count, e.Type)
}

// NoSuitableConstructorError represents a concrete type with neither an
// injectable nor a zero-parameter constructor.
type NoSuitableConstructorError struct {
	Type string
}

func (e *NoSuitableConstructorError) Error() string {
	return fmt.Sprintf("no injectable or zero-parameter constructor declared for type: %s", e.Type)
}

// ConstructionError represents a constructor that failed while building an instance.
type ConstructionError struct {
	Type string
	Err  error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("construction failed for type %s: %v", e.Type, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// CircularDependencyError represents a circular dependency detection error.
type CircularDependencyError struct {
	Type  string
	Chain []string
}

func (e *CircularDependencyError) Error() string {
	if len(e.Chain) == 0 {
		return fmt.Sprintf("circular dependency detected for type: %s", e.Type)
	}
	return fmt.Sprintf("circular dependency detected for type: %s (%s)", e.Type, strings.Join(e.Chain, " -> "))
}

// TypeMismatchError represents a type assertion failure.
type TypeMismatchError struct {
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Got)
}

// InvalidConstructorError represents a constructor function rejected at declaration time.
type InvalidConstructorError struct {
	Type   string
	Reason string
}

func (e *InvalidConstructorError) Error() string {
	return fmt.Sprintf("invalid constructor for type %s: %s", e.Type, e.Reason)
}
