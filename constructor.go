package simpledi

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Ctor is a constructor function declared for a concrete type.
// The function takes the abstract types it depends on as parameters and
// returns the concrete type, optionally followed by an error.
type Ctor struct {
	fn         any
	injectable bool
}

// Injectable marks fn as the constructor the container must use.
//
// Example:
//
//	simpledi.Declare[*EventService](c, simpledi.Injectable(func(d EventDAO, p ProfileDAO) *EventService {
//	    return &EventService{dao: d, profiles: p}
//	}))
func Injectable(fn any) Ctor {
	return Ctor{fn: fn, injectable: true}
}

// Constructor declares an ordinary constructor. It is only used when it
// takes no parameters and no injectable constructor is declared.
func Constructor(fn any) Ctor {
	return Ctor{fn: fn}
}

// constructor is a validated constructor descriptor.
type constructor struct {
	fn         reflect.Value
	params     []reflect.Type
	injectable bool
	withErr    bool
	// implicit is set for the zero-value constructor of undeclared struct types.
	implicit reflect.Type
}

func (ct *constructor) call(args []reflect.Value) []reflect.Value {
	if ct.implicit != nil {
		if ct.implicit.Kind() == reflect.Ptr {
			return []reflect.Value{reflect.New(ct.implicit.Elem())}
		}
		return []reflect.Value{reflect.Zero(ct.implicit)}
	}
	return ct.fn.Call(args)
}

// declaration holds the constructors declared for one concrete type.
// The selection is computed once; declarations never change after creation.
type declaration struct {
	concrete reflect.Type
	ctors    []*constructor
	once     sync.Once
	selected *constructor
	err      error
}

func (d *declaration) selectConstructor() (*constructor, error) {
	d.once.Do(func() {
		d.selected, d.err = pickConstructor(d.concrete, d.ctors)
	})
	return d.selected, d.err
}

// Declare registers the constructors available for the concrete type C,
// replacing any earlier declaration for C.
// Returns InvalidConstructorError if a function has the wrong shape.
func Declare[C any](c *Container, ctors ...Ctor) error {
	mustContainer(c)
	concrete := typeOf[C]()

	decl := &declaration{
		concrete: concrete,
		ctors:    make([]*constructor, 0, len(ctors)),
	}
	for _, ct := range ctors {
		parsed, err := parseConstructor(concrete, ct)
		if err != nil {
			return err
		}
		decl.ctors = append(decl.ctors, parsed)
	}

	c.mu.Lock()
	c.catalog[concrete] = decl
	c.mu.Unlock()

	c.log.Debug("constructors declared",
		zap.Stringer("concrete", concrete),
		zap.Int("count", len(decl.ctors)),
	)
	return nil
}

func parseConstructor(concrete reflect.Type, ct Ctor) (*constructor, error) {
	if ct.fn == nil {
		return nil, &InvalidConstructorError{Type: concrete.String(), Reason: "nil function"}
	}

	fnValue := reflect.ValueOf(ct.fn)
	fnType := fnValue.Type()

	if fnType.Kind() != reflect.Func {
		return nil, &InvalidConstructorError{
			Type:   concrete.String(),
			Reason: fmt.Sprintf("expected a function, got %s", fnType),
		}
	}
	if fnValue.IsNil() {
		return nil, &InvalidConstructorError{Type: concrete.String(), Reason: "nil function"}
	}
	if fnType.IsVariadic() {
		return nil, &InvalidConstructorError{Type: concrete.String(), Reason: "variadic functions are not supported"}
	}

	withErr := false
	switch fnType.NumOut() {
	case 1:
	case 2:
		if fnType.Out(1) != errorType {
			return nil, &InvalidConstructorError{Type: concrete.String(), Reason: "second return value must be error"}
		}
		withErr = true
	default:
		return nil, &InvalidConstructorError{
			Type:   concrete.String(),
			Reason: fmt.Sprintf("must return %s or (%s, error)", concrete, concrete),
		}
	}
	if !fnType.Out(0).AssignableTo(concrete) {
		return nil, &InvalidConstructorError{
			Type:   concrete.String(),
			Reason: fmt.Sprintf("returns %s", fnType.Out(0)),
		}
	}

	params := make([]reflect.Type, fnType.NumIn())
	for i := range params {
		params[i] = fnType.In(i)
	}

	return &constructor{
		fn:         fnValue,
		params:     params,
		injectable: ct.injectable,
		withErr:    withErr,
	}, nil
}

// pickConstructor applies the selection policy: the single injectable
// constructor, otherwise a zero-parameter one.
func pickConstructor(concrete reflect.Type, ctors []*constructor) (*constructor, error) {
	var injectable, zeroArg *constructor
	count := 0

	for _, ct := range ctors {
		if ct.injectable {
			count++
			if injectable == nil {
				injectable = ct
			}
			continue
		}
		if len(ct.params) == 0 && zeroArg == nil {
			zeroArg = ct
		}
	}

	switch {
	case count > 1:
		return nil, &ConstructorAmbiguityError{Type: concrete.String(), Count: count}
	case injectable != nil:
		return injectable, nil
	case zeroArg != nil:
		return zeroArg, nil
	}
	return nil, &NoSuitableConstructorError{Type: concrete.String()}
}

// selectConstructor returns the constructor to use for concrete.
// Struct types and pointers to structs with no declaration get an implicit
// zero-value constructor.
func (c *Container) selectConstructor(concrete reflect.Type) (*constructor, error) {
	c.mu.RLock()
	decl := c.catalog[concrete]
	c.mu.RUnlock()

	if decl != nil {
		return decl.selectConstructor()
	}
	if isStructOrStructPtr(concrete) {
		return &constructor{implicit: concrete}, nil
	}
	return nil, &NoSuitableConstructorError{Type: concrete.String()}
}

func isStructOrStructPtr(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}
