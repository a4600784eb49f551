package simpledi

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// execute builds every step of p in order and returns the root instance.
// Instances built during one call are shared by the steps that follow it.
func (c *Container) execute(p *plan) (any, error) {
	if n := len(p.steps); n > 0 {
		if root := p.steps[n-1].binding; root.scope == ScopeSingleton {
			if instance, ok := root.cached(); ok {
				return instance, nil
			}
		}
	}

	built := make(map[reflect.Type]any, len(p.steps))

	var instance any
	for _, s := range p.steps {
		v, err := c.materialize(s, built)
		if err != nil {
			return nil, err
		}
		built[s.binding.abstract] = v
		instance = v
	}
	return instance, nil
}

func (c *Container) materialize(s step, built map[reflect.Type]any) (any, error) {
	if s.binding.scope != ScopeSingleton {
		return c.construct(s, built)
	}

	return s.binding.singleton(func() (any, error) {
		instance, err := c.construct(s, built)
		if err != nil {
			return nil, err
		}
		c.log.Debug("singleton created",
			zap.Stringer("abstract", s.binding.abstract),
			zap.Stringer("concrete", s.binding.concrete),
		)
		return instance, nil
	})
}

// construct calls the step's constructor with the already built dependencies.
// Errors and panics raised by the constructor become a ConstructionError.
func (c *Container) construct(s step, built map[reflect.Type]any) (instance any, err error) {
	args := make([]reflect.Value, len(s.ctor.params))
	for i, param := range s.ctor.params {
		dep, ok := built[param]
		if !ok || dep == nil {
			args[i] = reflect.Zero(param)
			continue
		}
		args[i] = reflect.ValueOf(dep)
	}

	defer func() {
		if r := recover(); r != nil {
			instance = nil
			err = &ConstructionError{
				Type: s.binding.concrete.String(),
				Err:  fmt.Errorf("constructor panicked: %v", r),
			}
		}
	}()

	results := s.ctor.call(args)

	if s.ctor.withErr && !results[1].IsNil() {
		return nil, &ConstructionError{
			Type: s.binding.concrete.String(),
			Err:  results[1].Interface().(error),
		}
	}
	return results[0].Interface(), nil
}
