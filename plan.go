package simpledi

import (
	"reflect"
)

// step pairs a binding with the constructor selected for its concrete type.
type step struct {
	binding *binding
	ctor    *constructor
}

// plan lists the steps needed to build root. Every step comes after the
// steps of its constructor parameters, so the root is always last.
type plan struct {
	root  reflect.Type
	steps []step
}

type frame struct {
	step step
	next int
}

// collect builds the plan for root with an explicit depth-first stack.
// A type is appended once all of its parameters are planned.
func (c *Container) collect(root reflect.Type) (*plan, error) {
	p := &plan{root: root}
	planned := make(map[reflect.Type]bool)
	onStack := make(map[reflect.Type]bool)
	stack := make([]*frame, 0, 8)

	push := func(abstract reflect.Type, requiredBy *frame) error {
		b := c.lookup(abstract)
		if b == nil {
			err := &BindingNotFoundError{Type: abstract.String()}
			if requiredBy != nil {
				err.RequiredBy = requiredBy.step.binding.abstract.String()
			}
			return err
		}
		ctor, err := c.selectConstructor(b.concrete)
		if err != nil {
			return err
		}
		stack = append(stack, &frame{step: step{binding: b, ctor: ctor}})
		onStack[abstract] = true
		return nil
	}

	if err := push(root, nil); err != nil {
		return nil, err
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.next < len(top.step.ctor.params) {
			dep := top.step.ctor.params[top.next]
			top.next++

			if planned[dep] {
				continue
			}
			if onStack[dep] {
				return nil, &CircularDependencyError{Type: dep.String(), Chain: cycleChain(stack, dep)}
			}
			if err := push(dep, top); err != nil {
				return nil, err
			}
			continue
		}

		stack = stack[:len(stack)-1]
		abstract := top.step.binding.abstract
		delete(onStack, abstract)
		planned[abstract] = true
		p.steps = append(p.steps, top.step)
	}

	return p, nil
}

// cycleChain names the stacked types from the first occurrence of dep back to dep.
func cycleChain(stack []*frame, dep reflect.Type) []string {
	start := 0
	for i, f := range stack {
		if f.step.binding.abstract == dep {
			start = i
			break
		}
	}
	chain := make([]string, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		chain = append(chain, f.step.binding.abstract.String())
	}
	return append(chain, dep.String())
}

// types returns the abstract types of the plan in build order.
func (p *plan) types() []reflect.Type {
	out := make([]reflect.Type, len(p.steps))
	for i, s := range p.steps {
		out[i] = s.binding.abstract
	}
	return out
}
