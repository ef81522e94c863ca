// Package registry interns type definitions produced by separate
// resolution calls so each schema type is declared once.
package registry

import (
	"errors"
	"fmt"

	"github.com/seitarof/gen-xsd/internal/resolver"
)

// ErrConflictingType is returned when two different definitions share a
// name.
var ErrConflictingType = errors.New("conflicting type definition")

// Registry keeps the first definition of every type name in the order it
// was registered, dependencies before dependents. It is not safe for
// concurrent use.
type Registry struct {
	order []string
	types map[string]resolver.TypeDefinition
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{types: map[string]resolver.TypeDefinition{}}
}

// Add registers each tree and its nested types. Add is all-or-nothing: on
// conflict nothing from this call is kept.
func (r *Registry) Add(trees ...resolver.TypeDefinition) error {
	staged := map[string]resolver.TypeDefinition{}
	var order []string

	var visit func(td resolver.TypeDefinition) error
	visit = func(td resolver.TypeDefinition) error {
		for _, dep := range td.Complex {
			if err := visit(dep); err != nil {
				return err
			}
		}
		existing, ok := r.types[td.Name]
		if !ok {
			existing, ok = staged[td.Name]
		}
		if ok {
			if !existing.SameShape(td) {
				return fmt.Errorf("%w: %q", ErrConflictingType, td.Name)
			}
			return nil
		}
		staged[td.Name] = td
		order = append(order, td.Name)
		return nil
	}

	for _, td := range trees {
		if err := visit(td); err != nil {
			return err
		}
	}

	for _, name := range order {
		r.types[name] = staged[name]
	}
	r.order = append(r.order, order...)
	return nil
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (resolver.TypeDefinition, bool) {
	td, ok := r.types[name]
	return td, ok
}

// Types returns registered definitions in registration order.
func (r *Registry) Types() []resolver.TypeDefinition {
	out := make([]resolver.TypeDefinition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.types[name])
	}
	return out
}

// Len reports the number of distinct types.
func (r *Registry) Len() int {
	return len(r.order)
}
