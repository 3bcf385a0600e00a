package spec

import (
	"errors"
	"fmt"

	"github.com/sghaida/knife/inject"
)

// ErrInheritanceCycle is returned when following Extends revisits a target.
var ErrInheritanceCycle = errors.New("spec: inheritance cycle")

// Registry indexes targets by qualified name for superclass lookups.
type Registry struct {
	items map[string]Target
}

// NewRegistry returns a registry of every target in doc.
func NewRegistry(doc *Document) *Registry {
	r := &Registry{items: make(map[string]Target, len(doc.Targets))}
	for _, target := range doc.Targets {
		r.Provide(target)
	}
	return r
}

// Provide stores a target under its qualified name and returns the registry
// for chaining. A later target with the same name replaces the earlier one.
func (r *Registry) Provide(target Target) *Registry {
	r.items[target.FQCN()] = target
	return r
}

// Get returns the target with the given qualified name.
func (r *Registry) Get(fqcn string) (Target, bool) {
	t, ok := r.items[fqcn]
	return t, ok
}

// ParentInjector returns the qualified injector name of the nearest ancestor
// of target that has bindings, or "" when there is none. Superclasses that
// are not in the registry end the search.
func (r *Registry) ParentInjector(target Target, dialect inject.Dialect) (string, error) {
	seen := map[string]struct{}{target.FQCN(): {}}

	for name := target.Extends; name != ""; {
		if _, ok := seen[name]; ok {
			return "", fmt.Errorf("%w: %s extends %s", ErrInheritanceCycle, target.FQCN(), name)
		}
		seen[name] = struct{}{}

		ancestor, ok := r.Get(name)
		if !ok {
			return "", nil
		}
		if ancestor.HasBindings() {
			return inject.QualifiedName(ancestor.Package, dialect.InjectorName(ancestor.BinaryName())), nil
		}
		name = ancestor.Extends
	}
	return "", nil
}
