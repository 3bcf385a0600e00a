package spec

import (
	"fmt"

	"github.com/sghaida/knife/inject"
	"go.uber.org/multierr"
)

// Build turns a validated document into one injector model per target that
// has bindings, in document order.
//
// Every problem found is reported; if there are any, no models are returned.
func Build(doc *Document, dialect inject.Dialect) ([]*inject.Class, error) {
	registry := NewRegistry(doc)

	var (
		classes []*inject.Class
		errs    error
	)

	for _, target := range doc.Targets {
		if !target.HasBindings() {
			continue
		}

		class, err := buildTarget(target, registry, dialect)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		classes = append(classes, class)
	}

	if errs != nil {
		return nil, errs
	}
	return classes, nil
}

func buildTarget(target Target, registry *Registry, dialect inject.Dialect) (*inject.Class, error) {
	fqcn := target.FQCN()
	class := inject.NewClass(
		target.Package,
		dialect.InjectorName(target.BinaryName()),
		fqcn,
		inject.WithDialect(dialect),
	)

	for _, field := range target.Fields {
		class.AddField(field.ID, field.Name, field.Type, !field.Optional)
	}

	var errs error
	for _, callback := range target.Callbacks {
		if !class.AddMethod(callback.ID, callback.Name, callback.ParameterType, !callback.Optional) {
			errs = multierr.Append(errs, Diagnostic{
				Target:  fqcn,
				Message: fmt.Sprintf("multiple callback bindings for id %d (method '%s')", callback.ID, callback.Name),
			})
		}
	}

	parent, err := registry.ParentInjector(target, dialect)
	if err != nil {
		errs = multierr.Append(errs, err)
	}
	class.SetParentInjector(parent)

	if errs != nil {
		return nil, errs
	}
	return class, nil
}
