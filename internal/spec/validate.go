package spec

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

var (
	validateOnce    sync.Once
	structValidator *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		structValidator = validator.New()
	})
	return structValidator
}

// Validate checks required keys and the rules the builder relies on:
// unique target names and unique field names per target.
func (d *Document) Validate() error {
	if err := getValidator().Struct(d); err != nil {
		return fmt.Errorf("description is incomplete: %w", err)
	}

	var errs error
	seenTargets := make(map[string]struct{}, len(d.Targets))

	for _, target := range d.Targets {
		fqcn := target.FQCN()
		if strings.ContainsAny(target.Class, "$ ") {
			errs = multierr.Append(errs, Diagnostic{Target: fqcn, Message: "class must be a dotted source name"})
		}
		if _, ok := seenTargets[fqcn]; ok {
			errs = multierr.Append(errs, Diagnostic{Target: fqcn, Message: "target declared more than once"})
			continue
		}
		seenTargets[fqcn] = struct{}{}

		seenFields := make(map[string]struct{}, len(target.Fields))
		for _, field := range target.Fields {
			if _, ok := seenFields[field.Name]; ok {
				errs = multierr.Append(errs, Diagnostic{
					Target:  fqcn,
					Message: fmt.Sprintf("field %q bound more than once", field.Name),
				})
				continue
			}
			seenFields[field.Name] = struct{}{}
		}
	}
	return errs
}

// Diagnostic is a problem with one target in a description.
type Diagnostic struct {
	Target  string
	Message string
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	return d.Target + ": " + d.Message
}
