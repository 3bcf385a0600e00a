// Package spec loads binding descriptions and turns them into injector models.
//
// A description lists target classes, the fields and callbacks each one binds,
// and the superclass of each target. It stands in for annotation scanning:
// targets, ids and types are taken as declared.
//
//	targets:
//	  - package: test
//	    class: TestOne
//	    extends: test.Test
//	    fields:
//	      - {id: 1, name: thing, type: android.view.View}
//	    callbacks:
//	      - {id: 2, name: onSubmit, parameterType: android.widget.Button, optional: true}
//
// YAML and JSON are accepted; the format is chosen by file extension.
package spec

import (
	"strings"
)

// Document is a parsed binding description.
type Document struct {
	Targets []Target `yaml:"targets" json:"targets" validate:"required,min=1,dive"`
}

// Target describes one class that receives bindings.
type Target struct {
	Package string `yaml:"package" json:"package"`

	// Class is the class name within Package. Nested classes use dots,
	// e.g. "Outer.Inner".
	Class string `yaml:"class" json:"class" validate:"required"`

	// Extends is the qualified name of the superclass, if it may carry bindings.
	Extends string `yaml:"extends" json:"extends"`

	Fields    []Field    `yaml:"fields" json:"fields" validate:"dive"`
	Callbacks []Callback `yaml:"callbacks" json:"callbacks" validate:"dive"`
}

// Field binds the value found for ID to a member of the target.
type Field struct {
	ID       int    `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name" validate:"required"`
	Type     string `yaml:"type" json:"type" validate:"required"`
	Optional bool   `yaml:"optional" json:"optional"`
}

// Callback registers a click listener on the value found for ID.
type Callback struct {
	ID            int    `yaml:"id" json:"id"`
	Name          string `yaml:"name" json:"name" validate:"required"`
	ParameterType string `yaml:"parameterType" json:"parameterType"`
	Optional      bool   `yaml:"optional" json:"optional"`
}

// FQCN returns the target's qualified source name, e.g. "test.Outer.Inner".
func (t Target) FQCN() string {
	if t.Package == "" {
		return t.Class
	}
	return t.Package + "." + t.Class
}

// BinaryName returns the class name as the JVM spells it, e.g. "Outer$Inner".
func (t Target) BinaryName() string {
	return strings.ReplaceAll(t.Class, ".", "$")
}

// HasBindings reports whether an injector is generated for the target.
func (t Target) HasBindings() bool {
	return len(t.Fields) > 0 || len(t.Callbacks) > 0
}
