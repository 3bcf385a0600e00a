package inject

// Binding is the part of a field or callback binding that the renderer needs
// to build the missing-value failure message.
type Binding interface {
	// Required reports whether a missing lookup value must fail at runtime.
	Required() bool

	// Description is the human readable name used in failure messages,
	// e.g. "field 'thing'".
	Description() string
}

// FieldBinding assigns a looked-up value to a member of the target.
type FieldBinding struct {
	name        string
	valueType   string
	required    bool
	description string
}

// NewFieldBinding returns a binding of the target member name with the given
// value type.
func NewFieldBinding(name, valueType string, required bool) FieldBinding {
	return FieldBinding{
		name:        name,
		valueType:   valueType,
		required:    required,
		description: "field '" + name + "'",
	}
}

// Name is the target member that receives the value.
func (b FieldBinding) Name() string { return b.name }

// Type is the declared type of the member. It decides whether a cast is emitted.
func (b FieldBinding) Type() string { return b.valueType }

// Required implements Binding.
func (b FieldBinding) Required() bool { return b.required }

// Description implements Binding.
func (b FieldBinding) Description() string { return b.description }

// CallbackBinding registers a listener that calls a method on the target.
type CallbackBinding struct {
	name          string
	parameterType string
	required      bool
	description   string
}

// NewCallbackBinding returns a binding of the target method name.
//
// An empty parameterType means the method takes no arguments; otherwise the
// looked-up value is passed to it, cast when the type is not the base type.
func NewCallbackBinding(name, parameterType string, required bool) CallbackBinding {
	return CallbackBinding{
		name:          name,
		parameterType: parameterType,
		required:      required,
		description:   "method '" + name + "'",
	}
}

// Name is the target method invoked by the listener.
func (b CallbackBinding) Name() string { return b.name }

// ParameterType is the declared parameter type, or "" for a no-arg method.
func (b CallbackBinding) ParameterType() string { return b.parameterType }

// HasParameter reports whether the method receives the looked-up value.
func (b CallbackBinding) HasParameter() bool { return b.parameterType != "" }

// Required implements Binding.
func (b CallbackBinding) Required() bool { return b.required }

// Description implements Binding.
func (b CallbackBinding) Description() string { return b.description }
