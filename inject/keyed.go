package inject

// KeyedInjection groups every binding that shares one lookup key.
//
// Field bindings keep insertion order; that is the order of the emitted
// assignments. A key carries at most one callback binding.
type KeyedInjection struct {
	key      int
	fields   []FieldBinding
	callback *CallbackBinding
}

// NewKeyedInjection returns an empty injection for key.
func NewKeyedInjection(key int) *KeyedInjection {
	return &KeyedInjection{key: key}
}

// Key returns the lookup key.
func (k *KeyedInjection) Key() int { return k.key }

// AddFieldBinding appends b. Duplicates are kept and assigned twice.
func (k *KeyedInjection) AddFieldBinding(b FieldBinding) {
	k.fields = append(k.fields, b)
}

// AddCallbackBinding stores b, or returns DuplicateCallbackError if the key
// already has a callback. The existing callback is left untouched.
func (k *KeyedInjection) AddCallbackBinding(b CallbackBinding) error {
	if k.callback != nil {
		return DuplicateCallbackError{Key: k.key, Existing: k.callback.Name()}
	}
	k.callback = &b
	return nil
}

// FieldBindings returns a copy of the field bindings in insertion order.
func (k *KeyedInjection) FieldBindings() []FieldBinding {
	out := make([]FieldBinding, len(k.fields))
	copy(out, k.fields)
	return out
}

// CallbackBinding returns the key's callback, if any.
func (k *KeyedInjection) CallbackBinding() (CallbackBinding, bool) {
	if k.callback == nil {
		return CallbackBinding{}, false
	}
	return *k.callback, true
}

// RequiredBindings returns the required field bindings in insertion order,
// followed by the callback binding when it is required.
func (k *KeyedInjection) RequiredBindings() []Binding {
	var required []Binding
	for _, f := range k.fields {
		if f.Required() {
			required = append(required, f)
		}
	}
	if k.callback != nil && k.callback.Required() {
		required = append(required, *k.callback)
	}
	return required
}

func (k *KeyedInjection) clone() *KeyedInjection {
	cp := &KeyedInjection{key: k.key, fields: k.FieldBindings()}
	if k.callback != nil {
		cb := *k.callback
		cp.callback = &cb
	}
	return cp
}
