package inject

// Option configures a Class.
type Option func(*Class)

// WithDialect renders the class with d instead of DefaultDialect.
func WithDialect(d Dialect) Option {
	return func(c *Class) { c.dialect = d }
}

// Class is the mutable model of one generated injector.
//
// It is filled by a single caller and then rendered; it is not safe for
// concurrent mutation. Take a Snapshot to hand the model to another goroutine.
type Class struct {
	packageName string
	className   string
	targetName  string
	parent      string
	dialect     Dialect

	// order holds keys in first-bound order; injections indexes them.
	order      []int
	injections map[int]*KeyedInjection
}

// NewClass returns an empty injector model named className in packageName
// that injects into targetName (usually the target's qualified name).
func NewClass(packageName, className, targetName string, opts ...Option) *Class {
	c := &Class{
		packageName: packageName,
		className:   className,
		targetName:  targetName,
		dialect:     DefaultDialect(),
		injections:  make(map[int]*KeyedInjection),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// PackageName returns the injector's package.
func (c *Class) PackageName() string { return c.packageName }

// ClassName returns the injector's simple name.
func (c *Class) ClassName() string { return c.className }

// TargetName returns the name of the class the injector writes into.
func (c *Class) TargetName() string { return c.targetName }

// FQCN returns the injector's qualified name.
func (c *Class) FQCN() string { return QualifiedName(c.packageName, c.className) }

// AddField binds the value looked up for key to the target member name.
func (c *Class) AddField(key int, name, valueType string, required bool) {
	c.injection(key).AddFieldBinding(NewFieldBinding(name, valueType, required))
}

// AddMethod binds a listener calling the target method name to key.
//
// It returns false, keeping the first binding, when key already has a callback.
// parameterType is "" for a method without arguments.
func (c *Class) AddMethod(key int, name, parameterType string, required bool) bool {
	return c.injection(key).AddCallbackBinding(NewCallbackBinding(name, parameterType, required)) == nil
}

// SetParentInjector makes the rendered methods delegate to the injector
// named parent before doing their own work. An empty name clears it.
func (c *Class) SetParentInjector(parent string) {
	c.parent = parent
}

// ParentInjector returns the parent injector name, if any.
func (c *Class) ParentInjector() (string, bool) {
	return c.parent, c.parent != ""
}

// Keys returns the bound keys in first-bound order.
func (c *Class) Keys() []int {
	out := make([]int, len(c.order))
	copy(out, c.order)
	return out
}

// Injection returns a copy of the bindings for key.
func (c *Class) Injection(key int) (*KeyedInjection, bool) {
	k, ok := c.injections[key]
	if !ok {
		return nil, false
	}
	return k.clone(), true
}

// Snapshot freezes the current model. Later changes to c do not affect it.
func (c *Class) Snapshot() *Snapshot {
	s := &Snapshot{
		packageName: c.packageName,
		className:   c.className,
		targetName:  c.targetName,
		parent:      c.parent,
		dialect:     c.dialect,
		injections:  make([]*KeyedInjection, 0, len(c.order)),
	}
	for _, key := range c.order {
		s.injections = append(s.injections, c.injections[key].clone())
	}
	return s
}

// Render returns the injector source for the current model.
func (c *Class) Render() string {
	return c.Snapshot().Render()
}

func (c *Class) injection(key int) *KeyedInjection {
	k, ok := c.injections[key]
	if !ok {
		k = NewKeyedInjection(key)
		c.injections[key] = k
		c.order = append(c.order, key)
	}
	return k
}

// Snapshot is an immutable copy of a Class, safe to render from any goroutine.
type Snapshot struct {
	packageName string
	className   string
	targetName  string
	parent      string
	dialect     Dialect
	injections  []*KeyedInjection
}

// PackageName returns the injector's package.
func (s *Snapshot) PackageName() string { return s.packageName }

// ClassName returns the injector's simple name.
func (s *Snapshot) ClassName() string { return s.className }

// FQCN returns the injector's qualified name.
func (s *Snapshot) FQCN() string { return QualifiedName(s.packageName, s.className) }
