// Package inject models and renders view injectors.
//
// An injector is the companion class generated for one target class. It owns
// an ordered set of lookup keys, and for each key the fields that receive the
// looked-up value and at most one callback that is registered on it. Rendering
// turns that model into Java source with two static methods:
//
//   - inject(finder, target, source): one lookup per key, a failure for
//     missing required values, field assignments and listener registration
//   - reset(target): clears every bound field
//
// The package is a pure transformer. It does not validate identifiers, types
// or visibility; that is the caller's job. The one structural rule it enforces
// itself is "one callback per key", reported as a false return from
// (*Class).AddMethod rather than as an error.
//
// Typical use:
//
//	c := inject.NewClass("test", inject.InjectorName("Test"), "test.Test")
//	c.AddField(1, "thing", "android.view.View", true)
//	if !c.AddMethod(1, "onThing", "", false) {
//		// duplicate callback for id 1
//	}
//	src := c.Render()
//
// Parent injectors are referenced by name only (SetParentInjector), so classes
// along an inheritance chain can be built and rendered independently.
package inject
