package inject_test

import (
	"testing"

	"github.com/sghaida/knife/inject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClass_Accessors(t *testing.T) {
	t.Parallel()

	c := inject.NewClass("com.example", "Main$$ViewInjector", "com.example.Main")

	assert.Equal(t, "com.example", c.PackageName())
	assert.Equal(t, "Main$$ViewInjector", c.ClassName())
	assert.Equal(t, "com.example.Main", c.TargetName())
	assert.Equal(t, "com.example.Main$$ViewInjector", c.FQCN())
	assert.Empty(t, c.Keys())

	_, ok := c.ParentInjector()
	assert.False(t, ok)
}

func TestAddMethod_DuplicateKeyReturnsFalseAndKeepsFirst(t *testing.T) {
	t.Parallel()

	c := inject.NewClass("test", "Test$$ViewInjector", "test.Test")

	assert.True(t, c.AddMethod(1, "first", "", true))
	assert.False(t, c.AddMethod(1, "second", "android.widget.Button", false))
	assert.True(t, c.AddMethod(2, "other", "", false))

	k, ok := c.Injection(1)
	require.True(t, ok)
	cb, ok := k.CallbackBinding()
	require.True(t, ok)
	assert.Equal(t, "first", cb.Name())
	assert.True(t, cb.Required())

	assert.Equal(t, []int{1, 2}, c.Keys())
}

func TestAddField_LazilyCreatesInjection(t *testing.T) {
	t.Parallel()

	c := inject.NewClass("test", "Test$$ViewInjector", "test.Test")

	_, ok := c.Injection(4)
	assert.False(t, ok)

	c.AddField(4, "a", "android.view.View", true)
	c.AddField(4, "b", "android.view.View", false)

	k, ok := c.Injection(4)
	require.True(t, ok)
	assert.Equal(t, 4, k.Key())
	assert.Len(t, k.FieldBindings(), 2)
	assert.Len(t, k.RequiredBindings(), 1)

	// Injection returns a copy.
	k.AddFieldBinding(inject.NewFieldBinding("c", "android.view.View", true))
	again, _ := c.Injection(4)
	assert.Len(t, again.FieldBindings(), 2)
}

func TestSetParentInjector_EmptyClears(t *testing.T) {
	t.Parallel()

	c := inject.NewClass("test", "Test$$ViewInjector", "test.Test")
	c.SetParentInjector("test.Base$$ViewInjector")
	c.SetParentInjector("")

	_, ok := c.ParentInjector()
	assert.False(t, ok)
}

func TestNaming(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Test$$ViewInjector", inject.InjectorName("Test"))
	assert.Equal(t, "Outer$Inner$$ViewInjector", inject.InjectorName("Outer$Inner"))
	assert.Equal(t, "a.b.C", inject.QualifiedName("a.b", "C"))
	assert.Equal(t, "C", inject.QualifiedName("", "C"))
}

func TestDialect_MergeAndCustomRendering(t *testing.T) {
	t.Parallel()

	d := inject.DefaultDialect().Merge(inject.Dialect{
		Header:         "Generated by knife.",
		LookupKind:     "widget",
		OptionalHint:   "mark it optional",
		InjectorSuffix: "$$Binder",
		SetupMethod:    "bind",
		TeardownMethod: "unbind",
		BaseTypeName:   "  ",
	})

	assert.Equal(t, "View", d.BaseTypeName, "blank override is ignored")
	assert.Equal(t, "Main$$Binder", d.InjectorName("Main"))

	c := inject.NewClass("app", d.InjectorName("Main"), "app.Main", inject.WithDialect(d))
	c.AddField(1, "title", "android.view.View", true)
	c.SetParentInjector("app.Base$$Binder")

	out := c.Render()
	assert.Contains(t, out, "// Generated by knife.\n")
	assert.Contains(t, out, "public class Main$$Binder {\n")
	assert.Contains(t, out, "  public static void bind(Finder finder, final app.Main target, Object source) {\n")
	assert.Contains(t, out, "    app.Base$$Binder.bind(finder, target, source);\n")
	assert.Contains(t, out, "  public static void unbind(app.Main target) {\n")
	assert.Contains(t, out, "    app.Base$$Binder.unbind(target);\n")
	assert.Contains(t, out, "Required widget with id '1' for field 'title' was not found. If this widget is optional mark it optional.")
}

func TestNewClass_NilOptionIgnored(t *testing.T) {
	t.Parallel()

	c := inject.NewClass("test", "T", "test.T", nil)
	assert.Contains(t, c.Render(), "// Generated code from Butter Knife. Do not modify!")
}
