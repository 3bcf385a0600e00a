package inject

import (
	"strconv"
	"strings"
)

// Dialect holds every language and framework literal the renderer emits.
//
// DefaultDialect reproduces Butter Knife's view injectors. Callers that target
// a different finder or listener API override individual fields.
type Dialect struct {
	// Header is the text of the leading "do not edit" comment, without "// ".
	Header string

	// BaseType is the fully qualified type returned by a lookup. Bindings of
	// exactly this type are assigned without a cast.
	BaseType string
	// BaseTypeName is how BaseType is spelled once imported.
	BaseTypeName string

	// FinderImport is the fully qualified finder type; FinderType is its
	// imported name.
	FinderImport string
	FinderType   string

	// LookupMethod is called on the finder as LookupMethod(source, key).
	LookupMethod string
	// LookupKind names the looked-up thing in failure messages ("view").
	LookupKind string
	// OptionalHint completes "If this <kind> is optional ...".
	OptionalHint string
	// FailureType is the exception raised for missing required values.
	FailureType string

	ListenerSetter string
	ListenerType   string
	HandlerMethod  string

	// InjectorSuffix is appended to a target class name to name its injector.
	InjectorSuffix string

	SetupMethod    string
	TeardownMethod string

	// LocalVariable holds the result of the current lookup.
	LocalVariable string
}

// DefaultDialect returns the Butter Knife dialect.
func DefaultDialect() Dialect {
	return Dialect{
		Header:         "Generated code from Butter Knife. Do not modify!",
		BaseType:       "android.view.View",
		BaseTypeName:   "View",
		FinderImport:   "butterknife.ButterKnife.Finder",
		FinderType:     "Finder",
		LookupMethod:   "findById",
		LookupKind:     "view",
		OptionalHint:   "add '@Optional' annotation",
		FailureType:    "IllegalStateException",
		ListenerSetter: "setOnClickListener",
		ListenerType:   "View.OnClickListener",
		HandlerMethod:  "onClick",
		InjectorSuffix: "$$ViewInjector",
		SetupMethod:    "inject",
		TeardownMethod: "reset",
		LocalVariable:  "view",
	}
}

// Merge returns d with every non-empty field of o applied on top.
func (d Dialect) Merge(o Dialect) Dialect {
	pick := func(dst *string, src string) {
		if strings.TrimSpace(src) != "" {
			*dst = src
		}
	}
	pick(&d.Header, o.Header)
	pick(&d.BaseType, o.BaseType)
	pick(&d.BaseTypeName, o.BaseTypeName)
	pick(&d.FinderImport, o.FinderImport)
	pick(&d.FinderType, o.FinderType)
	pick(&d.LookupMethod, o.LookupMethod)
	pick(&d.LookupKind, o.LookupKind)
	pick(&d.OptionalHint, o.OptionalHint)
	pick(&d.FailureType, o.FailureType)
	pick(&d.ListenerSetter, o.ListenerSetter)
	pick(&d.ListenerType, o.ListenerType)
	pick(&d.HandlerMethod, o.HandlerMethod)
	pick(&d.InjectorSuffix, o.InjectorSuffix)
	pick(&d.SetupMethod, o.SetupMethod)
	pick(&d.TeardownMethod, o.TeardownMethod)
	pick(&d.LocalVariable, o.LocalVariable)
	return d
}

// InjectorName returns the injector class name for a target class name.
func (d Dialect) InjectorName(className string) string {
	return className + d.InjectorSuffix
}

// InjectorName returns the Butter Knife injector name for className,
// e.g. "Test" -> "Test$$ViewInjector".
func InjectorName(className string) string {
	return DefaultDialect().InjectorName(className)
}

// QualifiedName joins a package and a class name. An empty package yields the
// bare class name.
func QualifiedName(packageName, className string) string {
	if packageName == "" {
		return className
	}
	return packageName + "." + className
}

// castFor returns the cast prefix needed to assign a lookup result to typ.
func (d Dialect) castFor(typ string) string {
	if typ == d.BaseType {
		return ""
	}
	return "(" + typ + ") "
}

func (d Dialect) missingMessage(key int, joined string) string {
	return "Required " + d.LookupKind + " with id '" + strconv.Itoa(key) + "' for " + joined +
		" was not found. If this " + d.LookupKind + " is optional " + d.OptionalHint + "."
}
