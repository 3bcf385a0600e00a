package inject

import (
	"fmt"
	"strings"
	"text/template"
)

// unitTemplate lays out the compilation unit; method bodies come from the
// emitters below.
var unitTemplate = template.Must(
	template.New("injector").Parse(`// {{.Header}}
{{- if .Package}}
package {{.Package}};
{{- end}}

import {{.BaseType}};
import {{.FinderImport}};

public class {{.ClassName}} {
{{.Setup}}
{{.Teardown}}}
`),
)

type unitData struct {
	Header       string
	Package      string
	BaseType     string
	FinderImport string
	ClassName    string
	Setup        string
	Teardown     string
}

// javaString escapes text for use inside a Java string literal.
var javaString = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

// Render returns the injector source. It is a pure function of the snapshot.
func (s *Snapshot) Render() string {
	d := s.dialect

	var out strings.Builder
	must(unitTemplate.Execute(&out, unitData{
		Header:       d.Header,
		Package:      s.packageName,
		BaseType:     d.BaseType,
		FinderImport: d.FinderImport,
		ClassName:    s.className,
		Setup:        s.renderSetup(),
		Teardown:     s.renderTeardown(),
	}))
	return out.String()
}

func (s *Snapshot) renderSetup() string {
	d := s.dialect
	w := &codeWriter{depth: 1}

	w.line("public static void %s(%s finder, final %s target, Object source) {", d.SetupMethod, d.FinderType, s.targetName)
	w.indent()

	// Ancestor bindings take effect first.
	if s.parent != "" {
		w.line("%s.%s(finder, target, source);", s.parent, d.SetupMethod)
		w.blank()
	}

	w.line("%s %s;", d.BaseTypeName, d.LocalVariable)
	for _, injection := range s.injections {
		s.emitInjection(w, injection)
	}

	w.dedent()
	w.line("}")
	return w.String()
}

func (s *Snapshot) emitInjection(w *codeWriter, injection *KeyedInjection) {
	d := s.dialect
	v := d.LocalVariable

	w.line("%s = finder.%s(source, %d);", v, d.LookupMethod, injection.Key())

	required := injection.RequiredBindings()
	if len(required) > 0 {
		w.line("if (%s == null) {", v)
		w.indent()
		w.line(`throw new %s("%s");`, d.FailureType, javaString.Replace(d.missingMessage(injection.Key(), HumanDescriptionJoin(required))))
		w.dedent()
		w.line("}")
	}

	for _, field := range injection.fields {
		w.line("target.%s = %s%s;", field.Name(), d.castFor(field.Type()), v)
	}

	callback, ok := injection.CallbackBinding()
	if !ok {
		return
	}

	// Required bindings already failed on null above.
	guarded := len(required) == 0
	if guarded {
		w.line("if (%s != null) {", v)
		w.indent()
	}

	arg := ""
	if callback.HasParameter() {
		arg = d.castFor(callback.ParameterType()) + v
	}
	w.line("%s.%s(new %s() {", v, d.ListenerSetter, d.ListenerType)
	w.indent()
	w.line("@Override public void %s(%s %s) {", d.HandlerMethod, d.BaseTypeName, v)
	w.indent()
	w.line("target.%s(%s);", callback.Name(), arg)
	w.dedent()
	w.line("}")
	w.dedent()
	w.line("});")

	if guarded {
		w.dedent()
		w.line("}")
	}
}

func (s *Snapshot) renderTeardown() string {
	d := s.dialect
	w := &codeWriter{depth: 1}

	w.line("public static void %s(%s target) {", d.TeardownMethod, s.targetName)
	w.indent()

	if s.parent != "" {
		w.line("%s.%s(target);", s.parent, d.TeardownMethod)
		w.blank()
	}

	// Callbacks are left registered.
	for _, injection := range s.injections {
		for _, field := range injection.fields {
			w.line("target.%s = null;", field.Name())
		}
	}

	w.dedent()
	w.line("}")
	return w.String()
}

// codeWriter writes lines indented two spaces per level.
type codeWriter struct {
	sb    strings.Builder
	depth int
}

func (w *codeWriter) line(format string, args ...any) {
	w.sb.WriteString(strings.Repeat("  ", w.depth))
	fmt.Fprintf(&w.sb, format, args...)
	w.sb.WriteByte('\n')
}

func (w *codeWriter) blank() { w.sb.WriteByte('\n') }

func (w *codeWriter) indent() { w.depth++ }

func (w *codeWriter) dedent() {
	if w.depth > 0 {
		w.depth--
	}
}

func (w *codeWriter) String() string { return w.sb.String() }

// must panics if err is non-nil. Template execution into a strings.Builder
// only fails on a broken template.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
