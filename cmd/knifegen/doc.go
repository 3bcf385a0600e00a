// Command knifegen generates Butter Knife style view injectors from a binding
// description.
//
// For every target class that binds at least one view, knifegen writes a
// companion class <Target>$$ViewInjector with two static methods:
//
//   - inject(Finder finder, final Target target, Object source) looks up each
//     id once, fails with IllegalStateException when a required view is
//     missing, assigns fields and registers click listeners
//   - reset(Target target) nulls every injected field
//
// When a superclass in the same description also has bindings, both methods
// first delegate to the superclass injector.
//
// Description format (*.yaml, *.yml or *.json)
//
//	targets:
//	  - package: com.example.app
//	    class: LoginActivity
//	    extends: com.example.app.BaseActivity
//	    fields:
//	      - {id: 16, name: username, type: android.widget.EditText}
//	      - {id: 18, name: submit, type: android.view.View, optional: true}
//	    callbacks:
//	      - {id: 18, name: onSubmit, parameterType: android.widget.Button, optional: true}
//
// Fields and callbacks are required unless marked optional. An id may carry
// any number of fields but only one callback; a second callback for the same
// id is reported and nothing is written.
//
// Usage
//
//	knifegen -spec bindings.yaml -out build/generated [-config knife.yaml] [-workers N] [-watch] [-verbose]
//
// Output goes to <out>/<package path>/<Injector>.java. Files whose content did
// not change are not rewritten. With -watch, knifegen keeps running and
// regenerates whenever the description file changes.
//
// Configuration
//
// A YAML config file may set outDir, workers, logLevel, watchDebounce and a
// dialect block overriding generated literals (header, injectorSuffix,
// lookupKind, optionalHint, ...). Environment variables KNIFE_OUT_DIR,
// KNIFE_WORKERS, KNIFE_LOG_LEVEL and KNIFE_WATCH_DEBOUNCE override the file;
// flags override both.
//
// Exit codes: 0 success, 1 description or generation error, 2 usage error.
package main
