// test_helpers_test.go
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Shared fixtures
// -----------------------------------------------------------------------------

// inheritanceSpecYAML describes a base activity and a subclass, both with
// bindings, plus a subclass without bindings that must not get an injector.
const inheritanceSpecYAML = `targets:
  - package: com.example
    class: BaseActivity
    fields:
      - {id: 1, name: toolbar, type: android.view.View}
  - package: com.example
    class: MainActivity
    extends: com.example.BaseActivity
    fields:
      - {id: 2, name: title, type: android.widget.TextView}
    callbacks:
      - {id: 2, name: onTitle, optional: true}
  - package: com.example
    class: PlainActivity
    extends: com.example.BaseActivity
`

// duplicateCallbackSpecJSON binds two callbacks to id 7.
const duplicateCallbackSpecJSON = `{
  "targets": [
    {
      "package": "com.example",
      "class": "Broken",
      "callbacks": [
        { "id": 7, "name": "first" },
        { "id": 7, "name": "second" }
      ]
    }
  ]
}`

//
// -----------------------------------------------------------------------------
// Small helpers
// -----------------------------------------------------------------------------

// writeTempFile writes a file under dir/name and returns its full path.
func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// readFileString reads a file and returns its contents as string (fatal on error).
func readFileString(t *testing.T, p string) string {
	t.Helper()
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(b)
}
