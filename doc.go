// Package knife generates view injectors: companion classes that look up views
// by id, assign them to fields of a target class and register click listeners,
// plus a reset method that clears the fields again.
//
// The repository is split into:
//
//   - inject: the injector model (keyed field and callback bindings,
//     required/optional semantics, parent delegation) and its renderer
//   - internal/spec: loads YAML/JSON binding descriptions and builds models,
//     resolving superclass injectors
//   - internal/output: renders models in parallel and writes Java sources
//     atomically, skipping unchanged files
//   - internal/config, internal/watch: generator settings and watch mode
//   - cmd/knifegen: the command line generator
//
// Generated classes follow the Butter Knife layout, <Target>$$ViewInjector
// with static inject and reset methods, so existing consumers keep working.
//
// Import
//
//	"github.com/sghaida/knife/inject"
package knife
