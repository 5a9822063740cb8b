// Package pkg provides the core libraries for merman, a headless,
// byte-stable renderer for Mermaid-style diagram sources.
//
// # Architecture
//
// Diagram text and a parsed semantic model flow through five stages:
//
//	Semantic model ([diagram])
//	         ↓
//	  Layout engine ([layout/flowchart], [layout/architecture],
//	                 [layout/sequence], [layout/simple])
//	         ↓
//	    SVG Emitter ([svg])
//	         ↓
//	 Parity Overrides ([parity])
//	         ↓
//	      SVG string
//
// The layout engines share one text measurer ([measure]); the compound
// hierarchical engine ([layout/flowchart]) builds its working graphs on a
// compound-multigraph library ([cgraph]).
//
// # Main Packages
//
// [cgraph] - a compound, directed multigraph: nodes form a forest via
// parent pointers (clusters), edges are keyed so parallel edges coexist,
// and insertion order is observable. [cgraph/transform] layers cycle
// breaking, rank assignment, and long-edge subdivision on top of it.
//
// [measure] - deterministic text measurement and greedy word-wrap from
// bundled font metric tables; no environment or font-system lookup.
//
// [diagram] - the semantic model: nodes, edges, subgraphs, actors,
// services, and the effective-configuration contract every layout engine
// reads from.
//
// [layout/flowchart] - the compound hierarchical layout engine used by
// flowchart/state/class/er diagrams: self-loop pre-expansion, recursive
// cluster extraction, rank-based positioning, and point composition back
// into absolute coordinates.
//
// [layout/architecture] - force-directed placement with group containment
// for architecture-beta diagrams.
//
// [layout/sequence] - column-per-actor layout with a vertical line sweep,
// activation stacks, and block frames.
//
// [layout/simple] - placement for pie, kanban, gantt, and mindmap diagrams.
//
// [svg] - converts any layout into a byte-stable SVG document string.
//
// [parity] - a pure diagram_id -> viewport lookup table substituting known
// -exact values the headless pipeline cannot reproduce.
//
// [rendererr] - the two error kinds that propagate from the pipeline:
// InvalidModel and IoOrFormatting.
//
// [telemetry] - optional, observability-only per-phase timing hooks.
//
// [buildinfo] - ldflags-injected version/commit/date strings.
//
// # Testing
//
//	go test ./pkg/...        # all core packages
//	go test ./pkg/cgraph/... # one package
//
// [cgraph]: https://pkg.go.dev/github.com/merman-go/merman/pkg/cgraph
// [cgraph/transform]: https://pkg.go.dev/github.com/merman-go/merman/pkg/cgraph/transform
// [measure]: https://pkg.go.dev/github.com/merman-go/merman/pkg/measure
// [diagram]: https://pkg.go.dev/github.com/merman-go/merman/pkg/diagram
// [layout/flowchart]: https://pkg.go.dev/github.com/merman-go/merman/pkg/layout/flowchart
// [layout/architecture]: https://pkg.go.dev/github.com/merman-go/merman/pkg/layout/architecture
// [layout/sequence]: https://pkg.go.dev/github.com/merman-go/merman/pkg/layout/sequence
// [layout/simple]: https://pkg.go.dev/github.com/merman-go/merman/pkg/layout/simple
// [svg]: https://pkg.go.dev/github.com/merman-go/merman/pkg/svg
// [parity]: https://pkg.go.dev/github.com/merman-go/merman/pkg/parity
// [rendererr]: https://pkg.go.dev/github.com/merman-go/merman/pkg/rendererr
// [telemetry]: https://pkg.go.dev/github.com/merman-go/merman/pkg/telemetry
// [buildinfo]: https://pkg.go.dev/github.com/merman-go/merman/pkg/buildinfo
package pkg
