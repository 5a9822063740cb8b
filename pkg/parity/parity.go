// Package parity holds the viewport override tables for architecture and
// sequence diagrams: a finite, diagram_id-keyed set of exact
// (viewBox, max-width-px) strings that substitute for a computed viewport
// whenever the reference browser's own layout (FCoSE positioning for
// architecture, CSS-measured text extents for sequence) cannot be
// reproduced by this headless pipeline. The table is a pure lookup -- no
// mutation, no side effects, and a miss always leaves the computed
// viewport untouched.
package parity

// Entry is one override: the literal viewBox attribute value and the
// literal max-width pixel value to substitute verbatim.
type Entry struct {
	ViewBox  string
	MaxWidth string
}

// overrides is the enumerated set of known exceptions. Empty by default:
// populate it (at build time, from a generated table or a literal map
// like this one) as specific diagram_id mismatches are discovered against
// the reference renderer.
var overrides = map[string]Entry{}

// Lookup resolves diagramID to its override Entry, reporting whether one
// exists. Matches the pkg/svg.OverrideLookup function shape so it can be
// passed directly to the SVG emitters.
func Lookup(diagramID string) (viewBox, maxWidthPx string, ok bool) {
	e, ok := overrides[diagramID]
	if !ok {
		return "", "", false
	}
	return e.ViewBox, e.MaxWidth, true
}

// Register adds or replaces an override entry. Intended for use by a
// generated init table, not by request-time callers -- the table is
// meant to be read-only, process-wide state once a program has started.
func Register(diagramID string, e Entry) {
	overrides[diagramID] = e
}
