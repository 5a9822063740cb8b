// Package svg turns a computed Layout plus its originating semantic model
// into a byte-stable SVG string: fixed element ordering per diagram kind,
// shortest-round-trip numeric formatting, XML escaping applied once at
// emission time, and shared marker/defs blocks.
package svg

// Options controls what an emitter includes and how its viewport is
// computed, mirroring the svg_options contract every render_<kind>_svg
// entry point accepts.
type Options struct {
	DiagramID string
	ViewboxPadding float64

	IncludeClusters           bool
	IncludeNodes              bool
	IncludeEdges              bool
	IncludeEdgeIDLabels       bool
	IncludeClusterDebugMarkers bool
}

// DefaultOptions returns the baseline Options every emitter falls back to:
// everything included, zero extra viewport padding, no debug markers.
func DefaultOptions() Options {
	return Options{
		IncludeClusters: true,
		IncludeNodes:    true,
		IncludeEdges:    true,
	}
}
