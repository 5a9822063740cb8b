package svg

import "fmt"

// Bounds is an inclusive axis-aligned rectangle, shared across every
// layout package's own Bounds type via a plain field copy at the emitter
// boundary (pkg/svg never imports a layout package's Bounds directly, so
// each per-kind renderer stays free to use its own coordinate producer).
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Union returns the smallest Bounds covering both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	if b == (Bounds{}) {
		return o
	}
	if o == (Bounds{}) {
		return b
	}
	out := b
	if o.MinX < out.MinX {
		out.MinX = o.MinX
	}
	if o.MinY < out.MinY {
		out.MinY = o.MinY
	}
	if o.MaxX > out.MaxX {
		out.MaxX = o.MaxX
	}
	if o.MaxY > out.MaxY {
		out.MaxY = o.MaxY
	}
	return out
}

// Viewport is a computed (min_x, min_y, width, height) viewBox plus the
// max-width pixel value the root <svg>'s style attribute should carry.
type Viewport struct {
	MinX, MinY, Width, Height float64
	MaxWidth                  float64
}

// ViewBoxString renders the viewBox attribute value.
func (v Viewport) ViewBoxString() string {
	return fmt.Sprintf("%s %s %s %s", FormatNumber(v.MinX), FormatNumber(v.MinY), FormatNumber(v.Width), FormatNumber(v.Height))
}

// OverrideLookup resolves a diagram_id to a literal (viewBox, max-width-px)
// pair, used by the architecture and sequence emitters to substitute
// computed viewport values with a verbatim table entry when one exists.
// pkg/parity implements this.
type OverrideLookup func(diagramID string) (viewBox, maxWidthPx string, ok bool)

// ComputeViewport unions the layout bounds with padding, then quantizes to
// 32-bit float precision to match the reference browser pipeline's own
// float32 DOM measurement path.
func ComputeViewport(bounds Bounds, padding float64) Viewport {
	minX, minY := bounds.MinX-padding, bounds.MinY-padding
	width, height := bounds.Width()+padding*2, bounds.Height()+padding*2
	return Viewport{
		MinX:     float64(float32(minX)),
		MinY:     float64(float32(minY)),
		Width:    float64(float32(width)),
		Height:   float64(float32(height)),
		MaxWidth: float64(float32(width)),
	}
}

// ResolveViewport computes the viewport from bounds/padding, then, if
// lookup is non-nil and reports a hit for diagramID, substitutes the
// table's literal viewBox/max-width string verbatim in place of the
// computed values.
func ResolveViewport(bounds Bounds, padding float64, diagramID string, lookup OverrideLookup) (viewBoxAttr, maxWidthPx string) {
	v := ComputeViewport(bounds, padding)
	viewBoxAttr, maxWidthPx = v.ViewBoxString(), FormatNumber(v.MaxWidth)
	if lookup == nil || diagramID == "" {
		return viewBoxAttr, maxWidthPx
	}
	if vb, mw, ok := lookup(diagramID); ok {
		return vb, mw
	}
	return viewBoxAttr, maxWidthPx
}
