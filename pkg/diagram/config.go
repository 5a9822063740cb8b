package diagram

import "strings"

// Config is the effective configuration: a nested map of well-known keys
// (fontFamily, fontSize, flowchart.nodeSpacing, sequence.height, ...).
// Unknown keys are ignored by every layout engine. Configuration merging
// and sanitization happen upstream of the core; Config is always the
// already-merged result.
type Config map[string]any

// DefaultConfig returns the baseline configuration every layout engine
// falls back to for a key Config doesn't set.
func DefaultConfig() Config {
	return Config{
		"fontFamily":  `"trebuchet ms", verdana, arial, sans-serif`,
		"fontSize":    16.0,
		"fontWeight":  "normal",
		"htmlLabels":  true,
		"useMaxWidth": true,

		"flowchart.nodeSpacing":            50.0,
		"flowchart.rankSpacing":            50.0,
		"flowchart.padding":                8.0,
		"flowchart.wrappingWidth":          200.0,
		"flowchart.htmlLabels":             true,
		"flowchart.inheritDir":             false,
		"flowchart.subGraphTitleMargin.top": 0.0,
		"flowchart.subGraphTitleMargin.bottom": 0.0,

		"state.padding": 8.0,

		"sequence.diagramMarginX":   50.0,
		"sequence.diagramMarginY":   10.0,
		"sequence.boxMargin":        10.0,
		"sequence.height":           65.0,
		"sequence.boxTextMargin":    5.0,
		"sequence.messageMargin":    35.0,
		"sequence.bottomMarginAdj":  1.0,
		"sequence.labelBoxHeight":   20.0,
		"sequence.rightAngles":      false,
		"sequence.wrapPadding":      10.0,
		"sequence.width":           150.0,
		"sequence.messageFontSize":  16.0,
		"sequence.mirrorActors":     true,
		"sequence.forceMenus":       false,
		"sequence.activationWidth":  10.0,

		"architecture.iconSize":    80.0,
		"architecture.padding":     5.0,
		"architecture.fontSize":    16.0,
		"architecture.useMaxWidth": true,

		"themeVariables.activationBkgColor":    "#f4f4f4",
		"themeVariables.activationBorderColor": "#666",
		"themeVariables.noteBkgColor":          "#fff5ad",
		"themeVariables.noteBorderColor":       "#aaaa33",

		"pie.textPosition": 0.75,

		"kanban.sectionWidth": 200.0,
		"kanban.nodeSpacing":  20.0,
		"kanban.padding":      8.0,

		"gantt.barHeight": 20.0,
		"gantt.barGap":    4.0,

		"mindmap.padding": 10.0,
	}
}

// Merge returns a new Config with override's keys layered over c's. Values
// are looked up by full dotted key, not by recursing into nested maps, so a
// single override replaces exactly one leaf.
func (c Config) Merge(override Config) Config {
	out := make(Config, len(c)+len(override))
	for k, v := range c {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// Float returns the float64 value at key, or def if absent or not a number.
func (c Config) Float(key string, def float64) float64 {
	v, ok := c[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return def
	}
}

// String returns the string value at key, or def if absent or not a string.
func (c Config) String(key, def string) string {
	if v, ok := c[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// Bool returns the bool value at key, or def if absent or not a bool.
func (c Config) Bool(key string, def bool) bool {
	if v, ok := c[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// SubGraphTitleTotalMargin is the sum of the flowchart subgraph title
// margin's top and bottom entries: the vertical shift applied to nodes and
// edge points after rank layout, and the amount cluster rectangles grow by.
func (c Config) SubGraphTitleTotalMargin() float64 {
	return c.Float("flowchart.subGraphTitleMargin.top", 0) + c.Float("flowchart.subGraphTitleMargin.bottom", 0)
}

// HasPrefix reports whether any key in c starts with prefix+".". Useful for
// feature-detecting a config section (e.g. "sequence.") without enumerating
// every known leaf key.
func (c Config) HasPrefix(prefix string) bool {
	for k := range c {
		if strings.HasPrefix(k, prefix+".") {
			return true
		}
	}
	return false
}
