package svg

// Marker defs are literal constants, keyed by diagram kind, mirroring the
// reference renderer's own fixed marker geometry -- these are not computed
// from layout data, so they are copied verbatim rather than templated.

const flowchartDefs = `<defs>
<marker id="flowchart-pointEnd" class="marker flowchart" viewBox="0 0 10 10" refX="5" refY="5" markerWidth="8" markerHeight="8" orient="auto"><path d="M 0 0 L 10 5 L 0 10 z" class="arrowMarkerPath" style="stroke-width: 1; stroke-dasharray: 1, 0;"/></marker>
<marker id="flowchart-pointStart" class="marker flowchart" viewBox="0 0 10 10" refX="4.5" refY="5" markerWidth="8" markerHeight="8" orient="auto"><path d="M 0 5 L 10 10 L 10 0 z" class="arrowMarkerPath" style="stroke-width: 1; stroke-dasharray: 1, 0;"/></marker>
<marker id="flowchart-circleEnd" class="marker flowchart" viewBox="0 0 10 10" refX="11" refY="5" markerWidth="11" markerHeight="11" orient="auto"><circle cx="5" cy="5" r="5" class="arrowMarkerPath" style="stroke-width: 1; stroke-dasharray: 1, 0;"/></marker>
<marker id="flowchart-circleStart" class="marker flowchart" viewBox="0 0 10 10" refX="-1" refY="5" markerWidth="11" markerHeight="11" orient="auto"><circle cx="5" cy="5" r="5" class="arrowMarkerPath" style="stroke-width: 1; stroke-dasharray: 1, 0;"/></marker>
<marker id="flowchart-crossEnd" class="marker cross flowchart" viewBox="0 0 11 11" refX="12" refY="5.2" markerWidth="11" markerHeight="11" orient="auto"><path d="M 1,1 l 9,9 M 10,1 l -9,9" class="arrowMarkerPath" style="stroke-width: 2; stroke-dasharray: 1, 0;"/></marker>
<marker id="flowchart-crossStart" class="marker cross flowchart" viewBox="0 0 11 11" refX="-1" refY="5.2" markerWidth="11" markerHeight="11" orient="auto"><path d="M 1,1 l 9,9 M 10,1 l -9,9" class="arrowMarkerPath" style="stroke-width: 2; stroke-dasharray: 1, 0;"/></marker>
</defs>
`

const sequenceDefs = `<defs>
<marker id="sequencenumber" markerWidth="15" markerHeight="15" refX="8" refY="8"><circle cx="8" cy="8" r="6" class="sequenceNumber-bg"/></marker>
<marker id="arrowhead" refX="7.9" refY="5" markerUnits="userSpaceOnUse" markerWidth="12.6" markerHeight="10" orient="auto"><path d="M 0 0 L 10 5 L 0 10 z" class="arrowhead"/></marker>
<marker id="crosshead" markerWidth="15" markerHeight="8" orient="auto" refX="16" refY="4"><path fill="none" stroke="#000" d="M 9,2 V 6 L16,4 Z M 0,1 L 6,7 M 6,1 L 0,7" class="crosshead"/></marker>
</defs>
`

const architectureDefs = `<defs>
<marker id="architecture-arrowhead" viewBox="0 0 10 10" refX="5" refY="5" markerWidth="6" markerHeight="6" orient="auto-start-reverse"><path d="M 0 0 L 10 5 L 0 10 z" class="architecture-arrowhead"/></marker>
</defs>
`

// defsFor returns the fixed <defs> block for a diagram kind, or "" if that
// kind's emitter has no markers (pie/kanban/gantt/mindmap draw no arrows).
func defsFor(kind string) string {
	switch kind {
	case "flowchart":
		return flowchartDefs
	case "sequence":
		return sequenceDefs
	case "architecture":
		return architectureDefs
	default:
		return ""
	}
}
