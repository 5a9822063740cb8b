package flowchart

import "math"

// snapToShapeBoundary returns the point where the ray from the node's
// center toward points[0] leaves the node's visible outline, so an edge
// end touches that outline rather than its full bounding box. Diamonds (and hexagons, approximated as diamonds for this purpose)
// need a ray/edge intersection against the rhombus instead of a straight
// rectangular clip, since their bounding box corners are empty.
func snapToShapeBoundary(points []Point, centerX, centerY, width, height float64, isDiamond bool) Point {
	if len(points) == 0 {
		return Point{centerX, centerY}
	}
	target := points[0]
	if isDiamond {
		return diamondIntersection(centerX, centerY, width, height, target)
	}
	return rectIntersection(centerX, centerY, width, height, target)
}

// rectIntersection finds where the ray from (cx,cy) to toward intersects
// the axis-aligned rectangle's boundary.
func rectIntersection(cx, cy, width, height float64, toward Point) Point {
	dx, dy := toward.X-cx, toward.Y-cy
	if dx == 0 && dy == 0 {
		return Point{cx, cy}
	}
	hw, hh := width/2, height/2
	var tx, ty float64 = math.Inf(1), math.Inf(1)
	if dx != 0 {
		tx = hw / math.Abs(dx)
	}
	if dy != 0 {
		ty = hh / math.Abs(dy)
	}
	t := math.Min(tx, ty)
	return Point{cx + dx*t, cy + dy*t}
}

// diamondIntersection finds where the ray from (cx,cy) toward target
// intersects the rhombus |x/hw| + |y/hh| = 1.
func diamondIntersection(cx, cy, width, height float64, toward Point) Point {
	dx, dy := toward.X-cx, toward.Y-cy
	if dx == 0 && dy == 0 {
		return Point{cx, cy}
	}
	hw, hh := width/2, height/2
	denom := math.Abs(dx)/hw + math.Abs(dy)/hh
	if denom == 0 {
		return Point{cx, cy}
	}
	t := 1 / denom
	return Point{cx + dx*t, cy + dy*t}
}
