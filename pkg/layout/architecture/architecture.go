// Package architecture lays out architecture-beta diagrams: icon services
// and junctions on an integer grid, connected by side-hinted edges, with
// groups drawn as containing rectangles that inherit the bounding box of
// their members plus a fixed halo padding.
//
// Placement uses a spring-model relaxation (Hooke's-law attraction along
// declared edges, Coulomb's-law repulsion between every pair of nodes,
// snapped to the nearest grid cell once the simulation settles) rather than
// true Graphviz-style iterative force-direction, since the bundled
// constraint here is a fixed icon size on a regular grid, not a continuous
// canvas.
package architecture

import (
	"math"

	"github.com/merman-go/merman/pkg/diagram"
)

// Point is an absolute (x, y) coordinate.
type Point struct{ X, Y float64 }

// LayoutService is a positioned icon or junction.
type LayoutService struct {
	ID              string
	CenterX, CenterY float64
	Size            float64
	Icon            string
	Title           string
	IsJunction      bool
	GroupID         string
}

// LayoutGroup is a positioned containing rectangle.
type LayoutGroup struct {
	ID                     string
	CenterX, CenterY       float64
	Width, Height          float64
	Title                  string
	Icon                   string
}

// LayoutEdge is a positioned connection with its side-hinted endpoints.
type LayoutEdge struct {
	ID       string
	From, To Point
	Label    string
}

// Layout is the full output of the architecture layout engine.
type Layout struct {
	Services []LayoutService
	Groups   []LayoutGroup
	Edges    []LayoutEdge
	Width, Height float64
}

// gridUnit is the spacing between adjacent grid cells: one icon plus its
// own footprint of padding on every side, so two neighboring icons never
// touch even before halo padding is applied to their enclosing group.
func gridUnit(cfg diagram.Config) float64 {
	return cfg.Float("architecture.iconSize", 80) + cfg.Float("architecture.padding", 5)*2
}

// Build lays out an architecture-beta model on an integer grid sized from
// architecture.iconSize, resolved by a small spring simulation: edges pull
// their endpoints together and nearby pairs of nodes push apart. Side hints
// do not influence placement; they only choose which side of each icon an
// edge attaches to.
func Build(model *diagram.ArchitectureModel) *Layout {
	cfg := model.Config
	if cfg == nil {
		cfg = diagram.DefaultConfig()
	}
	unit := gridUnit(cfg)
	iconSize := cfg.Float("architecture.iconSize", 80)

	ids := make([]string, 0, len(model.Services)+len(model.Junctions))
	isJunction := make(map[string]bool)
	for _, s := range model.Services {
		ids = append(ids, s.ID)
	}
	for _, j := range model.Junctions {
		ids = append(ids, j.ID)
		isJunction[j.ID] = true
	}

	pos := seedGrid(ids)
	relax(ids, model.Edges, pos)
	snapped := snapToGrid(pos, unit)

	out := &Layout{}
	for _, s := range model.Services {
		p := snapped[s.ID]
		out.Services = append(out.Services, LayoutService{
			ID: s.ID, CenterX: p.X, CenterY: p.Y, Size: iconSize,
			Icon: effectiveIcon(s.Icon), Title: s.Title, GroupID: s.GroupID,
		})
	}
	for _, j := range model.Junctions {
		p := snapped[j.ID]
		out.Services = append(out.Services, LayoutService{
			ID: j.ID, CenterX: p.X, CenterY: p.Y, Size: iconSize / 4,
			IsJunction: true, GroupID: j.GroupID,
		})
	}

	memberOf := func(id string) string {
		for _, s := range model.Services {
			if s.ID == id {
				return s.GroupID
			}
		}
		for _, j := range model.Junctions {
			if j.ID == id {
				return j.GroupID
			}
		}
		return ""
	}
	halo := cfg.Float("architecture.padding", 5) * 2
	for _, g := range model.Groups {
		var minX, minY, maxX, maxY float64
		first := true
		for _, id := range ids {
			if memberOf(id) != g.ID {
				continue
			}
			p := snapped[id]
			half := iconSize / 2
			x0, y0, x1, y1 := p.X-half, p.Y-half, p.X+half, p.Y+half
			if first {
				minX, minY, maxX, maxY = x0, y0, x1, y1
				first = false
				continue
			}
			minX, minY = math.Min(minX, x0), math.Min(minY, y0)
			maxX, maxY = math.Max(maxX, x1), math.Max(maxY, y1)
		}
		if first {
			continue // empty group
		}
		out.Groups = append(out.Groups, LayoutGroup{
			ID: g.ID, Title: g.Title, Icon: g.Icon,
			CenterX: (minX + maxX) / 2, CenterY: (minY + maxY) / 2,
			Width: (maxX - minX) + halo*2, Height: (maxY - minY) + halo*2,
		})
	}

	for _, e := range model.Edges {
		fromP, fromOK := resolveEndpoint(e.FromID, e.FromIsGroup, snapped, out.Groups)
		toP, toOK := resolveEndpoint(e.ToID, e.ToIsGroup, snapped, out.Groups)
		if !fromOK || !toOK {
			continue
		}
		start := sideOffset(fromP, e.FromSide, iconSize)
		end := sideOffset(toP, e.ToSide, iconSize)
		out.Edges = append(out.Edges, LayoutEdge{ID: e.ID, From: start, To: end, Label: e.Label})
	}

	out.Width, out.Height = boundingExtent(snapped, iconSize, out.Groups)
	return out
}

// effectiveIcon maps an empty icon name to "unknown" and passes every other
// name through unchanged; no icon set is consulted here or in the SVG
// emitter, so an unrecognized name is emitted as given. Layout only needs
// to know that every service occupies the same
// architecture.iconSize footprint regardless of which icon renders inside
// it.
func effectiveIcon(icon string) string {
	if icon == "" {
		return "unknown"
	}
	return icon
}

func seedGrid(ids []string) map[string]Point {
	pos := make(map[string]Point, len(ids))
	cols := int(math.Ceil(math.Sqrt(float64(len(ids)))))
	if cols == 0 {
		cols = 1
	}
	for i, id := range ids {
		pos[id] = Point{float64(i % cols), float64(i / cols)}
	}
	return pos
}

const relaxIterations = 200

// relax runs a fixed number of spring-simulation steps: every edge pulls
// its two endpoints toward unit distance apart (Hooke's law), and every
// pair of nodes pushes apart when closer than 1.5 units (Coulomb's law), so
// that isolated nodes drift away from dense clusters instead of
// overlapping them.
func relax(ids []string, edges []diagram.ArchEdge, pos map[string]Point) {
	type force struct{ x, y float64 }
	for iter := 0; iter < relaxIterations; iter++ {
		forces := make(map[string]force, len(ids))

		for _, e := range edges {
			a, okA := pos[e.FromID]
			b, okB := pos[e.ToID]
			if !okA || !okB {
				continue
			}
			dx, dy := b.X-a.X, b.Y-a.Y
			dist := math.Hypot(dx, dy)
			if dist < 1e-6 {
				dist = 1e-6
			}
			pull := (dist - 1) * 0.1
			fx, fy := dx/dist*pull, dy/dist*pull
			fa, fb := forces[e.FromID], forces[e.ToID]
			forces[e.FromID] = force{fa.x + fx, fa.y + fy}
			forces[e.ToID] = force{fb.x - fx, fb.y - fy}
		}

		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				a, b := pos[ids[i]], pos[ids[j]]
				dx, dy := b.X-a.X, b.Y-a.Y
				dist := math.Hypot(dx, dy)
				if dist < 1e-6 {
					dist = 1e-6
				}
				if dist >= 1.5 {
					continue
				}
				push := 0.05 / (dist * dist)
				fx, fy := dx/dist*push, dy/dist*push
				fa, fb := forces[ids[i]], forces[ids[j]]
				forces[ids[i]] = force{fa.x - fx, fa.y - fy}
				forces[ids[j]] = force{fb.x + fx, fb.y + fy}
			}
		}

		for _, id := range ids {
			f := forces[id]
			p := pos[id]
			pos[id] = Point{p.X + f.x, p.Y + f.y}
		}
	}
}

func snapToGrid(pos map[string]Point, unit float64) map[string]Point {
	out := make(map[string]Point, len(pos))
	for id, p := range pos {
		out[id] = Point{math.Round(p.X) * unit, math.Round(p.Y) * unit}
	}
	return out
}

func sideOffset(center Point, side diagram.Side, size float64) Point {
	half := size / 2
	switch side {
	case diagram.SideLeft:
		return Point{center.X - half, center.Y}
	case diagram.SideRight:
		return Point{center.X + half, center.Y}
	case diagram.SideTop:
		return Point{center.X, center.Y - half}
	case diagram.SideBottom:
		return Point{center.X, center.Y + half}
	default:
		return center
	}
}

func resolveEndpoint(id string, isGroup bool, pos map[string]Point, groups []LayoutGroup) (Point, bool) {
	if isGroup {
		for _, g := range groups {
			if g.ID == id {
				return Point{g.CenterX, g.CenterY}, true
			}
		}
		return Point{}, false
	}
	p, ok := pos[id]
	return p, ok
}

func boundingExtent(pos map[string]Point, iconSize float64, groups []LayoutGroup) (width, height float64) {
	var maxX, maxY float64
	for _, p := range pos {
		if x := p.X + iconSize/2; x > maxX {
			maxX = x
		}
		if y := p.Y + iconSize/2; y > maxY {
			maxY = y
		}
	}
	for _, g := range groups {
		if x := g.CenterX + g.Width/2; x > maxX {
			maxX = x
		}
		if y := g.CenterY + g.Height/2; y > maxY {
			maxY = y
		}
	}
	return maxX, maxY
}
