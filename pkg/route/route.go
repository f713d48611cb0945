// Package route converts a laid-out model.Layout's connections into
// drawable polylines. It is Phase 8, an external collaborator the core
// pipeline hands a read-only Layout to (see SPEC_FULL.md §6): routing
// never touches x/y/width/height, only reads them.
package route

import "github.com/abstractlayout/laf/pkg/model"

// Point is a single vertex of a routed polyline, in the same pixel space
// as model.Element's X/Y.
type Point struct{ X, Y float64 }

// Path is one connection's drawable route: an ordered polyline from the
// source box's edge to the destination box's edge, plus the connection it
// was routed from (for label/arrowhead placement by the renderer).
type Path struct {
	From, To string
	Points   []Point
}

// Route produces one Path per connection whose endpoints both resolve to
// elements in l. Connections with an unknown endpoint are silently
// skipped — the pipeline's own validation (pkg/parser, pkg/laf/structure)
// is responsible for catching those earlier; by the time routing runs the
// Layout is assumed well-formed.
//
// Self-loops get a small loop route clear of the element's own box rather
// than a zero-length segment.
func Route(l *model.Layout) []Path {
	paths := make([]Path, 0, len(l.Connections))
	for _, c := range l.Connections {
		src, okS := l.Elements[c.From]
		dst, okD := l.Elements[c.To]
		if !okS || !okD {
			continue
		}
		if c.IsSelfLoop() {
			paths = append(paths, Path{From: c.From, To: c.To, Points: selfLoop(src)})
			continue
		}
		paths = append(paths, Path{From: c.From, To: c.To, Points: orthogonalElbow(src, dst)})
	}
	return paths
}

// orthogonalElbow builds a simple right-angle route between two boxes:
// straight out from the source's nearer edge, one bend, straight into the
// destination's nearer edge. This mirrors the "simple edges" convention
// used when a diagram isn't asking for edge merging: one path per
// connection, centre-to-centre, rather than an edge-bundling pass.
func orthogonalElbow(src, dst *model.Element) []Point {
	sx, sy := src.CenterX(), src.CenterY()
	dx, dy := dst.CenterX(), dst.CenterY()

	start := boxExit(src, dx, dy)
	end := boxExit(dst, sx, sy)

	if sameRow(src, dst) || sameColumn(src, dst) {
		return []Point{start, end}
	}

	// Route vertically out of the source row, then horizontally into the
	// destination row: one bend at the destination's y, directly above or
	// below the source.
	bend := Point{X: start.X, Y: end.Y}
	return []Point{start, bend, end}
}

// boxExit returns the point where a straight line from el's center toward
// (towardX, towardY) crosses el's boundary — the route's anchor on el's
// edge rather than its geometric center.
func boxExit(el *model.Element, towardX, towardY float64) Point {
	cx, cy := el.CenterX(), el.CenterY()
	dx, dy := towardX-cx, towardY-cy
	if dx == 0 && dy == 0 {
		return Point{X: cx, Y: cy}
	}

	halfW, halfH := el.Width/2, el.Height/2
	var scale float64
	if halfW == 0 || halfH == 0 {
		scale = 0
	} else {
		sx, sy := 0.0, 0.0
		if dx != 0 {
			sx = halfW / absf(dx)
		}
		if dy != 0 {
			sy = halfH / absf(dy)
		}
		scale = minNonZero(sx, sy)
	}
	return Point{X: cx + dx*scale, Y: cy + dy*scale}
}

func sameRow(a, b *model.Element) bool {
	return absf(a.CenterY()-b.CenterY()) < 1e-6
}

func sameColumn(a, b *model.Element) bool {
	return absf(a.CenterX()-b.CenterX()) < 1e-6
}

// selfLoop routes a small rectangular loop out of the element's right
// edge and back in, clear of the box itself.
func selfLoop(el *model.Element) []Point {
	const loopOut = 24.0
	right := el.Right()
	topThird := el.Y + el.Height/3
	bottomThird := el.Y + 2*el.Height/3
	return []Point{
		{X: right, Y: topThird},
		{X: right + loopOut, Y: topThird},
		{X: right + loopOut, Y: bottomThird},
		{X: right, Y: bottomThird},
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func minNonZero(a, b float64) float64 {
	switch {
	case a == 0:
		return b
	case b == 0:
		return a
	case a < b:
		return a
	default:
		return b
	}
}
