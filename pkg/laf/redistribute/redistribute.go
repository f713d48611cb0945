// Package redistribute implements Phase 7: resolving horizontal overlaps
// left by earlier unit-spaced phases, then centring (or growing) the
// canvas around the final layout.
package redistribute

import (
	"math"
	"sort"

	"github.com/abstractlayout/laf/pkg/config"
	lerrors "github.com/abstractlayout/laf/pkg/lafio/errors"
	"github.com/abstractlayout/laf/pkg/model"
)

// Redistribute enforces the minimum-gap constraint between primary
// elements sharing a row of l.OptimizedLayerOrder, does a symmetric
// vertical pass per column, then centres the bounding box of every
// element in the canvas (resizing it to exactly fit the bounding box if
// cfg.AutoExpandCanvas). It returns
// a non-fatal ErrCodeDegenerateLayout if elements still overlap
// afterward (e.g. a single label wider than its entire row).
func Redistribute(l *model.Layout, cfg config.Config) error {
	resolveRows(l, cfg)
	resolveColumns(l, cfg)
	centreCanvas(l, cfg)

	if hasOverlap(l, cfg) {
		return lerrors.New(lerrors.ErrCodeDegenerateLayout, "elements still overlap after redistribution")
	}
	return nil
}

// resolveRows walks each row left to right (as already ordered by Phase
// 5.5) and pushes any element whose left edge violates the minimum-gap
// constraint against its predecessor, shifting every subsequent element
// in the row by the same deficit.
func resolveRows(l *model.Layout, cfg config.Config) {
	for _, row := range l.OptimizedLayerOrder {
		resolveLine(l, row, cfg, true)
	}
}

// resolveColumns groups elements sharing an x-band (their centre x
// rounds to the same bucket) and applies the same constraint vertically.
func resolveColumns(l *model.Layout, cfg config.Config) {
	columns := make(map[int][]string)
	var keys []int
	for _, id := range l.ElementOrder {
		if !l.Root(id) {
			continue
		}
		el := l.Elements[id]
		bucket := int(math.Round(el.CenterX() / cfg.IconWidth))
		if _, ok := columns[bucket]; !ok {
			keys = append(keys, bucket)
		}
		columns[bucket] = append(columns[bucket], id)
	}
	sort.Ints(keys)
	for _, k := range keys {
		col := columns[k]
		sort.Slice(col, func(i, j int) bool { return l.Elements[col[i]].Y < l.Elements[col[j]].Y })
		resolveLine(l, col, cfg, false)
	}
}

// resolveLine enforces x_{i+1} >= x_i + halfWidth_i + halfWidth_{i+1} +
// gap (horizontal=true) or the analogous constraint on y, shifting
// element i+1 and every element after it in the line by the deficit when
// violated.
func resolveLine(l *model.Layout, ids []string, cfg config.Config, horizontal bool) {
	for i := 1; i < len(ids); i++ {
		prev := l.Elements[ids[i-1]]
		cur := l.Elements[ids[i]]

		var deficit float64
		if horizontal {
			minCenter := prev.CenterX() + prev.Width/2 + cur.Width/2 + cfg.MinHorizontalGap
			deficit = minCenter - cur.CenterX()
		} else {
			minCenter := prev.CenterY() + prev.Height/2 + cur.Height/2 + cfg.MinHorizontalGap
			deficit = minCenter - cur.CenterY()
		}
		if deficit <= 0 {
			continue
		}
		for j := i; j < len(ids); j++ {
			e := l.Elements[ids[j]]
			if horizontal {
				e.X += deficit
			} else {
				e.Y += deficit
			}
		}
	}
}

// centreCanvas computes the bounding box of every element and translates
// the whole layout so it sits centred within the canvas; if
// cfg.AutoExpandCanvas is set, the canvas is instead resized to exactly
// the bounding box (which can shrink it) and the layout moved to the origin.
func centreCanvas(l *model.Layout, cfg config.Config) {
	if len(l.Elements) == 0 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, el := range l.Elements {
		if el.X < minX {
			minX = el.X
		}
		if el.Y < minY {
			minY = el.Y
		}
		if el.Right() > maxX {
			maxX = el.Right()
		}
		if el.Bottom() > maxY {
			maxY = el.Bottom()
		}
	}

	boundsW := maxX - minX
	boundsH := maxY - minY

	var dx, dy float64
	if cfg.AutoExpandCanvas {
		l.Canvas.Width = boundsW
		l.Canvas.Height = boundsH
		dx, dy = -minX, -minY
	} else {
		dx = (l.Canvas.Width-boundsW)/2 - minX
		dy = (l.Canvas.Height-boundsH)/2 - minY
	}

	for _, el := range l.Elements {
		el.X += dx
		el.Y += dy
	}
}

// hasOverlap reports whether any two primary elements sharing a row
// still violate the minimum-gap constraint, past floating-point epsilon.
func hasOverlap(l *model.Layout, cfg config.Config) bool {
	const epsilon = 1e-6
	for _, row := range l.OptimizedLayerOrder {
		for i := 1; i < len(row); i++ {
			a, b := l.Elements[row[i-1]], l.Elements[row[i]]
			minCenter := a.CenterX() + a.Width/2 + b.Width/2 + cfg.MinHorizontalGap
			if b.CenterX()-minCenter < -epsilon {
				return true
			}
		}
	}
	return false
}
