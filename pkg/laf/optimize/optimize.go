// Package optimize implements Phase 5 (Position Optimisation): refining
// each NdPr vertex's integer column into a real-valued x_offset by
// layer-offset bisection.
package optimize

import (
	"sort"

	"github.com/abstractlayout/laf/pkg/config"
	lerrors "github.com/abstractlayout/laf/pkg/lafio/errors"
	"github.com/abstractlayout/laf/pkg/model"
	"github.com/abstractlayout/laf/pkg/rgraph"
)

// Result reports whether the bisection converged within the configured
// pass budget.
type Result struct {
	Passes    int
	Converged bool
}

// Optimize alternates forward and backward passes over info.ReducedGraph's
// rows, shifting each row as a whole by the scalar delta that minimises
// sum(|x(u)-x(v)|) against its already-placed neighbour row, solved by
// one-dimensional weighted-L1 median (median-of-differences). It stops
// once the largest |delta| in a full pass drops below
// cfg.BisectionEpsilon, or after cfg.BisectionMaxPasses passes, whichever
// comes first. Returns a non-fatal ErrCodeConvergence if the cap was hit
// first; the layout produced by the last iterate is still usable.
func Optimize(info *model.StructureInfo, cfg config.Config) (Result, error) {
	g := info.ReducedGraph
	rows := g.RowIDs()
	if len(rows) <= 1 {
		return Result{Converged: true}, nil
	}

	epsilon := cfg.BisectionEpsilon
	if epsilon <= 0 {
		epsilon = 0.001
	}
	maxPasses := cfg.BisectionMaxPasses
	if maxPasses <= 0 {
		maxPasses = 100
	}

	passes := 0
	converged := false
	forward := true
	for passes < maxPasses {
		maxDelta := 0.0
		if forward {
			for i := 1; i < len(rows); i++ {
				d := shiftRow(g, rows[i], rows[i-1])
				if abs(d) > maxDelta {
					maxDelta = abs(d)
				}
			}
		} else {
			for i := len(rows) - 2; i >= 0; i-- {
				d := shiftRow(g, rows[i], rows[i+1])
				if abs(d) > maxDelta {
					maxDelta = abs(d)
				}
			}
		}
		passes++
		forward = !forward
		if maxDelta < epsilon {
			converged = true
			break
		}
	}

	result := Result{Passes: passes, Converged: converged}
	if !converged {
		return result, lerrors.New(lerrors.ErrCodeConvergence,
			"bisection did not converge within %d passes", maxPasses)
	}
	return result, nil
}

// shiftRow computes the scalar delta that minimises
// sum(|x(u)+delta - x(v)|) over every reduced-graph edge with one
// endpoint in row and the other in neighbor (either direction), applies
// it to every vertex in row, and returns the applied delta. Within-row
// order is untouched: every vertex moves by the same amount.
func shiftRow(g *rgraph.Graph, row, neighbor int) float64 {
	rowVerts := orderedByCol(g.VerticesInRow(row))
	neighborVerts := orderedByCol(g.VerticesInRow(neighbor))
	if len(rowVerts) == 0 || len(neighborVerts) == 0 {
		return 0
	}

	neighborX := make(map[string]float64, len(neighborVerts))
	for _, v := range neighborVerts {
		neighborX[v.ID] = v.XOffset
	}

	var required []float64
	for _, v := range rowVerts {
		for _, nb := range g.Children(v.ID) {
			if x, ok := neighborX[nb]; ok {
				required = append(required, x-v.XOffset)
			}
		}
		for _, nb := range g.Parents(v.ID) {
			if x, ok := neighborX[nb]; ok {
				required = append(required, x-v.XOffset)
			}
		}
	}
	if len(required) == 0 {
		return 0
	}

	delta := weightedL1Median(required)
	for _, v := range rowVerts {
		v.XOffset += delta
	}
	return delta
}

// weightedL1Median returns the value minimising sum(|v - x|) over values,
// i.e. the median of the sorted sample; for an even count it returns the
// mean of the two middle values.
func weightedL1Median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func orderedByCol(vertices []*rgraph.Vertex) []*rgraph.Vertex {
	sorted := append([]*rgraph.Vertex(nil), vertices...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Col < sorted[j].Col })
	return sorted
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
