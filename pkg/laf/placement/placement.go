// Package placement implements Phase 4 (Abstract Placement): Sugiyama-style
// layering with a bidirectional barycenter heuristic, same-row container
// blending, a hub-centering post-pass, and a diagnostic crossing count.
package placement

import (
	"sort"

	"github.com/abstractlayout/laf/pkg/config"
	"github.com/abstractlayout/laf/pkg/model"
	"github.com/abstractlayout/laf/pkg/rgraph"
)

// Result carries the frozen row orders and the diagnostic crossing count
// produced by Place. It does not feed back into the pipeline; later
// phases read col/row directly off the reduced graph's vertices.
type Result struct {
	OptimizedLayerOrder map[int][]string
	Crossings           int
}

// Place runs Phase 4 over info.ReducedGraph, whose vertices already carry
// Row = ndpr_level (set by Phase 1). It writes Col and XOffset (seeded to
// Col, refined later by Phase 5) on every vertex and returns the frozen
// row orders plus a diagnostic crossing count.
func Place(info *model.StructureInfo, cfg config.Config) Result {
	g := info.ReducedGraph
	rows := g.RowIDs()

	order := make(map[int][]string, len(rows))
	for _, r := range rows {
		order[r] = initialOrder(g.VerticesInRow(r))
	}

	iterations := cfg.MaxBarycenterIterations
	if iterations <= 0 {
		iterations = 4
	}

	for i := 0; i < iterations; i++ {
		forwardPass(g, rows, order)
		backwardPass(g, rows, order)
		blendContainerBarycenters(g, rows, order)
		hubCenteringPass(g, rows, order)
	}

	for _, r := range rows {
		for col, id := range order[r] {
			v, _ := g.Vertex(id)
			v.Col = col
			v.XOffset = float64(col)
		}
	}

	return Result{
		OptimizedLayerOrder: order,
		Crossings:           rgraph.CountCrossings(g, order),
	}
}

// initialOrder sorts a row's vertices by descending centrality, then
// lexicographic id.
func initialOrder(vertices []*rgraph.Vertex) []string {
	sorted := append([]*rgraph.Vertex(nil), vertices...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Centrality != sorted[j].Centrality {
			return sorted[i].Centrality > sorted[j].Centrality
		}
		return sorted[i].ID < sorted[j].ID
	})
	ids := make([]string, len(sorted))
	for i, v := range sorted {
		ids[i] = v.ID
	}
	return ids
}

// forwardPass sweeps rows top-down; each vertex's barycenter is the mean
// column of its predecessors in the row immediately above. Vertices with
// no such predecessors keep their current column.
func forwardPass(g *rgraph.Graph, rows []int, order map[int][]string) {
	for i := 1; i < len(rows); i++ {
		r := rows[i]
		above := rows[i-1]
		reorderRow(g, order, r, above, true)
	}
}

// backwardPass sweeps rows bottom-up using successors in the row below.
func backwardPass(g *rgraph.Graph, rows []int, order map[int][]string) {
	for i := len(rows) - 2; i >= 0; i-- {
		r := rows[i]
		below := rows[i+1]
		reorderRow(g, order, r, below, false)
	}
}

// reorderRow recomputes barycenters for every vertex in row r against the
// adjacent row (useParents selects predecessors vs. successors) and
// re-sorts r by barycenter, then centrality, then id.
func reorderRow(g *rgraph.Graph, order map[int][]string, r, adjacent int, useParents bool) {
	adjPos := rgraph.PosMap(order[adjacent])

	type scored struct {
		id   string
		bary float64
	}
	entries := make([]scored, len(order[r]))
	for i, id := range order[r] {
		var neighbors []string
		if useParents {
			neighbors = g.Parents(id)
		} else {
			neighbors = g.Children(id)
		}
		sum, n := 0.0, 0
		for _, nb := range neighbors {
			if pos, ok := adjPos[nb]; ok {
				sum += float64(pos)
				n++
			}
		}
		bary := float64(i)
		if n > 0 {
			bary = sum / float64(n)
		}
		entries[i] = scored{id: id, bary: bary}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].bary != entries[j].bary {
			return entries[i].bary < entries[j].bary
		}
		vi, _ := g.Vertex(entries[i].id)
		vj, _ := g.Vertex(entries[j].id)
		if vi.Centrality != vj.Centrality {
			return vi.Centrality > vj.Centrality
		}
		return entries[i].id < entries[j].id
	})

	newOrder := make([]string, len(entries))
	for i, e := range entries {
		newOrder[i] = e.id
	}
	order[r] = newOrder
}

// blendContainerBarycenters biases a vertex toward the row's geometric
// centre when it receives edges from multiple sources already placed in
// its own row: barycenter := 0.5*mean(source columns) + 0.5*centre. This
// is a structural generalization of spec.md's VC-vertex rule to any
// reduced vertex, since the same same-row-hub pattern is exercised by
// plain container elements (see Phase 4 test scenario "hub container").
func blendContainerBarycenters(g *rgraph.Graph, rows []int, order map[int][]string) {
	for _, r := range rows {
		row := order[r]
		if len(row) < 3 {
			continue
		}
		pos := rgraph.PosMap(row)
		centre := float64(len(row)-1) / 2.0

		blended := make(map[string]float64)
		for _, id := range row {
			var sourceCols []float64
			for _, other := range row {
				if other == id {
					continue
				}
				for _, child := range g.Children(other) {
					if child == id {
						sourceCols = append(sourceCols, float64(pos[other]))
						break
					}
				}
			}
			if len(sourceCols) < 2 {
				continue
			}
			sum := 0.0
			for _, c := range sourceCols {
				sum += c
			}
			mean := sum / float64(len(sourceCols))
			blended[id] = 0.5*mean + 0.5*centre
		}
		if len(blended) == 0 {
			continue
		}

		reordered := append([]string(nil), row...)
		sort.SliceStable(reordered, func(i, j int) bool {
			ci, oki := blended[reordered[i]]
			if !oki {
				ci = float64(pos[reordered[i]])
			}
			cj, okj := blended[reordered[j]]
			if !okj {
				cj = float64(pos[reordered[j]])
			}
			if ci != cj {
				return ci < cj
			}
			vi, _ := g.Vertex(reordered[i])
			vj, _ := g.Vertex(reordered[j])
			if vi.Centrality != vj.Centrality {
				return vi.Centrality > vj.Centrality
			}
			return reordered[i] < reordered[j]
		})
		order[r] = reordered
	}
}

// hubCenteringPass moves, within each row of size >= 3, the first vertex
// (in current row order) that receives edges from >= 2 distinct same-row
// sources to the centre index; any further such vertices keep their places.
// Runs after both barycenter passes each iteration so later iterations can
// further refine around the hub.
func hubCenteringPass(g *rgraph.Graph, rows []int, order map[int][]string) {
	for _, r := range rows {
		row := order[r]
		if len(row) < 3 {
			continue
		}
		var hub string
		for _, id := range row {
			sources := 0
			for _, other := range row {
				if other == id {
					continue
				}
				for _, child := range g.Children(other) {
					if child == id {
						sources++
						break
					}
				}
			}
			if sources >= 2 {
				hub = id
				break
			}
		}
		if hub == "" {
			continue
		}

		centre := len(row) / 2
		without := make([]string, 0, len(row)-1)
		for _, id := range row {
			if id != hub {
				without = append(without, id)
			}
		}
		newRow := make([]string, 0, len(row))
		newRow = append(newRow, without[:centre]...)
		newRow = append(newRow, hub)
		newRow = append(newRow, without[centre:]...)
		order[r] = newRow
	}
}
