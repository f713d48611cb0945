package rgraph

import (
	"maps"
	"slices"
)

// CountCrossings sums crossings between every pair of consecutive rows for
// the given row orderings. orders maps row index to vertex ids in
// left-to-right order; rows absent from the map are treated as empty.
//
// Runs in O(R x E log V): R rows, E edges per layer, V vertices per layer.
func CountCrossings(g *Graph, orders map[int][]string) int {
	rows := slices.Sorted(maps.Keys(orders))
	total := 0
	for i := 0; i < len(rows)-1; i++ {
		r := rows[i]
		total += CountLayerCrossings(g, orders[r], orders[r+1])
	}
	return total
}

// CountLayerCrossings counts crossings between two adjacent rows using a
// Fenwick tree to count inversions in O(E log V) instead of the naive O(E^2).
// Two edges (u1,v1) and (u2,v2) cross iff pos(u1) < pos(u2) and
// pos(v1) > pos(v2).
func CountLayerCrossings(g *Graph, upper, lower []string) int {
	if len(upper) == 0 || len(lower) == 0 {
		return 0
	}

	lowerPos := PosMap(lower)

	type edge struct{ upper, lower int }
	edges := make([]edge, 0, len(upper)*2)
	for i, id := range upper {
		for _, child := range g.Children(id) {
			if pos, ok := lowerPos[child]; ok {
				edges = append(edges, edge{i, pos})
			}
		}
	}
	if len(edges) < 2 {
		return 0
	}

	slices.SortFunc(edges, func(a, b edge) int {
		if a.upper != b.upper {
			return a.upper - b.upper
		}
		return a.lower - b.lower
	})

	fenwick := make([]int, len(lower)+1)
	crossings, seen := 0, 0
	for _, e := range edges {
		lessOrEqual := 0
		for q := e.lower + 1; q > 0; q -= q & (-q) {
			lessOrEqual += fenwick[q]
		}
		crossings += seen - lessOrEqual

		seen++
		for idx := e.lower + 1; idx < len(fenwick); idx += idx & (-idx) {
			fenwick[idx]++
		}
	}
	return crossings
}

// CountPairCrossings reports how many crossings would result from the
// relative order of left and right against an adjacent row, using either
// their parents (useParents) or their children.
func CountPairCrossings(g *Graph, left, right string, adjOrder []string, useParents bool) int {
	return CountPairCrossingsWithPos(g, left, right, PosMap(adjOrder), useParents)
}

// CountPairCrossingsWithPos is CountPairCrossings with a precomputed position
// map for the adjacent row, avoiding repeated PosMap calls when checking many
// candidate swaps against the same row.
func CountPairCrossingsWithPos(g *Graph, left, right string, adjPos map[string]int, useParents bool) int {
	var lnbr, rnbr []string
	if useParents {
		lnbr, rnbr = g.Parents(left), g.Parents(right)
	} else {
		lnbr, rnbr = g.Children(left), g.Children(right)
	}

	crossings := 0
	for _, ln := range lnbr {
		lp, ok := adjPos[ln]
		if !ok {
			continue
		}
		for _, rn := range rnbr {
			if rp, ok := adjPos[rn]; ok && lp > rp {
				crossings++
			}
		}
	}
	return crossings
}
