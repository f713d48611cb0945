package structure

import (
	"sort"

	"github.com/abstractlayout/laf/pkg/model"
)

// edgeSet is a minimal directed-edge projection used by both the primary
// and NdPr level computations: level assignment and SCC collapse only need
// adjacency, not the full model types.
type edgeSet struct {
	out map[string][]string
}

func newEdgeSet() *edgeSet { return &edgeSet{out: make(map[string][]string)} }

func (es *edgeSet) add(from, to string) {
	for _, existing := range es.out[from] {
		if existing == to {
			return
		}
	}
	es.out[from] = append(es.out[from], to)
}

// toModelEdges flattens the edge set into a deterministically ordered
// slice of model.PrimaryEdge, sorted by (from, to).
func (es *edgeSet) toModelEdges() []model.PrimaryEdge {
	froms := make([]string, 0, len(es.out))
	for from := range es.out {
		froms = append(froms, from)
	}
	sort.Strings(froms)

	var edges []model.PrimaryEdge
	for _, from := range froms {
		tos := append([]string(nil), es.out[from]...)
		sort.Strings(tos)
		for _, to := range tos {
			edges = append(edges, model.PrimaryEdge{From: from, To: to})
		}
	}
	return edges
}

// assignLevels computes topological_levels over vertices: roots (no
// incoming edges) are at level 0, otherwise level(v) = 1 + max(level(p))
// over predecessors. Cycles are broken by collapsing each strongly
// connected component to a single condensation vertex (Tarjan's
// algorithm) and running longest-path on the resulting DAG, so every
// member of a cycle's SCC receives the same level.
func assignLevels(vertices []string, es *edgeSet) map[string]int {
	sorted := append([]string(nil), vertices...)
	sort.Strings(sorted)

	comp := tarjanSCC(sorted, es)

	// Condensation adjacency: edges between distinct components.
	condOut := make(map[int]map[int]bool)
	condIn := make(map[int]map[int]bool)
	for _, v := range sorted {
		cv := comp[v]
		for _, to := range es.out[v] {
			ct := comp[to]
			if ct == cv {
				continue
			}
			if condOut[cv] == nil {
				condOut[cv] = make(map[int]bool)
			}
			condOut[cv][ct] = true
			if condIn[ct] == nil {
				condIn[ct] = make(map[int]bool)
			}
			condIn[ct][cv] = true
		}
	}

	numComp := 0
	for _, c := range comp {
		if c+1 > numComp {
			numComp = c + 1
		}
	}

	condLevel := make([]int, numComp)
	computed := make([]bool, numComp)

	var levelOf func(c int, visiting map[int]bool) int
	levelOf = func(c int, visiting map[int]bool) int {
		if computed[c] {
			return condLevel[c]
		}
		if visiting[c] {
			// Should not happen: condensation is acyclic by construction.
			return 0
		}
		visiting[c] = true
		maxPred := -1
		preds := make([]int, 0, len(condIn[c]))
		for p := range condIn[c] {
			preds = append(preds, p)
		}
		sort.Ints(preds)
		for _, p := range preds {
			pl := levelOf(p, visiting)
			if pl > maxPred {
				maxPred = pl
			}
		}
		delete(visiting, c)
		lvl := 0
		if maxPred >= 0 {
			lvl = maxPred + 1
		}
		condLevel[c] = lvl
		computed[c] = true
		return lvl
	}

	for c := 0; c < numComp; c++ {
		levelOf(c, map[int]bool{})
	}

	levels := make(map[string]int, len(sorted))
	for _, v := range sorted {
		levels[v] = condLevel[comp[v]]
	}
	return levels
}

// tarjanSCC assigns each vertex a component index; two vertices share an
// index iff they lie on a common directed cycle. Component indices are
// not meaningful as an ordering on their own, only as an equivalence key.
func tarjanSCC(vertices []string, es *edgeSet) map[string]int {
	index := make(map[string]int)
	low := make(map[string]int)
	onStack := make(map[string]bool)
	comp := make(map[string]int)
	var stack []string
	counter := 0
	compCounter := 0

	var strongconnect func(v string)
	strongconnect = func(v string) {
		index[v] = counter
		low[v] = counter
		counter++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range es.out[v] {
			if _, ok := index[w]; !ok {
				strongconnect(w)
				if low[w] < low[v] {
					low[v] = low[w]
				}
			} else if onStack[w] {
				if index[w] < low[v] {
					low[v] = index[w]
				}
			}
		}

		if low[v] == index[v] {
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				comp[w] = compCounter
				if w == v {
					break
				}
			}
			compCounter++
		}
	}

	for _, v := range vertices {
		if _, ok := index[v]; !ok {
			strongconnect(v)
		}
	}
	return comp
}
