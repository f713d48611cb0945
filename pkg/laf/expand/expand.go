// Package expand implements Phase 5.5 (NdPr Expansion): projecting the
// reduced graph's abstract positions back onto every concrete primary
// element, distributing virtual-container members across sub-levels.
package expand

import (
	"math"
	"sort"

	"github.com/abstractlayout/laf/pkg/model"
	"github.com/abstractlayout/laf/pkg/rgraph"
)

const (
	vcSubLevelSpacing = 0.4
	vcSubLevelHeight  = 1.0
)

// Expand writes AbsX/AbsY on every primary element and rebuilds
// l.OptimizedLayerOrder from the result, grouped by floor(abs_y) and
// sorted within each group by abs_x.
func Expand(l *model.Layout, info *model.StructureInfo) {
	for _, v := range info.ReducedGraph.Vertices() {
		switch v.Kind {
		case rgraph.KindPrimary:
			expandSimple(l, v)
		case rgraph.KindVirtualContainer:
			expandVirtualContainer(l, v, info)
		}
	}

	rebuildOptimizedLayerOrder(l)
}

// expandSimple places a single-member NdPr vertex's backing element at
// its reduced position directly.
func expandSimple(l *model.Layout, v *rgraph.Vertex) {
	if len(v.Members) != 1 {
		return
	}
	el, ok := l.Elements[v.Members[0]]
	if !ok {
		return
	}
	el.AbsX = v.XOffset
	el.AbsY = float64(v.Row)
}

// expandVirtualContainer partitions a VC's members into sub-levels by the
// topological levels of the induced subgraph on the VC's own connections
// (restricted to its members), then spaces each sub-level horizontally
// around the vertex's x_offset.
func expandVirtualContainer(l *model.Layout, v *rgraph.Vertex, info *model.StructureInfo) {
	subLevels := inducedSubLevels(v.Members, info.PrimaryEdges)

	maxSubLevel := 0
	for _, sl := range subLevels {
		if sl > maxSubLevel {
			maxSubLevel = sl
		}
	}

	byLevel := make(map[int][]string, maxSubLevel+1)
	for _, m := range v.Members {
		byLevel[subLevels[m]] = append(byLevel[subLevels[m]], m)
	}

	for level := 0; level <= maxSubLevel; level++ {
		members := byLevel[level]
		sort.Strings(members)
		n := len(members)
		if n == 0 {
			continue
		}
		absY := float64(v.Row)
		if level > 0 {
			absY = float64(v.Row) + float64(level)*vcSubLevelHeight
		}
		start := -float64(n-1) / 2.0 * vcSubLevelSpacing
		for i, id := range members {
			el, ok := l.Elements[id]
			if !ok {
				continue
			}
			el.AbsX = v.XOffset + start + float64(i)*vcSubLevelSpacing
			el.AbsY = absY
		}
	}
}

// inducedSubLevels computes topological levels restricted to members and
// the edges of edges that have both endpoints inside members, treating
// any residual cycle the same way Phase 1 does: SCC members share a
// level. Members with no in-members-predecessor start at level 0 (this
// is the VC's "anchor row").
func inducedSubLevels(members []string, edges []model.PrimaryEdge) map[string]int {
	memberSet := make(map[string]bool, len(members))
	for _, m := range members {
		memberSet[m] = true
	}

	out := make(map[string][]string)
	in := make(map[string][]string)
	for _, e := range edges {
		if memberSet[e.From] && memberSet[e.To] && e.From != e.To {
			out[e.From] = append(out[e.From], e.To)
			in[e.To] = append(in[e.To], e.From)
		}
	}

	sorted := append([]string(nil), members...)
	sort.Strings(sorted)

	comp, order := tarjan(sorted, out)
	condIn := make(map[int]map[int]bool)
	for _, v := range sorted {
		for _, to := range out[v] {
			if comp[v] == comp[to] {
				continue
			}
			if condIn[comp[to]] == nil {
				condIn[comp[to]] = make(map[int]bool)
			}
			condIn[comp[to]][comp[v]] = true
		}
	}

	level := make(map[int]int)
	done := make(map[int]bool)
	var levelOf func(c int) int
	levelOf = func(c int) int {
		if done[c] {
			return level[c]
		}
		maxPred := -1
		for p := range condIn[c] {
			if pl := levelOf(p); pl > maxPred {
				maxPred = pl
			}
		}
		lvl := 0
		if maxPred >= 0 {
			lvl = maxPred + 1
		}
		level[c] = lvl
		done[c] = true
		return lvl
	}
	for _, c := range order {
		levelOf(c)
	}

	result := make(map[string]int, len(members))
	for _, v := range sorted {
		result[v] = level[comp[v]]
	}
	return result
}

// tarjan is a minimal Tarjan SCC pass local to the induced-subgraph sizes
// expand.go deals with (a handful of VC members); it returns a component
// index per vertex plus the components in the order Tarjan completes
// them, where a component comes after every component reachable from it.
func tarjan(vertices []string, out map[string][]string) (map[string]int, []int) {
	index := make(map[string]int)
	low := make(map[string]int)
	onStack := make(map[string]bool)
	comp := make(map[string]int)
	var stack []string
	counter, compCounter := 0, 0
	var finishOrder []int

	var strongconnect func(v string)
	strongconnect = func(v string) {
		index[v] = counter
		low[v] = counter
		counter++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range out[v] {
			if _, ok := index[w]; !ok {
				strongconnect(w)
				if low[w] < low[v] {
					low[v] = low[w]
				}
			} else if onStack[w] && index[w] < low[v] {
				low[v] = index[w]
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
			finishOrder = append(finishOrder, compCounter)
			compCounter++
		}
	}

	for _, v := range vertices {
		if _, ok := index[v]; !ok {
			strongconnect(v)
		}
	}

	// finishOrder lists components in increasing finish time and is
	// returned unreversed; levelOf above recurses over predecessors, so it
	// does not depend on this order.
	return comp, finishOrder
}

// rebuildOptimizedLayerOrder groups every primary element with assigned
// abstract position by floor(abs_y) and sorts each group by abs_x.
func rebuildOptimizedLayerOrder(l *model.Layout) {
	groups := make(map[int][]string)
	maxRow := -1
	for _, id := range l.ElementOrder {
		el := l.Elements[id]
		if !l.Root(id) {
			continue
		}
		row := int(math.Floor(el.AbsY))
		groups[row] = append(groups[row], id)
		if row > maxRow {
			maxRow = row
		}
	}

	l.OptimizedLayerOrder = make([][]string, maxRow+1)
	for row, ids := range groups {
		sort.Slice(ids, func(i, j int) bool {
			ei, ej := l.Elements[ids[i]], l.Elements[ids[j]]
			if ei.AbsX != ej.AbsX {
				return ei.AbsX < ej.AbsX
			}
			return ids[i] < ids[j]
		})
		if row >= 0 {
			l.OptimizedLayerOrder[row] = ids
		}
	}
}
