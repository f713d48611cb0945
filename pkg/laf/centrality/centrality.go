// Package centrality implements Phase 3: a per-NdPr-vertex centrality
// score used by later phases to break ordering ties. It has no
// positioning side effects.
package centrality

import "github.com/abstractlayout/laf/pkg/model"

// Score writes Centrality onto every vertex of info.ReducedGraph: a simple
// vertex's centrality is its backing element's accessibility score; a
// virtual-container vertex's centrality is the maximum accessibility
// score among its members.
func Score(info *model.StructureInfo) {
	for _, v := range info.ReducedGraph.Vertices() {
		max := 0.0
		for i, member := range v.Members {
			s := info.AccessibilityScores[member]
			if i == 0 || s > max {
				max = s
			}
		}
		v.Centrality = max
	}
}
