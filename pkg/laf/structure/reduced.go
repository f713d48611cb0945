package structure

import (
	"sort"

	"github.com/abstractlayout/laf/pkg/model"
	"github.com/abstractlayout/laf/pkg/rgraph"
)

// buildReducedGraph constructs the NdPr reduced graph: one vertex per
// primary element outside any VC, plus one vertex per VC. Edges are
// projected from the primary-level edge set by mapping each endpoint to
// its VC id if it is a VC member, or leaving it as-is otherwise;
// projected self-loops (both endpoints collapse to the same VC) are
// discarded.
func buildReducedGraph(primaries []string, vcs []model.VirtualContainer, memberVC map[string]string, es *edgeSet) *rgraph.Graph {
	g := rgraph.New()

	nonVC := make([]string, 0, len(primaries))
	for _, id := range primaries {
		if _, ok := memberVC[id]; !ok {
			nonVC = append(nonVC, id)
		}
	}
	sort.Strings(nonVC)

	for _, id := range nonVC {
		_ = g.AddVertex(rgraph.Vertex{ID: id, Kind: rgraph.KindPrimary, Members: []string{id}})
	}
	for _, vc := range vcs {
		_ = g.AddVertex(rgraph.Vertex{ID: vc.ID, Kind: rgraph.KindVirtualContainer, Members: vc.Members})
	}

	project := func(id string) string {
		if vcID, ok := memberVC[id]; ok {
			return vcID
		}
		return id
	}

	froms := make([]string, 0, len(es.out))
	for from := range es.out {
		froms = append(froms, from)
	}
	sort.Strings(froms)

	for _, from := range froms {
		tos := append([]string(nil), es.out[from]...)
		sort.Strings(tos)
		for _, to := range tos {
			_ = g.AddEdge(project(from), project(to))
		}
	}

	return g
}
