// Package topology implements Phase 2: purely diagnostic annotations over
// the StructureInfo produced by Phase 1. Nothing here feeds back into the
// Layout or any later phase; Report exists for debug snapshots and CLI
// summaries.
package topology

import "github.com/abstractlayout/laf/pkg/model"

// Report is the diagnostic output of Phase 2. It is informational only.
type Report struct {
	PrimaryCount          int
	VirtualContainerCount int
	ReducedVertexCount    int
	ReducedEdgeCount      int
	MaxOutDegree          int
	MaxInDegree           int
	MaxLevel              int
}

// Annotate computes a Report from info. It never mutates info or the
// Layout it was derived from.
func Annotate(info *model.StructureInfo) Report {
	r := Report{
		PrimaryCount:          len(info.PrimaryElements),
		VirtualContainerCount: len(info.VirtualContainers),
	}

	if info.ReducedGraph != nil {
		r.ReducedVertexCount = info.ReducedGraph.VertexCount()
		r.ReducedEdgeCount = len(info.ReducedGraph.Edges())
		for _, v := range info.ReducedGraph.Vertices() {
			if out := info.ReducedGraph.OutDegree(v.ID); out > r.MaxOutDegree {
				r.MaxOutDegree = out
			}
			if in := info.ReducedGraph.InDegree(v.ID); in > r.MaxInDegree {
				r.MaxInDegree = in
			}
		}
	}

	for _, lvl := range info.NdprLevels {
		if lvl > r.MaxLevel {
			r.MaxLevel = lvl
		}
	}

	return r
}
