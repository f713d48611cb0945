// Package structure implements Phase 1 (Structure Analysis): the
// containment forest, topological levels, accessibility scores, virtual
// container detection, and the NdPr reduced graph.
package structure

import (
	lerrors "github.com/abstractlayout/laf/pkg/lafio/errors"
	"github.com/abstractlayout/laf/pkg/model"
)

// Analyze runs Phase 1 over l, returning a populated StructureInfo. It
// fails with ErrCodeStructural if containment is not a forest or
// references an unknown id, and with ErrCodeEmptyGraph if l has no
// primary elements. Unknown connection endpoints are dropped rather than
// treated as fatal, per spec.
func Analyze(l *model.Layout) (*model.StructureInfo, error) {
	tree, primaries, err := buildElementTree(l)
	if err != nil {
		return nil, err
	}
	if len(primaries) == 0 {
		return nil, lerrors.New(lerrors.ErrCodeEmptyGraph, "layout has no primary elements")
	}

	primaryEdges := newEdgeSet()
	for _, c := range l.Connections {
		_, okFrom := l.Elements[c.From]
		_, okTo := l.Elements[c.To]
		if !okFrom || !okTo {
			continue // unknown endpoint: dropped, not fatal
		}
		from := rootOf(tree, c.From)
		to := rootOf(tree, c.To)
		primaryEdges.add(from, to)
	}

	levels := assignLevels(primaries, primaryEdges)
	accessibility := computeAccessibilityScores(primaries, primaryEdges, tree)
	vcs, memberVC := detectVirtualContainers(primaries, primaryEdges)
	reduced := buildReducedGraph(primaries, vcs, memberVC, primaryEdges)

	reducedEdges := newEdgeSet()
	reducedVertexIDs := make([]string, 0, reduced.VertexCount())
	for _, v := range reduced.Vertices() {
		reducedVertexIDs = append(reducedVertexIDs, v.ID)
	}
	for _, e := range reduced.Edges() {
		reducedEdges.add(e.From, e.To)
	}
	ndprLevels := assignLevels(reducedVertexIDs, reducedEdges)
	reduced.SetRows(ndprLevels)

	info := model.NewStructureInfo()
	info.ElementTree = tree
	info.PrimaryElements = primaries
	info.TopologicalLevels = levels
	info.AccessibilityScores = accessibility
	info.PrimaryEdges = primaryEdges.toModelEdges()
	info.VirtualContainers = vcs
	info.MemberVC = memberVC
	info.ReducedGraph = reduced
	info.NdprLevels = ndprLevels

	return info, nil
}
