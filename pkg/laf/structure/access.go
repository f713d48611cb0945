package structure

import "github.com/abstractlayout/laf/pkg/model"

// computeAccessibilityScores derives a deterministic, order-independent
// importance score per primary element from in-degree, out-degree, and
// containment subtree size. spec.md leaves the exact formula open,
// requiring only that it be monotone in in+out degree; subtree size
// contributes a strictly smaller term so it never overturns a degree
// comparison, only breaks ties between equal-degree elements.
func computeAccessibilityScores(primaries []string, es *edgeSet, tree map[string]model.TreeNode) map[string]float64 {
	inDeg := make(map[string]int)
	outDeg := make(map[string]int)
	for from, tos := range es.out {
		outDeg[from] += len(tos)
		for _, to := range tos {
			inDeg[to]++
		}
	}

	scores := make(map[string]float64, len(primaries))
	for _, id := range primaries {
		subtree := subtreeSize(tree, id)
		scores[id] = float64(inDeg[id]+outDeg[id]) + float64(subtree)/float64(subtree+1)
	}
	return scores
}

func subtreeSize(tree map[string]model.TreeNode, id string) int {
	node, ok := tree[id]
	if !ok {
		return 1
	}
	size := 1
	for _, child := range node.Children {
		size += subtreeSize(tree, child)
	}
	return size
}
