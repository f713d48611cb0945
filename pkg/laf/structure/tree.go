package structure

import (
	"sort"

	lerrors "github.com/abstractlayout/laf/pkg/lafio/errors"
	"github.com/abstractlayout/laf/pkg/model"
)

// buildElementTree derives the containment forest from each element's
// Contains list. It fails with ErrCodeStructural if a child is claimed by
// two different parents or if containment forms a cycle; re-declaring the
// same parent for the same child (idempotent re-parent) is tolerated.
func buildElementTree(l *model.Layout) (map[string]model.TreeNode, []string, error) {
	tree := make(map[string]model.TreeNode, len(l.Elements))
	for id := range l.Elements {
		tree[id] = model.TreeNode{}
	}

	parent := make(map[string]string)
	for _, id := range l.ElementOrder {
		el := l.Elements[id]
		if !el.IsContainer() {
			continue
		}
		for _, child := range el.Contains {
			if _, ok := l.Elements[child]; !ok {
				return nil, nil, lerrors.New(lerrors.ErrCodeStructural,
					"container %q references unknown child %q", id, child)
			}
			if existing, ok := parent[child]; ok && existing != id {
				return nil, nil, lerrors.New(lerrors.ErrCodeStructural,
					"element %q has multiple parents (%q and %q)", child, existing, id)
			}
			parent[child] = id
		}
	}

	// Cycle check: follow parent pointers from every node; a repeated
	// visit before reaching a root means containment loops back on itself.
	for start := range l.Elements {
		seen := map[string]bool{}
		cur := start
		for {
			p, ok := parent[cur]
			if !ok {
				break
			}
			if seen[cur] {
				return nil, nil, lerrors.New(lerrors.ErrCodeStructural,
					"containment cycle detected at %q", start)
			}
			seen[cur] = true
			cur = p
		}
	}

	children := make(map[string][]string)
	for _, id := range l.ElementOrder {
		el := l.Elements[id]
		for _, child := range el.Contains {
			children[id] = append(children[id], child)
		}
	}

	depth := make(map[string]int)
	var depthOf func(id string) int
	depthOf = func(id string) int {
		if d, ok := depth[id]; ok {
			return d
		}
		p, ok := parent[id]
		if !ok {
			depth[id] = 0
			return 0
		}
		d := depthOf(p) + 1
		depth[id] = d
		return d
	}

	var primaries []string
	for id, el := range l.Elements {
		p := parent[id]
		tree[id] = model.TreeNode{
			IsContainer: el.IsContainer(),
			Children:    append([]string(nil), children[id]...),
			Parent:      p,
			Depth:       depthOf(id),
		}
		if p == "" {
			primaries = append(primaries, id)
		}
	}
	sort.Strings(primaries)

	return tree, primaries, nil
}

// rootOf walks a tree's parent chain to the outermost ancestor: an
// element's "primary" projection used to lift container-to-container and
// element-to-container connections onto primary-to-primary edges.
func rootOf(tree map[string]model.TreeNode, id string) string {
	for {
		node, ok := tree[id]
		if !ok || node.Parent == "" {
			return id
		}
		id = node.Parent
	}
}
