package model

import "github.com/abstractlayout/laf/pkg/rgraph"

// Canvas holds the output surface dimensions; Phase 7 resizes it to
// exactly fit the final, redistributed layout when auto_expand_canvas is set.
type Canvas struct {
	Width, Height float64
}

// TreeNode describes one element's place in the containment forest built
// by Phase 1.
type TreeNode struct {
	IsContainer bool
	Children    []string
	Parent      string // empty for a root (primary) element
	Depth       int    // 0 for a root
}

// VirtualContainer is a "tight-family" subgraph detected by the
// triangle-of-interest rule (see StructureInfo.VirtualContainers): a
// connected induced subgraph whose external incoming edges all target a
// single Anchor and whose external outgoing edges all originate from a
// single Source member.
type VirtualContainer struct {
	ID      string
	Members []string // ordered, at least 3
	Anchor  string   // sole external in-edge target
	Source  string   // sole external out-edge origin
}

// PrimaryEdge is a deduplicated directed edge between two primary element
// ids, after lifting container endpoints to their outermost ancestor.
type PrimaryEdge struct {
	From, To string
}

// StructureInfo is the derived, read-mostly product of Phase 1, consumed
// by every later phase. It is rebuilt once and never mutated outside
// Phase 1 (ReducedGraph's vertex Row/Col/Centrality/XOffset fields are the
// sole exception: phases 3-5 write into it directly).
type StructureInfo struct {
	ElementTree     map[string]TreeNode
	PrimaryElements []string

	TopologicalLevels   map[string]int
	AccessibilityScores map[string]float64

	// PrimaryEdges is the connection list projected onto primary elements
	// (each endpoint lifted to its outermost ancestor), deduplicated. It
	// is what TopologicalLevels, the VC detector, and the reduced graph
	// are all built from; Phase 5.5 also consults it to compute sub-level
	// order within a VC's induced subgraph.
	PrimaryEdges []PrimaryEdge

	VirtualContainers []VirtualContainer
	// MemberVC maps a concrete element id to the VC id it belongs to, for
	// every element consumed by VC detection.
	MemberVC map[string]string

	ReducedGraph *rgraph.Graph
	NdprLevels   map[string]int
}

// NewStructureInfo returns a StructureInfo with all maps initialized, ready
// for Phase 1 to populate.
func NewStructureInfo() *StructureInfo {
	return &StructureInfo{
		ElementTree:         make(map[string]TreeNode),
		TopologicalLevels:   make(map[string]int),
		AccessibilityScores: make(map[string]float64),
		MemberVC:            make(map[string]string),
		NdprLevels:          make(map[string]int),
	}
}

// Layout is the shared mutable working object. It is created by the parser
// with Elements and Connections populated and every layout field at its
// zero value, then threaded through the pipeline phases in order: each
// phase takes it by exclusive mutable borrow, reads the fields prior
// phases wrote, and writes its own.
type Layout struct {
	Canvas      Canvas
	Elements    map[string]*Element
	Connections []Connection

	// ElementOrder preserves the input order of Elements for any pass that
	// must break ties deterministically by first appearance rather than
	// lexicographic id.
	ElementOrder []string

	// OptimizedLayerOrder is indexed by level: OptimizedLayerOrder[lvl] is
	// the concrete element ids in that row's final left-to-right order,
	// written by Phase 5.5 (expansion) and read by Phase 7
	// (redistribution) to find the elements that share a row.
	OptimizedLayerOrder [][]string
}

// NewLayout returns an empty Layout ready to receive elements and
// connections from the parser.
func NewLayout() *Layout {
	return &Layout{
		Elements: make(map[string]*Element),
	}
}

// AddElement appends e to the layout, recording its id in ElementOrder.
func (l *Layout) AddElement(e *Element) {
	l.Elements[e.ID] = e
	l.ElementOrder = append(l.ElementOrder, e.ID)
}

// AddConnection appends a connection to the layout.
func (l *Layout) AddConnection(c Connection) {
	l.Connections = append(l.Connections, c)
}

// Root reports whether id names a primary element: one that is not the
// child of any container. It consults Elements directly rather than
// StructureInfo so it remains usable before Phase 1 runs.
func (l *Layout) Root(id string) bool {
	for _, e := range l.Elements {
		if e.IsContainer() {
			for _, child := range e.Contains {
				if child == id {
					return false
				}
			}
		}
	}
	return true
}
