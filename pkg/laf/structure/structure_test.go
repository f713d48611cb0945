package structure

import (
	"testing"

	"github.com/abstractlayout/laf/pkg/model"
)

func newLayout(elements []string, edges [][2]string) *model.Layout {
	l := model.NewLayout()
	for _, id := range elements {
		l.AddElement(&model.Element{ID: id, Kind: model.KindGeneric})
	}
	for _, e := range edges {
		l.AddConnection(model.Connection{From: e[0], To: e[1]})
	}
	return l
}

func TestAnalyze_TwoNodeChain(t *testing.T) {
	l := newLayout([]string{"A", "B"}, [][2]string{{"A", "B"}})
	info, err := Analyze(l)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if info.TopologicalLevels["A"] != 0 || info.TopologicalLevels["B"] != 1 {
		t.Fatalf("levels = %v, want A:0 B:1", info.TopologicalLevels)
	}
}

func TestAnalyze_Diamond(t *testing.T) {
	l := newLayout([]string{"A", "B", "C", "D"}, [][2]string{
		{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"},
	})
	info, err := Analyze(l)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	want := map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}
	for id, lvl := range want {
		if info.TopologicalLevels[id] != lvl {
			t.Errorf("level(%s) = %d, want %d", id, info.TopologicalLevels[id], lvl)
		}
	}
}

func TestAnalyze_Cycle(t *testing.T) {
	l := newLayout([]string{"A", "B", "C"}, [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "A"},
	})
	info, err := Analyze(l)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	lvl := info.TopologicalLevels["A"]
	if info.TopologicalLevels["B"] != lvl || info.TopologicalLevels["C"] != lvl {
		t.Fatalf("cycle members should share a level, got %v", info.TopologicalLevels)
	}
}

func TestAnalyze_VirtualContainerDetection(t *testing.T) {
	l := newLayout(
		[]string{"p", "r", "u", "d1", "d2", "d3", "ext"},
		[][2]string{
			{"p", "u"}, {"r", "u"},
			{"u", "d1"}, {"u", "d2"}, {"u", "d3"},
			{"ext", "p"},
		},
	)
	info, err := Analyze(l)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(info.VirtualContainers) != 1 {
		t.Fatalf("want 1 VC, got %d: %+v", len(info.VirtualContainers), info.VirtualContainers)
	}
	vc := info.VirtualContainers[0]
	if vc.Anchor != "p" {
		t.Errorf("anchor = %q, want p", vc.Anchor)
	}
	wantMembers := map[string]bool{"p": true, "r": true, "u": true, "d1": true, "d2": true, "d3": true}
	if len(vc.Members) != len(wantMembers) {
		t.Fatalf("members = %v, want %v", vc.Members, wantMembers)
	}
	for _, m := range vc.Members {
		if !wantMembers[m] {
			t.Errorf("unexpected VC member %q", m)
		}
	}

	// Reduced graph should have exactly two vertices: the VC and ext.
	if info.ReducedGraph.VertexCount() != 2 {
		t.Fatalf("reduced graph vertex count = %d, want 2", info.ReducedGraph.VertexCount())
	}
	if _, ok := info.ReducedGraph.Vertex("ext"); !ok {
		t.Errorf("reduced graph missing ext vertex")
	}
	if _, ok := info.ReducedGraph.Vertex(vc.ID); !ok {
		t.Errorf("reduced graph missing VC vertex %q", vc.ID)
	}
}

func TestAnalyze_EmptyGraph(t *testing.T) {
	l := model.NewLayout()
	if _, err := Analyze(l); err == nil {
		t.Fatal("want EmptyGraphError, got nil")
	}
}

func TestAnalyze_MultiParentIsStructuralError(t *testing.T) {
	l := model.NewLayout()
	l.AddElement(&model.Element{ID: "c1", Contains: []string{"x"}})
	l.AddElement(&model.Element{ID: "c2", Contains: []string{"x"}})
	l.AddElement(&model.Element{ID: "x"})
	if _, err := Analyze(l); err == nil {
		t.Fatal("want StructuralError for multi-parent element, got nil")
	}
}
