package topology

import (
	"testing"

	"github.com/abstractlayout/laf/pkg/laf/structure"
	"github.com/abstractlayout/laf/pkg/model"
)

func diamond(t *testing.T) *model.StructureInfo {
	t.Helper()
	l := model.NewLayout()
	for _, id := range []string{"A", "B", "C", "D"} {
		l.AddElement(&model.Element{ID: id, Kind: model.KindGeneric})
	}
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		l.AddConnection(model.Connection{From: e[0], To: e[1]})
	}
	info, err := structure.Analyze(l)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	return info
}

func TestAnnotateCountsAndDegrees(t *testing.T) {
	info := diamond(t)
	r := Annotate(info)

	if r.PrimaryCount != 4 {
		t.Errorf("PrimaryCount = %d, want 4", r.PrimaryCount)
	}
	if r.ReducedVertexCount != 4 {
		t.Errorf("ReducedVertexCount = %d, want 4", r.ReducedVertexCount)
	}
	if r.ReducedEdgeCount != 4 {
		t.Errorf("ReducedEdgeCount = %d, want 4", r.ReducedEdgeCount)
	}
	if r.MaxOutDegree != 2 {
		t.Errorf("MaxOutDegree = %d, want 2 (A has two children)", r.MaxOutDegree)
	}
	if r.MaxInDegree != 2 {
		t.Errorf("MaxInDegree = %d, want 2 (D has two parents)", r.MaxInDegree)
	}
	if r.MaxLevel != 2 {
		t.Errorf("MaxLevel = %d, want 2 (A=0, B/C=1, D=2)", r.MaxLevel)
	}
}

func TestAnnotateDoesNotMutateInfo(t *testing.T) {
	info := diamond(t)
	before := info.ReducedGraph.VertexCount()
	Annotate(info)
	if after := info.ReducedGraph.VertexCount(); after != before {
		t.Errorf("Annotate mutated ReducedGraph: vertex count went from %d to %d", before, after)
	}
}
