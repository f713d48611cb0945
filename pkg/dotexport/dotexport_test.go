package dotexport

import (
	"strings"
	"testing"

	"github.com/abstractlayout/laf/pkg/laf/structure"
	"github.com/abstractlayout/laf/pkg/model"
)

func TestToDOTIncludesVerticesAndEdges(t *testing.T) {
	l := model.NewLayout()
	l.AddElement(&model.Element{ID: "A", Kind: model.KindGeneric})
	l.AddElement(&model.Element{ID: "B", Kind: model.KindGeneric})
	l.AddConnection(model.Connection{From: "A", To: "B"})

	info, err := structure.Analyze(l)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	dot := ToDOT(info)
	if !strings.HasPrefix(dot, "digraph ReducedGraph {") {
		t.Errorf("ToDOT output missing digraph header: %q", dot)
	}
	if !strings.Contains(dot, `"A"`) || !strings.Contains(dot, `"B"`) {
		t.Errorf("ToDOT output missing vertex labels: %q", dot)
	}
	if !strings.Contains(dot, `"A" -> "B"`) {
		t.Errorf("ToDOT output missing edge A -> B: %q", dot)
	}
}

func TestToDOTMarksVirtualContainerVertices(t *testing.T) {
	l := model.NewLayout()
	for _, id := range []string{"p", "r", "u", "d1", "d2", "d3", "ext"} {
		l.AddElement(&model.Element{ID: id, Kind: model.KindGeneric})
	}
	for _, e := range [][2]string{
		{"p", "u"}, {"r", "u"},
		{"u", "d1"}, {"u", "d2"}, {"u", "d3"},
		{"ext", "p"},
	} {
		l.AddConnection(model.Connection{From: e[0], To: e[1]})
	}
	info, err := structure.Analyze(l)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	dot := ToDOT(info)
	if !strings.Contains(dot, "dashed") {
		t.Errorf("ToDOT output should mark the virtual-container vertex as dashed: %q", dot)
	}
}
