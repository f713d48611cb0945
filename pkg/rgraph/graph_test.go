package rgraph

import "testing"

func buildDiamond(t *testing.T) *Graph {
	t.Helper()
	g := New()
	for _, id := range []string{"a", "b", "c", "d"} {
		if err := g.AddVertex(Vertex{ID: id}); err != nil {
			t.Fatalf("AddVertex(%q): %v", id, err)
		}
	}
	for _, e := range [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%q, %q): %v", e[0], e[1], err)
		}
	}
	return g
}

func TestAddVertexRejectsEmptyAndDuplicateIDs(t *testing.T) {
	g := New()
	if err := g.AddVertex(Vertex{ID: ""}); err != ErrInvalidVertexID {
		t.Errorf("AddVertex(empty) = %v, want ErrInvalidVertexID", err)
	}
	if err := g.AddVertex(Vertex{ID: "a"}); err != nil {
		t.Fatalf("AddVertex(a): %v", err)
	}
	if err := g.AddVertex(Vertex{ID: "a"}); err != ErrDuplicateVertexID {
		t.Errorf("AddVertex(dup) = %v, want ErrDuplicateVertexID", err)
	}
}

func TestAddEdgeRejectsUnknownEndpointsAndSelfLoops(t *testing.T) {
	g := New()
	g.AddVertex(Vertex{ID: "a"})
	if err := g.AddEdge("a", "ghost"); err != ErrUnknownEndpoint {
		t.Errorf("AddEdge(a, ghost) = %v, want ErrUnknownEndpoint", err)
	}
	if err := g.AddEdge("a", "a"); err != nil {
		t.Errorf("AddEdge(a, a) = %v, want nil (self-loop silently dropped)", err)
	}
	if len(g.Edges()) != 0 {
		t.Errorf("Edges() = %v, want none (self-loop must not be recorded)", g.Edges())
	}
}

func TestAddEdgeDeduplicates(t *testing.T) {
	g := New()
	g.AddVertex(Vertex{ID: "a"})
	g.AddVertex(Vertex{ID: "b"})
	g.AddEdge("a", "b")
	g.AddEdge("a", "b")
	if len(g.Edges()) != 1 {
		t.Errorf("Edges() = %v, want exactly one a->b", g.Edges())
	}
}

func TestChildrenParentsAndDegree(t *testing.T) {
	g := buildDiamond(t)
	if got := g.Children("a"); len(got) != 2 {
		t.Errorf("Children(a) = %v, want 2 entries", got)
	}
	if got := g.Parents("d"); len(got) != 2 {
		t.Errorf("Parents(d) = %v, want 2 entries", got)
	}
	if g.OutDegree("a") != 2 {
		t.Errorf("OutDegree(a) = %d, want 2", g.OutDegree("a"))
	}
	if g.InDegree("d") != 2 {
		t.Errorf("InDegree(d) = %d, want 2", g.InDegree("d"))
	}
}

func TestSources(t *testing.T) {
	g := buildDiamond(t)
	sources := g.Sources()
	if len(sources) != 1 || sources[0].ID != "a" {
		t.Errorf("Sources() = %v, want [a]", sources)
	}
}

func TestSetRowsAndVerticesInRow(t *testing.T) {
	g := buildDiamond(t)
	g.SetRows(map[string]int{"a": 0, "b": 1, "c": 1, "d": 2})

	if got := g.VerticesInRow(1); len(got) != 2 {
		t.Errorf("VerticesInRow(1) = %v, want 2 vertices", got)
	}
	rows := g.RowIDs()
	want := []int{0, 1, 2}
	if len(rows) != len(want) {
		t.Fatalf("RowIDs() = %v, want %v", rows, want)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("RowIDs()[%d] = %d, want %d", i, rows[i], want[i])
		}
	}

	v, _ := g.Vertex("b")
	if v.Row != 1 || v.Level != 1 {
		t.Errorf("vertex b after SetRows = %+v, want Row=Level=1", v)
	}
}

func TestPosMap(t *testing.T) {
	pm := PosMap([]string{"x", "y", "z"})
	want := map[string]int{"x": 0, "y": 1, "z": 2}
	for k, v := range want {
		if pm[k] != v {
			t.Errorf("PosMap()[%q] = %d, want %d", k, pm[k], v)
		}
	}
}
