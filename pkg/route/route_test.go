package route

import (
	"testing"

	"github.com/abstractlayout/laf/pkg/model"
)

func layoutWith(elements map[string][4]float64, edges [][2]string) *model.Layout {
	l := model.NewLayout()
	for id, box := range elements {
		l.AddElement(&model.Element{ID: id, X: box[0], Y: box[1], Width: box[2], Height: box[3]})
	}
	for _, e := range edges {
		l.AddConnection(model.Connection{From: e[0], To: e[1]})
	}
	return l
}

func TestRouteSkipsUnknownEndpoints(t *testing.T) {
	l := layoutWith(map[string][4]float64{"a": {0, 0, 10, 10}}, [][2]string{{"a", "ghost"}})
	paths := Route(l)
	if len(paths) != 0 {
		t.Fatalf("Route() = %d paths, want 0 (unknown endpoint skipped)", len(paths))
	}
}

func TestRouteSameRowIsTwoPoints(t *testing.T) {
	l := layoutWith(map[string][4]float64{
		"a": {0, 0, 10, 10},
		"b": {100, 0, 10, 10},
	}, [][2]string{{"a", "b"}})

	paths := Route(l)
	if len(paths) != 1 {
		t.Fatalf("len(paths) = %d, want 1", len(paths))
	}
	if len(paths[0].Points) != 2 {
		t.Errorf("same-row route has %d points, want 2 (straight line)", len(paths[0].Points))
	}
}

func TestRouteDifferentRowAndColumnBends(t *testing.T) {
	l := layoutWith(map[string][4]float64{
		"a": {0, 0, 10, 10},
		"b": {100, 100, 10, 10},
	}, [][2]string{{"a", "b"}})

	paths := Route(l)
	if len(paths) != 1 {
		t.Fatalf("len(paths) = %d, want 1", len(paths))
	}
	if len(paths[0].Points) != 3 {
		t.Errorf("off-axis route has %d points, want 3 (one bend)", len(paths[0].Points))
	}
}

func TestRouteSelfLoop(t *testing.T) {
	l := layoutWith(map[string][4]float64{"a": {0, 0, 20, 30}}, [][2]string{{"a", "a"}})
	paths := Route(l)
	if len(paths) != 1 {
		t.Fatalf("len(paths) = %d, want 1", len(paths))
	}
	if len(paths[0].Points) != 4 {
		t.Errorf("self-loop route has %d points, want 4", len(paths[0].Points))
	}
	for _, p := range paths[0].Points {
		if p.X < l.Elements["a"].Right() {
			t.Errorf("self-loop point %+v is inside the element's own box", p)
		}
	}
}

func TestBoxExitLandsOnBoundary(t *testing.T) {
	el := &model.Element{X: 0, Y: 0, Width: 20, Height: 10}
	exit := boxExit(el, 100, 5) // straight out to the right, same height as center
	if exit.X != 20 {
		t.Errorf("boxExit toward the right = %+v, want X=20 (right edge)", exit)
	}
	if exit.Y != 5 {
		t.Errorf("boxExit toward the right = %+v, want Y=5 (center)", exit)
	}
}
