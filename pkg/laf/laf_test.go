package laf

import (
	"testing"

	"github.com/abstractlayout/laf/pkg/config"
	"github.com/abstractlayout/laf/pkg/model"
)

func diamondLayout() *model.Layout {
	l := model.NewLayout()
	for _, id := range []string{"A", "B", "C", "D"} {
		l.AddElement(&model.Element{ID: id, Kind: model.KindGeneric})
	}
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		l.AddConnection(model.Connection{From: e[0], To: e[1]})
	}
	return l
}

func TestRunProducesPositionedLayout(t *testing.T) {
	l := diamondLayout()
	report, err := Run(l, config.Default(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report == nil {
		t.Fatal("Run returned a nil report")
	}
	for _, id := range []string{"A", "B", "C", "D"} {
		el := l.Elements[id]
		if el.Width <= 0 || el.Height <= 0 {
			t.Errorf("%s size = %vx%v, want positive", id, el.Width, el.Height)
		}
	}
}

func TestRunFatalErrorOnEmptyGraph(t *testing.T) {
	l := model.NewLayout()
	if _, err := Run(l, config.Default(), nil); err == nil {
		t.Fatal("Run(empty layout) = nil error, want a fatal structural error")
	}
}

type recordingSink struct {
	phases []PhaseID
}

func (r *recordingSink) Observe(snap Snapshot) {
	r.phases = append(r.phases, snap.Phase)
}

func TestRunNotifiesSinkForEveryPhaseInOrder(t *testing.T) {
	l := diamondLayout()
	sink := &recordingSink{}
	if _, err := Run(l, config.Default(), sink); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []PhaseID{
		PhaseStructure, PhaseTopology, PhaseCentrality, PhasePlacement,
		PhaseOptimize, PhaseExpand, PhaseInflate, PhaseRedistribute,
	}
	if len(sink.phases) != len(want) {
		t.Fatalf("observed %d phases, want %d: %v", len(sink.phases), len(want), sink.phases)
	}
	for i, p := range want {
		if sink.phases[i] != p {
			t.Errorf("phase[%d] = %v, want %v", i, sink.phases[i], p)
		}
	}
}

func TestNewRunIDIsUniqueAndNonEmpty(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if a == "" || b == "" {
		t.Fatal("NewRunID returned an empty string")
	}
	if a == b {
		t.Error("NewRunID returned the same id twice in a row")
	}
}
