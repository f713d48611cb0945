package model

import "testing"

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"server", KindServer},
		{"firewall", KindFirewall},
		{"building", KindBuilding},
		{"cloud", KindCloud},
		{"", KindGeneric},
		{"spaceship", KindGeneric},
	}
	for _, tt := range tests {
		if got := ParseKind(tt.in); got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"", Forward, false},
		{"forward", Forward, false},
		{"backward", Backward, false},
		{"bidirectional", Bidirectional, false},
		{"none", NoDirection, false},
		{"sideways", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseDirection(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConnectionEffectiveDirection(t *testing.T) {
	c := Connection{From: "a", To: "b"}
	if got := c.EffectiveDirection(); got != Forward {
		t.Errorf("zero-value EffectiveDirection() = %q, want Forward", got)
	}
	c.Direction = Backward
	if got := c.EffectiveDirection(); got != Backward {
		t.Errorf("EffectiveDirection() = %q, want Backward", got)
	}
}

func TestConnectionIsSelfLoop(t *testing.T) {
	if (&Connection{From: "a", To: "b"}).IsSelfLoop() {
		t.Error("a->b reported as self-loop")
	}
	if !(&Connection{From: "a", To: "a"}).IsSelfLoop() {
		t.Error("a->a not reported as self-loop")
	}
}

func TestLayoutAddElementPreservesOrder(t *testing.T) {
	l := NewLayout()
	l.AddElement(&Element{ID: "b"})
	l.AddElement(&Element{ID: "a"})
	want := []string{"b", "a"}
	if len(l.ElementOrder) != len(want) {
		t.Fatalf("ElementOrder = %v, want %v", l.ElementOrder, want)
	}
	for i, id := range want {
		if l.ElementOrder[i] != id {
			t.Errorf("ElementOrder[%d] = %q, want %q", i, l.ElementOrder[i], id)
		}
	}
}

func TestLayoutRoot(t *testing.T) {
	l := NewLayout()
	l.AddElement(&Element{ID: "box", Contains: []string{"child"}})
	l.AddElement(&Element{ID: "child"})

	if !l.Root("box") {
		t.Error("box should be a root (not contained by anything)")
	}
	if l.Root("child") {
		t.Error("child should not be a root (contained by box)")
	}
}

func TestElementIsContainer(t *testing.T) {
	leaf := &Element{ID: "leaf"}
	if leaf.IsContainer() {
		t.Error("leaf element reported as container")
	}
	box := &Element{ID: "box", Contains: []string{"leaf"}}
	if !box.IsContainer() {
		t.Error("box element with children not reported as container")
	}
}

func TestElementGeometryHelpers(t *testing.T) {
	e := &Element{X: 10, Y: 20, Width: 30, Height: 40}
	if e.CenterX() != 25 {
		t.Errorf("CenterX() = %v, want 25", e.CenterX())
	}
	if e.CenterY() != 40 {
		t.Errorf("CenterY() = %v, want 40", e.CenterY())
	}
	if e.Right() != 40 {
		t.Errorf("Right() = %v, want 40", e.Right())
	}
	if e.Bottom() != 60 {
		t.Errorf("Bottom() = %v, want 60", e.Bottom())
	}
}

func TestElementLabelLines(t *testing.T) {
	e := &Element{Label: "one\ntwo\nthree"}
	lines := e.LabelLines()
	want := []string{"one", "two", "three"}
	if len(lines) != len(want) {
		t.Fatalf("LabelLines() = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("LabelLines()[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
	if (&Element{}).LabelLines() != nil {
		t.Error("empty label should yield no lines")
	}
}
