package svg

import (
	"strings"
	"testing"

	"github.com/abstractlayout/laf/pkg/model"
)

func simpleLayout() *model.Layout {
	l := model.NewLayout()
	l.Canvas = model.Canvas{Width: 200, Height: 100}
	l.AddElement(&model.Element{ID: "a", Kind: model.KindServer, Label: "A", X: 10, Y: 10, Width: 40, Height: 40})
	l.AddElement(&model.Element{ID: "b", Kind: model.KindCloud, Label: "B", X: 100, Y: 10, Width: 40, Height: 40})
	l.AddConnection(model.Connection{From: "a", To: "b"})
	return l
}

func TestRenderProducesWellFormedSVG(t *testing.T) {
	out := string(Render(simpleLayout()))
	if !strings.HasPrefix(out, "<svg") {
		t.Errorf("Render output does not start with <svg: %q", out[:20])
	}
	if !strings.HasSuffix(strings.TrimRight(out, "\n"), "</svg>") {
		t.Error("Render output does not end with </svg>")
	}
	if !strings.Contains(out, `viewBox="0 0 200.0 100.0"`) {
		t.Errorf("Render output missing expected viewBox: %q", out)
	}
	if !strings.Contains(out, `id="el-a"`) || !strings.Contains(out, `id="el-b"`) {
		t.Error("Render output missing element groups for a and b")
	}
}

func TestRenderWithEdgesDrawsPaths(t *testing.T) {
	without := string(Render(simpleLayout()))
	if strings.Contains(without, "<path") {
		t.Error("Render() without WithEdges() should not draw any <path>")
	}
	with := string(Render(simpleLayout(), WithEdges()))
	if !strings.Contains(with, "<path") {
		t.Error("Render(WithEdges()) should draw a <path> for the a->b connection")
	}
}

func TestRenderWithInteractiveEmbedsCSSAndJS(t *testing.T) {
	out := string(Render(simpleLayout(), WithInteractive()))
	if !strings.Contains(out, "<style>") || !strings.Contains(out, "<script") {
		t.Error("Render(WithInteractive()) missing embedded <style>/<script>")
	}
}

func TestRenderEscapesLabelText(t *testing.T) {
	l := model.NewLayout()
	l.AddElement(&model.Element{ID: "a", Label: "A & <B>", X: 0, Y: 0, Width: 20, Height: 20})
	out := string(Render(l))
	if !strings.Contains(out, "A &amp; &lt;B&gt;") {
		t.Errorf("Render output did not escape label text: %q", out)
	}
}

func TestRenderDrawsContainersBeforeChildren(t *testing.T) {
	l := model.NewLayout()
	l.AddElement(&model.Element{ID: "box", Contains: []string{"child"}, X: 0, Y: 0, Width: 100, Height: 100})
	l.AddElement(&model.Element{ID: "child", X: 10, Y: 10, Width: 20, Height: 20})
	out := string(Render(l))
	if strings.Index(out, `id="el-box"`) > strings.Index(out, `id="el-child"`) {
		t.Error("container should be drawn before its child so the child renders on top")
	}
}
