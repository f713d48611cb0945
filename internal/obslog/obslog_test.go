package obslog

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/abstractlayout/laf/pkg/laf"
	"github.com/abstractlayout/laf/pkg/model"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, log.WarnLevel)
	l.Info("should be filtered out")
	if buf.Len() != 0 {
		t.Errorf("Info() at WarnLevel wrote output: %q", buf.String())
	}
	l.Warn("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Errorf("Warn() output missing message: %q", buf.String())
	}
}

func TestPhaseProgressObserveLogsPhaseAndRunID(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, log.DebugLevel)
	p := NewPhaseProgress(l, "run-123")

	layout := &model.Layout{
		Elements: map[string]*model.Element{"a": {}, "b": {}},
	}
	p.Observe(laf.Snapshot{Phase: laf.PhaseStructure, Layout: layout})

	out := buf.String()
	for _, want := range []string{"run-123", "structure", "elements=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("Observe() output = %q, want substring %q", out, want)
		}
	}
}

func TestPhaseProgressObserveHandlesNilLayout(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, log.DebugLevel)
	p := NewPhaseProgress(l, "run-456")

	p.Observe(laf.Snapshot{Phase: laf.PhaseRedistribute})

	if !strings.Contains(buf.String(), "elements=0") {
		t.Errorf("Observe() with nil Layout = %q, want elements=0", buf.String())
	}
}

func TestWithLoggerAndFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, log.InfoLevel)
	ctx := WithLogger(context.Background(), l)
	if got := FromContext(ctx); got != l {
		t.Error("FromContext did not return the logger attached by WithLogger")
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	if got := FromContext(context.Background()); got == nil {
		t.Error("FromContext(bare context) = nil, want log.Default()")
	}
}
