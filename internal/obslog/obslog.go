// Package obslog is the shared logging setup for the laf CLI: a
// charmbracelet/log logger with timestamp formatting, a laf.Sink that logs
// per-phase timing at debug level, and context plumbing so commands can
// pick up whichever logger the root command configured.
package obslog

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/abstractlayout/laf/pkg/laf"
)

// New creates a logger writing to w, filtering at level, with timestamps
// formatted as "HH:MM:SS.ms" (e.g. "14:32:01.45").
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// PhaseProgress is a laf.Sink that logs each phase's completion at debug
// level, with the elapsed time since the previous phase and since the run
// started — the pipeline's own replacement for a generic "done in Xms"
// progress line, keyed by runID so concurrent runs' log lines stay
// distinguishable.
type PhaseProgress struct {
	logger   *log.Logger
	runID    string
	start    time.Time
	lastStep time.Time
}

// NewPhaseProgress creates a PhaseProgress that logs to l, tagging every
// line with runID and starting its elapsed-time clock now.
func NewPhaseProgress(l *log.Logger, runID string) *PhaseProgress {
	now := time.Now()
	return &PhaseProgress{logger: l, runID: runID, start: now, lastStep: now}
}

// Observe implements laf.Sink: logs snap.Phase's name, the element/
// connection counts it left behind, and how long that phase and the run
// so far took.
func (p *PhaseProgress) Observe(snap laf.Snapshot) {
	now := time.Now()
	step := now.Sub(p.lastStep).Round(time.Millisecond)
	total := now.Sub(p.start).Round(time.Millisecond)
	p.lastStep = now

	elements, connections := 0, 0
	if snap.Layout != nil {
		elements = len(snap.Layout.Elements)
		connections = len(snap.Layout.Connections)
	}
	p.logger.Debugf("run=%s phase=%s step=%s total=%s elements=%d connections=%d",
		p.runID, snap.Phase, step, total, elements, connections)
}

var _ laf.Sink = (*PhaseProgress)(nil)

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger returns a new context with l attached, retrievable later with
// FromContext.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext retrieves the logger attached to ctx, or log.Default() if
// none was attached — commands always get a valid logger even if context
// setup was skipped (e.g. in tests).
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
