package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/abstractlayout/laf/pkg/laf"
)

// phaseSpinner is the layout/render commands' progress indicator: a
// terminal spinner that also implements laf.Sink, so its message advances
// through the pipeline's phase names (the same vocabulary tui.go's
// phaseModel checklist uses) instead of sitting on one static string for
// the whole run. layout.go and render.go both hand it to laf.Run through
// fanSink, so the label follows the phases in either command.
type phaseSpinner struct {
	message string
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	stopped chan struct{}
	frames  []string
	mu      sync.Mutex
}

// newSpinnerWithContext creates a spinner labeled initially with label,
// stopping on its own once ctx is cancelled.
func newSpinnerWithContext(ctx context.Context, label string) *phaseSpinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &phaseSpinner{
		message: label,
		ctx:     spinnerCtx,
		cancel:  cancel,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Observe implements laf.Sink: each time a phase finishes, the spinner's
// label switches to naming it, so `laf layout` without --tui still shows
// which phase last completed rather than one unchanging "Computing..." line.
func (s *phaseSpinner) Observe(snap laf.Snapshot) {
	if name, ok := phaseNames[snap.Phase]; ok {
		s.setMessage(name + "...")
	}
}

func (s *phaseSpinner) setMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = msg
}

// Start begins the spinner animation on its own goroutine.
func (s *phaseSpinner) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		i := 0
		for {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.done:
				return
			case <-ticker.C:
				frame := s.frames[i%len(s.frames)]
				s.mu.Lock()
				fmt.Fprintf(os.Stderr, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
				s.mu.Unlock()
				i++
			}
		}
	}()
}

// Stop stops the spinner and clears its line.
func (s *phaseSpinner) Stop() {
	s.cancel()
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	<-s.stopped
	s.clearLine()
}

func (s *phaseSpinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}

// StopWithError stops the spinner and shows an error message in its place.
func (s *phaseSpinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the spinner stopped because its context was
// cancelled, rather than via an explicit Stop call.
func (s *phaseSpinner) Cancelled() bool {
	select {
	case <-s.done:
		return false
	default:
	}
	return s.ctx.Err() != nil
}

var _ laf.Sink = (*phaseSpinner)(nil)
