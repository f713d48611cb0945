package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abstractlayout/laf/pkg/laf"
)

var phaseNames = map[laf.PhaseID]string{
	laf.PhaseStructure:     "Structure analysis",
	laf.PhaseTopology:      "Topology",
	laf.PhaseCentrality:    "Centrality ordering",
	laf.PhasePlacement:     "Abstract placement",
	laf.PhaseOptimize:      "Position optimisation",
	laf.PhaseExpand:        "NdPr expansion",
	laf.PhaseInflate:       "Inflation",
	laf.PhaseRedistribute:  "Redistribution",
}

var orderedPhases = []laf.PhaseID{
	laf.PhaseStructure, laf.PhaseTopology, laf.PhaseCentrality, laf.PhasePlacement,
	laf.PhaseOptimize, laf.PhaseExpand, laf.PhaseInflate, laf.PhaseRedistribute,
}

// fanSink forwards each Snapshot to every non-nil Sink in order, letting
// --tui compose with an already-configured --visualize-phases sink rather
// than the two being mutually exclusive.
type fanSink []laf.Sink

func (f fanSink) Observe(snap laf.Snapshot) {
	for _, s := range f {
		if s != nil {
			s.Observe(snap)
		}
	}
}

// phaseSink is a laf.Sink that forwards each Snapshot's phase onto ch, so a
// phaseModel can drive a live progress view from the bubbletea program's
// own goroutine rather than the pipeline's.
type phaseSink struct{ ch chan<- laf.PhaseID }

func (s phaseSink) Observe(snap laf.Snapshot) { s.ch <- snap.Phase }

// phaseDoneMsg is emitted each time a phase completes.
type phaseDoneMsg laf.PhaseID

// pipelineDoneMsg is emitted once the background pipeline goroutine returns.
type pipelineDoneMsg struct{ err error }

// phaseModel is the bubbletea model backing 'layout --tui': a live
// checklist of the eight pipeline phases.
type phaseModel struct {
	ch       chan laf.PhaseID
	done     chan error
	complete map[laf.PhaseID]bool
	err      error
}

func newPhaseModel(ch chan laf.PhaseID, done chan error) phaseModel {
	return phaseModel{ch: ch, done: done, complete: make(map[laf.PhaseID]bool, len(orderedPhases))}
}

func (m phaseModel) Init() tea.Cmd {
	return tea.Batch(m.waitForPhase(), m.waitForDone())
}

func (m phaseModel) waitForPhase() tea.Cmd {
	return func() tea.Msg {
		phase, ok := <-m.ch
		if !ok {
			return nil
		}
		return phaseDoneMsg(phase)
	}
}

func (m phaseModel) waitForDone() tea.Cmd {
	return func() tea.Msg {
		return pipelineDoneMsg{err: <-m.done}
	}
}

func (m phaseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case phaseDoneMsg:
		m.complete[laf.PhaseID(msg)] = true
		return m, m.waitForPhase()
	case pipelineDoneMsg:
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m phaseModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Laying out diagram"))
	b.WriteString("\n\n")
	for _, p := range orderedPhases {
		mark := "  " + StyleDim.Render("·")
		if m.complete[p] {
			mark = " " + StyleSuccess.Render("✓")
		}
		b.WriteString(mark + " " + phaseNames[p] + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + StyleWarning.Render(m.err.Error()) + "\n")
	}
	return b.String()
}

// runWithTUI runs the pipeline in the background via run while driving a
// live per-phase progress view in the foreground, returning once the
// bubbletea program exits.
func runWithTUI(run func(sink laf.Sink) (*laf.Report, error)) (*laf.Report, error) {
	ch := make(chan laf.PhaseID, len(orderedPhases))
	done := make(chan error, 1)

	var report *laf.Report
	go func() {
		r, err := run(phaseSink{ch: ch})
		report = r
		close(ch)
		done <- err
	}()

	finalModel, err := tea.NewProgram(newPhaseModel(ch, done)).Run()
	if err != nil {
		return nil, err
	}
	return report, finalModel.(phaseModel).err
}
