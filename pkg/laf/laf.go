// Package laf is the Layout-Abstract-First pipeline: it derives a
// layered topological structure, orders it to minimise crossings,
// expands back to concrete elements, and inflates and redistributes them
// into a fully positioned, non-overlapping pixel layout.
//
// Run applies phases 1 and 3-7 to a Layout in order (phase 2 is invoked
// only for its diagnostic side channel); routing and SVG generation are
// external collaborators in pkg/route and pkg/render/svg.
package laf

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/abstractlayout/laf/pkg/config"
	"github.com/abstractlayout/laf/pkg/laf/centrality"
	"github.com/abstractlayout/laf/pkg/laf/expand"
	"github.com/abstractlayout/laf/pkg/laf/inflate"
	"github.com/abstractlayout/laf/pkg/laf/optimize"
	"github.com/abstractlayout/laf/pkg/laf/placement"
	"github.com/abstractlayout/laf/pkg/laf/redistribute"
	"github.com/abstractlayout/laf/pkg/laf/structure"
	"github.com/abstractlayout/laf/pkg/laf/topology"
	"github.com/abstractlayout/laf/pkg/model"
)

// PhaseID names the eight phases Run executes, for debug snapshots.
type PhaseID int

const (
	PhaseStructure PhaseID = iota + 1
	PhaseTopology
	PhaseCentrality
	PhasePlacement
	PhaseOptimize
	PhaseExpand
	PhaseInflate
	PhaseRedistribute
)

var phaseNames = [...]string{
	PhaseStructure:     "structure",
	PhaseTopology:      "topology",
	PhaseCentrality:    "centrality",
	PhasePlacement:     "placement",
	PhaseOptimize:      "optimize",
	PhaseExpand:        "expand",
	PhaseInflate:       "inflate",
	PhaseRedistribute:  "redistribute",
}

// String renders p as the lowercase phase name used in log lines and
// snapshot file names, or "phase<n>" for an out-of-range value.
func (p PhaseID) String() string {
	if int(p) >= 0 && int(p) < len(phaseNames) && phaseNames[p] != "" {
		return phaseNames[p]
	}
	return fmt.Sprintf("phase%d", int(p))
}

// Snapshot is the argument passed to a Sink at the end of each phase: a
// read-only view naming which phase just ran and the Layout/StructureInfo
// as they stood at that point.
type Snapshot struct {
	Phase  PhaseID
	Layout *model.Layout
	Info   *model.StructureInfo
}

// Sink receives a Snapshot after every phase whenever Run is given a
// non-nil Sink; Run itself does not consult cfg.VisualizePhases. Implementations must not retain or mutate the Layout/StructureInfo
// pointers beyond the call — Run keeps writing to them.
type Sink interface {
	Observe(Snapshot)
}

// Report carries the diagnostics produced alongside a Run: the Phase 2
// topology annotations, the Phase 4 crossing count, and any non-fatal
// warnings (convergence, degenerate layout) collected along the way.
type Report struct {
	Topology      topology.Report
	Crossings     int
	OptimizePasses int
	Warnings      []error
}

// Run executes the LAF pipeline over l in place, returning the
// diagnostic Report. A fatal error (StructuralError, EmptyGraphError)
// aborts immediately and returns l in its last-consistent state;
// non-fatal warnings are collected into Report.Warnings and do not abort.
func Run(l *model.Layout, cfg config.Config, sink Sink) (*Report, error) {
	info, err := structure.Analyze(l)
	if err != nil {
		return nil, err
	}
	observe(sink, PhaseStructure, l, info)

	report := &Report{Topology: topology.Annotate(info)}
	observe(sink, PhaseTopology, l, info)

	centrality.Score(info)
	observe(sink, PhaseCentrality, l, info)

	placementResult := placement.Place(info, cfg)
	report.Crossings = placementResult.Crossings
	observe(sink, PhasePlacement, l, info)

	optResult, optErr := optimize.Optimize(info, cfg)
	report.OptimizePasses = optResult.Passes
	if optErr != nil {
		report.Warnings = append(report.Warnings, optErr)
	}
	observe(sink, PhaseOptimize, l, info)

	expand.Expand(l, info)
	observe(sink, PhaseExpand, l, info)

	inflate.Inflate(l, info, cfg)
	observe(sink, PhaseInflate, l, info)

	if redistErr := redistribute.Redistribute(l, cfg); redistErr != nil {
		report.Warnings = append(report.Warnings, redistErr)
	}
	observe(sink, PhaseRedistribute, l, info)

	return report, nil
}

// NewRunID returns a fresh identifier for one pipeline invocation, used by
// callers to key debug snapshots (pkg/snapshot) and correlate log lines
// across a run.
func NewRunID() string {
	return uuid.NewString()
}

func observe(sink Sink, phase PhaseID, l *model.Layout, info *model.StructureInfo) {
	if sink == nil {
		return
	}
	sink.Observe(Snapshot{Phase: phase, Layout: l, Info: info})
}
