// Package pkg provides the core libraries behind the laf diagram layout
// engine.
//
// # Overview
//
// laf implements the Layout-Abstract-First pipeline: it derives a layered
// topological structure from a diagram's elements and connections, orders
// that structure to minimise edge crossings, then expands, inflates, and
// redistributes elements into a fully positioned, non-overlapping pixel
// layout.
//
// The typical data flow:
//
//	Diagram file (JSON/TOML)
//	         ↓
//	    [parser] package (decode into a model.Layout)
//	         ↓
//	    [laf] package (9-phase layout pipeline)
//	         ↓
//	    [route] + [render/svg] packages (connection routing, SVG output)
//
// # Main Packages
//
// [model] holds the shared data types threaded through every phase:
// Layout, Element, Connection, StructureInfo.
//
// [rgraph] is the reduced-graph data structure (primary elements and
// virtual containers as vertices, organised into rows) built by Phase 1 and
// consulted by phases 3-5.
//
// [laf] is the pipeline orchestrator and its phase subpackages
// (laf/structure, laf/topology, laf/centrality, laf/placement,
// laf/optimize, laf/expand, laf/inflate, laf/redistribute).
//
// [parser] is the pipeline's input boundary: JSON/TOML diagram files in,
// model.Layout out, and back.
//
// [route] computes orthogonal-elbow connection paths over a laid-out
// Layout; [render/svg] serializes a laid-out, routed Layout to SVG.
// [dotexport] exports a diagram's reduced structure graph as Graphviz DOT.
//
// [snapshot] records a Layout snapshot after each phase (the
// --visualize-phases debug feature) and serves them back over HTTP.
//
// [config] holds the pipeline's tunable constants, loadable from TOML.
//
// [lafio/errors] is the pipeline's typed error type, distinguishing fatal
// structural errors from non-fatal convergence/degeneracy warnings.
package pkg
