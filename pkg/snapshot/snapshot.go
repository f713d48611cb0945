// Package snapshot implements the visualize_phases debug callback
// (SPEC_FULL.md §6 / spec.md §6): a pkg/laf.Sink that serializes each
// phase's Layout (as a parser.Document; the StructureInfo is not stored)
// into a caller-chosen store, and an HTTP
// server exposing the stored snapshots for a given run.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abstractlayout/laf/pkg/laf"
	"github.com/abstractlayout/laf/pkg/parser"
)

// Store is the storage backend a Sink writes phase snapshots to and a
// Server reads them back from. Get returns (nil, false, nil) on a miss,
// mirroring the teacher's own cache contract.
type Store interface {
	Put(ctx context.Context, runID string, phase laf.PhaseID, data []byte, ttl time.Duration) error
	Get(ctx context.Context, runID string, phase laf.PhaseID) ([]byte, bool, error)
	Close() error
}

// Record is what gets serialized to the store for each phase.
type Record struct {
	Phase    laf.PhaseID     `json:"phase"`
	Document parser.Document `json:"document"`
}

// Sink implements laf.Sink, writing one Record per phase to store under
// runID. TTL of zero means "store forever" (left to the Store to
// interpret — FileStore records no expiry for it, RedisStore passes it to
// SET, where zero means no expiration).
type Sink struct {
	Store Store
	RunID string
	TTL   time.Duration
	ctx   context.Context
}

// NewSink returns a Sink that persists every phase snapshot of runID to
// store. ctx bounds the Put calls (e.g. a request-scoped context when
// invoked synchronously from an HTTP handler); pass context.Background()
// for a detached pipeline run.
func NewSink(ctx context.Context, store Store, runID string, ttl time.Duration) *Sink {
	return &Sink{Store: store, RunID: runID, TTL: ttl, ctx: ctx}
}

// Observe implements laf.Sink.
func (s *Sink) Observe(snap laf.Snapshot) {
	rec := Record{
		Phase:    snap.Phase,
		Document: parser.ToDocument(snap.Layout),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return
	}
	_ = s.Store.Put(s.ctx, s.RunID, snap.Phase, data, s.TTL)
}

// key formats RedisStore's key for a run/phase pair; FileStore does not
// use it and derives a file path of its own (see FileStore.path).
func key(runID string, phase laf.PhaseID) string {
	return fmt.Sprintf("laf:run:%s:phase:%d", runID, phase)
}
