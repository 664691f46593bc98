package swipe

import (
	"context"
	"maps"
)

// Ledger is one decider's swipe history for a browsing session.
//
// The snapshot is loaded once and then kept authoritative in memory: local
// writes are applied after the store acknowledges them, and nothing is
// re-read from the store until Invalidate.
type Ledger struct {
	store     LedgerStore
	deciderID string
	snapshot  map[string]bool
	loaded    bool
}

// NewLedger binds a ledger to deciderID. Call Load before HasDecision.
func NewLedger(store LedgerStore, deciderID string) *Ledger {
	return &Ledger{store: store, deciderID: deciderID, snapshot: map[string]bool{}}
}

// DeciderID returns the owner of this ledger.
func (l *Ledger) DeciderID() string { return l.deciderID }

// Load fetches the decider's full decision set and replaces the snapshot.
// On failure the previous snapshot is kept.
func (l *Ledger) Load(ctx context.Context) (map[string]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, Unavailable("load ledger", err)
	}
	m, err := l.store.Load(ctx, l.deciderID)
	if err != nil {
		return nil, Unavailable("load ledger", err)
	}
	snap := make(map[string]bool, len(m))
	maps.Copy(snap, m)
	l.snapshot = snap
	l.loaded = true
	return maps.Clone(snap), nil
}

// Loaded reports whether a snapshot is present.
func (l *Ledger) Loaded() bool { return l.loaded }

// RecordDecision upserts (decider, targetID) -> liked.
// Repeating the call with identical arguments is a no-op on state.
func (l *Ledger) RecordDecision(ctx context.Context, targetID string, liked bool) error {
	if err := ctx.Err(); err != nil {
		return Unavailable("record decision", err)
	}
	if err := l.store.Upsert(ctx, l.deciderID, targetID, liked); err != nil {
		return Unavailable("record decision", err)
	}
	l.snapshot[targetID] = liked
	return nil
}

// HasDecision reports whether targetID was decided in this session's snapshot.
func (l *Ledger) HasDecision(targetID string) bool {
	_, ok := l.snapshot[targetID]
	return ok
}

// Decision returns the recorded value for targetID, if any.
func (l *Ledger) Decision(targetID string) (liked, ok bool) {
	liked, ok = l.snapshot[targetID]
	return liked, ok
}

// Snapshot returns a copy of the in-memory mapping.
func (l *Ledger) Snapshot() map[string]bool { return maps.Clone(l.snapshot) }

// Invalidate drops the snapshot; the next Load starts fresh.
func (l *Ledger) Invalidate() {
	l.snapshot = map[string]bool{}
	l.loaded = false
}
