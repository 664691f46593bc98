package swipe

import "context"

// MatchResult is the outcome of a mutual-like check.
type MatchResult int

const (
	MatchNone MatchResult = iota
	MatchMatched
)

func (r MatchResult) String() string {
	if r == MatchMatched {
		return "matched"
	}
	return "none"
}

// Match is raised when two users have liked each other. It is not stored.
type Match struct {
	WithProfileID string
}

// Detector checks the mirror decision in the target's persisted ledger.
type Detector struct {
	store LedgerStore
}

// NewDetector creates a detector over store. If store implements
// DecisionLookup the check is a single point read.
func NewDetector(store LedgerStore) *Detector {
	return &Detector{store: store}
}

// CheckMatch reports MatchMatched iff targetID's current decision on selfID
// is a like. It assumes selfID has already recorded its own like and does
// not re-check it. The read always goes to the store, never to a session
// snapshot, so a concurrent like from the other side is observed.
//
// A target with no decision on selfID, or one that has since vanished,
// yields MatchNone.
func (d *Detector) CheckMatch(ctx context.Context, selfID, targetID string) (MatchResult, error) {
	if err := ctx.Err(); err != nil {
		return MatchNone, Unavailable("check match", err)
	}

	if lk, ok := d.store.(DecisionLookup); ok {
		liked, found, err := lk.Lookup(ctx, targetID, selfID)
		if err != nil {
			return MatchNone, Unavailable("check match", err)
		}
		if found && liked {
			return MatchMatched, nil
		}
		return MatchNone, nil
	}

	theirs, err := d.store.Load(ctx, targetID)
	if err != nil {
		return MatchNone, Unavailable("check match", err)
	}
	if theirs[selfID] {
		return MatchMatched, nil
	}
	return MatchNone, nil
}
