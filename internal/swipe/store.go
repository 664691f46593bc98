package swipe

import "context"

// ProfileStore is the read side of the shared profile collection.
type ProfileStore interface {
	// Query returns profiles whose age lies in [ageMin, ageMax] inclusive,
	// in the store's own order.
	Query(ctx context.Context, ageMin, ageMax int) ([]Profile, error)
	// GetByID returns ErrNotFound when id is absent.
	GetByID(ctx context.Context, id string) (Profile, error)
}

// ProfileWriter persists a profile on behalf of its owner (settings save).
type ProfileWriter interface {
	Save(ctx context.Context, p Profile) error
}

// LedgerStore persists swipe decisions keyed by (userID, targetID).
type LedgerStore interface {
	Load(ctx context.Context, userID string) (map[string]bool, error)
	Upsert(ctx context.Context, userID, targetID string, liked bool) error
}

// DecisionLookup is an optional LedgerStore capability: a point read of one
// decision instead of loading a whole ledger.
type DecisionLookup interface {
	Lookup(ctx context.Context, deciderID, targetID string) (liked, found bool, err error)
}
