package match

import (
	"context"
	"log/slog"

	"github.com/oggyb/swipe-match/internal/cache"
	"github.com/oggyb/swipe-match/internal/repository"
)

// countingLedger is the engine's ledger store. Decisions go to the
// repository; the cached "liked you" counts are adjusted only when a write
// actually changes what the counts see, so replays never drift them.
type countingLedger struct {
	decisions *repository.DecisionRepository
	counts    *cache.RedisCache
	log       *slog.Logger
}

func newCountingLedger(decisions *repository.DecisionRepository, counts *cache.RedisCache, log *slog.Logger) *countingLedger {
	return &countingLedger{decisions: decisions, counts: counts, log: log}
}

func (l *countingLedger) Load(ctx context.Context, userID string) (map[string]bool, error) {
	return l.decisions.Load(ctx, userID)
}

func (l *countingLedger) Lookup(ctx context.Context, deciderID, targetID string) (bool, bool, error) {
	return l.decisions.Lookup(ctx, deciderID, targetID)
}

// Upsert writes userID -> targetID and then reconciles two counters:
//   - targetID's count moves when userID's like appears or disappears,
//     unless targetID has passed userID (that like is hidden anyway).
//   - userID's count moves when userID starts or stops passing targetID,
//     but only if targetID liked userID.
//
// Counter failures never fail the write; the affected keys are dropped
// and recounted on the next read.
func (l *countingLedger) Upsert(ctx context.Context, userID, targetID string, liked bool) error {
	prev, err := l.decisions.UpsertDecision(ctx, userID, targetID, liked)
	if err != nil {
		return err
	}
	if prev != nil && *prev == liked {
		return nil
	}
	wasLiked := prev != nil && *prev
	wasPassed := prev != nil && !*prev

	back, found, err := l.decisions.Lookup(ctx, targetID, userID)
	if err != nil {
		l.log.Warn("like count reconcile skipped", "user", userID, "target", targetID, "err", err)
		l.invalidate(ctx, targetID, userID)
		return nil
	}

	if wasLiked != liked && !(found && !back) {
		l.adjust(ctx, targetID, delta(liked))
	}
	if wasPassed != !liked && found && back {
		l.adjust(ctx, userID, delta(wasPassed))
	}
	return nil
}

func (l *countingLedger) adjust(ctx context.Context, profileID string, d int64) {
	if _, err := l.counts.AdjustLikeCount(ctx, profileID, d); err != nil {
		l.log.Warn("like count adjust failed", "profile", profileID, "delta", d, "err", err)
		l.invalidate(ctx, profileID)
	}
}

func (l *countingLedger) invalidate(ctx context.Context, profileIDs ...string) {
	ctx = context.WithoutCancel(ctx)
	for _, id := range profileIDs {
		if err := l.counts.InvalidateLikeCount(ctx, id); err != nil {
			l.log.Error("like count invalidate failed", "profile", id, "err", err)
		}
	}
}

func delta(up bool) int64 {
	if up {
		return 1
	}
	return -1
}
