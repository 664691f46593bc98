package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/swipe-match/internal/db"
	"github.com/oggyb/swipe-match/internal/swipe"
	"github.com/oggyb/swipe-match/internal/utils/pagination"
)

// DecisionRepository provides data access methods for the Decision model.
// It is the persisted swipe ledger: swipe.LedgerStore plus the point
// lookup (swipe.DecisionLookup) used by match detection.
type DecisionRepository struct {
	db *gorm.DB
}

// NewDecisionRepository creates a new repository bound to the given DB connection.
func NewDecisionRepository(database *gorm.DB) *DecisionRepository {
	return &DecisionRepository{db: database}
}

var decisionConflict = clause.OnConflict{
	Columns:   []clause.Column{{Name: "decider_id"}, {Name: "target_id"}},
	DoUpdates: clause.AssignmentColumns([]string{"liked", "updated_at"}),
}

// Load returns every decision made by userID as targetID -> liked.
func (r *DecisionRepository) Load(ctx context.Context, userID string) (map[string]bool, error) {
	var rows []db.Decision
	err := r.db.WithContext(ctx).
		Select("target_id", "liked").
		Where("decider_id = ?", userID).
		Find(&rows).Error
	if err != nil {
		return nil, swipe.Unavailable("load ledger", err)
	}
	out := make(map[string]bool, len(rows))
	for _, d := range rows {
		out[d.TargetID] = d.Liked
	}
	return out, nil
}

// Upsert inserts or overwrites the (userID, targetID) decision.
func (r *DecisionRepository) Upsert(ctx context.Context, userID, targetID string, liked bool) error {
	_, err := r.UpsertDecision(ctx, userID, targetID, liked)
	return err
}

// UpsertDecision inserts or updates a decision made by decider -> target and
// returns the value it replaced (nil if the pair was new).
//
// Behavior:
//   - If (decider_id, target_id) exists → the row is updated with the new "liked" value.
//   - If it doesn't exist → a new row is inserted.
//   - Repeating the same value writes nothing, so updated_at is untouched.
//
// Example:
//
//	prev, _ := repo.UpsertDecision(ctx, "u1", "u2", true) // u1 liked u2
func (r *DecisionRepository) UpsertDecision(
	ctx context.Context,
	deciderID, targetID string,
	liked bool,
) (*bool, error) {
	var prev *bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db.Decision
		err := tx.Where("decider_id = ? AND target_id = ?", deciderID, targetID).
			Take(&existing).Error
		switch {
		case err == nil:
			v := existing.Liked
			prev = &v
			if v == liked {
				return nil // replay: keep updated_at so liker order and cursors hold
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		return tx.Clauses(decisionConflict).Create(&db.Decision{
			DeciderID: deciderID,
			TargetID:  targetID,
			Liked:     liked,
		}).Error
	})
	if err != nil {
		return nil, swipe.Unavailable("upsert decision", err)
	}
	return prev, nil
}

// Lookup is a point read of one decision.
func (r *DecisionRepository) Lookup(ctx context.Context, deciderID, targetID string) (bool, bool, error) {
	var d db.Decision
	err := r.db.WithContext(ctx).
		Where("decider_id = ? AND target_id = ?", deciderID, targetID).
		Take(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, false, nil
	}
	if err != nil {
		return false, false, swipe.Unavailable("lookup decision", err)
	}
	return d.Liked, true, nil
}

// GetLikers returns decisions of users who liked the given target.
//
// Behavior:
//   - Only decisions where target_id = X and liked = true are returned.
//   - Excludes users that the target explicitly passed (liked = false).
//   - Ordered by updated_at DESC, decider_id DESC.
//   - Supports cursor-based pagination via paginationToken.
func (r *DecisionRepository) GetLikers(
	ctx context.Context,
	targetID string,
	paginationToken *string,
	limit int,
) ([]db.Decision, *string, error) {
	return r.likers(ctx, targetID, paginationToken, limit, false)
}

// GetNewLikers returns users who liked the target but have not been liked back.
//
// Behavior:
//   - Same as GetLikers, additionally excluding mutual likes.
func (r *DecisionRepository) GetNewLikers(
	ctx context.Context,
	targetID string,
	paginationToken *string,
	limit int,
) ([]db.Decision, *string, error) {
	return r.likers(ctx, targetID, paginationToken, limit, true)
}

func (r *DecisionRepository) likers(
	ctx context.Context,
	targetID string,
	paginationToken *string,
	limit int,
	excludeMutual bool,
) ([]db.Decision, *string, error) {
	var decisions []db.Decision

	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	query := r.likersBase(ctx, targetID)
	if excludeMutual {
		subQuery := r.db.
			Table("decisions").
			Select("1").
			Where("decider_id = d.target_id AND target_id = d.decider_id AND liked = true")
		query = query.Where("NOT EXISTS (?)", subQuery)
	}
	query = query.
		Order("d.updated_at DESC, d.decider_id DESC").
		Limit(limit + 1)

	// apply cursor
	if !cursor.IsZero() {
		ts := time.UnixMilli(cursor.UpdatedUnix).UTC()
		query = query.Where(
			"(d.updated_at < ? OR (d.updated_at = ? AND d.decider_id < ?))",
			ts, ts, cursor.DeciderID,
		)
	}

	if err := query.Find(&decisions).Error; err != nil {
		return nil, nil, swipe.Unavailable("list likers", err)
	}

	// pagination: build next cursor if needed
	var nextToken *string
	if len(decisions) > limit {
		last := decisions[limit-1]
		token, _ := pagination.Encode(pagination.Cursor{
			DeciderID:   last.DeciderID,
			UpdatedUnix: last.UpdatedAt.UnixMilli(),
		})
		nextToken = &token
		decisions = decisions[:limit]
	}

	return decisions, nextToken, nil
}

// CountLikers returns how many users liked the given target, excluding
// users the target passed. Redis caches this value; the DB is the fallback.
func (r *DecisionRepository) CountLikers(ctx context.Context, targetID string) (int64, error) {
	var count int64
	if err := r.likersBase(ctx, targetID).Count(&count).Error; err != nil {
		return 0, swipe.Unavailable("count likers", err)
	}
	return count, nil
}

func (r *DecisionRepository) likersBase(ctx context.Context, targetID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("decisions d").
		Where("d.target_id = ? AND d.liked = true", targetID).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM decisions d2
				WHERE d2.decider_id = ?
				  AND d2.target_id = d.decider_id
				  AND d2.liked = false
			)`, targetID)
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
