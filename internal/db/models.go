package db

import (
	"time"
)

// Profile table. One row per user; written only by its owner via settings.
//
// Indexes:
//   - idx_profiles_age(age)
//     Serves the seeking-age range query that feeds candidate queues.
//
// Photo slots mirror the client's three fixed image buttons; empty slots
// are stored as "".
type Profile struct {
	ID            string    `gorm:"primaryKey;size:64"`
	DisplayName   string    `gorm:"size:128;not null"`
	Age           int       `gorm:"not null;index:idx_profiles_age"`
	Profession    string    `gorm:"size:128"`
	PhotoRef1     string    `gorm:"size:512"`
	PhotoRef2     string    `gorm:"size:512"`
	PhotoRef3     string    `gorm:"size:512"`
	SeekingAgeMin int       `gorm:"not null;default:0"`
	SeekingAgeMax int       `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

// Account holds login credentials for a profile.
type Account struct {
	ProfileID    string    `gorm:"primaryKey;size:64"`
	Email        string    `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// Decision represents a decider's like/pass on a target profile.
//
// Composite PK: (DeciderID, TargetID)
//   - Ensures a single row per pair (last write wins, no history).
//
// Indexes:
//   - idx_target_liked_updated_decider(target_id, liked, updated_at DESC, decider_id)
//     Optimizes "who liked me" lists with pagination.
//   - idx_decider_target_liked(decider_id, target_id, liked)
//     Optimizes the single-row mirror lookup used for match detection.
//
// Fields:
//   - DeciderID: The user making the decision.
//   - TargetID: The profile being liked/passed.
//   - Liked: true if liked, false if passed.
//   - CreatedAt: When the decision was first created.
//   - UpdatedAt: When the decision was last updated.
type Decision struct {
	DeciderID string    `gorm:"primaryKey;size:64;index:idx_decider_target_liked,priority:1"`
	TargetID  string    `gorm:"primaryKey;size:64;index:idx_target_liked_updated_decider,priority:1;index:idx_decider_target_liked,priority:2"`
	Liked     bool      `gorm:"not null;index:idx_target_liked_updated_decider,priority:2;index:idx_decider_target_liked,priority:3"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index:idx_target_liked_updated_decider,priority:3,sort:desc"`
}

// Models lists every table managed by AutoMigrate.
func Models() []any {
	return []any{&Profile{}, &Account{}, &Decision{}}
}
