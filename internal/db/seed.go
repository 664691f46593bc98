package db

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var demoProfessions = []string{"Music DJ", "Teacher", "Nurse", "Engineer", "Chef", "Designer", "Pilot"}

// upsertDecision is the same conflict clause the repository uses.
var upsertDecision = clause.OnConflict{
	Columns:   []clause.Column{{Name: "decider_id"}, {Name: "target_id"}},
	DoUpdates: clause.AssignmentColumns([]string{"liked", "updated_at"}),
}

// SeedTestData resets the database and populates it with demo profiles and decisions.
//
// Behavior:
//  1. Clears existing data in `decisions`, `accounts` and `profiles`.
//  2. Creates 20 profiles aged 18..57 with random seeking ranges, each with
//     an account (password "password").
//  3. Generates ~200 decisions with ~70% likes; every 3rd pair is made mutual.
//
// Compatible with both MySQL and SQLite.
func SeedTestData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if err := clearAll(db); err != nil {
		return err
	}
	log.Println("Cleared existing data")

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	ids := make([]string, 0, 20)
	for i := 1; i <= 20; i++ {
		id := uuid.NewString()
		minAge := 18 + r.Intn(15)
		p := Profile{
			ID:            id,
			DisplayName:   fmt.Sprintf("user%d", i),
			Age:           18 + r.Intn(40),
			Profession:    demoProfessions[r.Intn(len(demoProfessions))],
			PhotoRef1:     fmt.Sprintf("images/%s-1.jpg", id),
			SeekingAgeMin: minAge,
			SeekingAgeMax: minAge + 5 + r.Intn(20),
		}
		acc := Account{
			ProfileID:    id,
			Email:        fmt.Sprintf("user%d@example.com", i),
			PasswordHash: string(hash),
		}
		if err := db.Create(&p).Error; err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}
		if err := db.Create(&acc).Error; err != nil {
			return fmt.Errorf("failed to seed account: %w", err)
		}
		ids = append(ids, id)
	}
	log.Println("Seeded 20 profiles.")

	counter := 0
	for _, decider := range ids {
		for j := 0; j < 10; j++ {
			target := ids[r.Intn(len(ids))]
			if target == decider {
				continue
			}

			liked := r.Intn(100) < 70

			// guarantee mutual likes every 3rd pair
			if counter%3 == 0 {
				liked = true
				recip := Decision{DeciderID: target, TargetID: decider, Liked: true}
				if err := db.Clauses(upsertDecision).Create(&recip).Error; err != nil {
					return fmt.Errorf("failed to seed decision: %w", err)
				}
			}

			d := Decision{DeciderID: decider, TargetID: target, Liked: liked}
			if err := db.Clauses(upsertDecision).Create(&d).Error; err != nil {
				return fmt.Errorf("failed to seed decision: %w", err)
			}
			counter++
		}
	}
	log.Printf("Seeded %d decisions.", counter)

	return nil
}

// SeedMinimalTestData wipes the DB and inserts a small deterministic dataset:
//
//	u1 (30, seeks 25..35)  u2 (28)  u3 (33)  u4 (45)
//	u1 -> u2 like, u2 -> u1 like (mutual)
//	u3 -> u1 like, u1 -> u3 pass
func SeedMinimalTestData(db *gorm.DB) error {
	if err := clearAll(db); err != nil {
		return err
	}

	profiles := []Profile{
		{ID: "u1", DisplayName: "Kelly", Age: 30, Profession: "Music DJ", PhotoRef1: "kelly1", SeekingAgeMin: 25, SeekingAgeMax: 35},
		{ID: "u2", DisplayName: "Jane", Age: 28, Profession: "Teacher", PhotoRef1: "jane1"},
		{ID: "u3", DisplayName: "Sam", Age: 33, Profession: "Chef", PhotoRef1: "sam1"},
		{ID: "u4", DisplayName: "Alex", Age: 45, Profession: "Pilot", PhotoRef1: "alex1"},
	}
	if err := db.Create(&profiles).Error; err != nil {
		return err
	}

	decisions := []Decision{
		{DeciderID: "u1", TargetID: "u2", Liked: true},
		{DeciderID: "u2", TargetID: "u1", Liked: true},
		{DeciderID: "u3", TargetID: "u1", Liked: true},
		{DeciderID: "u1", TargetID: "u3", Liked: false},
	}
	return db.Create(&decisions).Error
}

func clearAll(db *gorm.DB) error {
	for _, table := range []string{"decisions", "accounts", "profiles"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}
