package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/swipe-match/internal/db"
	"github.com/oggyb/swipe-match/internal/swipe"
)

// ProfileRepository is the gorm-backed profile store.
// It satisfies swipe.ProfileStore and swipe.ProfileWriter.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new repository bound to the given DB connection.
func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

// Query returns profiles with ageMin <= age <= ageMax, oldest rows first.
func (r *ProfileRepository) Query(ctx context.Context, ageMin, ageMax int) ([]swipe.Profile, error) {
	var rows []db.Profile
	err := r.db.WithContext(ctx).
		Where("age BETWEEN ? AND ?", ageMin, ageMax).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, swipe.Unavailable("query profiles", err)
	}

	out := make([]swipe.Profile, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out, nil
}

// GetByID returns swipe.ErrNotFound when no row matches.
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (swipe.Profile, error) {
	var row db.Profile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return swipe.Profile{}, swipe.ErrNotFound
	}
	if err != nil {
		return swipe.Profile{}, swipe.Unavailable("get profile", err)
	}
	return toDomain(row), nil
}

// GetMany returns the profiles found among ids, keyed by id.
// Missing ids are simply absent from the result.
func (r *ProfileRepository) GetMany(ctx context.Context, ids []string) (map[string]swipe.Profile, error) {
	out := make(map[string]swipe.Profile, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []db.Profile
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, swipe.Unavailable("get profiles", err)
	}
	for _, row := range rows {
		out[row.ID] = toDomain(row)
	}
	return out, nil
}

// Save inserts or fully overwrites the profile row.
func (r *ProfileRepository) Save(ctx context.Context, p swipe.Profile) error {
	row := fromDomain(p)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"display_name", "age", "profession",
				"photo_ref1", "photo_ref2", "photo_ref3",
				"seeking_age_min", "seeking_age_max", "updated_at",
			}),
		}).
		Create(&row).Error
	if err != nil {
		return swipe.Unavailable("save profile", err)
	}
	return nil
}

// Register creates a profile together with its login account in one
// transaction.
func (r *ProfileRepository) Register(ctx context.Context, p swipe.Profile, email, passwordHash string) error {
	row := fromDomain(p)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return tx.Create(&db.Account{
			ProfileID:    p.ID,
			Email:        email,
			PasswordHash: passwordHash,
		}).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	if err != nil {
		return swipe.Unavailable("register profile", err)
	}
	return nil
}

// ErrDuplicate reports a registration that collides with an existing id or email.
var ErrDuplicate = errors.New("profile already exists")

func toDomain(row db.Profile) swipe.Profile {
	p := swipe.Profile{
		ID:            row.ID,
		DisplayName:   row.DisplayName,
		Age:           row.Age,
		Profession:    row.Profession,
		SeekingAgeMin: row.SeekingAgeMin,
		SeekingAgeMax: row.SeekingAgeMax,
	}
	for _, ref := range []string{row.PhotoRef1, row.PhotoRef2, row.PhotoRef3} {
		if ref != "" {
			p.PhotoRefs = append(p.PhotoRefs, ref)
		}
	}
	return p
}

func fromDomain(p swipe.Profile) db.Profile {
	var refs [swipe.MaxPhotoRefs]string
	copy(refs[:], p.PhotoRefs)
	return db.Profile{
		ID:            p.ID,
		DisplayName:   p.DisplayName,
		Age:           p.Age,
		Profession:    p.Profession,
		PhotoRef1:     refs[0],
		PhotoRef2:     refs[1],
		PhotoRef3:     refs[2],
		SeekingAgeMin: p.SeekingAgeMin,
		SeekingAgeMax: p.SeekingAgeMax,
	}
}
