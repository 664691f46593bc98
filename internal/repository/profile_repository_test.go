package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/swipe-match/internal/db"
	"github.com/oggyb/swipe-match/internal/repository"
	"github.com/oggyb/swipe-match/internal/swipe"
)

func TestProfileQueryAgeRange(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	require.NoError(t, repo.Save(ctx, swipe.Profile{ID: "a", DisplayName: "A", Age: 25}))
	require.NoError(t, repo.Save(ctx, swipe.Profile{ID: "b", DisplayName: "B", Age: 40}))
	require.NoError(t, repo.Save(ctx, swipe.Profile{ID: "c", DisplayName: "C", Age: 30}))

	got, err := repo.Query(ctx, 20, 30)
	require.NoError(t, err)

	var ids []string
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []string{"a", "c"}, ids)
}

func TestProfileGetByID(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProfileRepository(setupTestDB(t))

	in := swipe.Profile{
		ID:            "u1",
		DisplayName:   "Kelly",
		Age:           23,
		Profession:    "Music DJ",
		PhotoRefs:     []string{"kelly1", "kelly2"},
		SeekingAgeMin: 20,
		SeekingAgeMax: 30,
	}
	require.NoError(t, repo.Save(ctx, in))

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, in, got)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, swipe.ErrNotFound)
}

func TestProfileSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	require.NoError(t, repo.Save(ctx, swipe.Profile{ID: "u1", DisplayName: "K", Age: 23, PhotoRefs: []string{"p1", "p2", "p3"}}))
	require.NoError(t, repo.Save(ctx, swipe.Profile{ID: "u1", DisplayName: "Kelly", Age: 24, PhotoRefs: []string{"p9"}}))

	var count int64
	require.NoError(t, dbase.Model(&db.Profile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Kelly", got.DisplayName)
	assert.Equal(t, 24, got.Age)
	assert.Equal(t, []string{"p9"}, got.PhotoRefs)
}

func TestProfileGetMany(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProfileRepository(setupTestDB(t))
	require.NoError(t, repo.Save(ctx, swipe.Profile{ID: "a", DisplayName: "A", Age: 25}))

	got, err := repo.GetMany(ctx, []string{"a", "ghost"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Contains(t, got, "a")
}

func TestProfileRegister(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	p := swipe.Profile{ID: "u1", DisplayName: "Jane", Age: 18}
	require.NoError(t, repo.Register(ctx, p, "jane@example.com", "hash"))

	var acc db.Account
	require.NoError(t, dbase.First(&acc, "profile_id = ?", "u1").Error)
	assert.Equal(t, "jane@example.com", acc.Email)

	err := repo.Register(ctx, swipe.Profile{ID: "u2", DisplayName: "Other", Age: 30}, "jane@example.com", "hash")
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	// the failed registration rolled back its profile row
	_, err = repo.GetByID(ctx, "u2")
	assert.ErrorIs(t, err, swipe.ErrNotFound)
}
