package swipe_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/swipe-match/internal/swipe"
)

func TestBuildQueue_AgeRange(t *testing.T) {
	store := newMemStore(
		swipe.Profile{ID: "a", Age: 25},
		swipe.Profile{ID: "b", Age: 40},
	)
	p := swipe.NewPipeline(store, swipe.AgeRange{})
	me := swipe.Profile{ID: "me", Age: 28, SeekingAgeMin: 20, SeekingAgeMax: 30}

	q, err := p.BuildQueue(context.Background(), me, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(q.All()))
}

func TestBuildQueue_BoundsAreInclusive(t *testing.T) {
	store := newMemStore(
		swipe.Profile{ID: "lo", Age: 20},
		swipe.Profile{ID: "hi", Age: 30},
		swipe.Profile{ID: "out", Age: 31},
	)
	p := swipe.NewPipeline(store, swipe.AgeRange{})
	me := swipe.Profile{ID: "me", SeekingAgeMin: 20, SeekingAgeMax: 30}

	q, err := p.BuildQueue(context.Background(), me, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"lo", "hi"}, ids(q.All()))
}

func TestBuildQueue_DefaultsWhenUnset(t *testing.T) {
	store := newMemStore(
		swipe.Profile{ID: "young", Age: 17},
		swipe.Profile{ID: "a", Age: 18},
		swipe.Profile{ID: "b", Age: 50},
		swipe.Profile{ID: "old", Age: 51},
	)
	p := swipe.NewPipeline(store, swipe.AgeRange{})

	q, err := p.BuildQueue(context.Background(), swipe.Profile{ID: "me"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(q.All()))
}

func TestBuildQueue_ExcludesSelfAndDecided(t *testing.T) {
	store := newMemStore(
		swipe.Profile{ID: "c", Age: 30},
		swipe.Profile{ID: "me", Age: 30},
		swipe.Profile{ID: "a", Age: 30},
		swipe.Profile{ID: "b", Age: 30},
	)
	p := swipe.NewPipeline(store, swipe.AgeRange{})
	decided := map[string]bool{"a": false}

	q, err := p.BuildQueue(context.Background(), swipe.Profile{ID: "me"}, func(id string) bool {
		_, ok := decided[id]
		return ok
	})
	require.NoError(t, err)
	// store order, not sorted
	assert.Equal(t, []string{"c", "b"}, ids(q.All()))
}

func TestBuildQueue_FreshQueueEachCall(t *testing.T) {
	store := newMemStore(swipe.Profile{ID: "a", Age: 30}, swipe.Profile{ID: "b", Age: 30})
	p := swipe.NewPipeline(store, swipe.AgeRange{})
	me := swipe.Profile{ID: "me"}

	q1, err := p.BuildQueue(context.Background(), me, nil)
	require.NoError(t, err)
	q2, err := p.BuildQueue(context.Background(), me, nil)
	require.NoError(t, err)

	assert.NotSame(t, q1, q2)
	assert.Equal(t, q1.All(), q2.All())
}

func TestBuildQueue_StoreFailure(t *testing.T) {
	store := newMemStore()
	store.failQuery = true
	p := swipe.NewPipeline(store, swipe.AgeRange{})

	q, err := p.BuildQueue(context.Background(), swipe.Profile{ID: "me"}, nil)
	require.ErrorIs(t, err, swipe.ErrStoreUnavailable)
	assert.ErrorIs(t, err, errBoom)
	assert.Nil(t, q)
}

func TestQueue_Cursor(t *testing.T) {
	store := newMemStore(swipe.Profile{ID: "a", Age: 30}, swipe.Profile{ID: "b", Age: 30})
	eng := swipe.NewEngine(swipe.Options{Profiles: store, Ledger: store})
	store.profiles = append(store.profiles, swipe.Profile{ID: "me", Age: 99, SeekingAgeMin: 30, SeekingAgeMax: 30})

	pending, err := eng.Start(context.Background(), "me")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(pending))

	_, err = eng.Decide(context.Background(), "a", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids(eng.Pending()))

	_, err = eng.Decide(context.Background(), "b", false)
	require.NoError(t, err)
	_, ok := eng.Current()
	assert.False(t, ok)

	_, err = eng.Decide(context.Background(), "b", false)
	assert.ErrorIs(t, err, swipe.ErrInvalidState)
}
