package match

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/swipe-match/internal/logger"
	"github.com/oggyb/swipe-match/internal/metrics"
	"github.com/oggyb/swipe-match/internal/swipe"
)

func newTestSessions(ttl time.Duration) (*Sessions, *time.Time) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewSessions(ttl)
	s.now = func() time.Time { return now }
	return s, &now
}

func idleEngine() *swipe.Engine {
	return swipe.NewEngine(swipe.Options{Logger: logger.Discard()})
}

func TestSessions_GetTouches(t *testing.T) {
	s, now := newTestSessions(time.Minute)
	s.Put("s1", "u1", idleEngine())

	*now = now.Add(50 * time.Second)
	sess, ok := s.Get("s1")
	require.True(t, ok)
	assert.Equal(t, "u1", sess.userID)

	// the Get above reset the idle clock
	*now = now.Add(50 * time.Second)
	_, ok = s.Get("s1")
	assert.True(t, ok)
}

func TestSessions_ExpiredOnGet(t *testing.T) {
	s, now := newTestSessions(time.Minute)
	s.Put("s1", "u1", idleEngine())

	*now = now.Add(2 * time.Minute)
	_, ok := s.Get("s1")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestSessions_Evict(t *testing.T) {
	s, now := newTestSessions(time.Minute)
	s.Put("old", "u1", idleEngine())
	*now = now.Add(45 * time.Second)
	s.Put("fresh", "u2", idleEngine())

	*now = now.Add(30 * time.Second)
	before := testutil.ToFloat64(metrics.SessionsEvictedTotal)
	assert.Equal(t, 1, s.Evict())
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.SessionsEvictedTotal))

	_, ok := s.Get("fresh")
	assert.True(t, ok)
	_, ok = s.Get("old")
	assert.False(t, ok)
}

func TestSessions_Remove(t *testing.T) {
	s, _ := newTestSessions(0)
	s.Put("s1", "u1", idleEngine())

	assert.True(t, s.Remove("s1"))
	assert.False(t, s.Remove("s1"))
	_, ok := s.Get("s1")
	assert.False(t, ok)
}

func TestSessions_ZeroTTLNeverExpires(t *testing.T) {
	s, now := newTestSessions(0)
	s.Put("s1", "u1", idleEngine())

	*now = now.Add(24 * time.Hour)
	assert.Equal(t, 0, s.Evict())
	_, ok := s.Get("s1")
	assert.True(t, ok)
}

func TestSessions_JanitorStopsWithContext(t *testing.T) {
	s := NewSessions(time.Nanosecond)
	s.Put("s1", "u1", idleEngine())

	ctx, cancel := context.WithCancel(context.Background())
	evicted := make(chan int, 1)
	done := make(chan struct{})
	go func() {
		s.Janitor(ctx, time.Millisecond, func(n int) {
			select {
			case evicted <- n:
			default:
			}
		})
		close(done)
	}()

	select {
	case n := <-evicted:
		assert.Equal(t, 1, n)
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not evict")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestJanitorInterval(t *testing.T) {
	assert.Equal(t, 15*time.Minute, JanitorInterval(30*time.Minute))
	assert.Equal(t, time.Second, JanitorInterval(time.Nanosecond))
	assert.Equal(t, time.Second, JanitorInterval(0))
}

func TestSessions_JanitorZeroIntervalDoesNotPanic(t *testing.T) {
	s := NewSessions(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Janitor(ctx, 0, nil)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop")
	}
}
