package match

import (
	"context"
	"sync"
	"time"

	"github.com/oggyb/swipe-match/internal/metrics"
	"github.com/oggyb/swipe-match/internal/swipe"
)

// session is one live browsing session and the engine that owns its state.
type session struct {
	id       string
	userID   string
	engine   *swipe.Engine
	lastSeen time.Time
}

// Sessions is the in-memory registry of live sessions. A session idle for
// longer than ttl is closed and forgotten; the client recovers by starting
// a new one, which reloads the ledger.
type Sessions struct {
	mu    sync.Mutex
	items map[string]*session
	ttl   time.Duration
	now   func() time.Time
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		items: make(map[string]*session),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Put registers engine under id.
func (s *Sessions) Put(id, userID string, engine *swipe.Engine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = &session{id: id, userID: userID, engine: engine, lastSeen: s.now()}
	metrics.ActiveSessions.Set(float64(len(s.items)))
}

// Get returns the session and marks it as active. An expired session is
// closed and reported as missing.
func (s *Sessions) Get(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.items[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if s.expired(sess, now) {
		delete(s.items, id)
		metrics.ActiveSessions.Set(float64(len(s.items)))
		metrics.SessionsEvictedTotal.Inc()
		sess.engine.Close()
		return nil, false
	}
	sess.lastSeen = now
	return sess, true
}

// Remove closes and forgets a session. It reports whether it existed.
func (s *Sessions) Remove(id string) bool {
	s.mu.Lock()
	sess, ok := s.items[id]
	delete(s.items, id)
	metrics.ActiveSessions.Set(float64(len(s.items)))
	s.mu.Unlock()

	if ok {
		sess.engine.Close()
	}
	return ok
}

// Evict drops every idle session and returns how many were removed.
func (s *Sessions) Evict() int {
	s.mu.Lock()
	now := s.now()
	var stale []*session
	for id, sess := range s.items {
		if s.expired(sess, now) {
			delete(s.items, id)
			stale = append(stale, sess)
		}
	}
	metrics.ActiveSessions.Set(float64(len(s.items)))
	s.mu.Unlock()

	metrics.SessionsEvictedTotal.Add(float64(len(stale)))

	for _, sess := range stale {
		sess.engine.Close()
	}
	return len(stale)
}

// Len returns the number of registered sessions, expired or not.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// minJanitorInterval bounds how often the janitor sweeps.
const minJanitorInterval = time.Second

// JanitorInterval is the sweep period for an idle TTL: half the TTL, but
// never below one second.
func JanitorInterval(ttl time.Duration) time.Duration {
	return max(ttl/2, minJanitorInterval)
}

// Janitor calls Evict every interval until ctx is done. A non-positive
// interval is replaced by one second.
func (s *Sessions) Janitor(ctx context.Context, interval time.Duration, onEvict func(n int)) {
	if interval <= 0 {
		interval = minJanitorInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Evict(); n > 0 && onEvict != nil {
				onEvict(n)
			}
		}
	}
}

func (s *Sessions) expired(sess *session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.lastSeen) > s.ttl
}
