package swipe_test

import (
	"context"
	"errors"
	"sync"

	"github.com/oggyb/swipe-match/internal/swipe"
)

var errBoom = errors.New("connection reset")

// memStore is an in-memory profile + ledger store for engine tests.
type memStore struct {
	mu       sync.Mutex
	profiles []swipe.Profile
	ledgers  map[string]map[string]bool
	upserts  int

	failQuery  bool
	failLoad   bool
	failUpsert bool
	failSave   bool
}

func newMemStore(profiles ...swipe.Profile) *memStore {
	return &memStore{profiles: profiles, ledgers: map[string]map[string]bool{}}
}

func (s *memStore) Query(_ context.Context, ageMin, ageMax int) ([]swipe.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failQuery {
		return nil, errBoom
	}
	var out []swipe.Profile
	for _, p := range s.profiles {
		if p.Age >= ageMin && p.Age <= ageMax {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memStore) GetByID(_ context.Context, id string) (swipe.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return swipe.Profile{}, swipe.ErrNotFound
}

func (s *memStore) Save(_ context.Context, p swipe.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave {
		return errBoom
	}
	for i := range s.profiles {
		if s.profiles[i].ID == p.ID {
			s.profiles[i] = p
			return nil
		}
	}
	s.profiles = append(s.profiles, p)
	return nil
}

func (s *memStore) Load(ctx context.Context, userID string) (map[string]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failLoad {
		return nil, errBoom
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := map[string]bool{}
	for k, v := range s.ledgers[userID] {
		out[k] = v
	}
	return out, nil
}

func (s *memStore) Upsert(ctx context.Context, userID, targetID string, liked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failUpsert {
		return errBoom
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.ledgers[userID] == nil {
		s.ledgers[userID] = map[string]bool{}
	}
	s.ledgers[userID][targetID] = liked
	s.upserts++
	return nil
}

func (s *memStore) ledger(userID string) map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := map[string]bool{}
	for k, v := range s.ledgers[userID] {
		out[k] = v
	}
	return out
}

// lookupStore adds the point-read capability on top of memStore.
type lookupStore struct {
	*memStore
	lookups int
}

func (s *lookupStore) Lookup(_ context.Context, deciderID, targetID string) (bool, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookups++
	liked, ok := s.ledgers[deciderID][targetID]
	return liked, ok, nil
}

// recorder captures presenter callbacks.
type recorder struct {
	queues   [][]swipe.Profile
	outcomes []swipe.Outcome
	errs     []swipe.ErrorKind
}

func (r *recorder) OnQueueReady(p []swipe.Profile)     { r.queues = append(r.queues, p) }
func (r *recorder) OnDecisionOutcome(o swipe.Outcome)  { r.outcomes = append(r.outcomes, o) }
func (r *recorder) OnError(k swipe.ErrorKind, _ error) { r.errs = append(r.errs, k) }

func ids(ps []swipe.Profile) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}
