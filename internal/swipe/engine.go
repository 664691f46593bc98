package swipe

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/oggyb/swipe-match/internal/logger"
)

// Options wires an Engine to its collaborators.
type Options struct {
	Profiles ProfileStore
	Ledger   LedgerStore

	// Writer is required by SaveSettings only.
	Writer ProfileWriter

	// Optional. Logger defaults to the global logger, Defaults to {18, 50}.
	Presenter Presenter
	Logger    *slog.Logger
	Defaults  AgeRange
}

// Engine runs one user's browsing session: it owns the ledger snapshot and
// the candidate queue, and turns like/dislike intents into outcomes.
//
// Each candidate moves Pending -> Decided exactly once. Calls are
// serialized, so a duplicate submission sees the advanced cursor and fails
// with ErrInvalidState.
type Engine struct {
	mu sync.Mutex

	profiles  ProfileStore
	writer    ProfileWriter
	store     LedgerStore
	pipeline  *Pipeline
	detector  *Detector
	presenter Presenter
	log       *slog.Logger

	self   Profile
	ledger *Ledger
	queue  *Queue
}

// NewEngine creates an idle engine. Call Start before anything else.
func NewEngine(opts Options) *Engine {
	p := opts.Presenter
	if p == nil {
		p = NopPresenter{}
	}
	l := opts.Logger
	if l == nil {
		l = logger.L()
	}
	return &Engine{
		profiles:  opts.Profiles,
		writer:    opts.Writer,
		store:     opts.Ledger,
		pipeline:  NewPipeline(opts.Profiles, opts.Defaults),
		detector:  NewDetector(opts.Ledger),
		presenter: p,
		log:       l,
	}
}

// Start loads userID's profile and ledger, then builds the first queue.
// It is also the recovery path after a crash or lost session: reloading
// the ledger before building re-excludes anything already decided.
// Nothing changes on failure.
func (e *Engine) Start(ctx context.Context, userID string) ([]Profile, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	self, err := e.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, e.fail("start", Unavailable("get profile", err))
	}

	ledger := NewLedger(e.store, userID)
	if _, err := ledger.Load(ctx); err != nil {
		return nil, e.fail("start", err)
	}

	q, err := e.pipeline.BuildQueue(ctx, self, ledger.HasDecision)
	if err != nil {
		return nil, e.fail("start", err)
	}

	e.self, e.ledger, e.queue = self, ledger, q
	e.log.Debug("session started", "user", userID, "decided", len(ledger.snapshot), "candidates", q.Len())

	pending := q.Pending()
	e.presenter.OnQueueReady(pending)
	return pending, nil
}

// Refresh discards the current queue and builds a new one against the
// in-memory ledger snapshot.
func (e *Engine) Refresh(ctx context.Context) ([]Profile, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireStarted(); err != nil {
		return nil, e.fail("refresh", err)
	}
	return e.rebuild(ctx, "refresh")
}

// Decide records liked for profileID, which must be the current head.
//
// The ledger write always precedes the match check, and the cursor moves
// only after both succeed. A "none" outcome is a normal result.
func (e *Engine) Decide(ctx context.Context, profileID string, liked bool) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireStarted(); err != nil {
		return Outcome{}, e.fail("decide", err)
	}
	head, ok := e.queue.Current()
	if !ok {
		return Outcome{}, e.fail("decide", fmt.Errorf("%w: queue is exhausted", ErrInvalidState))
	}
	if head.ID != profileID {
		return Outcome{}, e.fail("decide",
			fmt.Errorf("%w: %q is not the current candidate", ErrInvalidState, profileID))
	}

	if err := e.ledger.RecordDecision(ctx, profileID, liked); err != nil {
		return Outcome{}, e.fail("decide", err)
	}

	out := Outcome{ProfileID: profileID, Liked: liked}
	if liked {
		res, err := e.detector.CheckMatch(ctx, e.self.ID, profileID)
		if err != nil {
			return Outcome{}, e.fail("decide", err)
		}
		out.Matched = res == MatchMatched
	}

	e.queue.advance()
	e.log.Debug("decision recorded",
		"user", e.self.ID,
		"target", profileID,
		"liked", liked,
		"matched", out.Matched,
	)
	e.presenter.OnDecisionOutcome(out)
	return out, nil
}

// CheckMatch re-runs the mutual-like check for profileID. It has no side
// effects and may be called any number of times.
func (e *Engine) CheckMatch(ctx context.Context, profileID string) (MatchResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireStarted(); err != nil {
		return MatchNone, e.fail("check match", err)
	}
	res, err := e.detector.CheckMatch(ctx, e.self.ID, profileID)
	if err != nil {
		return MatchNone, e.fail("check match", err)
	}
	return res, nil
}

// SaveSettings merges s into the session's profile, clamps the seeking
// range, persists it, and rebuilds the queue for the new preferences.
func (e *Engine) SaveSettings(ctx context.Context, s Settings) (Profile, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireStarted(); err != nil {
		return Profile{}, e.fail("save settings", err)
	}
	if e.writer == nil {
		return Profile{}, e.fail("save settings", fmt.Errorf("%w: no profile writer configured", ErrInvalidState))
	}

	updated := s.Apply(e.self, e.pipeline.defaults)
	if err := ctx.Err(); err != nil {
		return Profile{}, e.fail("save settings", Unavailable("save profile", err))
	}
	if err := e.writer.Save(ctx, updated); err != nil {
		return Profile{}, e.fail("save settings", Unavailable("save profile", err))
	}
	e.self = updated

	if _, err := e.rebuild(ctx, "save settings"); err != nil {
		return updated, err
	}
	return updated, nil
}

// Self returns the session owner's profile.
func (e *Engine) Self() Profile {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.self
}

// Current returns the undecided head of the queue.
func (e *Engine) Current() (Profile, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.queue.Current()
}

// Pending returns the undecided candidates from the cursor onward.
func (e *Engine) Pending() []Profile {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.queue.Pending()
}

// HasDecision reports whether the session has a decision on targetID.
func (e *Engine) HasDecision(targetID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger != nil && e.ledger.HasDecision(targetID)
}

// Close drops session state; a later Start reloads everything.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ledger != nil {
		e.ledger.Invalidate()
	}
	e.ledger, e.queue, e.self = nil, nil, Profile{}
}

func (e *Engine) rebuild(ctx context.Context, op string) ([]Profile, error) {
	q, err := e.pipeline.BuildQueue(ctx, e.self, e.ledger.HasDecision)
	if err != nil {
		return nil, e.fail(op, err)
	}
	e.queue = q
	pending := q.Pending()
	e.presenter.OnQueueReady(pending)
	return pending, nil
}

func (e *Engine) requireStarted() error {
	if e.ledger == nil {
		return fmt.Errorf("%w: session not started", ErrInvalidState)
	}
	return nil
}

func (e *Engine) fail(op string, err error) error {
	kind := KindOf(err)
	switch kind {
	case KindInvalidState, KindNotFound:
		e.log.Warn(op+" rejected", "user", e.self.ID, "kind", kind.String(), "err", err)
	default:
		e.log.Error(op+" failed", "user", e.self.ID, "kind", kind.String(), "err", err)
	}
	e.presenter.OnError(kind, err)
	return err
}

// IsRetryable reports whether err is worth retrying by the caller.
func IsRetryable(err error) bool {
	return KindOf(err) == KindStoreUnavailable
}
