package swipe

// Outcome is what a decision produced. Matched is false for "none".
type Outcome struct {
	ProfileID string
	Liked     bool
	Matched   bool
}

// Match returns the match event carried by o, if any.
func (o Outcome) Match() (Match, bool) {
	if !o.Matched {
		return Match{}, false
	}
	return Match{WithProfileID: o.ProfileID}, true
}

// Presenter receives engine events. Implementations must not call back into
// the engine from inside a callback.
type Presenter interface {
	OnQueueReady(profiles []Profile)
	OnDecisionOutcome(o Outcome)
	OnError(kind ErrorKind, err error)
}

// NopPresenter discards every event.
type NopPresenter struct{}

func (NopPresenter) OnQueueReady([]Profile)    {}
func (NopPresenter) OnDecisionOutcome(Outcome) {}
func (NopPresenter) OnError(ErrorKind, error)  {}
