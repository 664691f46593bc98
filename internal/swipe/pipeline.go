package swipe

import "context"

// Pipeline builds candidate queues from the profile store.
type Pipeline struct {
	profiles ProfileStore
	defaults AgeRange
}

// NewPipeline creates a pipeline. A zero defaults value means {18, 50}.
func NewPipeline(profiles ProfileStore, defaults AgeRange) *Pipeline {
	if defaults.Min <= 0 || defaults.Max <= 0 {
		defaults = DefaultAgeRange()
	}
	return &Pipeline{profiles: profiles, defaults: defaults}
}

// BuildQueue returns a fresh queue of profiles inside the current user's
// seeking range, minus the user themself and every id for which exclude
// reports true. Store order is preserved. exclude may be nil.
//
// Errors from the store are returned as ErrStoreUnavailable; there is no
// retry here.
func (p *Pipeline) BuildQueue(ctx context.Context, currentUser Profile, exclude func(id string) bool) (*Queue, error) {
	r := currentUser.SeekingRange(p.defaults)

	if err := ctx.Err(); err != nil {
		return nil, Unavailable("query profiles", err)
	}
	found, err := p.profiles.Query(ctx, r.Min, r.Max)
	if err != nil {
		return nil, Unavailable("query profiles", err)
	}

	out := make([]Profile, 0, len(found))
	for _, c := range found {
		if c.ID == currentUser.ID || c.Age < r.Min || c.Age > r.Max {
			continue
		}
		if exclude != nil && exclude(c.ID) {
			continue
		}
		out = append(out, c)
	}
	return newQueue(out), nil
}
