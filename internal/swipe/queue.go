package swipe

type node struct {
	profile Profile
	next    *node
}

// Queue is an ordered, singly linked run of candidates with a cursor that
// only moves forward. A Queue is never modified after it is built; a
// refresh produces a new one.
type Queue struct {
	head    *node
	current *node
	size    int
	pos     int
}

func newQueue(profiles []Profile) *Queue {
	q := &Queue{size: len(profiles)}
	var tail *node
	for _, p := range profiles {
		n := &node{profile: p}
		if tail == nil {
			q.head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	q.current = q.head
	return q
}

// Current returns the undecided head, or false when the queue is exhausted.
func (q *Queue) Current() (Profile, bool) {
	if q == nil || q.current == nil {
		return Profile{}, false
	}
	return q.current.profile, true
}

// advance moves the cursor one node forward.
func (q *Queue) advance() {
	if q.current == nil {
		return
	}
	q.current = q.current.next
	q.pos++
}

// Len is the number of candidates the queue was built with.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return q.size
}

// Remaining is the number of candidates at or after the cursor.
func (q *Queue) Remaining() int {
	if q == nil {
		return 0
	}
	return q.size - q.pos
}

// Pending returns the candidates from the cursor onward.
func (q *Queue) Pending() []Profile {
	if q == nil {
		return nil
	}
	out := make([]Profile, 0, q.Remaining())
	for n := q.current; n != nil; n = n.next {
		out = append(out, n.profile)
	}
	return out
}

// All returns every candidate in build order.
func (q *Queue) All() []Profile {
	if q == nil {
		return nil
	}
	out := make([]Profile, 0, q.size)
	for n := q.head; n != nil; n = n.next {
		out = append(out, n.profile)
	}
	return out
}
