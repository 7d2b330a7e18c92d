package behavior

// Reveal tracks one-shot visibility: an element gets "is-visible" the
// first time enough of it intersects the viewport and is then no longer
// observed.
type Reveal struct {
	threshold float64
	observed  map[string]bool
	visible   map[string]bool
}

// NewReveal creates a tracker firing at the given visible fraction
func NewReveal(threshold float64) *Reveal {
	return &Reveal{
		threshold: threshold,
		observed:  make(map[string]bool),
		visible:   make(map[string]bool),
	}
}

// Observe starts watching id
func (r *Reveal) Observe(id string) {
	if !r.visible[id] {
		r.observed[id] = true
	}
}

// Intersect reports an intersection ratio for id and returns true when
// the element became visible on this call.
func (r *Reveal) Intersect(id string, ratio float64) bool {
	if !r.observed[id] || ratio <= 0 || ratio < r.threshold {
		return false
	}
	delete(r.observed, id)
	r.visible[id] = true
	return true
}

// Visible reports whether id has been revealed
func (r *Reveal) Visible(id string) bool {
	return r.visible[id]
}

// Observing reports whether id is still watched
func (r *Reveal) Observing(id string) bool {
	return r.observed[id]
}
