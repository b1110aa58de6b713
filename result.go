package mconstraint

import "slices"

// Result maps each built channel family to its settings.
type Result struct {
	order    []Channel
	settings map[Channel]*Settings
}

func newResult() *Result {
	return &Result{settings: make(map[Channel]*Settings)}
}

func (r *Result) add(s *Settings) {
	if _, ok := r.settings[s.Channel]; !ok {
		r.order = append(r.order, s.Channel)
	}
	r.settings[s.Channel] = s
}

// Get returns the settings built for ch.
func (r *Result) Get(ch Channel) (*Settings, bool) {
	s, ok := r.settings[ch]
	return s, ok
}

// Channels returns the built channel families in build order.
func (r *Result) Channels() []Channel {
	return slices.Clone(r.order)
}

// Last returns the settings of the last family built, or nil for an empty
// result.
func (r *Result) Last() *Settings {
	if len(r.order) == 0 {
		return nil
	}
	return r.settings[r.order[len(r.order)-1]]
}
