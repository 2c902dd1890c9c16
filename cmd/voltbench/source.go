package main

// stepSource drives an animation driver by explicit Step calls, used by the
// panel and export modes where there is no display loop.
type stepSource struct {
	pending func(float64)
}

func (s *stepSource) Request(cb func(now float64)) (func(), error) {
	s.pending = cb
	return func() { s.pending = nil }, nil
}

// Step fires the pending frame callback at the given wall time.
func (s *stepSource) Step(now float64) {
	if cb := s.pending; cb != nil {
		s.pending = nil
		cb(now)
	}
}
