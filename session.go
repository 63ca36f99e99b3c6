package swipe

// Session owns the lifetime of one physical gesture, from its first sample
// (pointer-down) to its final one (pointer-up). It accumulates the raw
// sample history and the cumulative traveled distance.
//
// Traveled distance is defined only relative to the session's own history;
// it is monotonically non-decreasing and never resets mid-session.
type Session struct {
	samples  []Sample
	traveled float64
	ended    bool
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{
		samples: make([]Sample, 0, 16),
	}
}

// AddSample appends a raw sample and extends the cumulative traveled
// distance by the displacement from the previous sample's center (zero for
// the very first sample).
//
// Calling AddSample after the session has ended is a caller contract
// violation; the call is silently ignored.
func (s *Session) AddSample(sm Sample) {
	if s.ended {
		Logger().Debug("swipe: sample after session end dropped")
		return
	}
	if n := len(s.samples); n > 0 {
		s.traveled += sm.Center.Distance(s.samples[n-1].Center)
	}
	s.samples = append(s.samples, sm)
}

// MarkEnded marks the session as ended. Idempotent.
func (s *Session) MarkEnded() {
	s.ended = true
}

// Ended returns true once the final sample has been appended.
func (s *Session) Ended() bool {
	return s.ended
}

// Traveled returns the cumulative traveled distance: the sum of
// consecutive sample displacements since the session started.
func (s *Session) Traveled() float64 {
	return s.traveled
}

// Len returns the number of samples appended so far.
func (s *Session) Len() int {
	return len(s.samples)
}

// Samples returns the ordered sample history. The returned slice is the
// session's backing store; callers must not modify it.
func (s *Session) Samples() []Sample {
	return s.samples
}

// Last returns the most recent sample. ok is false for an empty session.
func (s *Session) Last() (sm Sample, ok bool) {
	if len(s.samples) == 0 {
		return Sample{}, false
	}
	return s.samples[len(s.samples)-1], true
}
