package swipe

// Effect is the top-level controller for the swipe line effect. It owns at
// most one active Session, the point filter, the session classification,
// and the dirty flag that decouples input handling from rendering.
//
// Effect has two entry points with no implicit scheduling between them:
//
//   - OnSample is the input phase. It only mutates geometry state and sets
//     the dirty marker. Call it once per recognizer event.
//   - OnFrame is the render phase. It consumes the dirty marker, rebuilds
//     the ribbon, drives the renderer and debug overlay, and clears the
//     marker. Call it once per frame from the host loop.
//
// Effect is not safe for concurrent use: all mutation happens
// synchronously inside these two calls and there is no internal locking.
type Effect struct {
	opts    effectOptions
	session *Session
	filter  *PointFilter
	class   Classification
	ribbon  *Ribbon
	dirty   bool
}

// NewEffect creates an effect with the given options.
func NewEffect(opts ...Option) *Effect {
	o := defaultEffectOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Effect{
		opts:   o,
		filter: NewPointFilter(o.segmentThreshold),
		class:  Click,
	}
}

// OnSample feeds one raw recognizer event into the effect.
//
// A First sample replaces any active session wholesale: the previous
// session's state is discarded, not gracefully closed. Samples arriving
// after a Final sample and before the next First one violate the caller
// contract and are dropped.
func (e *Effect) OnSample(sm Sample) {
	if sm.First || e.session == nil {
		if e.session != nil && !e.session.Ended() {
			Logger().Debug("swipe: active session replaced")
		}
		e.session = NewSession()
		e.filter.Reset()
		e.class = Click
		e.ribbon = nil
	}
	if e.session.Ended() {
		Logger().Debug("swipe: sample after session end dropped")
		return
	}

	e.session.AddSample(sm)

	// One-way transition: once a swipe, always a swipe.
	if e.class == Click && e.session.Traveled() > e.opts.swipeThreshold {
		e.class = Swipe
		Logger().Debug("swipe: session classified as swipe",
			"traveled", e.session.Traveled())
	}

	// The anchor is placed for every session; further vertices only
	// accumulate once the session is a swipe. Clicks collapse to the
	// anchor alone.
	if e.filter.Len() == 0 || e.class == Swipe {
		e.filter.Update(e.session)
	}
	if e.class == Swipe {
		e.filter.UpdateTailNormal()
	}

	if sm.Final {
		e.session.MarkEnded()
		Logger().Info("swipe: session ended",
			"class", e.class.String(),
			"traveled", e.session.Traveled(),
			"vertices", e.filter.Len())
	}
	e.dirty = true
}

// OnFrame performs the per-frame render pass. It does nothing and returns
// false unless input arrived since the previous call, which bounds the
// rendering cost to once per frame regardless of the input sample rate.
func (e *Effect) OnFrame() bool {
	if !e.dirty {
		return false
	}
	e.dirty = false

	e.ribbon = nil
	if e.class == Swipe {
		e.ribbon = BuildRibbon(e.filter.Points(), e.opts.width)
	}

	if e.opts.renderer != nil {
		if err := e.opts.renderer.DrawRibbon(e.ribbon); err != nil {
			Logger().Warn("swipe: ribbon draw failed", "err", err)
		}
	}
	if e.opts.overlay != nil {
		ended := e.session != nil && e.session.Ended()
		e.opts.overlay.Draw(e.filter.Points(), ended)
	}
	return true
}

// Dirty reports whether input has arrived since the last OnFrame.
func (e *Effect) Dirty() bool {
	return e.dirty
}

// Session returns the active session, or nil before the first sample.
func (e *Effect) Session() *Session {
	return e.session
}

// Classification returns the current session's classification.
func (e *Effect) Classification() Classification {
	return e.class
}

// Points returns the current filtered polyline. The slice is read-only to
// callers and is replaced when a new session starts.
func (e *Effect) Points() []FilteredPoint {
	return e.filter.Points()
}

// Ribbon returns the geometry built by the last OnFrame, or nil when the
// session is a click or has fewer than two vertices.
func (e *Effect) Ribbon() *Ribbon {
	return e.ribbon
}
