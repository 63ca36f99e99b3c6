package swipe

// Renderer is the interface for drawing ribbon geometry.
type Renderer interface {
	// DrawRibbon renders the ribbon for the current frame. A nil ribbon
	// means the session is a click or too short to extrude; renderers
	// should clear their previous output. Implementations own any
	// primitives they create and must dispose the previous frame's
	// primitive before creating a new one.
	DrawRibbon(r *Ribbon) error
}
