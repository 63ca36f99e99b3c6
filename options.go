package swipe

// DefaultRibbonWidth is the full ribbon width used when no option
// overrides it, in source-surface pixels.
const DefaultRibbonWidth = 8.0

// Option configures an Effect during creation.
// Use functional options to customize Effect behavior.
//
// Example:
//
//	// Default thresholds, no rendering
//	effect := swipe.NewEffect()
//
//	// Custom renderer and a wider ribbon
//	effect := swipe.NewEffect(
//	    swipe.WithRenderer(r),
//	    swipe.WithRibbonWidth(16),
//	)
type Option func(*effectOptions)

// effectOptions holds optional configuration for Effect creation.
type effectOptions struct {
	segmentThreshold float64
	swipeThreshold   float64
	width            float64
	renderer         Renderer
	overlay          *DebugOverlay
}

// defaultEffectOptions returns the default effect options.
func defaultEffectOptions() effectOptions {
	return effectOptions{
		segmentThreshold: SegmentThreshold,
		swipeThreshold:   SwipeThreshold,
		width:            DefaultRibbonWidth,
	}
}

// WithSegmentThreshold sets the minimum traveled-distance delta between
// committed polyline vertices. Non-positive values are ignored.
func WithSegmentThreshold(d float64) Option {
	return func(o *effectOptions) {
		if d > 0 {
			o.segmentThreshold = d
		}
	}
}

// WithSwipeThreshold sets the traveled distance above which a session is
// classified as a swipe instead of a click. Non-positive values are
// ignored.
func WithSwipeThreshold(d float64) Option {
	return func(o *effectOptions) {
		if d > 0 {
			o.swipeThreshold = d
		}
	}
}

// WithRibbonWidth sets the full ribbon width in source-surface pixels.
func WithRibbonWidth(w float64) Option {
	return func(o *effectOptions) {
		if w > 0 {
			o.width = w
		}
	}
}

// WithRenderer sets the renderer driven by OnFrame.
// Use this for dependency injection of GPU or custom renderers.
func WithRenderer(r Renderer) Option {
	return func(o *effectOptions) {
		o.renderer = r
	}
}

// WithDebugOverlay sets an optional debug drawing surface. When present,
// OnFrame draws each filtered point and its normal onto it.
func WithDebugOverlay(ov *DebugOverlay) Option {
	return func(o *effectOptions) {
		o.overlay = ov
	}
}
