package swipe

// Sample is one raw input event emitted by a gesture recognizer.
type Sample struct {
	// Center is the pointer position in source-surface pixel coordinates.
	Center Point

	// First marks the initial sample of a physical gesture
	// (pointer-down). Receiving a First sample starts a new session and
	// discards any session still active.
	First bool

	// Final marks the last sample of a physical gesture (pointer-up).
	Final bool

	// Device carries opaque metadata about the input device that produced
	// the sample. The library passes it through unmodified.
	Device any
}

// Source delivers raw gesture samples in chronological order.
// Implementations are external recognizers; the library only consumes the
// Sample values they emit.
type Source interface {
	// Next returns the next sample. ok is false once the source is
	// exhausted.
	Next() (s Sample, ok bool)
}

// Consume drains a source into the effect, one sample at a time.
// Rendering is not triggered; the host frame loop still owns OnFrame.
func (e *Effect) Consume(src Source) {
	if src == nil {
		return
	}
	for {
		s, ok := src.Next()
		if !ok {
			return
		}
		e.OnSample(s)
	}
}
