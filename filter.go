package swipe

import "fmt"

// Default thresholds, in source-surface pixel units.
const (
	// SegmentThreshold is the minimum traveled-distance delta between
	// committed polyline vertices. Larger values produce sparser
	// polylines; the default keeps hand tremor from creating dense
	// vertices.
	SegmentThreshold = 50.0

	// SwipeThreshold is the minimum cumulative traveled distance before a
	// session stops being classified as a click. It is much smaller than
	// SegmentThreshold so the click-to-swipe transition registers before
	// the first vertex locks in.
	SwipeThreshold = 10.0
)

// VertexState tags a filtered point as provisional or committed.
type VertexState uint8

const (
	// VertexProvisional marks the polyline tail: it tracks the newest raw
	// sample and is overwritten in place until its segment grows long
	// enough to lock in.
	VertexProvisional VertexState = iota

	// VertexCommitted marks a locked-in vertex. Committed vertices are
	// immutable for the rest of the session.
	VertexCommitted
)

// String returns a human-readable name for the vertex state.
func (st VertexState) String() string {
	switch st {
	case VertexProvisional:
		return "provisional"
	case VertexCommitted:
		return "committed"
	default:
		return fmt.Sprintf("Unknown(%d)", st)
	}
}

// FilteredPoint is one vertex of the simplified polyline.
type FilteredPoint struct {
	// Position in source-surface pixel coordinates.
	Position Point

	// SampleIndex is the index into the session history of the raw sample
	// that produced this vertex.
	SampleIndex int

	// Traveled is the session's cumulative traveled distance at the
	// moment this vertex was accepted.
	Traveled float64

	// Start is true only for the anchor, the first vertex of the session.
	// The anchor is never replaced or removed.
	Start bool

	// State is VertexProvisional for the tail, VertexCommitted otherwise.
	State VertexState

	// Normal is the unit ribbon-width direction for the segment ending at
	// this vertex. Zero until computed.
	Normal Vec2
}

// PointFilter incrementally simplifies a session's sample stream into a
// sparse polyline. It works online, one sample at a time, without waiting
// for the gesture to end.
//
// The polyline always starts at the anchor (the first accepted sample) and
// ends at a tail that tracks the newest sample. The tail is overwritten in
// place while its segment is shorter than the segment threshold; once the
// traveled-distance delta from the last committed vertex exceeds the
// threshold, the tail locks in and a new tail is appended.
type PointFilter struct {
	segmentThreshold float64
	points           []FilteredPoint
}

// NewPointFilter creates a filter with the given segment threshold.
// Non-positive thresholds fall back to SegmentThreshold.
func NewPointFilter(segmentThreshold float64) *PointFilter {
	if segmentThreshold <= 0 {
		segmentThreshold = SegmentThreshold
	}
	return &PointFilter{
		segmentThreshold: segmentThreshold,
		points:           make([]FilteredPoint, 0, 8),
	}
}

// SegmentThreshold returns the configured segment threshold.
func (f *PointFilter) SegmentThreshold() float64 {
	return f.segmentThreshold
}

// Update consumes the newest sample of the session and updates the
// polyline. It must be called once per appended sample, after the sample
// has been added to the session.
func (f *PointFilter) Update(s *Session) {
	n := s.Len()
	if n == 0 {
		return
	}
	sm := s.Samples()[n-1]
	cand := FilteredPoint{
		Position:    sm.Center,
		SampleIndex: n - 1,
		Traveled:    s.Traveled(),
		State:       VertexProvisional,
	}

	if len(f.points) == 0 {
		// The anchor: never replaced, never removed.
		cand.Start = true
		cand.State = VertexCommitted
		f.points = append(f.points, cand)
		Logger().Debug("swipe: anchor placed",
			"x", cand.Position.X, "y", cand.Position.Y)
		return
	}

	last := &f.points[len(f.points)-1]
	determined := last
	if !last.Start {
		determined = &f.points[len(f.points)-2]
	}
	delta := cand.Traveled - determined.Traveled

	if delta > f.segmentThreshold || last.Start {
		// Lock in the previous tail and grow the polyline by one vertex.
		last.State = VertexCommitted
		f.points = append(f.points, cand)
		Logger().Debug("swipe: vertex locked in",
			"count", len(f.points), "delta", delta)
		return
	}

	// Segment still below threshold: replace the tail in place so the
	// newest raw position stays represented without growing the polyline.
	cand.Normal = last.Normal
	*last = cand
}

// Points returns the current polyline. The returned slice is the filter's
// backing store; callers must not modify it. It is cleared when a new
// session starts.
func (f *PointFilter) Points() []FilteredPoint {
	return f.points
}

// Len returns the number of polyline vertices.
func (f *PointFilter) Len() int {
	return len(f.points)
}

// Tail returns the most recent vertex. ok is false for an empty polyline.
func (f *PointFilter) Tail() (fp FilteredPoint, ok bool) {
	if len(f.points) == 0 {
		return FilteredPoint{}, false
	}
	return f.points[len(f.points)-1], true
}

// Reset clears the polyline for a new session.
func (f *PointFilter) Reset() {
	f.points = f.points[:0]
}
