package swipe

// UpdateTailNormal recomputes the normal of the polyline tail from the
// segment between the tail and the vertex before it. Earlier vertices keep
// the normal they had when they were the tail; they are never recomputed.
//
// The normal is the counter-clockwise perpendicular (-dy, dx) of the unit
// segment direction. When the two vertices coincide the direction is
// undefined; the tail's previous normal is left in place rather than
// propagating a zero or NaN vector.
func (f *PointFilter) UpdateTailNormal() {
	n := len(f.points)
	if n < 2 {
		return
	}
	tail := &f.points[n-1]
	prev := f.points[n-2]

	dir := tail.Position.Sub(prev.Position).Normalize()
	if dir.IsZero() {
		return
	}
	tail.Normal = dir.Perp()
}
