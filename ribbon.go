package swipe

// Ribbon is the extruded swipe geometry for one frame: the filtered
// polyline widened along its per-vertex normals.
type Ribbon struct {
	// Strip holds triangle-strip vertices, a left/right pair per filtered
	// point in gesture order: L0, R0, L1, R1, ...
	Strip []Point

	// Outline is the ribbon boundary as a closed polygon: the left edge
	// in gesture order followed by the right edge reversed.
	Outline []Point

	// Width is the full ribbon width in source-surface pixels.
	Width float64
}

// BuildRibbon extrudes the filtered polyline by half the ribbon width
// along each vertex normal. Vertices with a zero normal (the anchor never
// had a defining segment) borrow the nearest neighbor's normal so the
// ribbon keeps a consistent width.
//
// Returns nil when the polyline has fewer than two vertices or the width
// is non-positive.
func BuildRibbon(points []FilteredPoint, width float64) *Ribbon {
	if len(points) < 2 || width <= 0 {
		return nil
	}

	normals := make([]Vec2, len(points))
	for i, fp := range points {
		normals[i] = fp.Normal
	}
	for i := range normals {
		if !normals[i].IsZero() {
			continue
		}
		if i+1 < len(normals) && !normals[i+1].IsZero() {
			normals[i] = normals[i+1]
		} else if i > 0 {
			normals[i] = normals[i-1]
		}
	}

	half := width / 2
	r := &Ribbon{
		Strip: make([]Point, 0, len(points)*2),
		Width: width,
	}
	left := make([]Point, len(points))
	right := make([]Point, len(points))
	for i, fp := range points {
		offset := normals[i].Mul(half)
		left[i] = fp.Position.Add(offset)
		right[i] = fp.Position.Add(offset.Neg())
		r.Strip = append(r.Strip, left[i], right[i])
	}

	r.Outline = make([]Point, 0, len(points)*2)
	r.Outline = append(r.Outline, left...)
	for i := len(right) - 1; i >= 0; i-- {
		r.Outline = append(r.Outline, right[i])
	}
	return r
}
