package swipe

import "math"

// Debug overlay geometry, in source-surface pixels.
const (
	debugSquareHalf = 2.0
	debugNormalLen  = 10.0
)

// DebugOverlay draws filter internals onto a pixmap: each filtered point
// as a small square plus a short segment showing its normal. The color
// indicates whether the owning session has ended.
type DebugOverlay struct {
	pixmap *Pixmap
	active RGBA
	ended  RGBA
}

// NewDebugOverlay creates an overlay drawing onto the given pixmap.
// Active sessions draw green, ended sessions red.
func NewDebugOverlay(pm *Pixmap) *DebugOverlay {
	return &DebugOverlay{
		pixmap: pm,
		active: RGB(0, 1, 0),
		ended:  RGB(1, 0, 0),
	}
}

// Draw renders the filtered points. A missing drawing surface is a silent
// no-op: debug rendering is best-effort per frame.
func (o *DebugOverlay) Draw(points []FilteredPoint, ended bool) {
	if o == nil || o.pixmap == nil {
		return
	}
	o.pixmap.Clear(Transparent)

	c := o.active
	if ended {
		c = o.ended
	}
	for _, fp := range points {
		o.fillSquare(fp.Position, debugSquareHalf, c)
		if !fp.Normal.IsZero() {
			end := fp.Position.Add(fp.Normal.Mul(debugNormalLen))
			o.line(fp.Position, end, c)
		}
	}
}

// fillSquare fills a small axis-aligned square centered on p.
func (o *DebugOverlay) fillSquare(p Point, half float64, c RGBA) {
	x0 := int(math.Floor(p.X - half))
	x1 := int(math.Ceil(p.X + half))
	y0 := int(math.Floor(p.Y - half))
	y1 := int(math.Ceil(p.Y + half))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			o.pixmap.SetPixel(x, y, c)
		}
	}
}

// line draws a 1-pixel segment using simple DDA stepping.
func (o *DebugOverlay) line(a, b Point, c RGBA) {
	d := b.Sub(a)
	steps := int(math.Ceil(math.Max(math.Abs(d.X), math.Abs(d.Y))))
	if steps == 0 {
		o.pixmap.SetPixel(int(math.Round(a.X)), int(math.Round(a.Y)), c)
		return
	}
	for i := 0; i <= steps; i++ {
		p := a.Lerp(b, float64(i)/float64(steps))
		o.pixmap.SetPixel(int(math.Round(p.X)), int(math.Round(p.Y)), c)
	}
}
