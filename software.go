package swipe

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// SoftwareRenderer is a CPU implementation of Renderer. It rasterizes the
// ribbon outline with an anti-aliased scanline rasterizer into a Pixmap.
type SoftwareRenderer struct {
	pixmap *Pixmap
	color  RGBA
}

// NewSoftwareRenderer creates a software renderer that draws into the
// given pixmap with the given ribbon color.
func NewSoftwareRenderer(pm *Pixmap, c RGBA) *SoftwareRenderer {
	return &SoftwareRenderer{
		pixmap: pm,
		color:  c,
	}
}

// SetColor changes the ribbon color for subsequent frames.
func (r *SoftwareRenderer) SetColor(c RGBA) {
	r.color = c
}

// SetTarget redirects subsequent frames into a different pixmap.
// Used by host integrations when the drawing surface is resized.
func (r *SoftwareRenderer) SetTarget(pm *Pixmap) {
	r.pixmap = pm
}

// DrawRibbon rasterizes the ribbon outline into the pixmap. The previous
// frame's pixels are cleared first, so each frame fully owns its output.
// A missing pixmap or nil ribbon is a silent no-op (best-effort rendering)
// beyond the clear.
func (r *SoftwareRenderer) DrawRibbon(rib *Ribbon) error {
	if r.pixmap == nil {
		return nil
	}
	r.pixmap.Clear(Transparent)
	if rib == nil || len(rib.Outline) < 3 {
		return nil
	}

	rast := vector.NewRasterizer(r.pixmap.Width(), r.pixmap.Height())
	rast.DrawOp = draw.Over

	first := rib.Outline[0]
	rast.MoveTo(float32(first.X), float32(first.Y))
	for _, p := range rib.Outline[1:] {
		rast.LineTo(float32(p.X), float32(p.Y))
	}
	rast.ClosePath()

	src := image.NewUniform(r.color.Color())
	rast.Draw(r.pixmap, r.pixmap.Bounds(), src, image.Point{})
	return nil
}
