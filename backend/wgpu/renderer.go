package wgpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/swipe"
)

// RibbonRenderer is a GPU-backed implementation of swipe.Renderer.
//
// Phase 1: the ribbon outline is rasterized on the CPU via
// swipe.SoftwareRenderer, then the pixmap is uploaded to the backend
// texture. Later phases move the triangle-strip tessellation onto the
// GPU; the renderer surface stays the same.
//
// RibbonRenderer is safe for concurrent use.
type RibbonRenderer struct {
	mu sync.Mutex

	backend  *Backend
	pixmap   *swipe.Pixmap
	software *swipe.SoftwareRenderer
	texture  *Texture

	width  int
	height int
	closed bool
}

func newRibbonRenderer(b *Backend, width, height int) (*RibbonRenderer, error) {
	tex, err := CreateTexture(b, TextureConfig{
		Width:  width,
		Height: height,
		Format: TextureFormatRGBA8,
		Label:  "ribbon-target",
	})
	if err != nil {
		return nil, fmt.Errorf("ribbon texture allocation failed: %w", err)
	}

	pm := swipe.NewPixmap(width, height)
	return &RibbonRenderer{
		backend:  b,
		pixmap:   pm,
		software: swipe.NewSoftwareRenderer(pm, swipe.RGB(1, 1, 1)),
		texture:  tex,
		width:    width,
		height:   height,
	}, nil
}

// DrawRibbon rasterizes the ribbon and uploads the result to the GPU
// texture. A nil ribbon clears the previous output.
func (r *RibbonRenderer) DrawRibbon(rb *swipe.Ribbon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRendererClosed
	}

	// Phase 1: delegate rasterization to the software renderer
	if err := r.software.DrawRibbon(rb); err != nil {
		return fmt.Errorf("rasterize: %w", err)
	}

	if err := r.texture.Upload(r.pixmap); err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	return nil
}

// SetColor sets the ribbon fill color.
func (r *RibbonRenderer) SetColor(c swipe.RGBA) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.software.SetColor(c)
}

// Pixmap returns the CPU-side pixel buffer. Its contents match the GPU
// texture after each DrawRibbon; hosts without texture readback can
// composite from here.
func (r *RibbonRenderer) Pixmap() *swipe.Pixmap {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	return r.pixmap
}

// Texture returns the backend texture the ribbon is uploaded into.
// Returns nil if the renderer is closed.
func (r *RibbonRenderer) Texture() *Texture {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	return r.texture
}

// Width returns the renderer width.
func (r *RibbonRenderer) Width() int {
	return r.width
}

// Height returns the renderer height.
func (r *RibbonRenderer) Height() int {
	return r.height
}

// Close releases renderer resources.
// Close is idempotent.
func (r *RibbonRenderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true

	if r.texture != nil {
		r.texture.Close()
		r.texture = nil
	}
	r.pixmap = nil
	r.software = nil
}
