// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swipecanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/swipe"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("swipecanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("swipecanvas: invalid dimensions")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("swipecanvas: nil DeviceProvider")
)

// textureDestroyer is the interface for destroying textures.
// This matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// textureUpdater updates texture contents in place.
type textureUpdater interface {
	UpdateData(data []byte) error
}

// Canvas wraps a swipe.Effect with gogpu integration. It owns the pixmap
// the effect renders into and manages the CPU-to-GPU pipeline.
//
// Canvas is NOT safe for concurrent use. Feed input and render from the
// same goroutine, or use external synchronization.
type Canvas struct {
	effect      *swipe.Effect
	renderer    *swipe.SoftwareRenderer
	pixmap      *swipe.Pixmap
	provider    gpucontext.DeviceProvider
	texture     any  // Lazy-created texture (*gogpu.Texture)
	oldTexture  any  // Previous texture awaiting deferred destruction
	dirty       bool // Needs GPU upload
	sizeChanged bool // Resize pending: texture must be recreated
	width       int
	height      int
	closed      bool
}

// New creates a Canvas for integrated mode.
// The provider should come from gogpu.App.GPUContextProvider().
//
// The effect is created with a software ribbon renderer bound to the
// canvas pixmap; extra swipe options (thresholds, ribbon width, debug
// overlay) are appended after it.
//
// Returns an error if dimensions are invalid or the provider is nil.
func New(provider gpucontext.DeviceProvider, width, height int, opts ...swipe.Option) (*Canvas, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	pm := swipe.NewPixmap(width, height)
	renderer := swipe.NewSoftwareRenderer(pm, swipe.RGB(1, 1, 1))
	effectOpts := append([]swipe.Option{swipe.WithRenderer(renderer)}, opts...)

	return &Canvas{
		effect:   swipe.NewEffect(effectOpts...),
		renderer: renderer,
		pixmap:   pm,
		provider: provider,
		width:    width,
		height:   height,
		dirty:    true, // Mark dirty so first Flush creates texture
	}, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(provider gpucontext.DeviceProvider, width, height int, opts ...swipe.Option) *Canvas {
	c, err := New(provider, width, height, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Effect returns the embedded swipe effect.
// Returns nil if the canvas is closed.
func (c *Canvas) Effect() *swipe.Effect {
	if c.closed {
		return nil
	}
	return c.effect
}

// Pixmap returns the pixel buffer the effect renders into.
// Returns nil if the canvas is closed.
func (c *Canvas) Pixmap() *swipe.Pixmap {
	if c.closed {
		return nil
	}
	return c.pixmap
}

// OnSample feeds one recognizer event into the effect. Closed canvases
// drop input.
func (c *Canvas) OnSample(s swipe.Sample) {
	if c.closed {
		return
	}
	c.effect.OnSample(s)
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns width and height as a convenience.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// MarkDirty forces a GPU upload on the next Flush(), even without new
// input. Useful after drawing into the pixmap directly.
func (c *Canvas) MarkDirty() {
	c.dirty = true
}

// IsDirty returns true if the canvas has pending changes that need to be
// uploaded to the GPU.
func (c *Canvas) IsDirty() bool {
	return c.dirty || c.effect.Dirty()
}

// Resize changes canvas dimensions. This recreates the pixel buffer and
// clears the current frame's output; gesture state is kept.
//
// Returns an error if dimensions are invalid or the canvas is closed.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	// No-op if dimensions haven't changed
	if c.width == width && c.height == height {
		return nil
	}

	c.pixmap = swipe.NewPixmap(width, height)
	c.renderer.SetTarget(c.pixmap)
	c.width = width
	c.height = height
	c.sizeChanged = true
	c.dirty = true

	return nil
}

// Flush runs the effect's frame phase and uploads the canvas content to
// the GPU texture if anything changed. Returns the texture for manual
// drawing if needed.
//
// The texture is created lazily on first Flush(). Subsequent calls only
// upload data when the effect reported new output.
//
// Returns an error if the texture update fails or the canvas is closed.
func (c *Canvas) Flush() (any, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}

	// If size changed, defer old texture destruction until after the GPU
	// is idle. The old texture may still be referenced by in-flight GPU
	// command buffers; destroying it now would free descriptor heap
	// entries the GPU is reading. RenderTo destroys it after the upload
	// wait instead.
	if c.sizeChanged {
		if c.texture != nil {
			if c.oldTexture != nil {
				if destroyer, ok := c.oldTexture.(textureDestroyer); ok {
					destroyer.Destroy()
				}
			}
			c.oldTexture = c.texture
			c.texture = nil
		}
		c.sizeChanged = false
	}

	// Rasterize pending geometry. OnFrame is a no-op when no input
	// arrived, in which case the existing texture is still current.
	if c.effect.OnFrame() {
		c.dirty = true
	}

	if !c.dirty && c.texture != nil {
		return c.texture, nil
	}

	data := c.pixmap.Data()

	// Create texture if needed (lazy initialization)
	if c.texture == nil {
		c.texture = &pendingTexture{
			width:  c.width,
			height: c.height,
			data:   data,
		}
		c.dirty = false
		return c.texture, nil
	}

	// Update existing texture
	if updater, ok := c.texture.(textureUpdater); ok {
		if err := updater.UpdateData(data); err != nil {
			return nil, fmt.Errorf("swipecanvas: texture update failed: %w", err)
		}
	}

	c.dirty = false
	return c.texture, nil
}

// Texture returns the current GPU texture without flushing.
// Returns nil if the texture hasn't been created yet.
//
// Use Flush() to ensure the texture exists and is up-to-date.
func (c *Canvas) Texture() any {
	return c.texture
}

// Close releases all resources associated with the Canvas.
// After Close, the Canvas should not be used.
// Close is idempotent - multiple calls are safe.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	// Destroy textures (current and any deferred old texture)
	if c.oldTexture != nil {
		if destroyer, ok := c.oldTexture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		c.oldTexture = nil
	}
	if c.texture != nil {
		if destroyer, ok := c.texture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		c.texture = nil
	}

	c.effect = nil
	c.renderer = nil
	c.pixmap = nil
	c.provider = nil
	return nil
}

// pendingTexture is a placeholder for texture creation. It holds the data
// needed to create a real texture when we have access to a texture
// creator (during RenderTo).
type pendingTexture struct {
	width  int
	height int
	data   []byte
}

// Provider returns the DeviceProvider associated with this canvas.
// Returns nil if the canvas is closed.
func (c *Canvas) Provider() gpucontext.DeviceProvider {
	if c.closed {
		return nil
	}
	return c.provider
}
