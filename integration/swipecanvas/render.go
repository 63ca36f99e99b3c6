// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swipecanvas

import (
	"errors"
	"fmt"
)

// Rendering errors.
var (
	// ErrInvalidDrawContext is returned when the draw context doesn't
	// expose texture drawing.
	ErrInvalidDrawContext = errors.New("swipecanvas: dc does not support texture drawing")

	// ErrInvalidRenderer is returned when the host renderer doesn't
	// support texture creation.
	ErrInvalidRenderer = errors.New("swipecanvas: host renderer does not support texture creation")
)

// textureDrawer is the subset of the host draw context the canvas needs.
// It matches the surface gogpu.Context.AsTextureDrawer() exposes.
type textureDrawer interface {
	DrawTexture(tex any, x, y float32) error
	Renderer() any
}

// textureCreator creates GPU textures from RGBA pixel data.
type textureCreator interface {
	NewTextureFromRGBA(width, height int, data []byte) (any, error)
}

// premultipliedSetter marks a texture as holding premultiplied alpha.
type premultipliedSetter interface {
	SetPremultiplied(bool)
}

// RenderOptions controls how the canvas is rendered to the target.
type RenderOptions struct {
	// X, Y is the position to draw the texture (default: 0, 0)
	X, Y float32

	// Alpha is the opacity from 0 (transparent) to 1 (opaque) (default: 1)
	Alpha float32
}

// DefaultRenderOptions returns options with sensible defaults.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		X:     0,
		Y:     0,
		Alpha: 1,
	}
}

// RenderTo draws the canvas content to the host draw context.
// This is the primary integration method.
//
// The dc parameter should be obtained from gogpu.Context.AsTextureDrawer().
// The canvas content is flushed to the GPU and drawn at position (0, 0).
//
// Example:
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
//
// Returns an error if the canvas is closed, the context doesn't support
// texture drawing, or texture creation or drawing fails.
func (c *Canvas) RenderTo(dc any) error {
	return c.RenderToEx(dc, DefaultRenderOptions())
}

// RenderToEx draws the canvas with additional options.
// Use this when you need positioning or transparency control.
func (c *Canvas) RenderToEx(dc any, opts RenderOptions) error {
	if c.closed {
		return ErrCanvasClosed
	}

	drawer, ok := dc.(textureDrawer)
	if !ok {
		return ErrInvalidDrawContext
	}

	// Flush geometry and pixels so the upload source is current.
	tex, err := c.Flush()
	if err != nil {
		return err
	}

	// If the texture is pending (placeholder), create the real GPU
	// texture now that a creator is reachable.
	if pending, isPending := tex.(*pendingTexture); isPending {
		creator, ok := drawer.Renderer().(textureCreator)
		if !ok {
			return ErrInvalidRenderer
		}

		// NewTextureFromRGBA waits for the GPU internally. After it
		// returns, all prior GPU work is complete, so it is safe to
		// destroy the old texture: its descriptor heap entries are no
		// longer in use.
		realTex, err := creator.NewTextureFromRGBA(pending.width, pending.height, pending.data)
		if err != nil {
			return fmt.Errorf("swipecanvas: NewTextureFromRGBA failed: %w", err)
		}

		// The ribbon rasterizer emits premultiplied alpha. Mark the
		// texture accordingly so the host composites with BlendFactorOne.
		if pt, ok := realTex.(premultipliedSetter); ok {
			pt.SetPremultiplied(true)
		}

		c.texture = realTex
		tex = realTex

		if c.oldTexture != nil {
			if destroyer, ok := c.oldTexture.(textureDestroyer); ok {
				destroyer.Destroy()
			}
			c.oldTexture = nil
		}
	}

	// Note: Alpha is currently ignored (basic rendering).
	return drawer.DrawTexture(tex, opts.X, opts.Y)
}

// RenderToPosition is a convenience method for rendering at a specific
// position.
//
//	canvas.RenderToPosition(dc.AsTextureDrawer(), 100, 50)
func (c *Canvas) RenderToPosition(dc any, x, y float32) error {
	return c.RenderToEx(dc, RenderOptions{
		X:     x,
		Y:     y,
		Alpha: 1,
	})
}
