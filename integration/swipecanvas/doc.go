// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package swipecanvas embeds a swipe.Effect in a gogpu-hosted application.
//
// The canvas owns the effect's pixel output and manages the CPU-to-GPU
// pipeline automatically: input samples mutate geometry state, and each
// frame the host calls RenderTo, which rasterizes the ribbon only when the
// effect is dirty, uploads the pixels to a GPU texture, and draws it.
//
// # Usage
//
//	canvas, err := swipecanvas.New(app.GPUContextProvider(), 800, 600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer canvas.Close()
//
//	app.OnPointer(func(s swipe.Sample) {
//	    canvas.OnSample(s)
//	})
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
//
// The canvas relies on:
//   - gpucontext.DeviceProvider for device access
//   - the host draw context for texture creation and drawing
package swipecanvas
