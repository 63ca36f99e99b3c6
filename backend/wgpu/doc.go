// Package wgpu provides a GPU-backed ribbon renderer using gogpu/wgpu.
//
// The package manages real GPU resources (instance, adapter, device,
// queue) through the gogpu/wgpu Pure Go WebGPU implementation, which
// supports Vulkan, Metal, and DX12 depending on the platform.
//
// # Architecture
//
// The backend follows a phased bring-up:
//
//   - Backend: device lifecycle (instance -> adapter -> device -> queue)
//   - Texture: a device-resident texture tracking the ribbon output
//   - RibbonRenderer: implements swipe.Renderer
//
// Ribbon rasterization currently runs on the CPU via swipe's software
// renderer; the result is uploaded to the backend texture. GPU-side
// tessellation of the triangle strip will replace the CPU path when the
// wgpu render pass surface is complete. The data flow (geometry ->
// pixels -> texture) is final, only the rasterization site moves.
//
// # Basic Usage
//
//	b := wgpu.NewBackend()
//	if err := b.Init(); err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	r, err := b.NewRibbonRenderer(800, 600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	effect := swipe.NewEffect(swipe.WithRenderer(r))
//
// If GPU initialization fails (no compatible adapter, headless CI), fall
// back to swipe.SoftwareRenderer; the effect API is identical.
package wgpu
