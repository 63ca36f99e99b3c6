// Package swipe turns a stream of raw pointer-input samples into a compact
// polyline suitable for rendering a touch/drag ribbon effect.
//
// # Overview
//
// swipe consumes samples from a gesture recognizer one at a time and
// maintains, online, a simplified polyline of "filtered points" plus a
// per-point normal vector used to extrude the line into a ribbon. Each
// gesture session is classified as a click (negligible movement) or a
// swipe (movement beyond a threshold).
//
// # Quick Start
//
//	import "github.com/gogpu/swipe"
//
//	pm := swipe.NewPixmap(512, 512)
//	effect := swipe.NewEffect(
//	    swipe.WithRenderer(swipe.NewSoftwareRenderer(pm, swipe.RGB(1, 1, 1))),
//	)
//
//	// Input phase: one call per recognizer event.
//	effect.OnSample(swipe.Sample{Center: swipe.Pt(10, 10), First: true})
//	effect.OnSample(swipe.Sample{Center: swipe.Pt(120, 40)})
//	effect.OnSample(swipe.Sample{Center: swipe.Pt(200, 60), Final: true})
//
//	// Frame phase: once per frame, driven by the host loop.
//	effect.OnFrame()
//	pm.SavePNG("swipe.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Effect, Session, PointFilter, Ribbon, Pixmap
//   - Renderers: software (x/image/vector), backend/wgpu (GPU upload)
//   - Integration: integration/swipecanvas (gogpu host embedding)
//
// Input handling and rendering are two distinct phases: Effect.OnSample
// only mutates geometry state and sets a dirty marker; Effect.OnFrame
// consumes the marker and drives the renderer. There is no implicit
// scheduling between the two.
package swipe
