package wgpu

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/swipe"
)

// TextureFormat represents the pixel format of a GPU texture.
type TextureFormat uint8

const (
	// TextureFormatRGBA8 is the standard RGBA format with 8 bits per channel.
	TextureFormatRGBA8 TextureFormat = iota

	// TextureFormatBGRA8 is BGRA format, often used for surface presentation.
	TextureFormatBGRA8
)

// String returns a human-readable name for the format.
func (f TextureFormat) String() string {
	switch f {
	case TextureFormatRGBA8:
		return "RGBA8"
	case TextureFormatBGRA8:
		return "BGRA8"
	default:
		return fmt.Sprintf("Unknown(%d)", f)
	}
}

// BytesPerPixel returns the number of bytes per pixel for the format.
func (f TextureFormat) BytesPerPixel() int {
	return 4
}

// ToWGPUFormat converts to wgpu gputypes.TextureFormat.
func (f TextureFormat) ToWGPUFormat() gputypes.TextureFormat {
	switch f {
	case TextureFormatBGRA8:
		return gputypes.TextureFormatBGRA8Unorm
	default:
		return gputypes.TextureFormatRGBA8Unorm
	}
}

// DefaultTextureUsage is the default usage for ribbon textures.
const DefaultTextureUsage = gputypes.TextureUsageCopySrc | gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding

// Texture represents a device-resident texture holding ribbon output.
//
// Texture is safe for concurrent read access. Write operations
// (Upload, Close) should be synchronized externally.
type Texture struct {
	mu sync.RWMutex

	// GPU resource IDs (zero until wgpu texture creation lands)
	textureID core.TextureID
	viewID    core.TextureViewID

	// Texture properties
	width  int
	height int
	format TextureFormat

	sizeBytes uint64

	// State
	released atomic.Bool
	label    string
}

// TextureConfig holds configuration for creating a new texture.
type TextureConfig struct {
	// Width is the texture width in pixels.
	Width int

	// Height is the texture height in pixels.
	Height int

	// Format is the pixel format.
	Format TextureFormat

	// Label is an optional debug label.
	Label string

	// Usage flags (default: CopySrc | CopyDst | TextureBinding)
	Usage gputypes.TextureUsage
}

// CreateTexture creates a new GPU texture with the given configuration.
// The texture is uninitialized and should be filled with Upload.
//
// A nil backend creates a logical texture without GPU resources; this
// mode is used in tests and before the wgpu texture surface is complete.
func CreateTexture(backend *Backend, config TextureConfig) (*Texture, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, ErrInvalidDimensions
	}

	if backend != nil && !backend.IsInitialized() {
		return nil, ErrNotInitialized
	}

	sizeBytes := uint64(config.Width) * uint64(config.Height) * uint64(config.Format.BytesPerPixel())

	// Usage will be passed through when core.CreateTexture is wired up.
	_ = config.Usage

	// TODO: core.CreateTexture with a gputypes.TextureDescriptor once the
	// wgpu texture surface is complete; textureID and viewID stay zero
	// until then and Upload tracks the logical contents only.

	return &Texture{
		width:     config.Width,
		height:    config.Height,
		format:    config.Format,
		sizeBytes: sizeBytes,
		label:     config.Label,
	}, nil
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the texture height in pixels.
func (t *Texture) Height() int {
	return t.height
}

// Format returns the texture format.
func (t *Texture) Format() TextureFormat {
	return t.format
}

// SizeBytes returns the texture size in bytes.
func (t *Texture) SizeBytes() uint64 {
	return t.sizeBytes
}

// Label returns the debug label.
func (t *Texture) Label() string {
	return t.label
}

// IsReleased returns true if the texture has been released.
func (t *Texture) IsReleased() bool {
	return t.released.Load()
}

// TextureID returns the underlying wgpu texture ID.
// Returns a zero ID for logical textures.
func (t *Texture) TextureID() core.TextureID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.textureID
}

// ViewID returns the texture view ID.
// Returns a zero ID for logical textures.
func (t *Texture) ViewID() core.TextureViewID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.viewID
}

// Upload uploads pixel data from a pixmap to the GPU texture.
// The pixmap dimensions must match the texture dimensions.
//
// The GPU-side write is pending wgpu queue.WriteTexture; until then the
// call validates and returns so callers carry the final control flow.
func (t *Texture) Upload(pixmap *swipe.Pixmap) error {
	if t.released.Load() {
		return ErrTextureReleased
	}

	if pixmap == nil {
		return ErrNilPixmap
	}

	if pixmap.Width() != t.width || pixmap.Height() != t.height {
		return fmt.Errorf("%w: expected %dx%d, got %dx%d",
			ErrTextureSizeMismatch, t.width, t.height, pixmap.Width(), pixmap.Height())
	}

	// TODO: core.QueueWriteTexture(queue, copyView, pixmap.Data(), layout,
	// extent) once exposed; layout is width*4 bytes per row, height rows.

	return nil
}

// Download downloads pixel data from GPU to a new pixmap.
// This operation requires the texture to have CopySrc usage.
//
// GPU readback needs staging buffers and synchronization that wgpu does
// not expose yet, so this returns ErrTextureReadbackNotSupported.
func (t *Texture) Download() (*swipe.Pixmap, error) {
	if t.released.Load() {
		return nil, ErrTextureReleased
	}

	return nil, ErrTextureReadbackNotSupported
}

// Close releases the GPU texture resources.
// The texture should not be used after Close is called.
func (t *Texture) Close() {
	if t.released.Swap(true) {
		return // Already released
	}

	// TODO: core.TextureViewDrop / core.TextureDrop when the IDs are real.

	t.mu.Lock()
	t.textureID = core.TextureID{}
	t.viewID = core.TextureViewID{}
	t.mu.Unlock()
}

// String returns a string representation of the texture.
func (t *Texture) String() string {
	status := "active"
	if t.released.Load() {
		status = "released"
	}
	return fmt.Sprintf("Texture[%s %dx%d %s %d bytes %s]",
		t.label, t.width, t.height, t.format, t.sizeBytes, status)
}
