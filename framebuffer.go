package rast

import "iter"

// Framebuffer is the reference Renderer implementation: a double-buffered
// pixel store over any pixel type, with a small indexed attribute store.
// It can draw any mesh using a single attribute (slot 0) as the draw
// color, and it never fails.
type Framebuffer[Px any] struct {
	width  int
	height int
	front  []Px // published frame, read-only for callers
	back   []Px // in-progress frame, written by Draw
	attrs  []attrSlot[Px]
}

type attrSlot[Px any] struct {
	px  Px
	set bool
}

// NewFramebuffer creates a framebuffer with the given dimensions. Both
// buffers are allocated up front and zero-filled.
func NewFramebuffer[Px any](width, height int) *Framebuffer[Px] {
	return &Framebuffer[Px]{
		width:  width,
		height: height,
		front:  make([]Px, width*height),
		back:   make([]Px, width*height),
	}
}

// Width returns the buffer width in pixels.
func (f *Framebuffer[Px]) Width() int { return f.width }

// Height returns the buffer height in pixels.
func (f *Framebuffer[Px]) Height() int { return f.height }

// Front returns the published frame in row-major order. The slice stays
// valid until the next Swap, which hands it back to the renderer as the
// new back buffer.
func (f *Framebuffer[Px]) Front() []Px { return f.front }

// PutPixel writes one pixel into the back buffer. The coordinate must be
// within bounds.
func (f *Framebuffer[Px]) PutPixel(p Point2[int], px Px) {
	f.back[p.Y*f.width+p.X] = px
}

// Swap exchanges the front and back buffer identities. O(1): only the
// slice headers move, no contents are copied.
func (f *Framebuffer[Px]) Swap() {
	f.front, f.back = f.back, f.front
}

// Attr returns the attribute in the given slot, if set.
func (f *Framebuffer[Px]) Attr(slot int) (Px, bool) {
	if slot < 0 || slot >= len(f.attrs) || !f.attrs[slot].set {
		var zero Px
		return zero, false
	}
	return f.attrs[slot].px, true
}

// SetAttr stores an attribute in the given slot, growing the slot table as
// needed. Draw uses slot 0 as the current draw color. Negative slots are
// ignored.
func (f *Framebuffer[Px]) SetAttr(slot int, px Px) {
	if slot < 0 {
		return
	}
	for slot >= len(f.attrs) {
		f.attrs = append(f.attrs, attrSlot[Px]{})
	}
	f.attrs[slot] = attrSlot[Px]{px: px, set: true}
}

// Draw rasterizes a float64-coordinate mesh into the back buffer. It is a
// convenience wrapper around the package-level Draw, which handles any
// coordinate type.
func (f *Framebuffer[Px]) Draw(mesh iter.Seq[Drawable[float64]]) (Stats, error) {
	return Draw[float64, Px](f, mesh)
}

// ClearAttr unsets the attribute in the given slot. Subsequent draws count
// fragments without writing pixels.
func (f *Framebuffer[Px]) ClearAttr(slot int) {
	if slot < 0 || slot >= len(f.attrs) {
		return
	}
	f.attrs[slot] = attrSlot[Px]{}
}
