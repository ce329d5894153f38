package rast

import (
	"iter"
	"slices"
)

// Coord is one rasterized coordinate: a screen-space grid point plus,
// optionally, interpolation weights. Plain points and rectangle output
// return nil weights; line output carries 2 weights, triangle output 3.
type Coord[T Number] interface {
	// Point returns the grid point.
	Point() Point2[T]

	// Barycentric returns the interpolation weights, or nil if the
	// coordinate has none.
	Barycentric() []T
}

// Drawable is any primitive that can be consumed by Draw: it declares a
// vertex count (used purely for statistics, independent of how many
// fragments it produces) and yields a lazy sequence of coordinates.
type Drawable[T Number] interface {
	// Vertices returns the number of vertices defining the primitive.
	Vertices() int

	// Coords yields the primitive's rasterized coordinates.
	Coords() iter.Seq[Coord[T]]
}

// Renderer owns a double-buffered pixel store. Draw writes fragments into
// the back buffer; Swap publishes it.
//
// A Renderer is not safe for concurrent use: Draw writes to "the back
// buffer" and Swap redefines which buffer that is.
type Renderer[Px any] interface {
	// PutPixel writes one pixel into the back buffer. Coordinates passed
	// by Draw are always in bounds; direct callers are responsible for
	// their own bounds checking.
	PutPixel(p Point2[int], px Px)

	// Swap exchanges the front and back buffer identities in O(1).
	// The back buffer becomes the published frame; no contents are copied.
	Swap()

	// Width returns the buffer width in pixels.
	Width() int

	// Height returns the buffer height in pixels.
	Height() int

	// Attr returns the attribute in the given slot (for example the
	// current draw color), and whether it is set. Renderers without
	// attribute support always report false; Draw then counts fragments
	// without writing pixels.
	Attr(slot int) (Px, bool)

	// SetAttr stores an attribute in the given slot. A no-op for
	// renderers without attribute support.
	SetAttr(slot int, px Px)
}

// Fallible is an optional interface for renderers with fallible backing
// stores (bounded memory, device buffers). Draw checks Err after each
// drawable and aborts with the renderer's error. The renderers in this
// package never fail.
type Fallible interface {
	Err() error
}

// Stats reports what a Draw call consumed and produced.
type Stats struct {
	// Shapes is the number of drawables consumed.
	Shapes int
	// Vertices is the sum of the drawables' declared vertex counts.
	Vertices int
	// Fragments is the number of in-bounds points produced, whether or
	// not a pixel was written for them.
	Fragments int
}

// Mesh returns a mesh sequence over the given drawables.
func Mesh[T Number](drawables ...Drawable[T]) iter.Seq[Drawable[T]] {
	return slices.Values(drawables)
}

// Draw rasterizes a mesh into the renderer's back buffer and returns the
// accumulated statistics.
//
// For every drawable, Draw counts the shape and its vertices, then walks
// its coordinate sequence: points outside [0,width) x [0,height) are
// clipped; every surviving point counts as a fragment. If attribute slot 0
// is set, it is written via PutPixel; fragment accounting is independent
// of whether the write happened, so statistics stay meaningful for
// attribute-less renderers.
//
// The mesh must be finite; Draw runs it to completion. The error return is
// used only by renderers implementing Fallible, which abort the fold with
// partial statistics.
//
// The pixel type cannot be inferred from a concrete renderer, so call this
// with explicit type arguments (Draw[float64, RGBA](pm, mesh)) or use the
// Draw methods on Framebuffer and Pixmap.
func Draw[T Number, Px any](r Renderer[Px], mesh iter.Seq[Drawable[T]]) (Stats, error) {
	width, height := r.Width(), r.Height()
	fallible, _ := r.(Fallible)

	var stats Stats
	for d := range mesh {
		stats.Shapes++
		stats.Vertices += d.Vertices()
		for c := range d.Coords() {
			p := c.Point()
			if p.X < 0 || p.Y < 0 {
				continue
			}
			x, y := int(p.X), int(p.Y)
			if x >= width || y >= height {
				continue
			}
			if px, ok := r.Attr(0); ok {
				r.PutPixel(Point2[int]{X: x, Y: y}, px)
			}
			stats.Fragments++
		}
		if fallible != nil {
			if err := fallible.Err(); err != nil {
				return stats, err
			}
		}
	}

	Logger().Debug("mesh drawn",
		"shapes", stats.Shapes,
		"vertices", stats.Vertices,
		"fragments", stats.Fragments)
	return stats, nil
}
