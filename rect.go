package rast

import "iter"

// Rectangle is an axis-aligned box given by four scalar bounds. Both axes
// are half-open: the rasterized grid covers [X0,X1) x [Y0,Y1). Reversed or
// zero-extent bounds yield an empty sequence; no ordering is enforced.
//
// The rectangle scan is also the substrate for the triangle rasterizer,
// which enumerates its bounding box this way.
type Rectangle[T Number] struct {
	X0, X1, Y0, Y1 T
}

// Rect is a convenience function to create a Rectangle.
func Rect[T Number](x0, x1, y0, y1 T) Rectangle[T] {
	return Rectangle[T]{X0: x0, X1: x1, Y0: y0, Y1: y1}
}

// Vertices returns the vertex count of a rectangle, which is 4.
func (Rectangle[T]) Vertices() int { return 4 }

// Points yields every integer grid point inside the rectangle in row-major
// order: for y in [Y0,Y1), for x in [X0,X1). Bounds are truncated to the
// integer grid before scanning. The sequence is lazy; no point list is
// materialized.
func (r Rectangle[T]) Points() iter.Seq[Point2[T]] {
	return func(yield func(Point2[T]) bool) {
		x0, x1 := int(r.X0), int(r.X1)
		y0, y1 := int(r.Y0), int(r.Y1)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if !yield(Point2[T]{X: T(x), Y: T(y)}) {
					return
				}
			}
		}
	}
}

// Coords implements the Drawable interface. Rectangle coordinates carry no
// interpolation weights.
func (r Rectangle[T]) Coords() iter.Seq[Coord[T]] {
	return func(yield func(Coord[T]) bool) {
		for p := range r.Points() {
			if !yield(p) {
				return
			}
		}
	}
}
