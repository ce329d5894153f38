package rast

import "iter"

// TriangleCoord is one rasterized point of a triangle: the grid point plus
// its barycentric weights relative to the triangle's three vertices. The
// weights sum to 1 up to rounding.
type TriangleCoord[T Scalar] struct {
	P Point2[T]
	W [3]T
}

// Point implements the Coord interface.
func (c TriangleCoord[T]) Point() Point2[T] { return c.P }

// Barycentric implements the Coord interface.
func (c TriangleCoord[T]) Barycentric() []T { return c.W[:] }

// Triangle is a filled triangle given by three vertices. Vertex order
// affects the sign of the determinant but not the emitted weights.
type Triangle[T Scalar] struct {
	P [3]Point2[T]
}

// Tri is a convenience function to create a Triangle.
func Tri[T Scalar](p1, p2, p3 Point2[T]) Triangle[T] {
	return Triangle[T]{P: [3]Point2[T]{p1, p2, p3}}
}

// Vertices returns the vertex count of a triangle, which is 3.
func (Triangle[T]) Vertices() int { return 3 }

// Det returns twice the signed area of the triangle. A non-degenerate
// triangle has Det() != 0.
func (t Triangle[T]) Det() T {
	x1, y1 := t.P[0].X, t.P[0].Y
	x2, y2 := t.P[1].X, t.P[1].Y
	x3, y3 := t.P[2].X, t.P[2].Y
	return (y2-y3)*(x1-x3) + (x3-x2)*(y1-y3)
}

// Points yields every grid point inside the triangle together with its
// barycentric weights. The triangle's axis-aligned bounding box is
// enumerated via the Rectangle scan and each candidate is kept iff
// w1 >= 0 && w2 >= 0 && w1+w2 <= 1.
//
// Cost is O(bounding-box area), so thin diagonal triangles scan many more
// candidates than they emit.
//
// A degenerate triangle (collinear vertices, Det() == 0) divides every
// weight by zero; the resulting NaNs fail the containment test and the
// sequence is empty. Adjacent triangles sharing an edge may both emit, or
// both skip, pixels on the shared boundary depending on orientation; the
// edge rule is inclusive on two of the three edges, not a symmetric fill
// convention.
func (t Triangle[T]) Points() iter.Seq[TriangleCoord[T]] {
	return func(yield func(TriangleCoord[T]) bool) {
		det := t.Det()
		x1, y1 := t.P[0].X, t.P[0].Y
		x2, y2 := t.P[1].X, t.P[1].Y
		x3, y3 := t.P[2].X, t.P[2].Y

		box := Rect(
			min(x1, x2, x3), max(x1, x2, x3),
			min(y1, y2, y3), max(y1, y2, y3),
		)
		for p := range box.Points() {
			w1 := ((y2-y3)*(p.X-x3) + (x3-x2)*(p.Y-y3)) / det
			w2 := ((y3-y1)*(p.X-x3) + (x1-x3)*(p.Y-y3)) / det
			if w1 >= 0 && w2 >= 0 && w1+w2 <= 1 {
				c := TriangleCoord[T]{P: p, W: [3]T{w1, w2, 1 - w1 - w2}}
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Coords implements the Drawable interface.
func (t Triangle[T]) Coords() iter.Seq[Coord[T]] {
	return func(yield func(Coord[T]) bool) {
		for c := range t.Points() {
			if !yield(c) {
				return
			}
		}
	}
}
