package rast

import "iter"

// Number constrains the coordinate types the rasterizers can scan.
// Coordinates must be ordered, sign-testable, and convertible to grid
// indices; any signed integer or floating-point type qualifies.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Scalar constrains the coordinate types usable for interpolating
// primitives (lines, triangles), which additionally need square roots,
// reciprocals, and NaN fallthrough on degenerate geometry.
type Scalar interface {
	~float32 | ~float64
}

// Point2 represents a 2D point or vector.
type Point2[T Number] struct {
	X, Y T
}

// Pt is a convenience function to create a Point2.
func Pt[T Number](x, y T) Point2[T] {
	return Point2[T]{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point2[T]) Add(q Point2[T]) Point2[T] {
	return Point2[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point2[T]) Sub(q Point2[T]) Point2[T] {
	return Point2[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Point implements the Coord interface: a bare point is its own
// screen-space coordinate.
func (p Point2[T]) Point() Point2[T] { return p }

// Barycentric implements the Coord interface. A bare point carries no
// interpolation weights.
func (Point2[T]) Barycentric() []T { return nil }

// Point is the primitive drawable point. It yields its single coordinate
// exactly once, with no interpolation weights.
type Point[T Number] struct {
	P Point2[T]
}

// Vertices returns the vertex count of a point, which is 1.
func (Point[T]) Vertices() int { return 1 }

// Points yields the point's coordinate exactly once.
func (p Point[T]) Points() iter.Seq[Point2[T]] {
	return func(yield func(Point2[T]) bool) {
		yield(p.P)
	}
}

// Coords implements the Drawable interface.
func (p Point[T]) Coords() iter.Seq[Coord[T]] {
	return func(yield func(Coord[T]) bool) {
		yield(p.P)
	}
}
