package rast

import "iter"

// ShapeKind identifies the variant held by a Shape.
type ShapeKind uint8

const (
	// KindPoint is a single point.
	KindPoint ShapeKind = iota
	// KindLine is a line segment.
	KindLine
	// KindRect is an axis-aligned rectangle.
	KindRect
	// KindTriangle is a filled triangle.
	KindTriangle
)

// String returns the name of the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindRect:
		return "rect"
	case KindTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Shape is a closed tagged union over the four primitive kinds. It gives
// uniform iteration over mixed primitive collections: the point sequence
// delegates to the wrapped primitive and, for lines and triangles,
// discards the interpolation weights. Homogeneous meshes can iterate the
// concrete primitive type directly instead.
type Shape[T Scalar] struct {
	kind  ShapeKind
	point Point[T]
	line  Line[T]
	rect  Rectangle[T]
	tri   Triangle[T]
}

// PointShape wraps a point primitive.
func PointShape[T Scalar](p Point[T]) Shape[T] {
	return Shape[T]{kind: KindPoint, point: p}
}

// LineShape wraps a line primitive.
func LineShape[T Scalar](l Line[T]) Shape[T] {
	return Shape[T]{kind: KindLine, line: l}
}

// RectShape wraps a rectangle primitive.
func RectShape[T Scalar](r Rectangle[T]) Shape[T] {
	return Shape[T]{kind: KindRect, rect: r}
}

// TriangleShape wraps a triangle primitive.
func TriangleShape[T Scalar](t Triangle[T]) Shape[T] {
	return Shape[T]{kind: KindTriangle, tri: t}
}

// Kind returns the variant held by the shape.
func (s Shape[T]) Kind() ShapeKind { return s.kind }

// Vertices returns the vertex count of the wrapped primitive:
// 1 for a point, 2 for a line, 4 for a rectangle, 3 for a triangle.
func (s Shape[T]) Vertices() int {
	switch s.kind {
	case KindPoint:
		return s.point.Vertices()
	case KindLine:
		return s.line.Vertices()
	case KindRect:
		return s.rect.Vertices()
	default:
		return s.tri.Vertices()
	}
}

// Points yields the wrapped primitive's grid points, stripped of any
// interpolation weights.
func (s Shape[T]) Points() iter.Seq[Point2[T]] {
	switch s.kind {
	case KindPoint:
		return s.point.Points()
	case KindLine:
		return func(yield func(Point2[T]) bool) {
			for c := range s.line.Points() {
				if !yield(c.P) {
					return
				}
			}
		}
	case KindRect:
		return s.rect.Points()
	default:
		return func(yield func(Point2[T]) bool) {
			for c := range s.tri.Points() {
				if !yield(c.P) {
					return
				}
			}
		}
	}
}

// Coords implements the Drawable interface. Shape coordinates carry no
// interpolation weights, whatever the wrapped primitive.
func (s Shape[T]) Coords() iter.Seq[Coord[T]] {
	return func(yield func(Coord[T]) bool) {
		for p := range s.Points() {
			if !yield(p) {
				return
			}
		}
	}
}
