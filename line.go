package rast

import (
	"iter"
	"math"
)

// LineCoord is one rasterized point of a line segment: the grid point plus
// a two-element interpolation weight [f, 1-f], where f is the fraction of
// Euclidean distance traveled from the start of the segment.
type LineCoord[T Scalar] struct {
	P Point2[T]
	W [2]T
}

// Point implements the Coord interface.
func (c LineCoord[T]) Point() Point2[T] { return c.P }

// Barycentric implements the Coord interface.
func (c LineCoord[T]) Barycentric() []T { return c.W[:] }

// Line is a segment between two floating-point endpoints. Rasterization
// uses midpoint stepping: at each step the next grid cell is the one whose
// center is closest to the ideal line.
type Line[T Scalar] struct {
	Start, End Point2[T]
}

// Ln is a convenience function to create a Line.
func Ln[T Scalar](start, end Point2[T]) Line[T] {
	return Line[T]{Start: start, End: end}
}

// Vertices returns the vertex count of a line, which is 2.
func (Line[T]) Vertices() int { return 2 }

// Points yields the grid points approximating the segment, each paired
// with its interpolation weight. A zero-length segment yields its single
// grid point once, with weights pinned to [0, 1]; without the guard the
// length reciprocal would turn every weight into NaN.
func (l Line[T]) Points() iter.Seq[LineCoord[T]] {
	return func(yield func(LineCoord[T]) bool) {
		dx := l.End.X - l.Start.X
		dy := l.End.Y - l.Start.Y
		length := T(math.Sqrt(float64(dx*dx + dy*dy)))
		if length == 0 {
			p := Point2[T]{X: round(l.Start.X), Y: round(l.Start.Y)}
			yield(LineCoord[T]{P: p, W: [2]T{0, 1}})
			return
		}
		invLen := 1 / length

		// Reduce to octant 0 (dx >= dy >= 0) so the walker only ever
		// steps east or north-east.
		oct := octantOf(l.Start, l.End)
		s := octTo(oct, l.Start)
		e := octTo(oct, l.End)
		odx := e.X - s.X
		ody := e.Y - s.Y

		x := round(s.X)
		y := round(s.Y)
		endX := round(e.X)

		// k is the line function evaluated at the midpoint (x+1, y+0.5)
		// between the two candidate cells; its sign picks the step.
		k := (y+0.5-s.Y)*odx - (x+1-s.X)*ody

		for x <= endX {
			p := octFrom(oct, Point2[T]{X: x, Y: y})
			wx := p.X - l.Start.X
			wy := p.Y - l.Start.Y
			f := T(math.Sqrt(float64(wx*wx+wy*wy))) * invLen
			if !yield(LineCoord[T]{P: p, W: [2]T{f, 1 - f}}) {
				return
			}
			if k < 0 {
				y++
				k += odx
			}
			k -= ody
			x++
		}
	}
}

// Coords implements the Drawable interface.
func (l Line[T]) Coords() iter.Seq[Coord[T]] {
	return func(yield func(Coord[T]) bool) {
		for c := range l.Points() {
			if !yield(c) {
				return
			}
		}
	}
}

func round[T Scalar](v T) T {
	return T(math.Round(float64(v)))
}

// octant identifies one of the eight half-quadrants around the segment
// start. Octant 0 is the region where dx >= dy >= 0.
type octant uint8

func octantOf[T Scalar](start, end Point2[T]) octant {
	dx := end.X - start.X
	dy := end.Y - start.Y
	var o octant
	if dy < 0 {
		dx, dy = -dx, -dy
		o += 4
	}
	if dx < 0 {
		dx, dy = dy, -dx
		o += 2
	}
	if dx < dy {
		o++
	}
	return o
}

// octTo rotates a point into octant-0 space.
func octTo[T Scalar](o octant, p Point2[T]) Point2[T] {
	switch o {
	case 0:
		return Point2[T]{p.X, p.Y}
	case 1:
		return Point2[T]{p.Y, p.X}
	case 2:
		return Point2[T]{p.Y, -p.X}
	case 3:
		return Point2[T]{-p.X, p.Y}
	case 4:
		return Point2[T]{-p.X, -p.Y}
	case 5:
		return Point2[T]{-p.Y, -p.X}
	case 6:
		return Point2[T]{-p.Y, p.X}
	default:
		return Point2[T]{p.X, -p.Y}
	}
}

// octFrom rotates a point back out of octant-0 space. Inverse of octTo.
func octFrom[T Scalar](o octant, p Point2[T]) Point2[T] {
	switch o {
	case 0:
		return Point2[T]{p.X, p.Y}
	case 1:
		return Point2[T]{p.Y, p.X}
	case 2:
		return Point2[T]{-p.Y, p.X}
	case 3:
		return Point2[T]{-p.X, p.Y}
	case 4:
		return Point2[T]{-p.X, -p.Y}
	case 5:
		return Point2[T]{-p.Y, -p.X}
	case 6:
		return Point2[T]{p.Y, -p.X}
	default:
		return Point2[T]{p.X, -p.Y}
	}
}
