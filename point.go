package geom

import "fmt"

// Point represents a fixed 2D position. The zero value is the origin.
//
// Point and Vec are deliberately distinct types. Adding two Points is
// meaningless and absent from the method set, while a Point can be
// translated by a Vec, and the difference of two Points is a Vec. Points
// also have no magnitude: there is no Length or scalar scaling for them.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is a convenience function to create a Point.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns p translated by v.
func (p Point[T]) Add(v Vec[T]) Point[T] {
	return Point[T]{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns p translated backwards by v.
func (p Point[T]) Sub(v Vec[T]) Point[T] {
	return Point[T]{X: p.X - v.X, Y: p.Y - v.Y}
}

// To returns the displacement from p to q, that is, the vector which added
// to p yields q.
func (p Point[T]) To(q Point[T]) Vec[T] {
	return Vec[T]{X: q.X - p.X, Y: q.Y - p.Y}
}

// At returns the coordinate with index i: 0 is X, 1 is Y.
// Any other index is a programmer error and panics. Indices must never come
// from untrusted input.
func (p Point[T]) At(i int) T {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	}
	panic("geom: point index out of range")
}

// Set assigns the coordinate with index i: 0 is X, 1 is Y.
// Any other index panics, as with At.
func (p *Point[T]) Set(i int, c T) {
	switch i {
	case 0:
		p.X = c
	case 1:
		p.Y = c
	default:
		panic("geom: point index out of range")
	}
}

// LessEq reports whether both coordinates of p are less than or equal to the
// corresponding coordinates of q.
//
// This is the product order, which is partial: points such as (1,5) and
// (5,1) are incomparable, with neither LessEq holding. Use PointLess for a
// total order suitable for sorting and container keys.
func (p Point[T]) LessEq(q Point[T]) bool {
	return p.X <= q.X && p.Y <= q.Y
}

// GreaterEq is the mirror of LessEq.
func (p Point[T]) GreaterEq(q Point[T]) bool {
	return q.LessEq(p)
}

// Less reports whether p.LessEq(q) holds and p != q.
// Like LessEq it is only a partial order.
func (p Point[T]) Less(q Point[T]) bool {
	return p.LessEq(q) && p != q
}

// Greater is the mirror of Less.
func (p Point[T]) Greater(q Point[T]) bool {
	return q.Less(p)
}

// String returns the point formatted as "x, y".
func (p Point[T]) String() string {
	return fmt.Sprintf("%v, %v", p.X, p.Y)
}
