package geom

import (
	"fmt"
	"math"
)

// Vec represents a 2D displacement vector.
// Unlike Point which represents a position, Vec represents a direction and
// magnitude with no fixed location. The zero value is the zero vector.
type Vec[T Scalar] struct {
	X, Y T
}

// V is a convenience function to create a Vec.
func V[T Scalar](x, y T) Vec[T] {
	return Vec[T]{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec[T]) Add(w Vec[T]) Vec[T] {
	return Vec[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec[T]) Sub(w Vec[T]) Vec[T] {
	return Vec[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec[T]) Mul(s T) Vec[T] {
	return Vec[T]{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
// Division by zero is not checked: it follows T's own division semantics,
// producing infinity or NaN for floating-point T and a run-time panic for
// integer T.
func (v Vec[T]) Div(s T) Vec[T] {
	return Vec[T]{X: v.X / s, Y: v.Y / s}
}

// IsZero reports whether v is the zero vector.
func (v Vec[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// At returns the component with index i: 0 is X, 1 is Y.
// Any other index is a programmer error and panics. Indices must never come
// from untrusted input.
func (v Vec[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic("geom: vector index out of range")
}

// Set assigns the component with index i: 0 is X, 1 is Y.
// Any other index panics, as with At.
func (v *Vec[T]) Set(i int, c T) {
	switch i {
	case 0:
		v.X = c
	case 1:
		v.Y = c
	default:
		panic("geom: vector index out of range")
	}
}

// LessEq reports whether both components of v are less than or equal to the
// corresponding components of w.
//
// This is the product order, which is partial: vectors such as (1,5) and
// (5,1) are incomparable, with neither LessEq holding. Use VecLess for a
// total order suitable for sorting and container keys.
func (v Vec[T]) LessEq(w Vec[T]) bool {
	return v.X <= w.X && v.Y <= w.Y
}

// GreaterEq is the mirror of LessEq.
func (v Vec[T]) GreaterEq(w Vec[T]) bool {
	return w.LessEq(v)
}

// Less reports whether v.LessEq(w) holds and v != w.
// Like LessEq it is only a partial order.
func (v Vec[T]) Less(w Vec[T]) bool {
	return v.LessEq(w) && v != w
}

// Greater is the mirror of Less.
func (v Vec[T]) Greater(w Vec[T]) bool {
	return w.Less(v)
}

// String returns the vector formatted as "x, y".
func (v Vec[T]) String() string {
	return fmt.Sprintf("%v, %v", v.X, v.Y)
}

// Length returns the length (magnitude) of v.
func Length[T Float](v Vec[T]) T {
	return T(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Normalized returns a unit vector in the same direction as v.
// The zero vector is returned unchanged rather than dividing zero by zero.
func Normalized[T Float](v Vec[T]) Vec[T] {
	l := Length(v)
	if l == 0 {
		return Vec[T]{}
	}
	return v.Div(l)
}
