package geom

import "golang.org/x/image/math/fixed"

// ToFixed converts p to a 26.6 fixed-point point as used by the x/image
// font and rasterization APIs. Each coordinate is truncated to 1/64-unit
// precision.
func ToFixed[T Float](p Point[T]) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(p.X * 64),
		Y: fixed.Int26_6(p.Y * 64),
	}
}

// FromFixed converts a 26.6 fixed-point point to floating point.
func FromFixed[T Float](p fixed.Point26_6) Point[T] {
	return Point[T]{
		X: T(p.X) / 64,
		Y: T(p.Y) / 64,
	}
}
