package geom

// ConvertVec converts v to element type T, converting each component with
// Go's usual numeric conversion semantics. No rounding is applied beyond
// what the underlying conversion performs, so converting a float element
// type to an integer one truncates toward zero.
//
// The target type cannot be inferred from the arguments:
//
//	vf := geom.ConvertVec[float64](geom.V(1, 2))
func ConvertVec[T, U Scalar](v Vec[U]) Vec[T] {
	return Vec[T]{X: T(v.X), Y: T(v.Y)}
}

// ConvertPoint converts p to element type T, converting each coordinate
// with Go's usual numeric conversion semantics, as with ConvertVec.
func ConvertPoint[T, U Scalar](p Point[U]) Point[T] {
	return Point[T]{X: T(p.X), Y: T(p.Y)}
}
