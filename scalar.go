package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the element types that geom types and
// functions can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Float constrains the operations that need fractional precision or a
// square root, such as Length, Normalized, and the fixed-point conversions.
type Float interface {
	constraints.Float
}
