// Package geom provides generic 2D geometry primitives for Go.
//
// # Overview
//
// geom defines the two foundational value types that 2D graphics and
// geometry code is built on, parameterized over a numeric element type:
//
//   - Point: a fixed position with no magnitude
//   - Vec: a free displacement with direction and magnitude
//
// The distinction is enforced by the type system. A Point can be translated
// by a Vec, and the difference of two Points is a Vec, but two Points cannot
// be added and a Point cannot be scaled: those operations simply do not
// exist on the type.
//
// # Element types
//
// Both types accept any integer or floating-point element type via the
// Scalar constraint. Operations that need fractional precision, such as
// Length, Normalized, and the fixed-point conversions, are constrained to
// Float. Values of different element types convert explicitly with
// ConvertVec and ConvertPoint.
//
// # Ordering
//
// Two distinct orders coexist and must not be confused:
//
//   - The LessEq/Less/GreaterEq/Greater methods implement the product
//     order: both components must satisfy the comparison. It is partial,
//     so some pairs are incomparable.
//   - VecLess/PointLess and friends, together with the Cmp methods,
//     implement the lexicographic order: X first, Y on ties. It is total
//     and is the one to use for sorting and ordered container keys.
//
// # Quick Start
//
//	a := geom.Pt(1.0, 1.0)
//	b := a.Add(geom.V(2.0, 3.0)) // (3, 4)
//	d := a.To(b)                 // vector (2, 3)
//	l := geom.Length(d)
//
// # Coordinate System
//
// geom imposes no coordinate convention of its own. Callers using the
// standard computer-graphics convention (origin top-left, Y down) and
// callers using mathematical axes (Y up) get identical arithmetic.
package geom

// Version is the current version of the library.
const Version = "0.1.0"
