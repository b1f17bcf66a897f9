package geom

// This file defines the lexicographic total order on Vec and Point.
//
// The Less/LessEq methods on the types themselves implement the product
// order, which is partial: incomparable pairs exist, so those methods must
// not be used as sort or container comparators. The comparators here compare
// X first and break ties on Y, ordering every pair definitely.

// Cmp compares v and w lexicographically, X first and then Y on ties.
// It returns -1 if v orders before w, +1 if after, and 0 if v == w.
func (v Vec[T]) Cmp(w Vec[T]) int {
	switch {
	case v.X < w.X:
		return -1
	case v.X > w.X:
		return 1
	case v.Y < w.Y:
		return -1
	case v.Y > w.Y:
		return 1
	}
	return 0
}

// Cmp compares p and q lexicographically, X first and then Y on ties.
// It returns -1 if p orders before q, +1 if after, and 0 if p == q.
func (p Point[T]) Cmp(q Point[T]) int {
	switch {
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return 1
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return 1
	}
	return 0
}

// VecLess reports whether a orders before b lexicographically. It is a
// strict total order, usable as a key-ordering function for sorted slices
// and ordered containers.
func VecLess[T Scalar](a, b Vec[T]) bool {
	return a.Cmp(b) < 0
}

// VecGreater is VecLess with its arguments flipped.
func VecGreater[T Scalar](a, b Vec[T]) bool {
	return VecLess(b, a)
}

// VecLessEq is the negation of VecGreater.
func VecLessEq[T Scalar](a, b Vec[T]) bool {
	return !VecGreater(a, b)
}

// VecGreaterEq is the negation of VecLess.
func VecGreaterEq[T Scalar](a, b Vec[T]) bool {
	return !VecLess(a, b)
}

// PointLess reports whether a orders before b lexicographically. It is a
// strict total order, usable as a key-ordering function for sorted slices
// and ordered containers.
func PointLess[T Scalar](a, b Point[T]) bool {
	return a.Cmp(b) < 0
}

// PointGreater is PointLess with its arguments flipped.
func PointGreater[T Scalar](a, b Point[T]) bool {
	return PointLess(b, a)
}

// PointLessEq is the negation of PointGreater.
func PointLessEq[T Scalar](a, b Point[T]) bool {
	return !PointGreater(a, b)
}

// PointGreaterEq is the negation of PointLess.
func PointGreaterEq[T Scalar](a, b Point[T]) bool {
	return !PointLess(a, b)
}
