package floatcmp

import (
	"golang.org/x/exp/constraints"
)

// comparator holds the tolerance and infinity predicates of one width.
// The arithmetic is done in F, so float32 operands are never widened.
type comparator[F constraints.Float] struct {
	tol    F
	posInf func(F) bool
	negInf func(F) bool
}

// sameInf reports whether a and b are infinities of the same sign.
// NaN is neither.
func (c comparator[F]) sameInf(a, b F) bool {
	if c.posInf(a) && c.posInf(b) {
		return true
	}
	return c.negInf(a) && c.negInf(b)
}

// within reports -tol < d < tol. NaN fails both sides.
func (c comparator[F]) within(d F) bool {
	return d < c.tol && d > -c.tol
}

func (c comparator[F]) equal(a, b F) bool {
	if c.sameInf(a, b) {
		return true
	}
	return c.within(a - b)
}

func (c comparator[F]) isZero(a F) bool {
	return c.within(a)
}

// greaterThan has no infinity branch: Inf-Inf is NaN and NaN > tol is
// false, which is the right answer for a strict comparison.
func (c comparator[F]) greaterThan(a, b F) bool {
	return a-b > c.tol
}

func (c comparator[F]) greaterOrEqual(a, b F) bool {
	if c.sameInf(a, b) {
		return true
	}
	return a-b > -c.tol
}

func (c comparator[F]) lessThan(a, b F) bool {
	return b-a > c.tol
}

func (c comparator[F]) lessOrEqual(a, b F) bool {
	if c.sameInf(a, b) {
		return true
	}
	return b-a > -c.tol
}
