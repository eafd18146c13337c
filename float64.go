package floatcmp

import "math"

var cmp64 = comparator[float64]{
	tol:    Tolerance64,
	posInf: func(v float64) bool { return math.IsInf(v, 1) },
	negInf: func(v float64) bool { return math.IsInf(v, -1) },
}

// Float64Equal reports whether a and b differ by less than Tolerance64,
// or are infinities of the same sign. NaN is never equal to anything.
func Float64Equal(a, b float64) bool {
	return cmp64.equal(a, b)
}

// Float64IsZero reports whether a lies strictly between -Tolerance64 and
// Tolerance64. Infinities and NaN are not zero.
func Float64IsZero(a float64) bool {
	return cmp64.isZero(a)
}

// Float64GreaterThan reports whether a exceeds b by more than Tolerance64.
func Float64GreaterThan(a, b float64) bool {
	return cmp64.greaterThan(a, b)
}

// Float64GreaterOrEqual reports whether a is greater than b or equal to it
// within Tolerance64. Two infinities of the same sign compare as equal.
func Float64GreaterOrEqual(a, b float64) bool {
	return cmp64.greaterOrEqual(a, b)
}

// Float64LessThan reports whether b exceeds a by more than Tolerance64.
func Float64LessThan(a, b float64) bool {
	return cmp64.lessThan(a, b)
}

// Float64LessOrEqual reports whether a is less than b or equal to it
// within Tolerance64. Two infinities of the same sign compare as equal.
func Float64LessOrEqual(a, b float64) bool {
	return cmp64.lessOrEqual(a, b)
}
