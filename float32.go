package floatcmp

import "github.com/chewxy/math32"

var cmp32 = comparator[float32]{
	tol:    Tolerance32,
	posInf: func(v float32) bool { return math32.IsInf(v, 1) },
	negInf: func(v float32) bool { return math32.IsInf(v, -1) },
}

// Float32Equal reports whether a and b differ by less than Tolerance32,
// or are infinities of the same sign. NaN is never equal to anything.
func Float32Equal(a, b float32) bool {
	return cmp32.equal(a, b)
}

// Float32IsZero reports whether a lies strictly between -Tolerance32 and
// Tolerance32.
func Float32IsZero(a float32) bool {
	return cmp32.isZero(a)
}

// Float32GreaterThan reports whether a exceeds b by more than Tolerance32.
func Float32GreaterThan(a, b float32) bool {
	return cmp32.greaterThan(a, b)
}

// Float32GreaterOrEqual is the float32 counterpart of Float64GreaterOrEqual.
func Float32GreaterOrEqual(a, b float32) bool {
	return cmp32.greaterOrEqual(a, b)
}

// Float32LessThan reports whether b exceeds a by more than Tolerance32.
func Float32LessThan(a, b float32) bool {
	return cmp32.lessThan(a, b)
}

// Float32LessOrEqual is the float32 counterpart of Float64LessOrEqual.
func Float32LessOrEqual(a, b float32) bool {
	return cmp32.lessOrEqual(a, b)
}
