package floatcmp

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// is32 reports whether F is stored in 32 bits. A type switch would miss
// named types such as `type Celsius float32`.
func is32[F constraints.Float]() bool {
	var z F
	return unsafe.Sizeof(z) == 4
}

// Tolerance returns the absolute tolerance used for values of type F.
func Tolerance[F constraints.Float]() F {
	if is32[F]() {
		return F(Tolerance32)
	}
	return F(Tolerance64)
}

// Equal is Float32Equal or Float64Equal, chosen by the width of F.
func Equal[F constraints.Float](a, b F) bool {
	if is32[F]() {
		return Float32Equal(float32(a), float32(b))
	}
	return Float64Equal(float64(a), float64(b))
}

// IsZero is Float32IsZero or Float64IsZero, chosen by the width of F.
func IsZero[F constraints.Float](a F) bool {
	if is32[F]() {
		return Float32IsZero(float32(a))
	}
	return Float64IsZero(float64(a))
}

// GreaterThan is Float32GreaterThan or Float64GreaterThan, chosen by the
// width of F.
func GreaterThan[F constraints.Float](a, b F) bool {
	if is32[F]() {
		return Float32GreaterThan(float32(a), float32(b))
	}
	return Float64GreaterThan(float64(a), float64(b))
}

// GreaterOrEqual is Float32GreaterOrEqual or Float64GreaterOrEqual,
// chosen by the width of F.
func GreaterOrEqual[F constraints.Float](a, b F) bool {
	if is32[F]() {
		return Float32GreaterOrEqual(float32(a), float32(b))
	}
	return Float64GreaterOrEqual(float64(a), float64(b))
}

// LessThan is Float32LessThan or Float64LessThan, chosen by the width of F.
func LessThan[F constraints.Float](a, b F) bool {
	if is32[F]() {
		return Float32LessThan(float32(a), float32(b))
	}
	return Float64LessThan(float64(a), float64(b))
}

// LessOrEqual is Float32LessOrEqual or Float64LessOrEqual, chosen by the
// width of F.
func LessOrEqual[F constraints.Float](a, b F) bool {
	if is32[F]() {
		return Float32LessOrEqual(float32(a), float32(b))
	}
	return Float64LessOrEqual(float64(a), float64(b))
}
