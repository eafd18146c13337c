package floatcmp

// Absolute tolerances used by every comparison of the matching width.
// All six operations of a width read the same constant, so they stay
// mutually consistent.
const (
	// Tolerance64 is the absolute tolerance for float64 comparisons.
	Tolerance64 float64 = 1e-12

	// Tolerance32 is the absolute tolerance for float32 comparisons.
	// Single precision resolves about 7 decimal digits near 1.
	Tolerance32 float32 = 1e-7
)
