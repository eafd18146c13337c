// Copyright ©2024 The GUDA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package floatcmp provides tolerance-bounded equality and ordering for
// float32 and float64 values.
//
// Exact comparison of floating-point results is brittle: 0.1+0.2 is not
// 0.3 in binary. The functions in this package treat two values as equal
// when their difference lies strictly inside a fixed absolute tolerance,
// one per width:
//
//   - Tolerance64 (1e-12) for float64
//   - Tolerance32 (1e-7) for float32
//
// Every width exposes the same six operations: Equal, IsZero,
// GreaterThan, GreaterOrEqual, LessThan and LessOrEqual. Equal,
// GreaterOrEqual and LessOrEqual report true for two infinities of the
// same sign, since Inf-Inf is NaN in IEEE-754. The strict operations and
// IsZero never special-case infinity. NaN on either side makes every
// operation report false.
//
// All functions are pure and safe for concurrent use.
package floatcmp
