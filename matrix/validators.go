// SPDX-License-Identifier: MIT
// Package: matrix
//
// Shape and content checks shared by the kernels. Every exported validator
// reports the failing check as "<Validator>: <sentinel>" so callers match with
// errors.Is and read which precondition broke.

package matrix

import (
	"fmt"
	"math"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

func isNilMatrix(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is rejected too.
func ValidateNotNil(m Matrix) error {
	if isNilMatrix(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square. The influence kernels
// only ever see square operands: A, I - A and its inverse.
func ValidateSquare(m Matrix) error {
	if isNilMatrix(m) {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// validatePair runs the nil checks on a and b, then the shape predicate.
func validatePair(tag string, a, b Matrix, compatible func(a, b Matrix) bool) error {
	if isNilMatrix(a) || isNilMatrix(b) {
		return validatorErrorf(tag, ErrNilMatrix)
	}
	if !compatible(a, b) {
		return validatorErrorf(tag, fmt.Errorf("%dx%d vs %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateBinarySameShape ensures a and b are non-nil and of equal dimensions.
func ValidateBinarySameShape(a, b Matrix) error {
	return validatePair("ValidateBinarySameShape", a, b, func(a, b Matrix) bool {
		return a.Rows() == b.Rows() && a.Cols() == b.Cols()
	})
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	return validatePair("ValidateMulCompatible", a, b, func(a, b Matrix) bool {
		return a.Cols() == b.Rows()
	})
}

// ValidateVecLen ensures the vector is non-nil with length n.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateFinite rejects a vector holding NaN or ±Inf, naming the first bad index.
func ValidateFinite(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("ValidateFinite", fmt.Errorf("index %d: %w", i, ErrNaNInf))
		}
	}

	return nil
}
