// SPDX-License-Identifier: MIT

package matrix

// Matrix is the element-level view the kernels work against. *Dense is the
// only implementation in this module; other implementations take the slower
// At/Set fallback paths of Add, Sub, Mul, MatVec and LU.
type Matrix interface {
	Rows() int
	Cols() int

	// At returns element (i, j), or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set stores v at (i, j). Dense rejects NaN and ±Inf with ErrNaNInf.
	Set(i, j int, v float64) error

	// Clone returns a deep copy.
	Clone() Matrix
}

var _ Matrix = (*Dense)(nil)
