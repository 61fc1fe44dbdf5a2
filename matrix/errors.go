// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Sentinels returned by Dense, the validators and the kernels, usually
// behind an operation tag. Match them with errors.Is.
var (
	// ErrInvalidDimensions: a requested shape has a non-positive side, or
	// an adjacency matrix was asked of an empty graph.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange: row or column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch: operand shapes or vector length do not line up.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf: a non-finite number where only finite ones are accepted.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix: nil matrix or vector operand.
	ErrNilMatrix = errors.New("matrix: nil operand")

	// ErrGraphNil: nil *core.Graph handed to NewAdjacencyMatrix or ValueVector.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrSingular: LU found no pivot above tolerance, so I - A (or whatever
	// was factored) has no usable inverse.
	ErrSingular = errors.New("matrix: singular matrix")
)
