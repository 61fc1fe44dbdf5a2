// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, matrix-vector
// products, LU factorization with partial pivoting, and inversion.
// All functions perform strict fail-fast validation and return sentinel
// errors wrapped with an operation tag.
//
// Determinism:
//   - Fixed loop orders everywhere; *Dense operands hit flat-slice fast paths,
//     other Matrix implementations use the At/Set fallback in the same order.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for substitutions and dot products.
const ZeroSum = 0.0

// SingularTol is the relative pivot threshold: a pivot p with
// |p| <= SingularTol·‖A‖∞ is treated as zero and the matrix as singular.
const SingularTol = 1e-12

// Operation name constants for unified error wrapping.
const (
	opAdd     = "Add"
	opSub     = "Sub"
	opMul     = "Mul"
	opMatVec  = "MatVec"
	opLU      = "LU"
	opSolve   = "Solve"
	opInverse = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns m as *Dense, copying through At when m is another implementation.
func toDense(m Matrix, tag string) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	d, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	var v float64
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			d.data[i*d.c+j] = v
		}
	}

	return d, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// A fresh Dense is allocated; operands are not mutated.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := toDense(a, opTag)
	if err != nil {
		return nil, err
	}
	db, err := toDense(b, opTag)
	if err != nil {
		return nil, err
	}

	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range res.data {
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// The i→k→j loop order skips zero A[i,k] terms, which dominates for sparse
// adjacency inputs.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (A.Cols != B.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a, opMul)
	if err != nil {
		return nil, err
	}
	db, err := toDense(b, opMul)
	if err != nil {
		return nil, err
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var av float64
	for i := 0; i < aRows; i++ {
		rowA, rowR := i*aCols, i*bCols
		for k := 0; k < aCols; k++ {
			if av = da.data[rowA+k]; av == 0 {
				continue
			}
			rowB := k * bCols
			for j := 0; j < bCols; j++ {
				res.data[rowR+j] += av * db.data[rowB+j]
			}
		}
	}

	return res, nil
}

// MatVec computes y = m·x for a column vector x.
//
// Errors:
//   - ErrNilMatrix (nil m or x), ErrDimensionMismatch (len(x) != m.Cols()).
//
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := toDense(m, opMatVec)
	if err != nil {
		return nil, err
	}

	y := make([]float64, d.r)
	for i := 0; i < d.r; i++ {
		acc := ZeroSum
		base := i * d.c
		for j, xv := range x {
			if xv != 0 {
				acc += d.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}

// LUFactors holds a PA = LU factorization packed into one n×n buffer:
// the strict lower triangle stores L (unit diagonal implied), the upper
// triangle stores U, and perm[i] is the source row of row i.
type LUFactors struct {
	n    int
	lu   []float64
	perm []int
}

// LU factorizes m with partial (row) pivoting.
//
// Implementation:
//   - Stage 1: validate square input; copy into a working buffer.
//   - Stage 2: for each column k pick the row with the largest |a[i,k]| (i ≥ k,
//     first maximum wins), swap it up, and eliminate below the pivot.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//   - ErrSingular if a pivot falls below SingularTol·‖m‖∞.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix) (*LUFactors, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	src, err := toDense(m, opLU)
	if err != nil {
		return nil, err
	}

	n := src.r
	f := &LUFactors{n: n, lu: make([]float64, n*n), perm: make([]int, n)}
	copy(f.lu, src.data)
	for i := range f.perm {
		f.perm[i] = i
	}

	tol := SingularTol * src.NormInf()
	a := f.lu
	for k := 0; k < n; k++ {
		p, best := k, math.Abs(a[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= tol {
			return nil, matrixErrorf(opLU, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j := 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
		}

		pivot := a[k*n+k]
		for i := k + 1; i < n; i++ {
			l := a[i*n+k] / pivot
			a[i*n+k] = l
			if l == 0 {
				continue
			}
			for j := k + 1; j < n; j++ {
				a[i*n+j] -= l * a[k*n+j]
			}
		}
	}

	return f, nil
}

// Solve returns x with A·x = b for the factorized A.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch for a bad b.
func (f *LUFactors) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x := make([]float64, f.n)
	f.solveInto(b, x)

	return x, nil
}

// solveInto runs forward (L·y = P·b) then backward (U·x = y) substitution.
func (f *LUFactors) solveInto(b, x []float64) {
	n, a := f.n, f.lu
	for i := 0; i < n; i++ {
		sum := b[f.perm[i]]
		for k := 0; k < i; k++ {
			sum -= a[i*n+k] * x[k]
		}
		x[i] = sum
	}
	for i := n - 1; i >= 0; i-- {
		sum := x[i]
		for k := i + 1; k < n; k++ {
			sum -= a[i*n+k] * x[k]
		}
		x[i] = sum / a[i*n+i]
	}
}

// Inverse computes A^{-1} via LU with partial pivoting, solving one unit
// column at a time. The input is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//   - ErrSingular when A is not invertible within SingularTol.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix) (Matrix, error) {
	f, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := f.n
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	e := make([]float64, n)
	x := make([]float64, n)
	for col := 0; col < n; col++ {
		for i := range e {
			e[i] = 0
		}
		e[col] = 1
		f.solveInto(e, x)
		for i := 0; i < n; i++ {
			if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
				return nil, matrixErrorf(opInverse, ErrSingular)
			}
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// VecSum returns Σ x[i].
func VecSum(x []float64) float64 {
	s := ZeroSum
	for _, v := range x {
		s += v
	}

	return s
}
