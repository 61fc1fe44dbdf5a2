// Package matrix_test contains unit tests for Dense storage and the linear algebra kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/influence/matrix"
)

// hide wraps a Matrix so kernels cannot see the concrete *Dense and must
// take the interface fallback path.
type hide struct{ matrix.Matrix }

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func mustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func TestNewDense_Validation(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Zero(t, mustAt(t, m, 1, 2))

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestClone_IsDeep(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	assert.Equal(t, 1.0, mustAt(t, m, 0, 0))
	assert.Equal(t, 9.0, mustAt(t, c, 0, 0))
}

func TestAddSubMul(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, 12.0, mustAt(t, sum, 1, 1))

	diff, err := matrix.Sub(a, hide{b})
	require.NoError(t, err)
	assert.Equal(t, -4.0, mustAt(t, diff, 0, 0))

	prod, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, 19.0, mustAt(t, prod, 0, 0))
	assert.Equal(t, 22.0, mustAt(t, prod, 0, 1))
	assert.Equal(t, 43.0, mustAt(t, prod, 1, 0))
	assert.Equal(t, 50.0, mustAt(t, prod, 1, 1))

	fallback, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	assert.Equal(t, prod.(*matrix.Dense).String(), fallback.(*matrix.Dense).String())

	_, err = matrix.Mul(a, mustDense(t, [][]float64{{1, 2, 3}}))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVec(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	y, err := matrix.MatVec(a, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, y)

	_, err = matrix.MatVec(a, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInverse_NeedsPivoting(t *testing.T) {
	// Zero leading pivot: solvable only with row exchange.
	a := mustDense(t, [][]float64{{0, 1}, {1, 0}})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	assert.Equal(t, 0.0, mustAt(t, inv, 0, 0))
	assert.Equal(t, 1.0, mustAt(t, inv, 0, 1))
	assert.Equal(t, 1.0, mustAt(t, inv, 1, 0))
}

func TestInverse_TimesOriginalIsIdentity(t *testing.T) {
	a := mustDense(t, [][]float64{
		{4, 7, 2},
		{3, 6, 1},
		{2, 5, 3},
	})
	inv, err := matrix.Inverse(hide{a})
	require.NoError(t, err)

	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, mustAt(t, prod, i, j), 1e-12, "[%d,%d]", i, j)
		}
	}
}

func TestInverse_Singular(t *testing.T) {
	// I - A for the two-cycle A<->B with unit weights.
	m := mustDense(t, [][]float64{{1, -1}, {-1, 1}})
	_, err := matrix.Inverse(m)
	assert.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(mustDense(t, [][]float64{{1, 2, 3}}))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestLU_Solve(t *testing.T) {
	a := mustDense(t, [][]float64{{2, 1}, {1, 3}})
	f, err := matrix.LU(a)
	require.NoError(t, err)

	x, err := f.Solve([]float64{3, 5})
	require.NoError(t, err)
	assert.InDelta(t, 0.8, x[0], 1e-12)
	assert.InDelta(t, 1.4, x[1], 1e-12)

	_, err = f.Solve([]float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, mustAt(t, I, 2, 2))
	assert.Equal(t, 0.0, mustAt(t, I, 0, 2))
	assert.Equal(t, 1.0, I.NormInf())

	_, err = matrix.IdentityLike(mustDense(t, [][]float64{{1, 2}}))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestVecSum(t *testing.T) {
	assert.Equal(t, 6.0, matrix.VecSum([]float64{1, 2, 3}))
	assert.Zero(t, matrix.VecSum(nil))
}

func TestValidators(t *testing.T) {
	var typedNil *matrix.Dense
	assert.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateSquare(mustDense(t, [][]float64{{1, 2}})), matrix.ErrDimensionMismatch)
	assert.NoError(t, matrix.ValidateSquare(hide{mustDense(t, [][]float64{{1}})}))

	assert.NoError(t, matrix.ValidateFinite([]float64{0, -1, 1e300}))
	err := matrix.ValidateFinite([]float64{1, math.Inf(-1)})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	assert.Contains(t, err.Error(), "index 1")
}
