// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the fixed-shape matrix types.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linbra/matrix"
	"github.com/katalvlaran/linbra/scalar"
	"github.com/katalvlaran/linbra/vector"
)

func TestNew_RowMajorInputColumnMajorStorage(t *testing.T) {
	m := matrix.New2x2([2][2]int{
		{1, 2},
		{3, 4},
	})
	require.Equal(t, vector.New2(1, 3), m[0])
	require.Equal(t, vector.New2(2, 4), m[1])
	require.Equal(t, 2, m.At(1, 0))
	require.Equal(t, 3, m.At(0, 1))
}

func TestLiteralOfColumns(t *testing.T) {
	m := matrix.Matrix2x3[int]{
		vector.New3(1, 2, 3),
		vector.New3(4, 5, 6),
	}
	require.Equal(t, matrix.FromColumns2x3(vector.New3(1, 2, 3), vector.New3(4, 5, 6)), m)
	require.Equal(t, matrix.New2x3([3][2]int{{1, 4}, {2, 5}, {3, 6}}), m)
}

func TestShape(t *testing.T) {
	var m matrix.Matrix4x2[float32]
	require.Equal(t, 4, m.Cols())
	require.Equal(t, 2, m.Rows())

	var sq matrix.Matrix3[int]
	require.Equal(t, 3, sq.Cols())
	require.Equal(t, 3, sq.Rows())
}

func TestColAndRow(t *testing.T) {
	m := matrix.New3x2([2][3]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.Equal(t, vector.New2(1, 4), m.Col(0))
	require.Equal(t, vector.New2(3, 6), m.Col(2))
	require.Equal(t, vector.New3(1, 2, 3), m.Row(0))
	require.Equal(t, vector.New3(4, 5, 6), m.Row(1))
}

func TestIndexedWrite(t *testing.T) {
	m := matrix.Identity2[int]()
	m[1][0] = 9 // column 1, row 0
	require.Equal(t, vector.New2(1, 9), m.Row(0))
	require.Equal(t, vector.New2(9, 1), m.Col(1))
}

func TestFromRows(t *testing.T) {
	m := matrix.FromRows2x3(vector.New2(1, 4), vector.New2(2, 5), vector.New2(3, 6))
	require.Equal(t, matrix.FromColumns2x3(vector.New3(1, 2, 3), vector.New3(4, 5, 6)), m)
}

func TestFillAndConvert(t *testing.T) {
	f := matrix.Fill3x4(7)
	for c := 0; c < f.Cols(); c++ {
		for r := 0; r < f.Rows(); r++ {
			require.Equal(t, 7, f.At(c, r))
		}
	}

	m := matrix.New2x2([2][2]float64{{1.9, -1.9}, {2.5, 0}})
	got := matrix.Convert2x2[int](m)
	require.Equal(t, matrix.New2x2([2][2]int{{1, -1}, {2, 0}}), got)
}

func TestTranspose_NonSquare(t *testing.T) {
	m := matrix.New3x2([2][3]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	want := matrix.New2x3([3][2]int{
		{1, 4},
		{2, 5},
		{3, 6},
	})
	require.Equal(t, want, m.Transpose())
	require.Equal(t, m, m.Transpose().Transpose())
}

func TestElementwise(t *testing.T) {
	a := matrix.New2x2([2][2]int{{1, 2}, {3, 4}})
	b := matrix.New2x2([2][2]int{{10, 20}, {30, 40}})
	require.Equal(t, matrix.New2x2([2][2]int{{11, 22}, {33, 44}}), a.Add(b))
	require.Equal(t, matrix.New2x2([2][2]int{{9, 18}, {27, 36}}), b.Sub(a))
	require.Equal(t, matrix.New2x2([2][2]int{{-1, -2}, {-3, -4}}), a.Neg())
	require.Equal(t, matrix.New2x2([2][2]int{{3, 6}, {9, 12}}), a.Scale(3))
	// operands are values
	require.Equal(t, matrix.New2x2([2][2]int{{1, 2}, {3, 4}}), a)
}

func TestMulVec_Identity(t *testing.T) {
	id := matrix.New2x2([2][2]float64{{1, 0}, {0, 1}})
	require.Equal(t, vector.New2(5.0, 7.0), id.MulVec(vector.New2(5.0, 7.0)))
}

func TestMulVec_NonSquare(t *testing.T) {
	m := matrix.New3x2([2][3]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.Equal(t, vector.New2(-2, -2), m.MulVec(vector.New3(1, 0, -1)))
	require.Equal(t, vector.New2(6, 15), m.MulVec(vector.Fill3(1)))
}

func TestMul_NonSquareShapes(t *testing.T) {
	a := matrix.New3x2([2][3]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	b := matrix.New2x3([3][2]int{
		{7, 8},
		{9, 10},
		{11, 12},
	})
	want := matrix.New2x2([2][2]int{
		{58, 64},
		{139, 154},
	})
	require.Equal(t, want, a.Mul2x3(b))

	// 2×3 · 3×2 is the 3×3 outer shape
	ba := b.Mul3x2(a)
	require.Equal(t, 3, ba.Cols())
	require.Equal(t, 3, ba.Rows())
	require.Equal(t, vector.New3(7+32, 14+40, 21+48), ba.Row(0))
}

func TestMul_Square(t *testing.T) {
	a := matrix.New2x2([2][2]int{{1, 2}, {3, 4}})
	b := matrix.New2x2([2][2]int{{0, 1}, {1, 0}})
	// right multiplication by the permutation swaps columns
	require.Equal(t, matrix.New2x2([2][2]int{{2, 1}, {4, 3}}), a.Mul2x2(b))
	// left multiplication swaps rows
	require.Equal(t, matrix.New2x2([2][2]int{{3, 4}, {1, 2}}), b.Mul2x2(a))
}

func TestEqualAndApproxEqual(t *testing.T) {
	a := matrix.Identity3[float64]()
	b := matrix.Identity3[float64]()
	require.True(t, a.Equal(b))

	b[2][1] = 1e-12
	require.False(t, a.Equal(b))
	require.True(t, a.ApproxEqual(b))
	require.False(t, a.ApproxEqual(b, scalar.WithEpsilon(1e-15)))
}

func TestString_RowPerLine(t *testing.T) {
	m := matrix.New2x2([2][2]int{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())

	n := matrix.New3x2([2][3]float64{{0.5, 1, 1.25}, {-2, 0, 3}})
	require.Equal(t, "[0.5, 1, 1.25]\n[-2, 0, 3]\n", n.String())
	require.Equal(t, "[0.50, 1.00, 1.25]\n[-2.00, 0.00, 3.00]\n", n.StringWith(scalar.WithPrecision(2)))
}

func TestIdentityDiagonalTrace(t *testing.T) {
	require.Equal(t, matrix.New3x3([3][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}), matrix.Identity3[int]())
	require.Equal(t, matrix.Diagonal4(vector.Fill4(1)), matrix.Identity4[int]())

	d := matrix.Diagonal3(vector.New3(1, 2, 3))
	require.Equal(t, vector.New3(1, 2, 3), d.Diag())
	require.Equal(t, 6, d.Trace())
	require.Equal(t, 4, matrix.Identity4[int]().Trace())
}

func TestOuter(t *testing.T) {
	u, v := vector.New2(1, 2), vector.New2(3, 4)
	o := matrix.Outer2(u, v)
	require.Equal(t, matrix.New2x2([2][2]int{{3, 4}, {6, 8}}), o)
	// trace of u ⊗ v is u·v
	require.Equal(t, u.Dot(v), o.Trace())
	// (u ⊗ v)·w = u (v·w)
	w := vector.New2(5, -1)
	require.Equal(t, u.Scale(v.Dot(w)), o.MulVec(w))

	o3 := matrix.Outer3(vector.New3(1, 0, 0), vector.New3(0, 0, 1))
	require.Equal(t, 1, o3.At(2, 0))
	require.Equal(t, 0, o3.Det())
}

func TestDet(t *testing.T) {
	require.Equal(t, -2, matrix.New2x2([2][2]int{{1, 2}, {3, 4}}).Det())
	require.Equal(t, 6, matrix.New3x3([3][3]int{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}}).Det())
	require.Equal(t, 1387, matrix.New4x4([4][4]int{
		{5, 1, 0, 2},
		{1, 6, 1, 0},
		{0, 1, 7, 1},
		{2, 0, 1, 8},
	}).Det())

	m4 := matrix.New4x4([4][4]int{
		{1, 2, 0, 3},
		{0, 1, 4, 0},
		{2, 0, 1, 1},
		{0, 3, 0, 2},
	})
	require.Equal(t, -26, m4.Det())
	require.Equal(t, -26, m4.Transpose().Det())
	require.Equal(t, 24, matrix.Diagonal4(vector.New4(1, 2, 3, 4)).Det())

	// swapping two columns flips the sign
	swapped := matrix.Identity3[int]()
	swapped[0], swapped[1] = swapped[1], swapped[0]
	require.Equal(t, -1, swapped.Det())
}

func TestInverse2(t *testing.T) {
	m := matrix.New2x2([2][2]float64{{1, 2}, {3, 4}})
	require.Equal(t, -2.0, m.Det())

	inv, err := matrix.Inverse2(m)
	require.NoError(t, err)
	require.Equal(t, matrix.New2x2([2][2]float64{{-2, 1}, {1.5, -0.5}}), inv)
	require.True(t, m.Mul2x2(inv).ApproxEqual(matrix.Identity2[float64]()))
}

func TestInverse3(t *testing.T) {
	inv, err := matrix.Inverse3(matrix.Diagonal3(vector.New3(2.0, 4, 8)))
	require.NoError(t, err)
	require.Equal(t, matrix.Diagonal3(vector.New3(0.5, 0.25, 0.125)), inv)

	m := matrix.New3x3([3][3]float64{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}})
	inv, err = matrix.Inverse3(m)
	require.NoError(t, err)
	require.True(t, m.Mul3x3(inv).ApproxEqual(matrix.Identity3[float64]()))
	require.True(t, inv.Mul3x3(m).ApproxEqual(matrix.Identity3[float64]()))
	require.InDelta(t, 1.0/6, inv.Det(), 1e-12)
}

func TestInverse4(t *testing.T) {
	for name, m := range map[string]matrix.Matrix4[float64]{
		"dominant": matrix.New4x4([4][4]float64{
			{5, 1, 0, 2},
			{1, 6, 1, 0},
			{0, 1, 7, 1},
			{2, 0, 1, 8},
		}),
		"mixed-sign": matrix.New4x4([4][4]float64{
			{1, 2, 0, 3},
			{0, 1, 4, 0},
			{2, 0, 1, 1},
			{0, 3, 0, 2},
		}),
		"diagonal": matrix.Diagonal4(vector.New4(2.0, 4, 5, 8)),
	} {
		t.Run(name, func(t *testing.T) {
			inv, err := matrix.Inverse4(m)
			require.NoError(t, err)
			require.True(t, m.Mul4x4(inv).ApproxEqual(matrix.Identity4[float64]()), "m·m⁻¹:\n%s", m.Mul4x4(inv))
			require.True(t, inv.Mul4x4(m).ApproxEqual(matrix.Identity4[float64]()), "m⁻¹·m:\n%s", inv.Mul4x4(m))
		})
	}
}

func TestInverse_Float32(t *testing.T) {
	m := matrix.New2x2([2][2]float32{{4, 7}, {2, 6}})
	inv, err := matrix.Inverse2(m)
	require.NoError(t, err)
	require.True(t, m.Mul2x2(inv).ApproxEqual(matrix.Identity2[float32](), scalar.WithEpsilon(1e-6)))
}

func TestInverse_Singular(t *testing.T) {
	_, err := matrix.Inverse2(matrix.New2x2([2][2]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.EqualError(t, err, "Inverse: matrix: singular matrix")

	inv3, err := matrix.Inverse3(matrix.New3x3([3][3]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}))
	require.True(t, errors.Is(err, matrix.ErrSingular))
	require.Equal(t, matrix.Matrix3[float64]{}, inv3)

	inv4, err := matrix.Inverse4(matrix.Fill4x4(1.0))
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.Equal(t, matrix.Matrix4[float64]{}, inv4)
}
