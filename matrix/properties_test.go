// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/linbra/matrix"
	"github.com/katalvlaran/linbra/vector"
)

const propertyRounds = 100

// PropertySuite checks the algebraic laws of the matrix types over seeded
// random operands. Integer operands give exact laws; float operands are
// compared with ApproxEqual.
type PropertySuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *PropertySuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(7)) // deterministic operands
}

func (s *PropertySuite) small() int { return s.rng.Intn(19) - 9 }

func (s *PropertySuite) real() float64 { return s.rng.Float64()*20 - 10 }

func (s *PropertySuite) int3x2() matrix.Matrix3x2[int] {
	var m matrix.Matrix3x2[int]
	for c := range m {
		m[c] = vector.New2(s.small(), s.small())
	}

	return m
}

func (s *PropertySuite) int4x3() matrix.Matrix4x3[int] {
	var m matrix.Matrix4x3[int]
	for c := range m {
		m[c] = vector.New3(s.small(), s.small(), s.small())
	}

	return m
}

func (s *PropertySuite) int2x4() matrix.Matrix2x4[int] {
	var m matrix.Matrix2x4[int]
	for c := range m {
		m[c] = vector.New4(s.small(), s.small(), s.small(), s.small())
	}

	return m
}

func (s *PropertySuite) float4() matrix.Matrix4[float64] {
	var m matrix.Matrix4[float64]
	for c := range m {
		m[c] = vector.New4(s.real(), s.real(), s.real(), s.real())
	}

	return m
}

func (s *PropertySuite) float3() matrix.Matrix3[float64] {
	var m matrix.Matrix3[float64]
	for c := range m {
		m[c] = vector.New3(s.real(), s.real(), s.real())
	}

	return m
}

// TestTransposeInvolution: (mᵀ)ᵀ == m.
func (s *PropertySuite) TestTransposeInvolution() {
	for i := 0; i < propertyRounds; i++ {
		m := s.int4x3()
		require.Equal(s.T(), m, m.Transpose().Transpose())

		f := s.float4()
		require.Equal(s.T(), f, f.Transpose().Transpose())
	}
}

// TestIdentityMultiplication: I·m == m·I == m for every shape pairing.
func (s *PropertySuite) TestIdentityMultiplication() {
	for i := 0; i < propertyRounds; i++ {
		m := s.int4x3()
		require.Equal(s.T(), m, matrix.Identity3[int]().Mul4x3(m))
		require.Equal(s.T(), m, m.Mul4x4(matrix.Identity4[int]()))

		v := vector.New4(s.small(), s.small(), s.small(), s.small())
		require.Equal(s.T(), v, matrix.Identity4[int]().MulVec(v))
	}
}

// TestAssociativity_Exact: (A·B)·C == A·(B·C) across non-square shapes.
func (s *PropertySuite) TestAssociativity_Exact() {
	for i := 0; i < propertyRounds; i++ {
		a, b, c := s.int3x2(), s.int4x3(), s.int2x4()
		left := a.Mul4x3(b).Mul2x4(c)
		right := a.Mul2x3(b.Mul2x4(c))
		require.Equal(s.T(), left, right)
	}
}

// TestAssociativity_Float holds within floating-point precision.
func (s *PropertySuite) TestAssociativity_Float() {
	for i := 0; i < propertyRounds; i++ {
		a, b, c := s.float4(), s.float4(), s.float4()
		left := a.Mul4x4(b).Mul4x4(c)
		right := a.Mul4x4(b.Mul4x4(c))
		require.True(s.T(), left.ApproxEqual(right), "left:\n%s\nright:\n%s", left, right)
	}
}

// TestTransposeOfProduct: (A·B)ᵀ == Bᵀ·Aᵀ.
func (s *PropertySuite) TestTransposeOfProduct() {
	for i := 0; i < propertyRounds; i++ {
		a, b := s.int3x2(), s.int4x3()
		require.Equal(s.T(), a.Mul4x3(b).Transpose(), b.Transpose().Mul2x3(a.Transpose()))
	}
}

// TestMulVecAgreesWithMul: m·v equals the single column of m·[v].
func (s *PropertySuite) TestMulVecAgreesWithMul() {
	for i := 0; i < propertyRounds; i++ {
		m := s.int4x3()
		v := vector.New4(s.small(), s.small(), s.small(), s.small())
		prod := m.Mul2x4(matrix.FromColumns2x4(v, v))
		require.Equal(s.T(), m.MulVec(v), prod.Col(0))
		require.Equal(s.T(), m.MulVec(v), prod.Col(1))
	}
}

// TestRoundTripColumnsAndRows: rebuilding from extracted columns or rows
// yields the original.
func (s *PropertySuite) TestRoundTripColumnsAndRows() {
	for i := 0; i < propertyRounds; i++ {
		m := s.int4x3()
		require.Equal(s.T(), m, matrix.FromColumns4x3(m.Col(0), m.Col(1), m.Col(2), m.Col(3)))
		require.Equal(s.T(), m, matrix.FromRows4x3(m.Row(0), m.Row(1), m.Row(2)))
	}
}

// TestDetMultiplicative: det(A·B) == det(A)·det(B).
func (s *PropertySuite) TestDetMultiplicative() {
	for i := 0; i < propertyRounds; i++ {
		var a, b matrix.Matrix3[int]
		for c := range a {
			a[c] = vector.New3(s.small(), s.small(), s.small())
			b[c] = vector.New3(s.small(), s.small(), s.small())
		}
		require.Equal(s.T(), a.Det()*b.Det(), a.Mul3x3(b).Det())
	}
}

// TestInverseRoundTrip: m·m⁻¹ ≈ I for well-conditioned random input.
func (s *PropertySuite) TestInverseRoundTrip() {
	for i := 0; i < propertyRounds; i++ {
		m3 := s.float3()
		if math.Abs(m3.Det()) > 1 {
			inv, err := matrix.Inverse3(m3)
			require.NoError(s.T(), err)
			require.True(s.T(), m3.Mul3x3(inv).ApproxEqual(matrix.Identity3[float64]()))
		}

		m4 := s.float4()
		if math.Abs(m4.Det()) > 1 {
			inv, err := matrix.Inverse4(m4)
			require.NoError(s.T(), err)
			require.True(s.T(), m4.Mul4x4(inv).ApproxEqual(matrix.Identity4[float64]()))
		}
	}
}

func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}
