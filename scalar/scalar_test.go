// SPDX-License-Identifier: MIT

package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linbra/scalar"
)

func TestAbs(t *testing.T) {
	require.Equal(t, 3, scalar.Abs(-3))
	require.Equal(t, 3, scalar.Abs(3))
	require.Equal(t, uint8(7), scalar.Abs(uint8(7)))
	require.Equal(t, 2.5, scalar.Abs(-2.5))
}

func TestSqrt(t *testing.T) {
	require.Equal(t, 3.0, scalar.Sqrt(9.0))
	require.Equal(t, float32(2), scalar.Sqrt(float32(4)))
	// integer roots truncate
	require.Equal(t, 2, scalar.Sqrt(8))
	require.True(t, math.IsNaN(scalar.Sqrt(-1.0)))
}

func TestConvert(t *testing.T) {
	require.Equal(t, 2, scalar.Convert[int](2.9))
	require.Equal(t, -2, scalar.Convert[int](-2.9))
	require.Equal(t, uint8(44), scalar.Convert[uint8](300))
	require.Equal(t, 7.0, scalar.Convert[float64](int16(7)))
}

func TestApproxEqual(t *testing.T) {
	require.True(t, scalar.ApproxEqual(1.0, 1.0+1e-12))
	require.False(t, scalar.ApproxEqual(1.0, 1.001))
	require.True(t, scalar.ApproxEqual(1.0, 1.001, scalar.WithEpsilon(0.01)))
	require.True(t, scalar.ApproxEqual(uint8(3), uint8(5), scalar.WithEpsilon(2)))
	require.False(t, scalar.ApproxEqual(uint8(5), uint8(3)))
	require.True(t, scalar.ApproxEqual(math.Inf(1), math.Inf(1)))
	require.False(t, scalar.ApproxEqual(math.NaN(), math.NaN()))
}

func TestOptions_Defaults(t *testing.T) {
	o := scalar.NewOptions()
	require.Equal(t, scalar.DefaultEpsilon, o.Epsilon())
	require.Equal(t, scalar.DefaultPrecision, o.Precision())

	o = scalar.NewOptions(nil, scalar.WithEpsilon(0.5), scalar.WithPrecision(2))
	require.Equal(t, 0.5, o.Epsilon())
	require.Equal(t, 2, o.Precision())
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	require.Panics(t, func() { scalar.WithEpsilon(-1) })
	require.Panics(t, func() { scalar.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { scalar.WithEpsilon(math.Inf(1)) })
	require.Panics(t, func() { scalar.WithPrecision(-2) })
	require.NotPanics(t, func() { scalar.WithPrecision(-1) })
}

func TestFormat(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"int", scalar.Format(-42), "-42"},
		{"uint8", scalar.Format(uint8(255)), "255"},
		{"uint64 max", scalar.Format(uint64(math.MaxUint64)), "18446744073709551615"},
		{"float64", scalar.Format(1.5), "1.5"},
		{"float64 integral", scalar.Format(2.0), "2"},
		{"float32 shortest", scalar.Format(float32(0.1)), "0.1"},
		{"fixed precision", scalar.Format(1.0/3.0, scalar.WithPrecision(3)), "0.333"},
		{"precision ignored for ints", scalar.Format(5, scalar.WithPrecision(3)), "5"},
		{"nan", scalar.Format(math.NaN()), "NaN"},
		{"inf", scalar.Format(math.Inf(-1)), "-Inf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.got)
		})
	}
}

func TestJoin(t *testing.T) {
	require.Equal(t, "[1, 2, 3]", scalar.Join([]int{1, 2, 3}))
	require.Equal(t, "[0.50, -1.00]", scalar.Join([]float64{0.5, -1}, scalar.WithPrecision(2)))
	require.Equal(t, "[]", scalar.Join([]int(nil)))
}
