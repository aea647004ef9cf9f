// SPDX-License-Identifier: MIT

package point_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linbra/point"
	"github.com/katalvlaran/linbra/vector"
)

func TestAt(t *testing.T) {
	p := point.At2(10, 5)
	require.Equal(t, 10, p.X())
	require.Equal(t, 5, p.Y())
	require.Equal(t, vector.New2(10, 5), p)

	q := point.At3(1.5, -2.0, 3.0)
	require.Equal(t, 1.5, q.X())
	require.Equal(t, -2.0, q.Y())
	require.Equal(t, 3.0, q.Z())
}

func TestAccessorEquivalence(t *testing.T) {
	v := vector.New3[uint8](10, 5, 2)
	var p point.Point3[uint8] = v
	require.Equal(t, v[0], p.X())
	require.Equal(t, v[1], p.Y())
	require.Equal(t, v[2], p.Z())
	// the colour view reads the same storage
	require.Equal(t, p.X(), v.R())
}

func TestVector3IsAPoint2(t *testing.T) {
	var p point.Point2[int] = vector.New3(7, 8, 9)
	require.Equal(t, vector.New2(7, 8), point.XY[int](p))
}

func TestXYZ(t *testing.T) {
	require.Equal(t, vector.New3(1, 2, 3), point.XYZ[int](vector.New3(1, 2, 3)))
}

func TestTranslate(t *testing.T) {
	require.Equal(t, point.At2(4, 6), point.Translate2(point.At2(1, 2), vector.New2(3, 4)))
	require.Equal(t, point.At3(0, 0, 0), point.Translate3(point.At3(1, 2, 3), vector.New3(-1, -2, -3)))
}

func TestDistance(t *testing.T) {
	require.Equal(t, 5.0, point.Distance2[int](point.At2(0, 0), point.At2(3, 4)))
	// unsigned coordinates do not wrap
	require.Equal(t, 5.0, point.Distance2[uint8](point.At2[uint8](3, 4), point.At2[uint8](0, 0)))
	require.Equal(t, 3.0, point.Distance3[float64](point.At3(1.0, 2, 2), point.At3(0.0, 0, 0)))
}
