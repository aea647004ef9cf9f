// SPDX-License-Identifier: MIT
// Package point exposes vectors as positions through the x, y and z axes.
//
// Purpose:
//   - Point2 and Point3 are read-only views: any vector long enough to carry
//     the axes satisfies them, and the accessors alias fixed indices
//     (x → 0, y → 1, z → 2) of the same storage.
//   - At2 and At3 build points; Translate and Distance work through the
//     vector kernels.
//
// Implementations:
//   - Point2: vector.Vector2, vector.Vector3
//   - Point3: vector.Vector3

package point

import (
	"github.com/katalvlaran/linbra/scalar"
	"github.com/katalvlaran/linbra/vector"
)

// Point2 is a position on a plane.
type Point2[T scalar.Scalar] interface {
	// X returns the value on the x-axis (index 0).
	X() T
	// Y returns the value on the y-axis (index 1).
	Y() T
}

// Point3 is a position in space.
type Point3[T scalar.Scalar] interface {
	Point2[T]
	// Z returns the value on the z-axis (index 2).
	Z() T
}

var (
	_ Point2[float64] = vector.Vector2[float64]{}
	_ Point2[float64] = vector.Vector3[float64]{}
	_ Point3[float64] = vector.Vector3[float64]{}
)

// At2 returns the point (x, y).
func At2[T scalar.Scalar](x, y T) vector.Vector2[T] { return vector.New2(x, y) }

// At3 returns the point (x, y, z).
func At3[T scalar.Scalar](x, y, z T) vector.Vector3[T] { return vector.New3(x, y, z) }

// XY projects any Point2 onto the plane, dropping further axes.
func XY[T scalar.Scalar](p Point2[T]) vector.Vector2[T] { return vector.New2(p.X(), p.Y()) }

// XYZ copies the axes of any Point3 into a Vector3.
func XYZ[T scalar.Scalar](p Point3[T]) vector.Vector3[T] { return vector.New3(p.X(), p.Y(), p.Z()) }

// Translate2 moves p by the offset d.
func Translate2[T scalar.Scalar](p, d vector.Vector2[T]) vector.Vector2[T] { return p.Add(d) }

// Translate3 moves p by the offset d.
func Translate3[T scalar.Scalar](p, d vector.Vector3[T]) vector.Vector3[T] { return p.Add(d) }

// Distance2 returns the Euclidean distance between two points on the plane.
// Coordinates are widened to float64 before subtraction, so unsigned points
// never wrap.
func Distance2[T scalar.Scalar](a, b Point2[T]) float64 { return XY(a).Distance(XY(b)) }

// Distance3 returns the Euclidean distance between two points in space.
func Distance3[T scalar.Scalar](a, b Point3[T]) float64 { return XYZ(a).Distance(XYZ(b)) }
