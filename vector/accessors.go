// SPDX-License-Identifier: MIT
// Package: vector
//
// Named accessors. Each name is a fixed alias for one storage index; no view
// copies or reorders components, so v.X(), v.W() and v.R() are v[0] by
// construction. Writes go through indexing (v[0] = x).
//
//	index | point | size | color
//	  0   |   X   |  W   |   R
//	  1   |   Y   |  H   |   G
//	  2   |   Z   |  D   |   B
//	  3   |       |      |   A
//
// Which vectors carry which names:
//
//	Vector2: X Y, W H
//	Vector3: X Y Z, W H D, R G B
//	Vector4: R G B A
package vector

// X returns v[0].
func (v Vector2[T]) X() T { return v[0] }

// Y returns v[1].
func (v Vector2[T]) Y() T { return v[1] }

// W returns the width, v[0].
func (v Vector2[T]) W() T { return v[0] }

// H returns the height, v[1].
func (v Vector2[T]) H() T { return v[1] }

// X returns v[0].
func (v Vector3[T]) X() T { return v[0] }

// Y returns v[1].
func (v Vector3[T]) Y() T { return v[1] }

// Z returns v[2].
func (v Vector3[T]) Z() T { return v[2] }

// W returns the width, v[0].
func (v Vector3[T]) W() T { return v[0] }

// H returns the height, v[1].
func (v Vector3[T]) H() T { return v[1] }

// D returns the depth, v[2].
func (v Vector3[T]) D() T { return v[2] }

// R returns the red channel, v[0].
func (v Vector3[T]) R() T { return v[0] }

// G returns the green channel, v[1].
func (v Vector3[T]) G() T { return v[1] }

// B returns the blue channel, v[2].
func (v Vector3[T]) B() T { return v[2] }

// R returns the red channel, v[0].
func (v Vector4[T]) R() T { return v[0] }

// G returns the green channel, v[1].
func (v Vector4[T]) G() T { return v[1] }

// B returns the blue channel, v[2].
func (v Vector4[T]) B() T { return v[2] }

// A returns the alpha channel, v[3].
func (v Vector4[T]) A() T { return v[3] }
