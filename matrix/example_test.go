// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linbra/matrix"
	"github.com/katalvlaran/linbra/vector"
)

// ExampleNew2x2 shows row-major input landing in column-major storage.
func ExampleNew2x2() {
	m := matrix.New2x2([2][2]int{
		{1, 2},
		{3, 4},
	})
	fmt.Print(m)
	fmt.Println(m.Col(0), m.Row(0))
	// Output:
	// [1, 2]
	// [3, 4]
	// [1, 3] [1, 2]
}

// ExampleInverse2 inverts a 2×2 matrix and reports singular input.
func ExampleInverse2() {
	inv, err := matrix.Inverse2(matrix.New2x2([2][2]float64{{1, 2}, {3, 4}}))
	fmt.Print(inv)
	fmt.Println(err)

	_, err = matrix.Inverse2(matrix.New2x2([2][2]float64{{1, 2}, {2, 4}}))
	fmt.Println(errors.Is(err, matrix.ErrSingular), err)
	// Output:
	// [-2, 1]
	// [1.5, -0.5]
	// <nil>
	// true Inverse: matrix: singular matrix
}

// ExampleMatrix3x2_Mul2x3 multiplies non-square shapes: 2×3 by 3×2.
func ExampleMatrix3x2_Mul2x3() {
	a := matrix.New3x2([2][3]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	b := matrix.New2x3([3][2]int{
		{7, 8},
		{9, 10},
		{11, 12},
	})
	fmt.Print(a.Mul2x3(b))
	// Output:
	// [58, 64]
	// [139, 154]
}

// ExampleMatrix4x4_MulVec applies a translation in homogeneous coordinates.
func ExampleMatrix4x4_MulVec() {
	t := matrix.Identity4[float64]()
	t[3] = vector.New4(10.0, -2, 0, 1) // translation column

	p := vector.New3(1.0, 1, 1).Extend(1)
	fmt.Println(t.MulVec(p).Truncate())
	// Output:
	// [11, -1, 1]
}
