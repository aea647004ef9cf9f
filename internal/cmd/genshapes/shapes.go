// SPDX-License-Identifier: MIT

package main

import "fmt"

// vectorShape is the template data for one Vector<T,N>.
type vectorShape struct {
	N    int
	Name string // Vector3
}

type vectorFile struct {
	Package string
	Vectors []vectorShape
}

// product describes m.MulKxC(o) for one K.
type product struct {
	Method string // Mul4x2
	Right  string // Matrix4x2
	Out    string // Matrix4x3
}

// matrixShape is the template data for one Matrix<T,C,R>.
type matrixShape struct {
	C, R       int
	Name       string   // Matrix2x3
	ColVec     string   // vector.Vector3 (length R)
	RowVec     string   // vector.Vector2 (length C)
	Transposed string   // Matrix3x2
	ColArgs    []string // c0, c1
	RowArgs    []string // r0, r1, r2
	Products   []product
}

type matrixFile struct {
	Package  string
	Matrices []matrixShape
}

func vectorName(n int) string { return fmt.Sprintf("Vector%d", n) }

func matrixName(c, r int) string { return fmt.Sprintf("Matrix%dx%d", c, r) }

func vectorShapes(dims []int) []vectorShape {
	out := make([]vectorShape, 0, len(dims))
	for _, n := range dims {
		out = append(out, vectorShape{N: n, Name: vectorName(n)})
	}

	return out
}

// matrixShapes enumerates every C×R pair over dims, column count outermost.
func matrixShapes(dims []int) []matrixShape {
	out := make([]matrixShape, 0, len(dims)*len(dims))
	for _, c := range dims {
		for _, r := range dims {
			s := matrixShape{
				C:          c,
				R:          r,
				Name:       matrixName(c, r),
				ColVec:     "vector." + vectorName(r),
				RowVec:     "vector." + vectorName(c),
				Transposed: matrixName(r, c),
				ColArgs:    argNames("c", c),
				RowArgs:    argNames("r", r),
			}
			// Matrix<C,R> × Matrix<K,C> → Matrix<K,R>
			for _, k := range dims {
				s.Products = append(s.Products, product{
					Method: fmt.Sprintf("Mul%dx%d", k, c),
					Right:  matrixName(k, c),
					Out:    matrixName(k, r),
				})
			}
			out = append(out, s)
		}
	}

	return out
}

func argNames(prefix string, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s%d", prefix, i)
	}

	return names
}
