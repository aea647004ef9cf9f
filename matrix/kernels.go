// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Implement every Matrix<T,C,R> operator once, generically over a set of
//     columns. A matrix is an array of C column vectors, so element-wise
//     operations are vector kernels applied column by column.
//   - The typed methods in matrices_gen.go pin the shapes; these kernels never
//     see mismatched operands because the compiler rejects them upstream.
//
// Determinism:
//   - Fixed loop orders: columns outermost, rows innermost.

package matrix

import (
	"strings"

	"github.com/katalvlaran/linbra/scalar"
	"github.com/katalvlaran/linbra/vector"
)

// columns is the set of column-major matrices whose columns have type V.
type columns[V any] interface {
	~[2]V | ~[3]V | ~[4]V
}

// add returns a + b, column by column.
// Complexity: O(C·R).
func add[T scalar.Scalar, V vector.Array[T], M columns[V]](a, b M) M {
	for c := 0; c < len(a); c++ {
		a[c] = vector.Add[T](a[c], b[c])
	}

	return a
}

// sub returns a - b, column by column.
func sub[T scalar.Scalar, V vector.Array[T], M columns[V]](a, b M) M {
	for c := 0; c < len(a); c++ {
		a[c] = vector.Sub[T](a[c], b[c])
	}

	return a
}

// neg returns -m.
func neg[T scalar.Scalar, V vector.Array[T], M columns[V]](m M) M {
	for c := 0; c < len(m); c++ {
		m[c] = vector.Neg[T](m[c])
	}

	return m
}

// scale returns s·m.
func scale[T scalar.Scalar, V vector.Array[T], M columns[V]](m M, s T) M {
	for c := 0; c < len(m); c++ {
		m[c] = vector.Scale[T](m[c], s)
	}

	return m
}

// mulVec returns m·v as the linear combination of m's columns weighted by
// the components of v:
//
//	m·v = Σ_c v_c · col_c
//
// len(v) must equal len(m); the typed wrappers guarantee it.
// Complexity: O(C·R).
func mulVec[T scalar.Scalar, VR vector.Array[T], VC vector.Array[T], M columns[VR]](m M, v VC) VR {
	var out VR
	for c := 0; c < len(m); c++ {
		out = vector.Add[T](out, vector.Scale[T](m[c], v[c]))
	}

	return out
}

// mul returns the product a·b of a C×R matrix and a K×C matrix: column k of
// the result is a·(column k of b).
// Complexity: O(K·C·R).
func mul[O columns[VR], T scalar.Scalar, VR vector.Array[T], VC vector.Array[T], A columns[VR], B columns[VC]](a A, b B) O {
	var out O
	for k := 0; k < len(out); k++ {
		out[k] = mulVec[T, VR](a, b[k])
	}

	return out
}

// transpose returns aᵀ: out[r][c] = a[c][r].
func transpose[O columns[VC], T scalar.Scalar, VR vector.Array[T], VC vector.Array[T], A columns[VR]](a A) O {
	var out O
	for c := 0; c < len(a); c++ {
		for r := 0; r < len(a[c]); r++ {
			out[r][c] = a[c][r]
		}
	}

	return out
}

// row gathers row j across all columns of m.
func row[VC vector.Array[T], T scalar.Scalar, VR vector.Array[T], M columns[VR]](m M, j int) VC {
	var out VC
	for c := 0; c < len(m); c++ {
		out[c] = m[c][j]
	}

	return out
}

// approxEqual reports whether every element pair is within the configured
// epsilon.
func approxEqual[T scalar.Scalar, V vector.Array[T], M columns[V]](a, b M, opts ...scalar.Option) bool {
	for c := 0; c < len(a); c++ {
		if !vector.ApproxEqual[T](a[c], b[c], opts...) {
			return false
		}
	}

	return true
}

// format renders m row by row, one "[a, b, ...]\n" line per row, regardless
// of the column-major storage.
// Complexity: O(C·R) for string construction.
func format[T scalar.Scalar, V vector.Array[T], M columns[V]](m M, opts ...scalar.Option) string {
	var b strings.Builder
	rows := len(m[0])
	line := make([]T, len(m))
	for r := 0; r < rows; r++ { // iterate over rows
		for c := 0; c < len(m); c++ { // gather row r across columns
			line[c] = m[c][r]
		}
		b.WriteString(scalar.Join(line, opts...))
		b.WriteByte('\n') // close row
	}

	return b.String()
}

// identity returns the square identity matrix.
func identity[M columns[V], T scalar.Scalar, V vector.Array[T]]() M {
	var m M
	for i := 0; i < len(m); i++ {
		m[i][i] = 1
	}

	return m
}

// diagonal returns the square matrix with v on its main diagonal.
func diagonal[M columns[V], T scalar.Scalar, V vector.Array[T]](v V) M {
	var m M
	for i := 0; i < len(m); i++ {
		m[i][i] = v[i]
	}

	return m
}

// diag returns the main diagonal of a square matrix.
func diag[T scalar.Scalar, V vector.Array[T], M columns[V]](m M) V {
	var out V
	for i := 0; i < len(out); i++ {
		out[i] = m[i][i]
	}

	return out
}

// outer returns the square outer product u ⊗ v, whose column c is u·v_c.
func outer[M columns[V], T scalar.Scalar, V vector.Array[T]](u, v V) M {
	var m M
	for c := 0; c < len(m); c++ {
		m[c] = vector.Scale[T](u, v[c])
	}

	return m
}
