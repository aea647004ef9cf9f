// SPDX-License-Identifier: MIT

package main

import (
	"strings"
	"text/template"
)

var funcs = template.FuncMap{
	"join": strings.Join,
}

const header = `// Code generated by genshapes; DO NOT EDIT.

`

var vectorTemplate = template.Must(template.New("vector").Funcs(funcs).Parse(header + `package {{.Package}}

import "github.com/katalvlaran/linbra/scalar"
{{range .Vectors}}{{$V := .Name}}
// ---------- {{$V}} ----------

// Fill{{.N}} returns a {{$V}} with every component set to s.
func Fill{{.N}}[T scalar.Scalar](s T) {{$V}}[T] { return Fill[{{$V}}[T]](s) }

// Add returns the component-wise sum v + o.
func (v {{$V}}[T]) Add(o {{$V}}[T]) {{$V}}[T] { return Add[T](v, o) }

// Sub returns the component-wise difference v - o.
func (v {{$V}}[T]) Sub(o {{$V}}[T]) {{$V}}[T] { return Sub[T](v, o) }

// Neg returns -v.
func (v {{$V}}[T]) Neg() {{$V}}[T] { return Neg[T](v) }

// Scale returns s·v.
func (v {{$V}}[T]) Scale(s T) {{$V}}[T] { return Scale[T](v, s) }

// Div returns v with every component divided by s.
func (v {{$V}}[T]) Div(s T) {{$V}}[T] { return Div[T](v, s) }

// Mul returns the component-wise (Hadamard) product v ∘ o.
func (v {{$V}}[T]) Mul(o {{$V}}[T]) {{$V}}[T] { return Mul[T](v, o) }

// Dot returns the scalar product v·o.
func (v {{$V}}[T]) Dot(o {{$V}}[T]) T { return Dot[T](v, o) }

// Sum returns the sum of the components.
func (v {{$V}}[T]) Sum() T { return Sum[T](v) }

// LengthSquared returns v·v.
func (v {{$V}}[T]) LengthSquared() T { return LengthSquared[T](v) }

// Length returns the Euclidean magnitude |v| in float64.
func (v {{$V}}[T]) Length() float64 { return Length[T](v) }

// Distance returns |v - o| in float64.
func (v {{$V}}[T]) Distance(o {{$V}}[T]) float64 { return Distance[T](v, o) }

// Equal reports exact component-wise equality.
func (v {{$V}}[T]) Equal(o {{$V}}[T]) bool { return v == o }

// ApproxEqual reports component-wise equality within the configured epsilon.
func (v {{$V}}[T]) ApproxEqual(o {{$V}}[T], opts ...scalar.Option) bool {
	return ApproxEqual[T](v, o, opts...)
}

// Min returns the component-wise minimum of v and o.
func (v {{$V}}[T]) Min(o {{$V}}[T]) {{$V}}[T] { return Min[T](v, o) }

// Max returns the component-wise maximum of v and o.
func (v {{$V}}[T]) Max(o {{$V}}[T]) {{$V}}[T] { return Max[T](v, o) }

// String implements fmt.Stringer: "[v0, v1, ...]".
func (v {{$V}}[T]) String() string { return Format[T](v) }

// StringWith renders v like String under the given numeric options.
func (v {{$V}}[T]) StringWith(opts ...scalar.Option) string { return Format[T](v, opts...) }

// Normalize{{.N}} returns v/|v| or ErrZeroLength.
func Normalize{{.N}}[T scalar.Float](v {{$V}}[T]) ({{$V}}[T], error) { return Normalize[T](v) }

// Lerp{{.N}} interpolates linearly between a and b.
func Lerp{{.N}}[T scalar.Float](a, b {{$V}}[T], t T) {{$V}}[T] { return Lerp[T](a, b, t) }

// Convert{{.N}} converts every component of v to U with Go conversion rules.
func Convert{{.N}}[U, T scalar.Scalar](v {{$V}}[T]) {{$V}}[U] {
	var out {{$V}}[U]
	for i := range v {
		out[i] = U(v[i])
	}

	return out
}
{{end}}`))

var matrixTemplate = template.Must(template.New("matrix").Funcs(funcs).Parse(header + `package {{.Package}}

import (
	"github.com/katalvlaran/linbra/scalar"
	"github.com/katalvlaran/linbra/vector"
)
{{range .Matrices}}{{$M := .Name}}{{$CV := .ColVec}}{{$RV := .RowVec}}
// ---------- {{$M}} ----------

// {{$M}} is a matrix with {{.C}} columns and {{.R}} rows, stored as {{.C}} column
// vectors: m[c][r] is the element in column c, row r.
type {{$M}}[T scalar.Scalar] [{{.C}}]{{.ColVec}}[T]

// New{{.C}}x{{.R}} builds a {{$M}} from row-major input: rows[r][c] becomes m[c][r].
func New{{.C}}x{{.R}}[T scalar.Scalar](rows [{{.R}}][{{.C}}]T) {{$M}}[T] {
	var m {{$M}}[T]
	for r := range rows {
		for c := range rows[r] {
			m[c][r] = rows[r][c]
		}
	}

	return m
}

// FromColumns{{.C}}x{{.R}} builds a {{$M}} from its {{.C}} columns.
func FromColumns{{.C}}x{{.R}}[T scalar.Scalar]({{join .ColArgs ", "}} {{.ColVec}}[T]) {{$M}}[T] {
	return {{$M}}[T]{ {{- join .ColArgs ", " -}} }
}

// FromRows{{.C}}x{{.R}} builds a {{$M}} from its {{.R}} rows.
func FromRows{{.C}}x{{.R}}[T scalar.Scalar]({{join .RowArgs ", "}} {{.RowVec}}[T]) {{$M}}[T] {
	return {{.Transposed}}[T]{ {{- join .RowArgs ", " -}} }.Transpose()
}

// Fill{{.C}}x{{.R}} returns a {{$M}} with every element set to s.
func Fill{{.C}}x{{.R}}[T scalar.Scalar](s T) {{$M}}[T] {
	var m {{$M}}[T]
	for c := range m {
		m[c] = vector.Fill[{{.ColVec}}[T]](s)
	}

	return m
}

// Convert{{.C}}x{{.R}} converts every element of m to U with Go conversion rules.
func Convert{{.C}}x{{.R}}[U, T scalar.Scalar](m {{$M}}[T]) {{$M}}[U] {
	var out {{$M}}[U]
	for c := range m {
		out[c] = vector.Convert{{.R}}[U](m[c])
	}

	return out
}

// Cols returns {{.C}}.
func (m {{$M}}[T]) Cols() int { return {{.C}} }

// Rows returns {{.R}}.
func (m {{$M}}[T]) Rows() int { return {{.R}} }

// At returns the element in column c, row r.
func (m {{$M}}[T]) At(c, r int) T { return m[c][r] }

// Col returns column i.
func (m {{$M}}[T]) Col(i int) {{.ColVec}}[T] { return m[i] }

// Row returns row j, gathered across the columns.
func (m {{$M}}[T]) Row(j int) {{.RowVec}}[T] { return row[{{.RowVec}}[T], T, {{.ColVec}}[T]](m, j) }

// Transpose returns mᵀ.
func (m {{$M}}[T]) Transpose() {{.Transposed}}[T] {
	return transpose[{{.Transposed}}[T], T, {{.ColVec}}[T], {{.RowVec}}[T]](m)
}

// Add returns the element-wise sum m + o.
func (m {{$M}}[T]) Add(o {{$M}}[T]) {{$M}}[T] { return add[T, {{.ColVec}}[T]](m, o) }

// Sub returns the element-wise difference m - o.
func (m {{$M}}[T]) Sub(o {{$M}}[T]) {{$M}}[T] { return sub[T, {{.ColVec}}[T]](m, o) }

// Neg returns -m.
func (m {{$M}}[T]) Neg() {{$M}}[T] { return neg[T, {{.ColVec}}[T]](m) }

// Scale returns s·m.
func (m {{$M}}[T]) Scale(s T) {{$M}}[T] { return scale[T, {{.ColVec}}[T]](m, s) }

// MulVec returns the matrix-vector product m·v.
func (m {{$M}}[T]) MulVec(v {{.RowVec}}[T]) {{.ColVec}}[T] { return mulVec[T, {{.ColVec}}[T]](m, v) }
{{range .Products}}
// {{.Method}} returns the matrix product m·o.
func (m {{$M}}[T]) {{.Method}}(o {{.Right}}[T]) {{.Out}}[T] {
	return mul[{{.Out}}[T], T, {{$CV}}[T], {{$RV}}[T]](m, o)
}
{{end}}
// Equal reports exact element-wise equality.
func (m {{$M}}[T]) Equal(o {{$M}}[T]) bool { return m == o }

// ApproxEqual reports element-wise equality within the configured epsilon.
func (m {{$M}}[T]) ApproxEqual(o {{$M}}[T], opts ...scalar.Option) bool {
	return approxEqual[T, {{.ColVec}}[T]](m, o, opts...)
}

// String implements fmt.Stringer: one "[a, b, ...]" line per row.
func (m {{$M}}[T]) String() string { return format[T, {{.ColVec}}[T]](m) }

// StringWith renders m like String under the given numeric options.
func (m {{$M}}[T]) StringWith(opts ...scalar.Option) string {
	return format[T, {{.ColVec}}[T]](m, opts...)
}
{{end}}`))
