// SPDX-License-Identifier: MIT

// Package vector provides fixed-length, stack-allocated vectors over any
// numeric scalar type.
//
// What & Why:
//
//	Vector2[T], Vector3[T] and Vector4[T] are named Go arrays ([N]T). Their
//	length is part of the type, so mixing lengths does not compile and a
//	constant out-of-range index (v[3] on a Vector3) is a compile error. Values
//	copy on assignment; no operation allocates.
//
//	Every operator is implemented once, generically, over the Array[T]
//	constraint (the Vector<T,N> family) in kernels.go. The typed methods on
//	Vector2/3/4 are thin instantiations of those kernels (vectors_gen.go is
//	produced by internal/cmd/genshapes).
//
// Components:
//
//	Index 0..N-1 in mathematical order (x, y, z, w). Reads and writes go
//	through ordinary indexing: v[0] = 5. Named accessors (X, W, R, ...) alias
//	the same indices; see accessors.go and the point, size and color packages.
//
// Numeric policy:
//
//	Division by zero and the square root of a negative follow the scalar
//	type's native semantics. Normalize is the one checked operation: it
//	returns ErrZeroLength instead of producing NaN components.
//
// Formatting:
//
//	String renders components in index order: "[1, 2, 3]".
package vector
