// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for consistency. Public
// functions wrap these with an operation tag via matrixErrorf; callers match
// with errors.Is. No algorithm panics on a user-triggered numeric condition.

package matrix

import (
	"errors"
	"fmt"
)

// ErrSingular is returned by Inverse2/3/4 when the determinant is exactly
// zero. The closed-form inverse would otherwise divide by zero.
var ErrSingular = errors.New("matrix: singular matrix")

// Operation name constants for unified error wrapping.
const (
	opInverse = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w. Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
