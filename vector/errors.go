// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

// ErrZeroLength is returned by Normalize when the vector has zero length
// and therefore no direction.
var ErrZeroLength = errors.New("vector: zero length")

// Operation name constants for unified error wrapping.
const (
	opNormalize = "Normalize"
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
