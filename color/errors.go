// SPDX-License-Identifier: MIT
// Package color: sentinel error set.
// Messages are prefixed with "color: ..."; public functions wrap them with an
// operation tag via colorErrorf.

package color

import (
	"errors"
	"fmt"
)

// ErrBadHex is returned by ParseHex for input that is not "#RRGGBB" or
// "#RRGGBBAA".
var ErrBadHex = errors.New("color: invalid hex color")

// Operation name constants for unified error wrapping.
const (
	opParseHex = "ParseHex"
)

// colorErrorf wraps err with an operation tag, preserving it via %w.
func colorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
