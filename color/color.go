// SPDX-License-Identifier: MIT
// Package color exposes vectors as colors through red, green, blue and alpha.
//
// Purpose:
//   - RGB and RGBA are read-only views aliasing fixed indices of the same
//     storage: red → 0, green → 1, blue → 2, alpha → 3.
//   - Channel values are whatever the scalar type holds: 0..255 for uint8,
//     conventionally 0..1 for floats. Nothing is clamped.
//   - Hex packing works on 8-bit channels: 0xRRGGBB for RGB and 0xRRGGBBAA
//     for RGBA.
//
// Implementations:
//   - RGB: vector.Vector3, vector.Vector4
//   - RGBA: vector.Vector4

package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/linbra/scalar"
	"github.com/katalvlaran/linbra/vector"
)

// RGB is a color with red, green and blue channels.
type RGB[T scalar.Scalar] interface {
	// R returns the red channel (index 0).
	R() T
	// G returns the green channel (index 1).
	G() T
	// B returns the blue channel (index 2).
	B() T
}

// RGBA is an RGB color with an alpha channel.
type RGBA[T scalar.Scalar] interface {
	RGB[T]
	// A returns the alpha channel (index 3).
	A() T
}

var (
	_ RGB[uint8]  = vector.Vector3[uint8]{}
	_ RGB[uint8]  = vector.Vector4[uint8]{}
	_ RGBA[uint8] = vector.Vector4[uint8]{}
)

// Opaque is the alpha of a fully opaque 8-bit color.
const Opaque uint8 = 0xFF

// New returns the color (r, g, b).
func New[T scalar.Scalar](r, g, b T) vector.Vector3[T] { return vector.New3(r, g, b) }

// NewAlpha returns the color (r, g, b, a).
func NewAlpha[T scalar.Scalar](r, g, b, a T) vector.Vector4[T] { return vector.New4(r, g, b, a) }

// WithAlpha extends any RGB view with the alpha channel a.
func WithAlpha[T scalar.Scalar](c RGB[T], a T) vector.Vector4[T] {
	return vector.New4(c.R(), c.G(), c.B(), a)
}

// Channels copies the red, green and blue channels of any RGB view,
// dropping alpha if present.
func Channels[T scalar.Scalar](c RGB[T]) vector.Vector3[T] { return vector.New3(c.R(), c.G(), c.B()) }

// FromHex unpacks 0xRRGGBB. Bits above the low 24 are ignored.
func FromHex(hex uint32) vector.Vector3[uint8] {
	return vector.New3(uint8(hex>>16), uint8(hex>>8), uint8(hex))
}

// FromHexAlpha unpacks 0xRRGGBBAA.
func FromHexAlpha(hex uint32) vector.Vector4[uint8] {
	return vector.New4(uint8(hex>>24), uint8(hex>>16), uint8(hex>>8), uint8(hex))
}

// Hex packs the channels of c as 0xRRGGBB.
func Hex(c RGB[uint8]) uint32 {
	return uint32(c.R())<<16 | uint32(c.G())<<8 | uint32(c.B())
}

// HexAlpha packs the channels of c as 0xRRGGBBAA.
func HexAlpha(c RGBA[uint8]) uint32 {
	return uint32(c.R())<<24 | uint32(c.G())<<16 | uint32(c.B())<<8 | uint32(c.A())
}

// ParseHex reads "#RRGGBB" or "#RRGGBBAA" (the leading '#' is optional,
// digits are case-insensitive). Six-digit input is opaque.
// Returns ErrBadHex for any other length or a non-hex digit.
func ParseHex(s string) (vector.Vector4[uint8], error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 && len(digits) != 8 {
		return vector.Vector4[uint8]{}, colorErrorf(opParseHex, ErrBadHex)
	}

	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return vector.Vector4[uint8]{}, colorErrorf(opParseHex, ErrBadHex)
	}
	if len(digits) == 6 {
		return WithAlpha[uint8](FromHex(uint32(n)), Opaque), nil
	}

	return FromHexAlpha(uint32(n)), nil
}

// FormatHex renders c as "#rrggbb" in lower case.
func FormatHex(c RGB[uint8]) string {
	return fmt.Sprintf("#%06x", Hex(c))
}

// FormatHexAlpha renders c as "#rrggbbaa" in lower case.
func FormatHexAlpha(c RGBA[uint8]) string {
	return fmt.Sprintf("#%08x", HexAlpha(c))
}
