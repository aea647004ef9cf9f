// SPDX-License-Identifier: MIT

package color_test

import (
	"fmt"

	"github.com/katalvlaran/linbra/color"
)

func ExampleFromHex() {
	c := color.FromHex(0xFF8000)
	fmt.Println(c.R(), c.G(), c.B(), c)
	// Output:
	// 255 128 0 [255, 128, 0]
}

func ExampleParseHex() {
	c, err := color.ParseHex("#336699cc")
	fmt.Println(c, err, color.FormatHexAlpha(c))

	_, err = color.ParseHex("#12345")
	fmt.Println(err)
	// Output:
	// [51, 102, 153, 204] <nil> #336699cc
	// ParseHex: color: invalid hex color
}
