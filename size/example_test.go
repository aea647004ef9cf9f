// SPDX-License-Identifier: MIT

package size_test

import (
	"fmt"

	"github.com/katalvlaran/linbra/size"
)

func ExampleArea() {
	s := size.New2(1920, 1080)
	fmt.Println(s.W(), s.H(), size.Area[int](s))
	// Output:
	// 1920 1080 2073600
}
