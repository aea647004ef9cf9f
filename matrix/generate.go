// SPDX-License-Identifier: MIT

package matrix

//go:generate go run ../internal/cmd/genshapes -kind matrix -out matrices_gen.go
