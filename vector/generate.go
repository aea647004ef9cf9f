// SPDX-License-Identifier: MIT

package vector

//go:generate go run ../internal/cmd/genshapes -kind vector -out vectors_gen.go
