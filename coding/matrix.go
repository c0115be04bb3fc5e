// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strings"

// A Matrix is a square grid of modules with a parallel map of
// reserved (function pattern) modules.  Reserved modules may be
// written again but are skipped by data placement and masking.
type Matrix struct {
	size int
	mod  []byte // 1 is dark, 0 is light
	res  []bool // reserved
}

// NewMatrix returns an all-light Matrix with size modules on a side.
func NewMatrix(size int) *Matrix {
	if size < 1 {
		panic("qr: invalid matrix size")
	}
	return &Matrix{
		size: size,
		mod:  make([]byte, size*size),
		res:  make([]bool, size*size),
	}
}

// Size returns the number of modules on a side.
func (m *Matrix) Size() int { return m.size }

// Set sets the module at row, col.  If reserve is set, the module is
// marked reserved; an existing reservation is never cleared.
func (m *Matrix) Set(row, col int, dark, reserve bool) {
	i := row*m.size + col
	m.mod[i] = b2u(dark)
	if reserve {
		m.res[i] = true
	}
}

// Get reports whether the module at row, col is dark.
func (m *Matrix) Get(row, col int) bool {
	return m.mod[row*m.size+col] != 0
}

// Xor inverts the module at row, col if v is set.
func (m *Matrix) Xor(row, col int, v bool) {
	m.mod[row*m.size+col] ^= b2u(v)
}

// IsReserved reports whether the module at row, col is reserved.
func (m *Matrix) IsReserved(row, col int) bool {
	return m.res[row*m.size+col]
}

// Dark returns the number of dark modules.
func (m *Matrix) Dark() int {
	n := 0
	for _, v := range m.mod {
		n += int(v)
	}
	return n
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{
		size: m.size,
		mod:  append([]byte(nil), m.mod...),
		res:  append([]bool(nil), m.res...),
	}
}

// String renders m with two characters per module, "##" for dark.
func (m *Matrix) String() string {
	var b strings.Builder
	b.Grow((m.size*2 + 1) * m.size)
	for i, v := range m.mod {
		if v != 0 {
			b.WriteString("##")
		} else {
			b.WriteString("  ")
		}
		if (i+1)%m.size == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func b2u(b bool) byte {
	if b {
		return 1
	}
	return 0
}
