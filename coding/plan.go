// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// BCH generator polynomials for format and version information.
const (
	g15     = 0x537  // x^10 + x^8 + x^5 + x^4 + x^2 + x + 1
	g15Mask = 0x5412 // format information mask
	g18     = 0x1f25 // x^12 + x^11 + x^10 + x^9 + x^8 + x^5 + x^2 + 1
)

// bchDigit returns the number of significant bits in v.
func bchDigit(v int) int {
	n := 0
	for ; v != 0; v >>= 1 {
		n++
	}
	return n
}

// bch returns data followed by its BCH check bits for generator g.
func bch(data, g int) int {
	gd := bchDigit(g)
	d := data << (gd - 1)
	for n := bchDigit(d) - gd; n >= 0; n = bchDigit(d) - gd {
		d ^= g << n
	}
	return data<<(gd-1) | d
}

// FormatBits returns the 15 bit masked format information for level
// l and mask k.
func FormatBits(l Level, k Mask) int {
	return bch(l.Bits()<<3|int(k), g15) ^ g15Mask
}

// VersionBits returns the 18 bit version information for v.
// Only versions 7 and up carry version information.
func VersionBits(v Version) int {
	return bch(int(v), g18)
}

// template returns a Matrix for version v with all function patterns
// drawn and reserved.  Format information is drawn for level l and
// mask 0.
func template(v Version, l Level) *Matrix {
	m := NewMatrix(v.Size())
	drawFinders(m)
	drawTiming(m)
	drawAlignment(m, v)
	drawFormat(m, l, 0)
	if v >= 7 {
		drawVersion(m, v)
	}
	return m
}

// drawFinders draws the three position boxes with their separators.
func drawFinders(m *Matrix) {
	siz := m.Size()
	for _, p := range [3][2]int{{0, 0}, {siz - 7, 0}, {0, siz - 7}} {
		for r := -1; r <= 7; r++ {
			row := p[0] + r
			if row < 0 || row >= siz {
				continue
			}
			for c := -1; c <= 7; c++ {
				col := p[1] + c
				if col < 0 || col >= siz {
					continue
				}
				dark := 0 <= r && r <= 6 && (c == 0 || c == 6) ||
					0 <= c && c <= 6 && (r == 0 || r == 6) ||
					2 <= r && r <= 4 && 2 <= c && c <= 4
				m.Set(row, col, dark, true)
			}
		}
	}
}

// drawTiming draws the timing strips on row and column 6.
func drawTiming(m *Matrix) {
	siz := m.Size()
	for i := 8; i < siz-8; i++ {
		dark := i&1 == 0
		m.Set(i, 6, dark, true)
		m.Set(6, i, dark, true)
	}
}

// AlignmentPositions returns the row and column coordinates of
// alignment box centres for v, or nil for version 1.
func AlignmentPositions(v Version) []int {
	if v < 2 {
		return nil
	}
	n := int(v)/7 + 2
	siz := v.Size()
	step := 26
	if siz != 145 {
		d := 2*n - 2
		step = (siz - 13 + d - 1) / d * 2
	}
	pos := make([]int, n)
	pos[0] = 6
	for i, p := n-1, siz-7; i > 0; i, p = i-1, p-step {
		pos[i] = p
	}
	return pos
}

// drawAlignment draws the alignment boxes, skipping the three
// corners occupied by position boxes.
func drawAlignment(m *Matrix, v Version) {
	pos := AlignmentPositions(v)
	last := len(pos) - 1
	for i, row := range pos {
		for j, col := range pos {
			if i == 0 && (j == 0 || j == last) || i == last && j == 0 {
				continue
			}
			for r := -2; r <= 2; r++ {
				for c := -2; c <= 2; c++ {
					dark := r == -2 || r == 2 || c == -2 || c == 2 ||
						r == 0 && c == 0
					m.Set(row+r, col+c, dark, true)
				}
			}
		}
	}
}

// drawFormat draws both copies of the format information for level l
// and mask k, and the dark module above the bottom left position box.
func drawFormat(m *Matrix, l Level, k Mask) {
	siz := m.Size()
	bits := FormatBits(l, k)
	for i := 0; i < 15; i++ {
		dark := bits>>i&1 != 0

		// Vertical, column 8: top left, then bottom left.
		switch {
		case i < 6:
			m.Set(i, 8, dark, true)
		case i < 8:
			m.Set(i+1, 8, dark, true)
		default:
			m.Set(siz-15+i, 8, dark, true)
		}

		// Horizontal, row 8: top right, then top left.
		switch {
		case i < 8:
			m.Set(8, siz-i-1, dark, true)
		case i < 9:
			m.Set(8, 15-i, dark, true)
		default:
			m.Set(8, 14-i, dark, true)
		}
	}
	// One lonely black pixel
	m.Set(siz-8, 8, true, true)
}

// isFormat reports whether row, col holds format information or the
// dark module.
func isFormat(siz, row, col int) bool {
	return col == 8 && (row <= 8 && row != 6 || row >= siz-8) ||
		row == 8 && (col <= 8 && col != 6 || col >= siz-8)
}

// drawVersion draws the version information blocks: 6x3 above the
// bottom left position box and 3x6 left of the top right one.
func drawVersion(m *Matrix, v Version) {
	siz := m.Size()
	bits := VersionBits(v)
	for i := 0; i < 18; i++ {
		row, col := i/3, i%3+siz-11
		dark := bits>>i&1 != 0
		m.Set(row, col, dark, true)
		m.Set(col, row, dark, true)
	}
}

// place writes the codewords to the unreserved modules of m in
// zigzag scan order: two-column strips from right to left, snaking
// up and down, skipping the vertical timing strip.  Modules left over
// after the last codeword stay light.
func place(m *Matrix, data []byte) {
	siz := m.Size()
	n, bit := 0, 7
	row, inc := siz-1, -1
	for col := siz - 1; col > 0; col -= 2 {
		if col == 6 { // vertical timing strip
			col--
		}
		for {
			for c := col; c > col-2; c-- {
				if m.IsReserved(row, c) {
					continue
				}
				dark := false
				if n < len(data) {
					dark = data[n]>>bit&1 != 0
				}
				m.Set(row, c, dark, false)
				if bit--; bit < 0 {
					n++
					bit = 7
				}
			}
			row += inc
			if row < 0 || row >= siz {
				row -= inc
				inc = -inc
				break
			}
		}
	}
	if n < len(data) {
		panic("qr: internal error: codewords exceed symbol")
	}
}
