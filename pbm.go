// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette, as other PNM
// formats are not supported.
func (c *Code) EncodePBM(w io.Writer) error {
	pix, err := c.pixels()
	if err != nil {
		return err
	}
	b := bufio.NewWriter(w)
	ls := strconv.Itoa(pix)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	var white byte
	if c.Reverse {
		white = 0xff
	}
	row := make([]byte, (pix+7)/8)
	for y := -c.Border; y < c.Size+c.Border; y++ {
		c.packRow(row, y, white)
		for i := 0; i < c.Scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// packRow fills row with QR pixel row y at c.Scale, quiet zone
// included, one bit per image pixel, most significant bit first, 1
// for black.  Each byte is XORed with white.  Rows outside the grid
// are all white.
func (c *Code) packRow(row []byte, y int, white byte) {
	for i := range row {
		row[i] = 0
	}
	if 0 <= y && y < c.Size {
		scale := c.Scale
		j := c.Border * scale // image pixel
		for x := 0; x < c.Size; x++ {
			if !c.Black(x, y) {
				j += scale
				continue
			}
			for e := j + scale; j < e; j++ {
				row[j>>3] |= 0x80 >> (j & 7)
			}
		}
	}
	if white != 0 {
		for i := range row {
			row[i] ^= white
		}
	}
}
