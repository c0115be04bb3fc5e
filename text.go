// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"io"
	"strings"
)

// halfBlock[top<<1|bottom] draws two vertically adjacent pixels, a
// set bit drawn as ink.
var halfBlock = [4]string{" ", "▄", "▀", "█"}

// String renders the code with Unicode half blocks, two pixel rows per
// line, quiet zone included.  Scale is ignored.  White pixels are
// drawn as ink, for text terminals with a dark background; if
// c.Reverse is set, black pixels are.
func (c *Code) String() string {
	if !c.isValid() {
		return ""
	}
	bord := c.Border
	pix := c.Size + bord*2
	ink := func(x, y int) int {
		if y >= c.Size+bord || c.Black(x, y) == c.Reverse {
			return 0
		}
		return 1
	}
	var b strings.Builder
	b.Grow((pix*len("█") + 1) * (pix + 1) / 2)
	for y := -bord; y < c.Size+bord; y += 2 {
		for x := -bord; x < c.Size+bord; x++ {
			b.WriteString(halfBlock[ink(x, y)<<1|ink(x, y+1)])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// EncodeASCII writes the code to w as text, two characters per pixel,
// "##" for black and two spaces for white, or the other way around if
// c.Reverse is set.  Scale is ignored.
func (c *Code) EncodeASCII(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	siz := c.Size
	bord := c.Border
	pix := siz + 2*bord
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			var p byte = ' '
			if c.Black(x, y) != c.Reverse {
				p = '#'
			}
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}
