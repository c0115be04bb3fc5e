// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"encoding/binary"
	"image/color"
	"io"
)

const (
	bmpFileHeaderLen = 14
	bmpInfoHeaderLen = 40 // BITMAPINFOHEADER
	bmpPaletteLen    = 2 * 4
	bmpPixelOffset   = bmpFileHeaderLen + bmpInfoHeaderLen + bmpPaletteLen
	bmpPixPerMetre   = 2835 // 72 dpi
)

// EncodeBMP writes a 1 bit Windows bitmap displaying the code to w.
// Palette index 0 is the background colour, index 1 the foreground.
// Rows are stored bottom to top, each padded to 4 bytes.
func (c *Code) EncodeBMP(w io.Writer) error {
	pix, err := c.pixels()
	if err != nil {
		return err
	}
	stride := (pix + 31) / 32 * 4
	imgLen := stride * pix

	var h [bmpPixelOffset]byte
	le := binary.LittleEndian
	copy(h[0:2], "BM")
	le.PutUint32(h[2:], uint32(bmpPixelOffset+imgLen))
	le.PutUint32(h[10:], bmpPixelOffset)

	ih := h[bmpFileHeaderLen:]
	le.PutUint32(ih[0:], bmpInfoHeaderLen)
	le.PutUint32(ih[4:], uint32(pix)) // width
	le.PutUint32(ih[8:], uint32(pix)) // height, positive: bottom-up
	le.PutUint16(ih[12:], 1)          // planes
	le.PutUint16(ih[14:], 1)          // bits per pixel
	le.PutUint32(ih[16:], 0)          // BI_RGB
	le.PutUint32(ih[20:], uint32(imgLen))
	le.PutUint32(ih[24:], bmpPixPerMetre)
	le.PutUint32(ih[28:], bmpPixPerMetre)
	le.PutUint32(ih[32:], 2) // colours used
	le.PutUint32(ih[36:], 0) // all important

	pal := h[bmpFileHeaderLen+bmpInfoHeaderLen:]
	for i, col := range c.colours() {
		rgba := color.RGBAModel.Convert(col).(color.RGBA)
		pal[i*4], pal[i*4+1], pal[i*4+2] = rgba.B, rgba.G, rgba.R
	}

	b := bufio.NewWriter(w)
	if _, err := b.Write(h[:]); err != nil {
		return err
	}
	row := make([]byte, stride)
	for y := c.Size + c.Border - 1; y >= -c.Border; y-- {
		c.packRow(row, y, 0)
		for i := 0; i < c.Scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}
