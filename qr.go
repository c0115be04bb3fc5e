// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes byte mode QR codes.

Data is encoded as a single byte mode segment at the requested error
correction level, in the smallest version that holds it unless a
version is given.  The resulting Code can be rendered as BMP, PNG,
PBM, UTF-8 half blocks or ASCII, or used as an image.Image.
*/
package qr // import "github.com/unixdj/qrenc"

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"

	"github.com/unixdj/qrenc/coding"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level = coding.Level

const (
	L = coding.L // 20% redundant
	M = coding.M // 38% redundant
	Q = coding.Q // 55% redundant
	H = coding.H // 65% redundant
)

var (
	ErrArgs       = errors.New("qr: invalid arguments")
	ErrLargeImage = errors.New("qr: image too large")
	ErrEmpty      = coding.ErrEmpty
)

// Options select the error correction level and version.  Version 0
// selects the smallest version holding the data.
type Options struct {
	Level   Level
	Version coding.Version
}

var defaultOptions = Options{Level: M}

// Encode returns a QR code holding data.  A nil opt selects level M
// and the smallest version.
func Encode(data []byte, opt *Options) (*Code, error) {
	if opt == nil {
		opt = &defaultOptions
	}
	s, err := coding.Encode(coding.NewSegment(data), opt.Level, opt.Version)
	if err != nil {
		return nil, err
	}
	return NewCode(s), nil
}

// EncodeString returns a QR code holding the bytes of s at level l.
func EncodeString(s string, l Level) (*Code, error) {
	sym, err := coding.Encode(coding.StringSegment(s), l, 0)
	if err != nil {
		return nil, err
	}
	return NewCode(sym), nil
}

// EncodeText converts UTF-8 text s to the character set enc, for
// example charmap.ISO8859_1, and encodes the result.
func EncodeText(s string, enc encoding.Encoding, opt *Options) (*Code, error) {
	t, err := enc.NewEncoder().String(s)
	if err != nil {
		return nil, errors.Wrapf(err, "qr: converting %.16q", s)
	}
	return Encode([]byte(t), opt)
}

// A Code is a square pixel grid.
// It implements image.Image and direct BMP, PNG and PBM encoding.
type Code struct {
	Bitmap  []byte          // 1 is black, 0 is white
	Size    int             // number of pixels on a side
	Stride  int             // number of bytes per row
	Scale   int             // number of image pixels per QR pixel
	Border  int             // quiet zone width in QR pixels
	Palette *[2]color.Color // background and foreground, nil for white and black
	Reverse bool            // swap colours
	Version coding.Version  // QR version
	Level   Level           // error correction level
	Mask    coding.Mask     // mask pattern
}

// NewCode returns a Code displaying s at scale 8 with a 4 pixel quiet
// zone.
func NewCode(s *coding.Symbol) *Code {
	siz := s.Size()
	stride := (siz + 7) / 8
	bm := make([]byte, stride*siz)
	for y := 0; y < siz; y++ {
		row := bm[y*stride:]
		for x := 0; x < siz; x++ {
			if s.Dark(y, x) {
				row[x/8] |= 0x80 >> (x & 7)
			}
		}
	}
	return &Code{
		Bitmap:  bm,
		Size:    siz,
		Stride:  stride,
		Scale:   8,
		Border:  4,
		Version: s.Version,
		Level:   s.Level,
		Mask:    s.Mask,
	}
}

// Black returns true if the pixel at (x,y) is black.
// Pixels outside the grid, including the quiet zone, are white.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(0x80>>(x&7)) != 0
}

func (c *Code) isValid() bool {
	return c != nil && c.Size > 0 && c.Stride >= (c.Size+7)/8 &&
		len(c.Bitmap) >= c.Stride*c.Size && c.Scale > 0 && c.Border >= 0
}

// pixels returns the width of the rendered image in image pixels.
func (c *Code) pixels() (int, error) {
	if !c.isValid() {
		return 0, ErrArgs
	}
	pix := c.Scale * (c.Size + c.Border*2)
	if pix > 32767*8 {
		return 0, ErrLargeImage
	}
	return pix, nil
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

// colours returns the light and dark colours, swapped if c.Reverse
// is set.
func (c *Code) colours() color.Palette {
	light, dark := whiteColor, blackColor
	if c.Palette != nil {
		light, dark = c.Palette[0], c.Palette[1]
	}
	if c.Reverse {
		light, dark = dark, light
	}
	return color.Palette{light, dark}
}

// Image returns an Image displaying the code, quiet zone included.
// The image is paletted: index 0 is light, 1 is dark.
func (c *Code) Image() image.Image {
	return &codeImage{c, c.colours()}
}

// codeImage implements image.PalettedImage
type codeImage struct {
	*Code
	pal color.Palette
}

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + c.Border*2) * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) ColorIndexAt(x, y int) uint8 {
	if x < 0 || y < 0 {
		return 0
	}
	b := c.Border
	if c.Black(x/c.Scale-b, y/c.Scale-b) {
		return 1
	}
	return 0
}

func (c *codeImage) At(x, y int) color.Color {
	return c.pal[c.ColorIndexAt(x, y)]
}

func (c *codeImage) ColorModel() color.Model {
	return c.pal
}
