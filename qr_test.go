// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"golang.org/x/text/encoding/charmap"

	"github.com/unixdj/qrenc"
	"github.com/unixdj/qrenc/coding"
)

func decode(t *testing.T, c *qr.Code) string {
	t.Helper()
	bmp, err := gozxing.NewBinaryBitmapFromImage(c.Image())
	if err != nil {
		t.Fatal(err)
	}
	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_PURE_BARCODE: true,
	}
	res, err := qrcode.NewQRCodeReader().Decode(bmp, hints)
	if err != nil {
		t.Fatalf("version %s-%s: decode: %v", c.Version, c.Level, err)
	}
	return res.GetText()
}

const alnum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func TestDecode(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	inputs := []string{"https://google.com", "HELLO WORLD", "a"}
	for _, n := range []int{20, 77, 150, 300, 700} {
		b := make([]byte, n)
		for i := range b {
			b[i] = alnum[r.Intn(len(alnum))]
		}
		inputs = append(inputs, string(b))
	}
	for _, s := range inputs {
		for l := qr.L; l <= qr.H; l++ {
			c, err := qr.EncodeString(s, l)
			if err != nil {
				t.Fatal(err)
			}
			c.Scale = 4
			if got := decode(t, c); got != s {
				t.Errorf("%s-%s: decoded %.20q, want %.20q",
					c.Version, l, got, s)
			}
		}
	}
}

func TestEncodeOptions(t *testing.T) {
	c, err := qr.Encode([]byte("https://google.com"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.Version != 2 || c.Level != qr.M || c.Size != 25 ||
		c.Scale != 8 || c.Border != 4 {
		t.Errorf("defaults: version %s-%s, size %d, scale %d, border %d",
			c.Version, c.Level, c.Size, c.Scale, c.Border)
	}
	c, err = qr.Encode([]byte("https://google.com"),
		&qr.Options{Level: qr.H, Version: 6})
	if err != nil || c.Version != 6 || c.Size != 41 {
		t.Fatalf("version 6-H: %v", err)
	}
	if got := decode(t, c); got != "https://google.com" {
		t.Errorf("version 6-H: decoded %q", got)
	}
	if _, err := qr.Encode(nil, nil); !errors.Is(err, qr.ErrEmpty) {
		t.Errorf("empty input: %v", err)
	}
	_, err = qr.Encode([]byte("https://google.com"), &qr.Options{Level: qr.M, Version: 1})
	var ve *coding.VersionError
	if !errors.As(err, &ve) || ve.Min != 2 {
		t.Errorf("version 1: %v", err)
	}
	_, err = qr.Encode(make([]byte, 2954), &qr.Options{Level: qr.L})
	var ce *coding.CapacityError
	if !errors.As(err, &ce) {
		t.Errorf("2954 bytes: %v", err)
	}
}

func TestEncodeText(t *testing.T) {
	c, err := qr.EncodeText("café", charmap.ISO8859_1, nil)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := qr.Encode([]byte("caf\xe9"), nil)
	if !bytes.Equal(c.Bitmap, want.Bitmap) {
		t.Error("Latin-1 text differs from Latin-1 bytes")
	}
	if _, err := qr.EncodeText("世界", charmap.ISO8859_1, nil); err == nil {
		t.Error("unrepresentable text encoded")
	}
}

func TestImage(t *testing.T) {
	c, _ := qr.EncodeString("https://google.com", qr.M)
	img := c.Image()
	if d := img.Bounds().Dx(); d != (25+8)*8 || img.Bounds().Dy() != d {
		t.Fatalf("bounds %v", img.Bounds())
	}
	white, black := color.GrayModel.Convert(color.White),
		color.GrayModel.Convert(color.Black)
	gray := func(x, y int) color.Color {
		return color.GrayModel.Convert(img.At(x, y))
	}
	if gray(0, 0) != white || gray(32, 32) != black || gray(39, 39) != black ||
		gray(40, 40) != white {
		t.Error("wrong pixels")
	}
	c.Reverse = true
	img = c.Image()
	if gray(0, 0) != black || gray(32, 32) != white {
		t.Error("wrong reversed pixels")
	}

	c.Reverse = false
	c.Palette = &[2]color.Color{
		color.RGBA{0xff, 0xff, 0, 0xff}, color.RGBA{0, 0, 0x80, 0xff},
	}
	b := c.PNG()
	if b == nil {
		t.Fatal("PNG failed")
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	r, g, bl, _ := img.At(32, 32).RGBA()
	if r != 0 || g != 0 || bl != 0x8080 {
		t.Errorf("PNG foreground = %x %x %x", r, g, bl)
	}
	if img.Bounds().Dx() != (25+8)*8 {
		t.Errorf("PNG bounds %v", img.Bounds())
	}
}

func TestEncodeBMP(t *testing.T) {
	c, _ := qr.EncodeString("https://google.com", qr.M)
	c.Scale = 1
	var buf bytes.Buffer
	if err := c.EncodeBMP(&buf); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()
	const pix, stride = 33, 8
	le := binary.LittleEndian
	for _, f := range []struct {
		name      string
		got, want uint32
	}{
		{"file size", le.Uint32(b[2:]), 62 + stride*pix},
		{"pixel offset", le.Uint32(b[10:]), 62},
		{"header size", le.Uint32(b[14:]), 40},
		{"width", le.Uint32(b[18:]), pix},
		{"height", le.Uint32(b[22:]), pix},
		{"planes", uint32(le.Uint16(b[26:])), 1},
		{"bits per pixel", uint32(le.Uint16(b[28:])), 1},
		{"image size", le.Uint32(b[34:]), stride * pix},
		{"colours", le.Uint32(b[46:]), 2},
		{"palette 0", le.Uint32(b[54:]), 0x00ffffff},
		{"palette 1", le.Uint32(b[58:]), 0},
	} {
		if f.got != f.want {
			t.Errorf("%s = %#x, want %#x", f.name, f.got, f.want)
		}
	}
	if string(b[:2]) != "BM" || len(b) != 62+stride*pix {
		t.Fatalf("magic %q, length %d", b[:2], len(b))
	}
	// Bottom-up: image row 4, the top of the grid, is file row 28.
	row := b[62+28*stride:]
	if row[0] != 0x0f || row[3]&0x01 != 0 {
		t.Errorf("top row = %08b", row[:4])
	}
	for _, v := range b[62 : 62+4*stride] {
		if v != 0 {
			t.Fatal("quiet zone is not white")
		}
	}

	c.Reverse = true
	buf.Reset()
	c.EncodeBMP(&buf)
	b = buf.Bytes()
	if le.Uint32(b[54:]) != 0 || le.Uint32(b[58:]) != 0x00ffffff {
		t.Error("reversed palette")
	}
}

func TestEncodePBM(t *testing.T) {
	c, _ := qr.EncodeString("https://google.com", qr.M)
	c.Scale, c.Border = 2, 1
	var buf bytes.Buffer
	if err := c.EncodePBM(&buf); err != nil {
		t.Fatal(err)
	}
	const hdr, pix, stride = "P4\n54 54\n", 54, 7
	b := buf.Bytes()
	if !bytes.HasPrefix(b, []byte(hdr)) || len(b) != len(hdr)+pix*stride {
		t.Fatalf("header %q, length %d", b[:len(hdr)], len(b))
	}
	b = b[len(hdr):]
	if b[0] != 0 || b[2*stride] != 0x3f || b[2*stride+1] != 0xff ||
		!bytes.Equal(b[2*stride:3*stride], b[3*stride:4*stride]) {
		t.Errorf("rows %x %x", b[:stride], b[2*stride:3*stride])
	}

	c.Reverse = true
	buf.Reset()
	c.EncodePBM(&buf)
	b = buf.Bytes()[len(hdr):]
	if b[0] != 0xff || b[2*stride] != 0xc0 {
		t.Errorf("reversed rows %x %x", b[:stride], b[2*stride:3*stride])
	}
}

func TestText(t *testing.T) {
	c, _ := qr.EncodeString("https://google.com", qr.M)
	s := c.String()
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	if len(lines) != 17 {
		t.Fatalf("%d lines, want 17", len(lines))
	}
	for i, l := range lines {
		if n := utf8.RuneCountInString(l); n != 33 {
			t.Errorf("line %d: %d runes, want 33", i, n)
		}
	}
	// Quiet zone rows 0-3: white, drawn as ink.
	if !strings.HasPrefix(lines[0], "██") {
		t.Errorf("line 0 = %q", lines[0])
	}
	// Rows 32 and beyond: white, nothing.
	if !strings.HasPrefix(lines[16], "▀▀") {
		t.Errorf("line 16 = %q", lines[16])
	}

	var buf bytes.Buffer
	if err := c.EncodeASCII(&buf); err != nil {
		t.Fatal(err)
	}
	lines = strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 33 || len(lines[4]) != 66 ||
		lines[4][8:22] != "##############" || lines[4][22:24] != "  " {
		t.Errorf("ASCII row 4 = %q", lines[4])
	}
}

func TestBadCode(t *testing.T) {
	var buf bytes.Buffer
	bad := &qr.Code{}
	for name, f := range map[string]func() error{
		"BMP":   func() error { return bad.EncodeBMP(&buf) },
		"PBM":   func() error { return bad.EncodePBM(&buf) },
		"PNG":   func() error { return bad.EncodePNG(&buf) },
		"ASCII": func() error { return bad.EncodeASCII(&buf) },
	} {
		if err := f(); !errors.Is(err, qr.ErrArgs) {
			t.Errorf("%s: %v, want ErrArgs", name, err)
		}
	}
	c, _ := qr.EncodeString("x", qr.L)
	c.Scale = 1 << 20
	if err := c.EncodeBMP(&buf); !errors.Is(err, qr.ErrLargeImage) {
		t.Errorf("huge image: %v", err)
	}
}

func ExampleEncodeString() {
	c, err := qr.EncodeString("https://google.com", qr.M)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Version, c.Level, c.Size)
	// Output: 2 M 25
}
