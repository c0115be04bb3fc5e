// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestFieldTables(t *testing.T) {
	f := QR
	if f.exp[0] != 1 || f.exp[255] != 1 || f.exp[8] != 0x1d {
		t.Fatalf("exp[0,8,255] = %#x %#x %#x", f.exp[0], f.exp[8], f.exp[255])
	}
	for i := 0; i < 255; i++ {
		if f.exp[i+255] != f.exp[i] {
			t.Errorf("exp[%d] = %#x, want exp[%d] = %#x",
				i+255, f.exp[i+255], i, f.exp[i])
		}
		if l, err := f.Log(f.exp[i]); err != nil || l != i {
			t.Errorf("Log(Exp(%d)) = %d, %v", i, l, err)
		}
	}
	for x := 1; x < 256; x++ {
		l, _ := f.Log(byte(x))
		if f.Exp(l) != byte(x) {
			t.Errorf("Exp(Log(%#x)) = %#x", x, f.Exp(l))
		}
	}
}

func TestLogZero(t *testing.T) {
	if _, err := QR.Log(0); !errors.Is(err, ErrDomain) {
		t.Fatalf("Log(0) error = %v, want ErrDomain", err)
	}
}

func TestMul(t *testing.T) {
	f := QR
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			want := byte(mul(x, y, 0x11d))
			if got := f.Mul(byte(x), byte(y)); got != want {
				t.Fatalf("Mul(%#x, %#x) = %#x, want %#x", x, y, got, want)
			}
		}
		if x != 0 && f.Mul(byte(x), f.Inv(byte(x))) != 1 {
			t.Errorf("%#x * Inv(%#x) != 1", x, x)
		}
	}
}

func TestNewFieldInvalid(t *testing.T) {
	for _, poly := range []int{0xff, 0x200, 0x100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewField(%#x, 2) did not panic", poly)
				}
			}()
			NewField(poly, 2)
		}()
	}
}

func TestGeneratorPoly(t *testing.T) {
	// x^7 + α^87 x^6 + α^229 x^5 + α^146 x^4 + α^149 x^3 +
	// α^238 x^2 + α^102 x + α^21
	f := QR
	logs := []int{0, 87, 229, 146, 149, 238, 102, 21}
	gen := f.GeneratorPoly(7)
	if len(gen) != len(logs) {
		t.Fatalf("len(GeneratorPoly(7)) = %d, want %d", len(gen), len(logs))
	}
	for i, l := range logs {
		if gen[i] != f.Exp(l) {
			t.Errorf("coefficient %d = %#x, want α^%d = %#x",
				i, gen[i], l, f.Exp(l))
		}
	}
}

func TestPolyMod(t *testing.T) {
	f := QR
	r := rand.New(rand.NewSource(1))
	for n := 0; n < 200; n++ {
		g := f.GeneratorPoly(1 + r.Intn(30))
		a := make(Poly, 1+r.Intn(50))
		r.Read(a)
		a[0] |= 1
		rem := make(Poly, r.Intn(len(g)))
		r.Read(rem)
		// p = a*g + rem
		p := f.PolyMul(a, g)
		off := len(p) - len(rem)
		for i, v := range rem {
			p[off+i] ^= v
		}
		if got, want := f.PolyMod(p, g), rem.trim(); !bytes.Equal(got, want) {
			t.Fatalf("(%x*%x + %x) mod g = %x", a, g, rem, got)
		}
	}
}

// lfsrECC computes check bytes by synthetic division, the way
// rsc.io/qr/gf256 does it, independently of PolyMod.
func lfsrECC(f *Field, gen Poly, data []byte) []byte {
	c := len(gen) - 1
	p := make([]byte, len(data)+c)
	copy(p, data)
	for i := range data {
		k := p[i]
		if k == 0 {
			continue
		}
		for j, g := range gen[1:] {
			p[i+1+j] ^= f.Mul(g, k)
		}
	}
	return p[len(data):]
}

func TestRSEncode(t *testing.T) {
	// "HELLO WORLD", version 1-M.
	data := []byte{32, 91, 11, 120, 209, 114, 220, 77,
		67, 64, 236, 17, 236, 17, 236, 17}
	want := []byte{196, 35, 39, 119, 235, 215, 231, 226, 93, 23}
	rs := NewRSEncoder(QR, 10)
	got, err := rs.Encode(data)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Encode = %v, want %v", got, want)
	}
}

func TestRSEncodeDivision(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for _, degree := range []int{7, 10, 13, 17, 18, 22, 26, 28, 30} {
		rs := NewRSEncoder(QR, degree)
		if rs.Degree() != degree {
			t.Fatalf("Degree() = %d, want %d", rs.Degree(), degree)
		}
		for n := 0; n < 20; n++ {
			data := make([]byte, 1+r.Intn(120))
			r.Read(data)
			if n == 0 {
				// leading zero check bytes must survive
				data = make([]byte, len(data))
			}
			got, err := rs.Encode(data)
			if err != nil {
				t.Fatal(err)
			}
			want := lfsrECC(QR, rs.Generator(), data)
			if !bytes.Equal(got, want) {
				t.Fatalf("degree %d, data %x: Encode = %x, want %x",
					degree, data, got, want)
			}
		}
	}
}

func TestRSUninitialized(t *testing.T) {
	for _, rs := range []*RSEncoder{{}, NewRSEncoder(QR, 0)} {
		if _, err := rs.Encode([]byte{1, 2, 3}); !errors.Is(err, ErrUninitialized) {
			t.Errorf("Encode error = %v, want ErrUninitialized", err)
		}
	}
}
