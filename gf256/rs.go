// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// An RSEncoder implements Reed-Solomon encoding
// over a given field using a given number of error correction bytes.
// The zero value is an uninitialized encoder.
type RSEncoder struct {
	f   *Field
	gen Poly
}

// NewRSEncoder returns a new Reed-Solomon encoder over the given
// field producing degree error correction bytes per block.  The
// generator polynomial is computed once.  If degree < 1, the encoder
// is left uninitialized.
func NewRSEncoder(f *Field, degree int) *RSEncoder {
	rs := &RSEncoder{f: f}
	if degree > 0 {
		rs.gen = f.GeneratorPoly(degree)
	}
	return rs
}

// Degree returns the number of error correction bytes per block.
func (rs *RSEncoder) Degree() int {
	if rs == nil || len(rs.gen) == 0 {
		return 0
	}
	return len(rs.gen) - 1
}

// Generator returns a copy of the generator polynomial.
func (rs *RSEncoder) Generator() Poly {
	return append(Poly(nil), rs.gen...)
}

// Encode returns the error correction bytes for data: the remainder
// of dividing data padded with Degree zeros by the generator,
// left-padded with zeros to exactly Degree bytes.
func (rs *RSEncoder) Encode(data []byte) ([]byte, error) {
	c := rs.Degree()
	if c == 0 || rs.f == nil {
		return nil, ErrUninitialized
	}
	p := make(Poly, len(data)+c)
	copy(p, data)
	rem := rs.f.PolyMod(p, rs.gen)
	check := make([]byte, c)
	copy(check[c-len(rem):], rem)
	return check, nil
}
