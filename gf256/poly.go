// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// A Poly is a polynomial over GF(256).  Coefficients are stored
// highest degree first: Poly{1, 2, 3} is x² + 2x + 3.
type Poly []byte

// trim returns p with leading zero coefficients removed.
func (p Poly) trim() Poly {
	for len(p) != 0 && p[0] == 0 {
		p = p[1:]
	}
	return p
}

// PolyMul returns the product of p and q in the field.
func (f *Field) PolyMul(p, q Poly) Poly {
	if len(p) == 0 || len(q) == 0 {
		return Poly{}
	}
	r := make(Poly, len(p)+len(q)-1)
	for i, a := range p {
		for j, b := range q {
			r[i+j] ^= f.Mul(a, b)
		}
	}
	return r
}

// PolyMod returns the remainder of dividing p by q in the field,
// without leading zero coefficients.  The remainder is shorter than q.
// PolyMod panics if q has a zero leading coefficient.
func (f *Field) PolyMod(p, q Poly) Poly {
	if len(q) == 0 || q[0] == 0 {
		panic("gf256: invalid divisor")
	}
	r := append(Poly(nil), p...).trim()
	inv := f.Inv(q[0])
	for len(r) >= len(q) {
		if c := f.Mul(r[0], inv); c != 0 {
			for i, v := range q {
				r[i] ^= f.Mul(v, c)
			}
		}
		// r[0] is zero now, so each pass drops at least one term.
		r = r.trim()
	}
	return r
}

// GeneratorPoly returns the Reed-Solomon generator polynomial of the
// given degree: the product of (x - α^i) for i in [0, degree).
func (f *Field) GeneratorPoly(degree int) Poly {
	p := Poly{1}
	for i := 0; i < degree; i++ {
		p = f.PolyMul(p, Poly{1, f.Exp(i)})
	}
	return p
}
