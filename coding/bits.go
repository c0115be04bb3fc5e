// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Bits is an append-only bit buffer.  Bits are packed most
// significant bit first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with capacity for n bytes.
func NewBits(n int) *Bits {
	return &Bits{b: make([]byte, 0, n)}
}

// Len returns the number of bits written.
func (b *Bits) Len() int { return b.nbit }

// Bytes returns the written bytes.  The last byte is zero-padded if
// the bit length is not a multiple of 8.
func (b *Bits) Bytes() []byte { return b.b }

// Bit reports whether bit i is set.
func (b *Bits) Bit(i int) bool {
	return b.b[i>>3]>>(7&^i)&1 != 0
}

// WriteBit appends a single bit.
func (b *Bits) WriteBit(bit bool) {
	if b.nbit&7 == 0 {
		b.b = append(b.b, 0)
	}
	if bit {
		b.b[len(b.b)-1] |= 0x80 >> (b.nbit & 7)
	}
	b.nbit++
}

// Write appends the nbit low bits of v, most significant first.
// nbit must not exceed 32.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit <= 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// Pad pads b to n bits: a terminator of up to 4 zero bits if room
// remains, zero bits to the byte boundary, then alternating pad bytes
// 0xec and 0x11.
func (b *Bits) Pad(n int) {
	if b.nbit+4 <= n {
		b.Write(0, 4)
	}
	b.Write(0, -b.nbit&7)
	for i := 0; b.nbit < n; i++ {
		b.Write(uint32(padBytes[i&1]), 8)
	}
}

var padBytes = [2]byte{0xec, 0x11}
