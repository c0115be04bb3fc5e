// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	logging "github.com/ipfs/go-log/v2"
	"github.com/pkg/errors"

	"github.com/unixdj/qrenc/gf256"
)

var log = logging.Logger("qr")

const (
	modeBits = 4 // mode indicator length
	byteMode = 4 // byte mode indicator 0100
)

// A Segment is a byte mode segment.  It is immutable.
type Segment struct {
	text string
}

// NewSegment returns a Segment holding a copy of data.
func NewSegment(data []byte) Segment { return Segment{string(data)} }

// StringSegment returns a Segment holding the bytes of s.
func StringSegment(s string) Segment { return Segment{s} }

// Len returns the length of the segment in bytes.
func (s Segment) Len() int { return len(s.text) }

// Bytes returns a copy of the segment data.
func (s Segment) Bytes() []byte { return []byte(s.text) }

func (s Segment) String() string { return s.text }

// encode writes the segment header and data for version v to b.
func (s Segment) encode(b *Bits, v Version) {
	b.Write(byteMode, modeBits)
	b.Write(uint32(len(s.text)), v.CountBits())
	for i := 0; i < len(s.text); i++ {
		b.Write(uint32(s.text[i]), 8)
	}
}

// DataCodewords returns the padded data codewords for seg in version
// v at level l, before splitting into blocks.
func DataCodewords(v Version, l Level, seg Segment) []byte {
	b := NewBits(v.Codewords())
	seg.encode(b, v)
	n := v.DataBits(l)
	if b.Len() > n {
		panic("qr: too much data")
	}
	b.Pad(n)
	return b.Bytes()
}

// Codewords returns the final codeword sequence for seg in version v
// at level l: the data codewords split into blocks, each block
// followed by its error correction codewords, interleaved column-wise,
// data first.
func Codewords(v Version, l Level, seg Segment) ([]byte, error) {
	lay := v.Layout(l)
	data := DataCodewords(v, l, seg)
	rs := gf256.NewRSEncoder(gf256.QR, lay.Check)
	blocks := make([][]byte, lay.Blocks)
	checks := make([][]byte, lay.Blocks)
	for i := range blocks {
		n := lay.blockData(i)
		blocks[i], data = data[:n], data[n:]
		var err error
		if checks[i], err = rs.Encode(blocks[i]); err != nil {
			return nil, errors.Wrapf(err, "version %s-%s block %d", v, l, i)
		}
	}
	out := make([]byte, 0, lay.Codewords)
	out = interleave(out, blocks, lay.Data1+1)
	out = interleave(out, checks, lay.Check)
	if len(out) != lay.Codewords {
		panic("qr: internal error")
	}
	return out, nil
}

// interleave appends n columns of blocks to dst.  Blocks shorter than
// n contribute nothing once exhausted.
func interleave(dst []byte, blocks [][]byte, n int) []byte {
	for i := 0; i < n; i++ {
		for _, b := range blocks {
			if i < len(b) {
				dst = append(dst, b[i])
			}
		}
	}
	return dst
}

// A Symbol is a finished QR symbol.
type Symbol struct {
	Version Version // QR version
	Level   Level   // error correction level
	Mask    Mask    // chosen mask pattern
	Matrix  *Matrix // modules
	Segment Segment // encoded data
}

// Size returns the number of modules on a side.
func (s *Symbol) Size() int { return s.Matrix.Size() }

// Dark reports whether the module at row, col is dark.
func (s *Symbol) Dark(row, col int) bool { return s.Matrix.Get(row, col) }

// Encode encodes seg at level l.  If v is 0, the smallest version
// holding the data is used; otherwise v must hold the data.
func Encode(seg Segment, l Level, v Version) (*Symbol, error) {
	if !l.IsValid() {
		return nil, ErrLevel
	}
	if v != 0 && !v.IsValid() {
		return nil, ErrVersion
	}
	if seg.Len() == 0 {
		return nil, ErrEmpty
	}
	minv, err := BestVersion(seg.Len(), l)
	if err != nil {
		return nil, err
	}
	if v == 0 {
		v = minv
	} else if v < minv {
		return nil, &VersionError{Version: v, Min: minv}
	}
	lay := v.Layout(l)
	log.Debugf("%d bytes: version %s-%s, %d codewords in %d+%d blocks",
		seg.Len(), v, l, lay.Codewords, lay.Group1, lay.Group2)

	data, err := Codewords(v, l, seg)
	if err != nil {
		return nil, err
	}
	m := template(v, l)
	place(m, data)
	k := BestMask(m, l)
	ApplyMask(m, k)
	drawFormat(m, l, k)
	log.Debugf("version %s-%s: mask %d", v, l, k)
	return &Symbol{
		Version: v,
		Level:   l,
		Mask:    k,
		Matrix:  m,
		Segment: seg,
	}, nil
}
