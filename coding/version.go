// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: capacity
// tables, codeword construction, module placement and masking for
// byte mode symbols.
package coding // import "github.com/unixdj/qrenc/coding"

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

var (
	ErrLevel   = errors.New("qr: invalid level")
	ErrVersion = errors.New("qr: invalid version")
	ErrEmpty   = errors.New("qr: no data to encode")
)

// CapacityError reports data too long for any version at a level.
type CapacityError struct {
	Len   int   // data length in bytes
	Level Level // error correction level
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: %d bytes too long to encode at level %s "+
		"(max %d)", e.Len, e.Level, MaxVersion.Capacity(e.Level))
}

// VersionError reports an explicit version too small for the data.
type VersionError struct {
	Version Version // requested version
	Min     Version // minimum version holding the data
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("qr: version %s cannot hold the data, "+
		"minimum version is %s", e.Version, e.Min)
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is one of L, M, Q, H.
func (l Level) IsValid() bool { return L <= l && l <= H }

// Bits returns the 2 bit level indicator of the format information:
// L=01, M=00, Q=11, H=10.
func (l Level) Bits() int { return int(l) ^ 1 }

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 modules on a side.
// Versions number from 1 to 40: the larger the version,
// the more information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// IsValid reports whether v is in the range 1 to 40.
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

// Size returns the number of modules on a side.
func (v Version) Size() int { return int(v)*4 + 17 }

// A version describes metadata associated with a version.
type version struct {
	bytes     int      // total codewords
	remainder int      // remainder bits after the last codeword
	level     [4]level // per level
}

type level struct {
	nblock int // number of blocks
	check  int // check codewords per block
}

// Codewords returns the total number of codewords in v.
func (v Version) Codewords() int { return vtab[v].bytes }

// RemainderBits returns the number of data modules in v left over
// after the last codeword.
func (v Version) RemainderBits() int { return vtab[v].remainder }

// ECCodewords returns the number of error correction codewords
// in v at level l.
func (v Version) ECCodewords(l Level) int {
	lev := vtab[v].level[l]
	return lev.nblock * lev.check
}

// DataBytes returns the number of data codewords in v at level l.
func (v Version) DataBytes(l Level) int {
	return v.Codewords() - v.ECCodewords(l)
}

// DataBits returns the number of data bits in v at level l.
func (v Version) DataBits(l Level) int { return v.DataBytes(l) * 8 }

// CountBits returns the width of the byte mode character count
// indicator in v.
func (v Version) CountBits() int {
	if v <= 9 {
		return 8
	}
	return 16
}

// Capacity returns the maximum byte mode segment length in v at level l.
func (v Version) Capacity(l Level) int {
	return (v.DataBits(l) - modeBits - v.CountBits()) / 8
}

// Layout describes the block structure of v at level l.
func (v Version) Layout(l Level) Layout {
	lev := vtab[v].level[l]
	total := v.Codewords()
	data := v.DataBytes(l)
	g2 := total % lev.nblock
	d1 := data / lev.nblock
	return Layout{
		Codewords:   total,
		ECCodewords: lev.nblock * lev.check,
		Blocks:      lev.nblock,
		Group1:      lev.nblock - g2,
		Group2:      g2,
		Data1:       d1,
		Check:       total/lev.nblock - d1,
	}
}

// A Layout describes how the codewords of a version and level are
// split into blocks.  Blocks in group 1 hold Data1 data codewords,
// blocks in group 2 hold Data1+1.  Each block has Check error
// correction codewords.
type Layout struct {
	Codewords   int // total codewords
	ECCodewords int // total error correction codewords
	Blocks      int // Group1 + Group2
	Group1      int // blocks in group 1
	Group2      int // blocks in group 2, Codewords % Blocks
	Data1       int // data codewords per block in group 1
	Check       int // error correction codewords per block
}

// blockData returns the number of data codewords in block i.
func (lay *Layout) blockData(i int) int {
	if i < lay.Group1 {
		return lay.Data1
	}
	return lay.Data1 + 1
}

// BestVersion returns the smallest version holding n bytes at level l.
func BestVersion(n int, l Level) (Version, error) {
	if !l.IsValid() {
		return 0, ErrLevel
	}
	for v := MinVersion; v <= MaxVersion; v++ {
		if n <= v.Capacity(l) {
			return v, nil
		}
	}
	return 0, &CapacityError{Len: n, Level: l}
}
