// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

// A Mask is one of the eight QR data mask patterns.
type Mask int

// NumMasks is the number of mask patterns.
const NumMasks = 8

func (k Mask) String() string { return strconv.Itoa(int(k)) }

// Mask patterns:
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀  1: ▄▄▄▄▄▄▄▄▄▄▄▄  2:  ██ ██ ██ ██  3: ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//
//	4:    ███   ███  5:  ▄▄▄▄▄ ▄▄▄▄▄  6:    ▄▄▄   ▄▄▄  7: ▄█▄▀ ▀▄█▄▀ ▀
//	   ███   ███         █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	      ███   ███      ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██
var maskFunc = [NumMasks]func(i, j int) bool{
	func(i, j int) bool { return (i+j)%2 == 0 },
	func(i, j int) bool { return i%2 == 0 },
	func(i, j int) bool { return j%3 == 0 },
	func(i, j int) bool { return (i+j)%3 == 0 },
	func(i, j int) bool { return (i/2+j/3)%2 == 0 },
	func(i, j int) bool { return i*j%2+i*j%3 == 0 },
	func(i, j int) bool { return (i*j%2+i*j%3)%2 == 0 },
	func(i, j int) bool { return (i*j%3+(i+j)%2)%2 == 0 },
}

// At reports whether mask k inverts the module at row, col.
func (k Mask) At(row, col int) bool { return maskFunc[k](row, col) }

// ApplyMask inverts the unreserved modules of m selected by mask k.
// Applying the same mask twice restores m.
func ApplyMask(m *Matrix, k Mask) {
	f := maskFunc[k]
	siz := m.Size()
	for row := 0; row < siz; row++ {
		for col := 0; col < siz; col++ {
			if !m.IsReserved(row, col) {
				m.Xor(row, col, f(row, col))
			}
		}
	}
}

// Penalty points.
const (
	penRun     = 3  // N1: run of 5, plus 1 per extra module
	penBox     = 3  // N2: 2x2 box of one colour
	penFinder  = 40 // N3: finder-like pattern
	penBalance = 10 // N4: per 5% deviation from 50% dark
)

// finder-like 11 module patterns
const (
	findA = 0b10111010000
	findB = 0b00001011101
)

// PenaltyScores returns the four penalty scores of m:
//
//   - N1: for each run of n >= 5 same-colour modules in a row or
//     column, n-2
//   - N2: for each, possibly overlapping, 2x2 box of one colour, 3
//   - N3: for each 1011101 pattern with 4 light modules on one side
//     in a row or column, 40
//   - N4: 10 for every 5% the dark ratio deviates from 50%
func PenaltyScores(m *Matrix) [4]int {
	siz := m.Size()
	mod := m.mod
	var p [4]int
	// N1, N3: rows and columns in one pass
	for i := 0; i < siz; i++ {
		var rrun, crun int           // run lengths
		var rlast, clast byte = 2, 2 // last colours
		var rpat, cpat int           // last 11 modules
		for j := 0; j < siz; j++ {
			rv, cv := mod[i*siz+j], mod[j*siz+i]
			if rv == rlast {
				rrun++
			} else {
				if rrun >= 5 {
					p[0] += penRun + rrun - 5
				}
				rlast, rrun = rv, 1
			}
			if cv == clast {
				crun++
			} else {
				if crun >= 5 {
					p[0] += penRun + crun - 5
				}
				clast, crun = cv, 1
			}
			rpat = rpat<<1&0x7ff | int(rv)
			cpat = cpat<<1&0x7ff | int(cv)
			if j >= 10 {
				if rpat == findA || rpat == findB {
					p[2] += penFinder
				}
				if cpat == findA || cpat == findB {
					p[2] += penFinder
				}
			}
		}
		if rrun >= 5 {
			p[0] += penRun + rrun - 5
		}
		if crun >= 5 {
			p[0] += penRun + crun - 5
		}
	}
	// N2
	for row := 0; row < siz-1; row++ {
		for col := 0; col < siz-1; col++ {
			i := row*siz + col
			n := mod[i] + mod[i+1] + mod[i+siz] + mod[i+siz+1]
			if n == 0 || n == 4 {
				p[1] += penBox
			}
		}
	}
	// N4: 10 * |ceil(percent/5) - 10|
	sq := siz * siz
	k := (m.Dark()*20+sq-1)/sq - 10
	if k < 0 {
		k = -k
	}
	p[3] = k * penBalance
	return p
}

// Penalty returns the total penalty of m.  Lower is better.
func Penalty(m *Matrix) int {
	p := PenaltyScores(m)
	return p[0] + p[1] + p[2] + p[3]
}

// BestMask returns the mask with the lowest penalty for m, the first
// one on ties.  For each candidate the format information for level l
// is drawn, the mask applied, scored and removed again.  The format
// information is left as drawn for the last candidate.
func BestMask(m *Matrix, l Level) Mask {
	best, low := Mask(0), -1
	for k := Mask(0); k < NumMasks; k++ {
		drawFormat(m, l, k)
		ApplyMask(m, k)
		p := Penalty(m)
		ApplyMask(m, k)
		log.Debugf("mask %d: penalty %d", k, p)
		if low < 0 || p < low {
			best, low = k, p
		}
	}
	return best
}
