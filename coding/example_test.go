// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding_test

import (
	"fmt"

	"github.com/unixdj/qrenc/coding"
)

func ExampleVersion_Capacity() {
	for _, v := range []coding.Version{1, 10, 40} {
		fmt.Printf("%2s:", v)
		for l := coding.L; l <= coding.H; l++ {
			fmt.Printf(" %s=%d", l, v.Capacity(l))
		}
		fmt.Println()
	}
	// Output:
	//  1: L=17 M=14 Q=11 H=7
	// 10: L=271 M=213 Q=151 H=119
	// 40: L=2953 M=2331 Q=1663 H=1273
}

func ExampleEncode() {
	s, err := coding.Encode(coding.StringSegment("https://google.com"),
		coding.M, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s.Version, s.Level, s.Size())
	// Output: 2 M 25
}

func ExampleLayout() {
	lay := coding.Version(5).Layout(coding.Q)
	fmt.Printf("%d blocks: %d of %d and %d of %d data codewords, "+
		"%d check codewords each\n",
		lay.Blocks, lay.Group1, lay.Data1, lay.Group2, lay.Data1+1,
		lay.Check)
	// Output: 4 blocks: 2 of 15 and 2 of 16 data codewords, 18 check codewords each
}
