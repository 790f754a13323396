// Copyright (C) 2017-2026  Nexedi SA and Contributors.
//                          Kirill Smelkov <kirr@nexedi.com>
//
// This program is free software: you can Use, Study, Modify and Redistribute
// it under the terms of the GNU General Public License version 3, or (at your
// option) any later version, as published by the Free Software Foundation.
//
// You can also Link and Combine this program with other software covered by
// the terms of any of the Open Source Initiative approved licenses and Convey
// the resulting work. Corresponding source of such a combination shall include
// the source code for all other software used.
//
// This program is distributed WITHOUT ANY WARRANTY; without even the implied
// warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//
// See COPYING file for full licensing terms.

// Package xmath provides bit-length helpers for machine integers and for
// arbitrary-precision Go constants.
package xmath

import (
	"fmt"
	"go/constant"
	"math/bits"
)

// BitLen returns the number of bits needed to represent integer constant v.
//
// BitLen(0) = 0. v must be a non-negative integer constant.
func BitLen(v constant.Value) int {
	v = constant.ToInt(v)
	if v.Kind() != constant.Int {
		panic(fmt.Sprintf("xmath: BitLen: %s is not an integer", v))
	}
	if constant.Sign(v) < 0 {
		panic(fmt.Sprintf("xmath: BitLen: %s is negative", v))
	}
	return constant.BitLen(v)
}

// BitLen64 returns the number of bits needed to represent x.
//
// BitLen64(0) = 0.
func BitLen64(x uint64) int {
	return bits.Len64(x)
}

// CeilLog2 returns minimal i: 2^i >= x
//
// For bit length x it gives log2 of the smallest power-of-2 width holding x bits.
func CeilLog2(x uint64) int {
	switch bits.OnesCount64(x) {
	case 0:
		return 0
	case 1:
		return bits.Len64(x) - 1
	default:
		return bits.Len64(x)
	}
}
