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

package xmath

import (
	"go/constant"
	"go/token"
	"testing"
)

func TestCeilLog2(t *testing.T) {
	testv := []struct {x uint64; xclog2 int} {
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{7, 3},
		{8, 3},
		{9, 4},
		{16, 4},
		{17, 5},
		{33, 6},
		{64, 6},
		{65, 7},
		{128, 7},
		{129, 8},
		{1<<62 - 1, 62},
		{1<<62, 62},
		{1<<62+1, 63},
		{1<<63, 63},
		{1<<63+1, 64},
	}

	for _, tt := range testv {
		xclog2 := CeilLog2(tt.x)
		if xclog2 != tt.xclog2 {
			t.Errorf("CeilLog2(%v) -> %v  ; want %v", tt.x, xclog2, tt.xclog2)
		}
	}
}

// bigint parses integer literal s into constant.
func bigint(s string) constant.Value {
	v := constant.MakeFromLiteral(s, token.INT, 0)
	if v.Kind() != constant.Int {
		panic("bad literal " + s)
	}
	return v
}

func TestBitLen(t *testing.T) {
	testv := []struct {x string; nbit int} {
		{"0", 0},
		{"1", 1},
		{"2", 2},
		{"3", 2},
		{"255", 8},
		{"256", 9},
		{"65535", 16},
		{"65536", 17},
		{"0xffffffff", 32},
		{"0x100000000", 33},
		{"0xffffffffffffffff", 64},
		{"0x10000000000000000", 65},
		{"0xffffffffffffffffffffffffffffffff", 128},
		{"0x100000000000000000000000000000000", 129},
	}

	for _, tt := range testv {
		nbit := BitLen(bigint(tt.x))
		if nbit != tt.nbit {
			t.Errorf("BitLen(%v) -> %v  ; want %v", tt.x, nbit, tt.nbit)
		}

		// machine-sized values must agree with BitLen64
		if x, exact := constant.Uint64Val(bigint(tt.x)); exact {
			nbit64 := BitLen64(x)
			if nbit64 != tt.nbit {
				t.Errorf("BitLen64(%v) -> %v  ; want %v", tt.x, nbit64, tt.nbit)
			}
		}
	}
}

func TestBitLenInvalid(t *testing.T) {
	for _, x := range []constant.Value{
		constant.MakeInt64(-1),
		constant.MakeString("hello"),
		constant.MakeFloat64(0.5),
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("BitLen(%v): no panic", x)
				}
			}()
			BitLen(x)
		}()
	}
}
