// Copyright (C) 2026  Nexedi SA and Contributors.
//                     Kirill Smelkov <kirr@nexedi.com>
//
// This program is free software: you can Use, Study, Modify and Redistribute
// it under the terms of the GNU General Public License version 3, or (at your
// option) any later version, as published by the Free Software Foundation.
//
// You can also Link and Combine this program with other software covered by
// the terms of any of the Free Software licenses or any of the Open Source
// Initiative approved licenses and Convey the resulting work. Corresponding
// source of such a combination shall include the source code for all other
// software used.
//
// This program is distributed WITHOUT ANY WARRANTY; without even the implied
// warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//
// See COPYING file for full licensing terms.
// See https://www.nexedi.com/licensing for rationale and options.

// Package uintsel selects the narrowest unsigned integer type able to hold a
// bound.
//
// A bound is a non-negative integer Go constant of arbitrary precision. For a
// bound N
//
//	ClassifyFor(N)   gives the minimal width holding N itself,
//	ClassifyUpTo(N)  gives the minimal width holding every value in [0, N).
//
// Widths are 8, 16, 32, 64 and, in wide mode, 128 bits. SmallestTypeFor and
// SmallestTypeUpTo map the width to a Tag denoting the concrete type.
//
// The package is meant to be used at code-generation time, see command
// uintgen, which turns the selected Tag into a type alias so that nothing of
// the selection is left in the compiled program:
//
//	//go:generate uintgen -type Index -upto NSlots
//
// For example for NSlots = 65536 Index becomes uint16, while
// "-for NSlots" would give uint32.
package uintsel

import (
	"go/constant"
	"go/token"
	"strconv"

	"github.com/pkg/errors"

	"lab.nexedi.com/kirr/smalluint/xmath"
)

// Width is a width class: bit-width of a selected unsigned integer type.
type Width uint8

const (
	W8   Width = 8
	W16  Width = 16
	W32  Width = 32
	W64  Width = 64
	W128 Width = 128
)

// all width classes in ascending order; W128 is used only in wide mode.
var widthv = []Width{W8, W16, W32, W64, W128}

// Bits returns number of bits in w.
func (w Width) Bits() int { return int(w) }

// Bytes returns number of bytes in w.
func (w Width) Bytes() int { return int(w) / 8 }

func (w Width) String() string {
	switch w {
	case W8, W16, W32, W64, W128:
		return "w" + strconv.Itoa(int(w))
	default:
		return "Width(" + strconv.Itoa(int(w)) + ")"
	}
}

// Max returns maximum value representable with w bits, i.e. 2^w - 1.
func (w Width) Max() constant.Value {
	return constant.BinaryOp(
		constant.Shift(one, token.SHL, uint(w)), token.SUB, one)
}

// Options control classification.
type Options struct {
	// Wide enables 128-bit width class. Without it bounds needing more
	// than 64 bits fail to classify.
	Wide bool
}

// Default is the classification setup used by package-level functions.
var Default = Options{Wide: Wide}

// Widths returns enabled width classes in ascending order.
func (o Options) Widths() []Width {
	n := len(widthv)
	if !o.Wide {
		n--
	}
	return append([]Width(nil), widthv[:n]...)
}

// widthForBits returns the smallest enabled width class with at least nbit bits.
func (o Options) widthForBits(nbit int) (Width, bool) {
	// widthv[i] has 2^(i+3) bits
	i := xmath.CeilLog2(uint64(nbit)) - 3
	if i < 0 {
		i = 0
	}
	n := len(widthv)
	if !o.Wide {
		n--
	}
	if i >= n {
		return 0, false
	}
	return widthv[i], true
}

var one = constant.MakeInt64(1)

// ClassifyFor returns minimal width class sufficient to represent n.
//
// n = 0 is treated as 1: zero still needs a home of the smallest width.
// If n needs more bits than the widest enabled width provides, the error is
// *UnrepresentableError.
func (o Options) ClassifyFor(n constant.Value) (Width, error) {
	n, err := checkBound(n)
	if err != nil {
		return 0, err
	}

	m := n
	if constant.Sign(m) == 0 {
		m = one
	}
	l := xmath.BitLen(m)

	w, ok := o.widthForBits(l)
	if !ok {
		return 0, &UnrepresentableError{Bound: n, Bits: l, Wide: o.Wide}
	}
	return w, nil
}

// ClassifyUpTo returns minimal width class sufficient to represent all values
// in [0, n).
//
// It is ClassifyFor(max(n,1) - 1), so for n = 0 and n = 1 the result is W8.
func (o Options) ClassifyUpTo(n constant.Value) (Width, error) {
	n, err := checkBound(n)
	if err != nil {
		return 0, err
	}

	w, err := o.ClassifyFor(upToMax(n))
	if err != nil {
		// report the bound as given by the caller
		if e, ok := err.(*UnrepresentableError); ok {
			e.Bound = n
			e.UpTo = true
		}
		return 0, err
	}
	return w, nil
}

// upToMax returns max(n,1) - 1: the largest value in [0, n), or 0 for empty range.
func upToMax(n constant.Value) constant.Value {
	if constant.Sign(n) == 0 {
		return n
	}
	return constant.BinaryOp(n, token.SUB, one)
}

// checkBound verifies n to be a non-negative integer constant.
func checkBound(n constant.Value) (constant.Value, error) {
	if n == nil {
		return nil, errors.Wrap(ErrInvalidBound, "nil")
	}
	i := constant.ToInt(n)
	if i.Kind() != constant.Int {
		return nil, errors.Wrapf(ErrInvalidBound, "%s is not an integer", n)
	}
	if constant.Sign(i) < 0 {
		return nil, errors.Wrapf(ErrInvalidBound, "%s is negative", i.ExactString())
	}
	return i, nil
}

// ClassifyFor is Default.ClassifyFor .
func ClassifyFor(n constant.Value) (Width, error) {
	return Default.ClassifyFor(n)
}

// ClassifyUpTo is Default.ClassifyUpTo .
func ClassifyUpTo(n constant.Value) (Width, error) {
	return Default.ClassifyUpTo(n)
}

// Widths is Default.Widths .
func Widths() []Width {
	return Default.Widths()
}

// ClassifyFor64 is ClassifyFor for machine-sized bound.
//
// Every uint64 fits into W64, so it never fails.
func ClassifyFor64(n uint64) Width {
	if n == 0 {
		n = 1
	}
	w, _ := Options{}.widthForBits(xmath.BitLen64(n))
	return w
}

// ClassifyUpTo64 is ClassifyUpTo for machine-sized bound.
func ClassifyUpTo64(n uint64) Width {
	if n == 0 {
		return ClassifyFor64(0)
	}
	return ClassifyFor64(n - 1)
}

// ParseBound parses integer literal in Go syntax into a bound.
//
// Decimal, hexadecimal, octal and binary forms, as well as '_' digit
// separators, are accepted.
func ParseBound(s string) (constant.Value, error) {
	v := constant.MakeFromLiteral(s, token.INT, 0)
	if v.Kind() != constant.Int {
		return nil, errors.Wrapf(ErrInvalidBound, "%q is not an integer literal", s)
	}
	return checkBound(v)
}
