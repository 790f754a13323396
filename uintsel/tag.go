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

package uintsel

import (
	"fmt"
	"go/constant"
	"reflect"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// Tag denotes concrete unsigned integer type of a width class.
type Tag uint8

const (
	_ Tag = iota
	U8
	U16
	U32
	U64
	U128
)

// Go types denoted by tags.
//
// Generated code refers to them by their Go spelling (Tag.GoType), while
// hand-written generic code may use the aliases directly.
type (
	U8Type   = uint8
	U16Type  = uint16
	U32Type  = uint32
	U64Type  = uint64
	U128Type = uint128.Uint128
)

// Unsigned is the constraint satisfied by builtin unsigned types.
//
// U128Type is a struct with arithmetic provided by methods and does not
// satisfy it.
type Unsigned = constraints.Unsigned

// MaxOf returns maximum value of unsigned integer type T.
func MaxOf[T Unsigned]() T {
	return ^T(0)
}

// tagByWidth is the one table defining which type serves which width class.
var tagByWidth = map[Width]Tag{
	W8:   U8,
	W16:  U16,
	W32:  U32,
	W64:  U64,
	W128: U128,
}

type tagInfo struct {
	width      Width
	gotype     string // Go spelling of the type
	importPath string // package to import for gotype; "" for builtin
	typ        reflect.Type
}

var tagTab = map[Tag]tagInfo{
	U8:   {W8, "uint8", "", reflect.TypeOf(U8Type(0))},
	U16:  {W16, "uint16", "", reflect.TypeOf(U16Type(0))},
	U32:  {W32, "uint32", "", reflect.TypeOf(U32Type(0))},
	U64:  {W64, "uint64", "", reflect.TypeOf(U64Type(0))},
	U128: {W128, "uint128.Uint128", "lukechampine.com/uint128", reflect.TypeOf(U128Type{})},
}

func (t Tag) info() tagInfo {
	i, ok := tagTab[t]
	if !ok {
		panic(fmt.Sprintf("uintsel: invalid tag %d", uint8(t)))
	}
	return i
}

// Width returns width class of type denoted by t.
func (t Tag) Width() Width { return t.info().width }

// GoType returns how type denoted by t is spelled in Go source.
func (t Tag) GoType() string { return t.info().gotype }

// ImportPath returns path of the package GoType refers to, or "" for builtin types.
func (t Tag) ImportPath() string { return t.info().importPath }

// Type returns the Go type denoted by t.
func (t Tag) Type() reflect.Type { return t.info().typ }

// Max returns maximum value representable by type denoted by t.
func (t Tag) Max() constant.Value { return t.Width().Max() }

func (t Tag) String() string {
	i, ok := tagTab[t]
	if !ok {
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
	return i.gotype
}

// TagOf returns tag of the type serving width class w.
func TagOf(w Width) Tag {
	t, ok := tagByWidth[w]
	if !ok {
		panic(fmt.Sprintf("uintsel: invalid width %d", uint8(w)))
	}
	return t
}

// SmallestTypeFor returns tag of the smallest type able to represent n.
func (o Options) SmallestTypeFor(n constant.Value) (Tag, error) {
	w, err := o.ClassifyFor(n)
	if err != nil {
		return 0, err
	}
	return TagOf(w), nil
}

// SmallestTypeUpTo returns tag of the smallest type able to represent all
// values in [0, n).
func (o Options) SmallestTypeUpTo(n constant.Value) (Tag, error) {
	w, err := o.ClassifyUpTo(n)
	if err != nil {
		return 0, err
	}
	return TagOf(w), nil
}

// SmallestTypeFor is Default.SmallestTypeFor .
func SmallestTypeFor(n constant.Value) (Tag, error) {
	return Default.SmallestTypeFor(n)
}

// SmallestTypeUpTo is Default.SmallestTypeUpTo .
func SmallestTypeUpTo(n constant.Value) (Tag, error) {
	return Default.SmallestTypeUpTo(n)
}

// SmallestTypeFor64 is SmallestTypeFor for machine-sized bound.
func SmallestTypeFor64(n uint64) Tag {
	return TagOf(ClassifyFor64(n))
}

// SmallestTypeUpTo64 is SmallestTypeUpTo for machine-sized bound.
func SmallestTypeUpTo64(n uint64) Tag {
	return TagOf(ClassifyUpTo64(n))
}
