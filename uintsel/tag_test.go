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
	"go/constant"
	"go/token"
	"reflect"
	"testing"

	"lukechampine.com/uint128"
)

func TestTagTable(t *testing.T) {
	tagv := []Tag{U8, U16, U32, U64, U128}
	seen := map[reflect.Type]Tag{}

	for i, w := range widthv {
		tag := TagOf(w)
		if tag != tagv[i] {
			t.Errorf("TagOf(%v) -> %v  ; want %v", w, tag, tagv[i])
		}
		if tag.Width() != w {
			t.Errorf("%v.Width() -> %v  ; want %v", tag, tag.Width(), w)
		}

		// every tag denotes its own type of the right size
		typ := tag.Type()
		if other, dup := seen[typ]; dup {
			t.Errorf("%v and %v denote the same type %v", tag, other, typ)
		}
		seen[typ] = tag
		if int(typ.Size()) != w.Bytes() {
			t.Errorf("%v: sizeof(%v) = %d  ; want %d", tag, typ, typ.Size(), w.Bytes())
		}

		// zero value is the default one
		if !reflect.Zero(typ).IsZero() {
			t.Errorf("%v: zero value is not zero", tag)
		}

		if !constant.Compare(tag.Max(), token.EQL, w.Max()) {
			t.Errorf("%v.Max() -> %s  ; want %s", tag, tag.Max().ExactString(), w.Max().ExactString())
		}
	}
}

func TestTagGoType(t *testing.T) {
	testv := []struct {tag Tag; gotype, importPath string} {
		{U8, "uint8", ""},
		{U16, "uint16", ""},
		{U32, "uint32", ""},
		{U64, "uint64", ""},
		{U128, "uint128.Uint128", "lukechampine.com/uint128"},
	}

	for _, tt := range testv {
		if s := tt.tag.GoType(); s != tt.gotype {
			t.Errorf("%d.GoType() -> %q  ; want %q", tt.tag, s, tt.gotype)
		}
		if s := tt.tag.String(); s != tt.gotype {
			t.Errorf("%d.String() -> %q  ; want %q", tt.tag, s, tt.gotype)
		}
		if s := tt.tag.ImportPath(); s != tt.importPath {
			t.Errorf("%v.ImportPath() -> %q  ; want %q", tt.tag, s, tt.importPath)
		}
	}

	if s := Tag(0).String(); s != "Tag(0)" {
		t.Errorf("Tag(0).String() -> %q", s)
	}
	if s := Width(7).String(); s != "Width(7)" {
		t.Errorf("Width(7).String() -> %q", s)
	}
	if s := W16.String(); s != "w16" {
		t.Errorf("W16.String() -> %q", s)
	}
}

func TestTagOfInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("TagOf(7): no panic")
		}
	}()
	TagOf(7)
}

func TestMaxOf(t *testing.T) {
	if x := MaxOf[U8Type](); x != 255 {
		t.Errorf("MaxOf[U8]() -> %d", x)
	}
	if x := MaxOf[U16Type](); x != 65535 {
		t.Errorf("MaxOf[U16]() -> %d", x)
	}
	if x := MaxOf[U32Type](); x != 1<<32-1 {
		t.Errorf("MaxOf[U32]() -> %d", x)
	}
	if x := MaxOf[U64Type](); x != 1<<64-1 {
		t.Errorf("MaxOf[U64]() -> %d", x)
	}

	// and they agree with width classes
	for _, tt := range []struct {w Width; max uint64} {
		{W8, uint64(MaxOf[U8Type]())},
		{W16, uint64(MaxOf[U16Type]())},
		{W32, uint64(MaxOf[U32Type]())},
		{W64, MaxOf[U64Type]()},
	} {
		if !constant.Compare(tt.w.Max(), token.EQL, constant.MakeUint64(tt.max)) {
			t.Errorf("%v.Max() -> %s  ; want %d", tt.w, tt.w.Max().ExactString(), tt.max)
		}
	}

	// 128-bit tag provides arithmetic by methods
	var x U128Type
	x = x.Add64(1).Lsh(64)
	if x.Hi != 1 || x.Lo != 0 || x.Cmp(uint128.Max) >= 0 {
		t.Errorf("uint128: 1<<64 -> %v", x)
	}
	if s := x.Sub64(1).String(); s != W64.Max().ExactString() {
		t.Errorf("uint128: (1<<64)-1 -> %v  ; want %s", x.Sub64(1), W64.Max().ExactString())
	}
	if s := uint128.Max.String(); s != W128.Max().ExactString() {
		t.Errorf("uint128.Max -> %s  ; want %s", s, W128.Max().ExactString())
	}
}
