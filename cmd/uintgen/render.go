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

package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/constant"
	"go/format"
	"go/parser"
	"sort"

	"github.com/pkg/errors"

	"lab.nexedi.com/kirr/smalluint/uintsel"
)

const header = "// Code generated by uintgen; DO NOT EDIT.\n"

// render returns gofmt'ed Go source declaring aliases in package pkgName.
//
// Each alias is followed by constant guards which fail compilation if its
// bound is later changed so that the selected type no longer fits it.
func render(pkgName string, av []alias) ([]byte, error) {
	av = append([]alias(nil), av...)
	sort.Slice(av, func(i, j int) bool {
		return av[i].typeName < av[j].typeName
	})

	var buf bytes.Buffer
	emit := func(format string, argv ...interface{}) {
		fmt.Fprintf(&buf, format, argv...)
	}

	emit("%s\npackage %s\n", header, pkgName)

	imports := map[string]bool{}
	for _, a := range av {
		if path := a.tag.ImportPath(); path != "" {
			imports[path] = true
		}
	}
	pathv := make([]string, 0, len(imports))
	for path := range imports {
		pathv = append(pathv, path)
	}
	sort.Strings(pathv)
	for _, path := range pathv {
		emit("\nimport %q\n", path)
	}

	for _, a := range av {
		emit("\n// %s can hold %s.\n", a.typeName, a.describe())
		emit("type %s = %s\n\n", a.typeName, a.tag.GoType())
		for _, guard := range a.guards() {
			emit("const _ = %s\n", guard)
		}
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "gofmt generated code:\n%s", buf.Bytes())
	}
	return src, nil
}

func (a *alias) describe() string {
	if a.mode == modeUpTo {
		return "every value below " + a.expr
	}
	return a.expr
}

// guards returns constant expressions that compile only while the bound
// still needs exactly a.tag.
func (a *alias) guards() []string {
	x := paren(a.expr)

	// the value that must fit
	b := x
	if a.mode == modeUpTo {
		if constant.Sign(a.bound) == 0 {
			// [0, 0) is served by the smallest type; the bound must stay 0
			return []string{fmt.Sprintf("uint64(-%s)", x)}
		}
		b = x + " - 1"
	}

	w := a.tag.Width()
	if w == uintsel.W128 {
		return []string{
			fmt.Sprintf("uint64((%s) >> 64)", b),
			fmt.Sprintf("uint64((%s)>>64 - 1)", b),
		}
	}

	gv := []string{fmt.Sprintf("%s(%s)", a.typeName, b)}
	if w != uintsel.W8 {
		gv = append(gv, fmt.Sprintf("uint64(%s - 1<<%d)", b, w.Bits()/2))
	}
	return gv
}

// paren wraps expression s into parenthesis unless it is an operand on its own.
func paren(s string) string {
	x, err := parser.ParseExpr(s)
	if err == nil {
		switch x.(type) {
		case *ast.Ident, *ast.BasicLit, *ast.ParenExpr, *ast.CallExpr, *ast.SelectorExpr:
			return s
		}
	}
	return "(" + s + ")"
}
