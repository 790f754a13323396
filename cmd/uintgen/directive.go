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
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"go/types"
	"strings"

	"github.com/pkg/errors"

	"lab.nexedi.com/kirr/smalluint/uintsel"
	"lab.nexedi.com/kirr/smalluint/xstrings"
)

// mode is how a directive treats its bound.
type mode int

const (
	modeFor  mode = iota // the type must hold the bound itself
	modeUpTo             // the type must hold every value below the bound
)

func (m mode) String() string {
	switch m {
	case modeFor:
		return "for"
	case modeUpTo:
		return "upto"
	default:
		return "?"
	}
}

// directive requests a type alias sized for a bound.
//
// It comes either from command line, or from a comment line in package source:
//
//	//uintgen:for  <Type> <expr>
//	//uintgen:upto <Type> <expr>
type directive struct {
	typeName string
	mode     mode
	expr     string
	where    string // position for error messages
}

const directivePrefix = "//uintgen:"

// parseDirective parses comment text into directive.
//
// ok=false is returned if the comment is not a uintgen directive at all.
func parseDirective(text, where string) (d directive, ok bool, err error) {
	if !strings.HasPrefix(text, directivePrefix) {
		return d, false, nil
	}
	defer func() {
		if err != nil {
			err = errors.Wrapf(err, "%s: invalid directive %q", where, text)
		}
	}()

	_, body, err := xstrings.HeadTail(text, ":")
	if err != nil {
		return d, true, err
	}
	kw, rest := xstrings.CutField(body)
	typeName, expr := xstrings.CutField(rest)

	d = directive{typeName: typeName, expr: expr, where: where}
	switch kw {
	case "for":
		d.mode = modeFor
	case "upto":
		d.mode = modeUpTo
	default:
		return d, true, errors.Errorf("unknown mode %q (want for or upto)", kw)
	}
	err = d.validate()
	return d, true, err
}

// validate checks d and brings its bound expression to canonical form.
//
// Comments, e.g. trailing ones after a directive, are dropped from the expression.
func (d *directive) validate() error {
	if !token.IsIdentifier(d.typeName) || d.typeName == "_" {
		return errors.Errorf("%q is not a valid type name", d.typeName)
	}
	if d.expr == "" {
		return errors.New("no bound expression")
	}
	x, err := parser.ParseExpr(d.expr)
	if err != nil {
		return errors.Wrapf(err, "bound %q", d.expr)
	}
	d.expr = types.ExprString(x)
	return nil
}

// scanDirectives returns all uintgen directives in files.
func scanDirectives(fset *token.FileSet, files []*ast.File) ([]directive, error) {
	var dv []directive
	for _, f := range files {
		for _, cg := range f.Comments {
			for _, c := range cg.List {
				d, ok, err := parseDirective(c.Text, fset.Position(c.Slash).String())
				if err != nil {
					return nil, err
				}
				if ok {
					dv = append(dv, d)
				}
			}
		}
	}
	return dv, nil
}

// alias is a directive resolved to concrete type.
type alias struct {
	directive
	bound constant.Value
	tag   uintsel.Tag
}

// resolve evaluates bounds of directives in package scope of pkg and selects
// their types.
func resolve(fset *token.FileSet, pkg *types.Package, opt uintsel.Options, dv []directive) ([]alias, error) {
	seen := map[string]directive{}
	var av []alias
	for _, d := range dv {
		if prev, dup := seen[d.typeName]; dup {
			return nil, errors.Errorf("%s: type %s already requested at %s", d.where, d.typeName, prev.where)
		}
		seen[d.typeName] = d

		if obj := pkg.Scope().Lookup(d.typeName); obj != nil {
			return nil, errors.Errorf("%s: %s already declared at %s", d.where, d.typeName, fset.Position(obj.Pos()))
		}

		a, err := resolve1(fset, pkg, opt, d)
		if err != nil {
			return nil, err
		}
		av = append(av, a)
	}
	return av, nil
}

func resolve1(fset *token.FileSet, pkg *types.Package, opt uintsel.Options, d directive) (_ alias, err error) {
	defer func() {
		if err != nil {
			err = errors.WithMessagef(err, "%s: %s %s %s", d.where, d.mode, d.typeName, d.expr)
		}
	}()

	tv, err := types.Eval(fset, pkg, token.NoPos, d.expr)
	if err != nil {
		return alias{}, err
	}
	if tv.Value == nil {
		return alias{}, errors.Errorf("%s is not constant", d.expr)
	}

	a := alias{directive: d, bound: tv.Value}
	switch d.mode {
	case modeFor:
		a.tag, err = opt.SmallestTypeFor(tv.Value)
	case modeUpTo:
		a.tag, err = opt.SmallestTypeUpTo(tv.Value)
	}
	if err != nil {
		return alias{}, err
	}
	return a, nil
}
