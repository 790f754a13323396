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

// Uintgen declares type aliases for the smallest unsigned integer types able
// to hold constant bounds.
//
// Usage:
//
//	uintgen [flags] [packages]
//
// In package source, request a type with a comment directive:
//
//	//uintgen:for  Counter MaxCount	// Counter holds MaxCount itself
//	//uintgen:upto Index   NSlots	// Index holds every value in [0, NSlots)
//
// or from command line, typically via go:generate:
//
//	//go:generate uintgen -type Index -upto NSlots
//
// Bounds are arbitrary Go constant expressions evaluated in package scope.
// For every package with directives uintgen writes <pkg>_uint.go with
//
//	type Index = uint16
//
// and constant guards that break compilation if the bound is changed without
// re-running uintgen. Bounds that do not fit into 64 bits, or 128 bits in
// wide mode, are an error.
//
// A bound needing more than 64 bits gives
//
//	type Huge = uint128.Uint128
//
// and the output imports lukechampine.com/uint128. The module of the
// processed package must then require it:
//
//	go get lukechampine.com/uint128
//
// Run with -wide=false to reject such bounds instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"lab.nexedi.com/kirr/smalluint/uintsel"
	"lab.nexedi.com/kirr/smalluint/xflag"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: uintgen [flags] [packages]

uintgen declares type aliases for the smallest unsigned integer types able to
hold constant bounds. Directives are taken from //uintgen:for and //uintgen:upto
comments in package source, and from -type with -for or -upto.

Bounds over 64 bits select lukechampine.com/uint128.Uint128; the processed
module must require it (go get lukechampine.com/uint128), or use -wide=false.

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	var verbose xflag.Count
	var tags xflag.Strings
	var (
		typeName = flag.String("type", "", "name of the type alias to declare")
		forExpr  = flag.String("for", "", "the type must hold value of this constant expression")
		uptoExpr = flag.String("upto", "", "the type must hold every value below this constant expression")
		output   = flag.String("output", "", "output file name; default <pkg>_uint.go")
		dir      = flag.String("dir", "", "directory to load packages from; default current")
		wide     = flag.Bool("wide", uintsel.Wide, "enable 128-bit types")
	)
	flag.Var(&tags, "tags", "comma-separated list of build tags; may be repeated")
	flag.Var(&verbose, "v", "verbosity level")
	flag.Usage = usage
	flag.Parse()

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	allow := level.AllowInfo()
	if verbose.Enabled(1) {
		allow = level.AllowDebug()
	}
	logger = level.NewFilter(logger, allow)
	logger = log.With(logger, "cmd", "uintgen")

	extra, err := flagDirective(*typeName, *forExpr, *uptoExpr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "uintgen: %s\n\n", err)
		flag.Usage()
		os.Exit(2)
	}

	g := &Generator{
		Dir:    *dir,
		Output: *output,
		Opt:    uintsel.Options{Wide: *wide},
		Tags:   tags,
		Logger: logger,
		Extra:  extra,
	}

	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	if err := g.Run(context.Background(), patterns...); err != nil {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
}

// flagDirective returns directive given on command line, if any.
func flagDirective(typeName, forExpr, uptoExpr string) (*directive, error) {
	if typeName == "" {
		if forExpr != "" || uptoExpr != "" {
			return nil, errors.New("-for and -upto require -type")
		}
		return nil, nil
	}

	d := &directive{typeName: typeName, where: "command line"}
	switch {
	case forExpr != "" && uptoExpr != "":
		return nil, errors.New("only one of -for and -upto may be given")
	case forExpr != "":
		d.mode, d.expr = modeFor, forExpr
	case uptoExpr != "":
		d.mode, d.expr = modeUpTo, uptoExpr
	default:
		return nil, errors.New("-type requires -for or -upto")
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}
