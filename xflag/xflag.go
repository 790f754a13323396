// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE-go file.

// Package xflag provides addons to standard package flag.
package xflag

import (
	"strconv"

	"github.com/pkg/errors"
)

// Count is a repeatable flag.Value for verbosity, originally taken from
// cmd/dist.count in go.git.
//
// Every bare -v adds one; -v=N sets the level to N and -v=false resets it.
//
//	var verbose xflag.Count
//	flag.Var(&verbose, "v", "verbosity level")
type Count int

func (c *Count) String() string {
	if c == nil {
		return "0"
	}
	return strconv.Itoa(int(*c))
}

func (c *Count) Set(s string) error {
	switch s {
	case "true":
		*c++
		return nil
	case "false":
		*c = 0
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return errors.Errorf("invalid count %q", s)
	}
	*c = Count(n)
	return nil
}

// IsBoolFlag makes bare -v accepted without value.
func (c *Count) IsBoolFlag() bool { return true }

// Enabled reports whether verbosity level is at least n.
func (c Count) Enabled(n int) bool { return int(c) >= n }
