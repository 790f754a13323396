// Copyright (C) 2015-2026  Nexedi SA and Contributors.
//                          Kirill Smelkov <kirr@nexedi.com>
//
// This program is free software: you can Use, Study, Modify and Redistribute
// it under the terms of the GNU General Public License version 3, or (at your
// option) any later version, as published by the Free Software Foundation.
//
// This program is distributed WITHOUT ANY WARRANTY; without even the implied
// warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//
// See COPYING file for full licensing terms.

// Package xstrings provides addons to standard package strings
package xstrings

import (
    "fmt"
    "strings"
    "unicode"
)

// (head+sep+tail) -> head, tail
func HeadTail(s, sep string) (head, tail string, err error) {
    parts := strings.SplitN(s, sep, 2)
    if len(parts) != 2 {
        return "", "", fmt.Errorf("headtail: %q has no %q", s, sep)
    }
    return parts[0], parts[1], nil
}

// CutField splits s into its first whitespace-separated field and the rest.
//
// Leading and trailing whitespace of both is stripped; whitespace inside rest is kept:
//
//	"  upto  Index  N * 2 " -> "upto", "Index  N * 2"
func CutField(s string) (field, rest string) {
    s = strings.TrimSpace(s)
    i := strings.IndexFunc(s, unicode.IsSpace)
    if i == -1 {
        return s, ""
    }
    return s[:i], strings.TrimSpace(s[i:])
}
