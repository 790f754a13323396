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

package xflag

import (
	"strings"

	"github.com/pkg/errors"
)

// Strings is a flag.Value collecting a list of words.
//
// The value is comma-separated and the flag may be repeated; both
// "-tags a,b" and "-tags a -tags b" give [a b]. Empty items are skipped.
type Strings []string

func (v *Strings) String() string {
	if v == nil {
		return ""
	}
	return strings.Join(*v, ",")
}

func (v *Strings) Set(s string) error {
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if strings.ContainsAny(item, " \t\n") {
			return errors.Errorf("invalid item %q", item)
		}
		*v = append(*v, item)
	}
	return nil
}
