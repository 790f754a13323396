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

	"github.com/pkg/errors"
)

var (
	// ErrUnrepresentable is matched, via errors.Is, by every *UnrepresentableError.
	ErrUnrepresentable = errors.New("bound is not representable")

	// ErrInvalidBound is returned for bounds that are not non-negative integers.
	ErrInvalidBound = errors.New("invalid bound")
)

// UnrepresentableError is returned when a bound needs more bits than the
// widest enabled width class provides.
type UnrepresentableError struct {
	Bound constant.Value // offending bound as given by the caller
	UpTo  bool           // whether the bound was exclusive (ClassifyUpTo)
	Bits  int            // bits needed to represent the value to hold
	Wide  bool           // whether 128-bit width class was enabled
}

func (e *UnrepresentableError) Error() string {
	what := "bound"
	if e.UpTo {
		what = "exclusive bound"
	}
	widest := W64
	mode := "disabled"
	if e.Wide {
		widest = W128
		mode = "enabled"
	}
	return fmt.Sprintf("%s %s: %s; needs %d bits, widest width is %d bits (wide mode %s)",
		what, e.Bound.ExactString(), ErrUnrepresentable, e.Bits, widest.Bits(), mode)
}

func (e *UnrepresentableError) Is(target error) bool {
	return target == ErrUnrepresentable
}
