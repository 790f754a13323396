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

// Package xerr provides addons for error-handling.
//
// Context and Contextf are handy to decorate an error returned from a
// function with the function's context:
//
//	func classify(d directive) (_ Width, err error) {
//		defer xerr.Contextf(&err, "%s", d.typeName)
//		...
//	}
//
// Errorv collects several errors, e.g. from parallel workers, into one.
package xerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errorv is error merging multiple errors (e.g. after collecting them from several parallel workers).
type Errorv []error

func (errv Errorv) Error() string {
	switch len(errv) {
	case 0:
		return ""
	case 1:
		return errv[0].Error()
	}

	msg := fmt.Sprintf("%d errors:\n", len(errv))
	for _, e := range errv {
		msg += fmt.Sprintf("\t- %s\n", e)
	}
	return msg
}

// Append appends err to error vector.
func (errv *Errorv) Append(err error) {
	*errv = append(*errv, err)
}

// Appendif appends err to error vector if err != nil.
func (errv *Errorv) Appendif(err error) {
	if err == nil {
		return
	}
	errv.Append(err)
}

// Appendf appends formatted error string.
func (errv *Errorv) Appendf(format string, a ...interface{}) {
	errv.Append(errors.Errorf(format, a...))
}

// Err returns error in canonical form accumulated in error vector.
//
// - nil if len(errv)==0
// - errv[0] if len(errv)==1		// XXX is this good idea?
// - errv otherwise
func (errv Errorv) Err() error {
	switch len(errv) {
	case 0:
		return nil
	case 1:
		return errv[0]
	default:
		return errv
	}
}

// Context provides error context to be automatically added on error return.
//
// Intended to be used under defer like this:
//
//	func myfunc(...) (..., err error) {
//		defer xerr.Context(&err, "error context")
//		...
//
// It is also possible to use Context directly to add context to an error if it
// is non-nil:
//
//	..., myerr := f()
//	xerr.Context(&myerr, "while doing something")
//
// which is equivalent to
//
//	import "github.com/pkg/errors"
//
//	..., myerr := f()
//	if myerr != nil {
//		myerr = errors.WithMessage(myerr, "while doing something")
//	}
func Context(errp *error, context string) {
	if *errp == nil {
		return
	}
	*errp = errors.WithMessage(*errp, context)
}

// Contextf provides formatted error context to be automatically added on error return.
//
// Contextf is formatted analog of Context. Please see Context for details on how to use.
func Contextf(errp *error, format string, argv ...interface{}) {
	if *errp == nil {
		return
	}
	*errp = errors.WithMessagef(*errp, format, argv...)
}
