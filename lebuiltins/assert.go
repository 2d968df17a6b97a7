//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of leesp.
//
// leesp is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2023-present Detlef Stern
//-----------------------------------------------------------------------------

// Package lebuiltins implements the native primitive library: arithmetic,
// list/quoting operations, comparisons, definition forms, control flow,
// and I/O, plus BindAll to install them into a root Environment.
package lebuiltins

import (
	"fmt"

	"t73f.de/r/leesp"
)

// wantArity reports an Error unless args holds exactly n items.
func wantArity(name string, args *leesp.SExpr, n int) (leesp.Object, bool) {
	if args.Length() != n {
		return leesp.MakeError(fmt.Sprintf(
			"Function '%s' passed incorrect number of arguments. Got %d, expected %d.",
			name, args.Length(), n)), false
	}
	return nil, true
}

// wantMinArity reports an Error unless args holds at least n items.
func wantMinArity(name string, args *leesp.SExpr, n int) (leesp.Object, bool) {
	if args.Length() < n {
		return leesp.MakeError(fmt.Sprintf(
			"Function '%s' passed incorrect number of arguments. Got %d, expected at least %d.",
			name, args.Length(), n)), false
	}
	return nil, true
}

// wantNonEmpty reports an Error unless q is non-empty.
func wantNonEmpty(name string, q leesp.QExpr, index int) (leesp.Object, bool) {
	if q.Length() == 0 {
		return leesp.MakeError(fmt.Sprintf(
			"Function '%s' passed {} for argument %d.", name, index)), false
	}
	return nil, true
}

// wantQExpr reports an Error unless args.Nth(index) is a QExpr, returning
// it on success.
func wantQExpr(name string, args *leesp.SExpr, index int) (leesp.QExpr, leesp.Object, bool) {
	q, ok := leesp.GetQExpr(args.Nth(index))
	if !ok {
		return leesp.QExpr{}, wrongType(name, index, args.Nth(index), "Q-Expression"), false
	}
	return q, nil, true
}

// wantNumber reports an Error unless args.Nth(index) is a Number, returning
// it on success.
func wantNumber(name string, args *leesp.SExpr, index int) (leesp.Number, leesp.Object, bool) {
	n, ok := leesp.GetNumber(args.Nth(index))
	if !ok {
		return 0, wrongType(name, index, args.Nth(index), "Number"), false
	}
	return n, nil, true
}

// wantString reports an Error unless args.Nth(index) is a String, returning
// it on success.
func wantString(name string, args *leesp.SExpr, index int) (leesp.String, leesp.Object, bool) {
	s, ok := leesp.GetString(args.Nth(index))
	if !ok {
		return leesp.String{}, wrongType(name, index, args.Nth(index), "String"), false
	}
	return s, nil, true
}

func wrongType(name string, index int, got leesp.Object, want string) leesp.Object {
	return leesp.MakeError(fmt.Sprintf(
		"Function '%s' passed incorrect type for argument %d. Got %s, expected %s.",
		name, index, leesp.TypeName(got), want))
}
