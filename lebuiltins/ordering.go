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

package lebuiltins

import "t73f.de/r/leesp"

func boolNumber(b bool) leesp.Number {
	if b {
		return leesp.MakeNumber(1)
	}
	return leesp.MakeNumber(0)
}

func ordering(name string, args *leesp.SExpr, cmp func(a, b leesp.Number) bool) leesp.Object {
	if errObj, ok := wantArity(name, args, 2); !ok {
		return errObj
	}
	a, errObj, ok := wantNumber(name, args, 0)
	if !ok {
		return errObj
	}
	b, errObj, ok := wantNumber(name, args, 1)
	if !ok {
		return errObj
	}
	return boolNumber(cmp(a, b))
}

func builtinLess(_ *leesp.Environment, args *leesp.SExpr) leesp.Object {
	return ordering("<", args, func(a, b leesp.Number) bool { return a < b })
}

func builtinGreater(_ *leesp.Environment, args *leesp.SExpr) leesp.Object {
	return ordering(">", args, func(a, b leesp.Number) bool { return a > b })
}

func builtinLessEqual(_ *leesp.Environment, args *leesp.SExpr) leesp.Object {
	return ordering("<=", args, func(a, b leesp.Number) bool { return a <= b })
}

func builtinGreaterEqual(_ *leesp.Environment, args *leesp.SExpr) leesp.Object {
	return ordering(">=", args, func(a, b leesp.Number) bool { return a >= b })
}

func builtinEqual(_ *leesp.Environment, args *leesp.SExpr) leesp.Object {
	if errObj, ok := wantArity("==", args, 2); !ok {
		return errObj
	}
	return boolNumber(args.Nth(0).IsEqual(args.Nth(1)))
}

func builtinNotEqual(_ *leesp.Environment, args *leesp.SExpr) leesp.Object {
	if errObj, ok := wantArity("!=", args, 2); !ok {
		return errObj
	}
	return boolNumber(!args.Nth(0).IsEqual(args.Nth(1)))
}
