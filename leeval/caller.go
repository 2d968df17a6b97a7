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

package leeval

import (
	"fmt"

	"t73f.de/r/leesp"
)

// Call applies callee (a Builtin or *Lambda) to args, an SExpr of
// already-evaluated values, in the dynamic environment env.
func Call(env *leesp.Environment, callee leesp.Object, args *leesp.SExpr) leesp.Object {
	if b, ok := leesp.GetBuiltin(callee); ok {
		return b.Call(env, args)
	}
	l, ok := leesp.GetLambda(callee)
	if !ok {
		return leesp.MakeError(fmt.Sprintf(
			"S-Expression starts with incorrect type. Got %s, expected Function.",
			leesp.TypeName(callee)))
	}
	return callLambda(env, l, args)
}

func callLambda(env *leesp.Environment, l *leesp.Lambda, args *leesp.SExpr) leesp.Object {
	formals := l.Formals
	total := formals.Length()
	given := args.Length()

	for args.Length() > 0 {
		if formals.Length() == 0 {
			return leesp.MakeError(fmt.Sprintf(
				"Function passed too many arguments. Got %d, expected %d", given, total))
		}
		var sym leesp.Symbol
		sym, formals = popSymbol(formals)
		if sym == leesp.AmpersandSymbol {
			if formals.Length() != 1 {
				return leesp.MakeError(
					"Function format invalid. Symbol '&' not followed by single symbol")
			}
			var rest leesp.Symbol
			rest, formals = popSymbol(formals)
			l.Env.Put(rest, args.ToQExpr())
			args = leesp.EmptySExpr()
			break
		}
		value := args.PopFirst()
		l.Env.Put(sym, value)
	}

	if formals.Length() > 0 && formals.Nth(0).IsEqual(leesp.AmpersandSymbol) {
		if formals.Length() != 2 {
			return leesp.MakeError(
				"Function format invalid. Symbol '&' not followed by single symbol")
		}
		var rest leesp.Symbol
		_, formals = popSymbol(formals)
		rest, formals = popSymbol(formals)
		l.Env.Put(rest, leesp.EmptyQExpr())
	}

	if formals.Length() == 0 {
		l.Env.SetParent(env)
		body := l.Body.Copy().(leesp.QExpr)
		return Eval(l.Env, body.ToSExpr())
	}

	curried := l.Copy().(*leesp.Lambda)
	curried.Formals = formals
	return curried
}

func popSymbol(q leesp.QExpr) (leesp.Symbol, leesp.QExpr) {
	obj, rest := q.PopFirst()
	sym, _ := leesp.GetSymbol(obj)
	return sym, rest
}
