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

import (
	"fmt"

	"t73f.de/r/leesp"
)

// defineForm is the shared shape of `def` and `=`: the first argument is a
// QExpr of Symbols (the names), the rest are the values to bind to them,
// positionally. bind chooses between global (def) and local (=) scope.
func defineForm(name string, env *leesp.Environment, args *leesp.SExpr, bind func(*leesp.Environment, leesp.Symbol, leesp.Object)) leesp.Object {
	if errObj, ok := wantMinArity(name, args, 1); !ok {
		return errObj
	}
	names, errObj, ok := wantQExpr(name, args, 0)
	if !ok {
		return errObj
	}
	for _, item := range names.Items() {
		if _, ok := leesp.GetSymbol(item); !ok {
			return leesp.MakeError(fmt.Sprintf(
				"Function '%s' cannot define non-symbol. Got %s, expected Symbol.",
				name, leesp.TypeName(item)))
		}
	}
	values := args.Length() - 1
	if names.Length() != values {
		return leesp.MakeError(fmt.Sprintf(
			"Function '%s' cannot define incorrect number of values to symbols. Received %d symbols but %d values",
			name, names.Length(), values))
	}
	for i, item := range names.Items() {
		sym, _ := leesp.GetSymbol(item)
		bind(env, sym, args.Nth(i+1))
	}
	return leesp.EmptySExpr()
}

func builtinDef(env *leesp.Environment, args *leesp.SExpr) leesp.Object {
	return defineForm("def", env, args, func(e *leesp.Environment, s leesp.Symbol, v leesp.Object) { e.Def(s, v) })
}

func builtinPut(env *leesp.Environment, args *leesp.SExpr) leesp.Object {
	return defineForm("=", env, args, func(e *leesp.Environment, s leesp.Symbol, v leesp.Object) { e.Put(s, v) })
}

// builtinLambda constructs a Lambda from two QExpr arguments: formals and
// body. Every formal must be a Symbol.
func builtinLambda(_ *leesp.Environment, args *leesp.SExpr) leesp.Object {
	if errObj, ok := wantArity(`\`, args, 2); !ok {
		return errObj
	}
	formals, errObj, ok := wantQExpr(`\`, args, 0)
	if !ok {
		return errObj
	}
	body, errObj, ok := wantQExpr(`\`, args, 1)
	if !ok {
		return errObj
	}
	for _, item := range formals.Items() {
		if _, ok := leesp.GetSymbol(item); !ok {
			return leesp.MakeError(fmt.Sprintf(
				`Function '\' cannot define non-symbol. Got %s, expected Symbol.`,
				leesp.TypeName(item)))
		}
	}
	return leesp.MakeLambda(formals, body)
}
