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

// Package leeval implements the Evaluator and Caller: s-expression
// reduction and function application, including the lambda binding loop
// that supports partial application and variadic formals.
package leeval

import (
	"fmt"

	"t73f.de/r/leesp"
)

// Eval reduces v in env. Symbols resolve to their bound value; SExprs are
// evaluated as calls; every other Object (including QExpr) is returned
// unchanged.
func Eval(env *leesp.Environment, v leesp.Object) leesp.Object {
	switch val := v.(type) {
	case leesp.Symbol:
		obj, ok := env.Get(val)
		if !ok {
			return leesp.MakeError(fmt.Sprintf("Unbound symbol '%s'", string(val)))
		}
		return obj
	case *leesp.SExpr:
		return evalSExpr(env, val)
	default:
		return v
	}
}

func evalSExpr(env *leesp.Environment, s *leesp.SExpr) leesp.Object {
	n := s.Length()
	results := leesp.EmptySExpr()
	for i := 0; i < n; i++ {
		result := Eval(env, s.Nth(i))
		if leesp.IsError(result) {
			return result
		}
		results.Append(result)
	}

	switch results.Length() {
	case 0:
		return results
	case 1:
		return results.PopFirst()
	}

	callee := results.PopFirst()
	if !leesp.IsFunction(callee) {
		return leesp.MakeError(fmt.Sprintf(
			"S-Expression starts with incorrect type. Got %s, expected Function.",
			leesp.TypeName(callee)))
	}
	return Call(env, callee, results)
}
