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
	"t73f.de/r/leesp"
	"t73f.de/r/leesp/leeval"
)

// builtinIf evaluates either the then-branch or the else-branch depending
// on the truthiness of a Number condition.
func builtinIf(env *leesp.Environment, args *leesp.SExpr) leesp.Object {
	if errObj, ok := wantArity("if", args, 3); !ok {
		return errObj
	}
	cond, errObj, ok := wantNumber("if", args, 0)
	if !ok {
		return errObj
	}
	thenBranch, errObj, ok := wantQExpr("if", args, 1)
	if !ok {
		return errObj
	}
	elseBranch, errObj, ok := wantQExpr("if", args, 2)
	if !ok {
		return errObj
	}
	if cond != 0 {
		return leeval.Eval(env, thenBranch.ToSExpr())
	}
	return leeval.Eval(env, elseBranch.ToSExpr())
}
