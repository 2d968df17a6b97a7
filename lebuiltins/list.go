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

// builtinList retypes its argument list from SExpr to QExpr.
func builtinList(_ *leesp.Environment, args *leesp.SExpr) leesp.Object {
	return args.ToQExpr()
}

// builtinHead returns a QExpr containing only the first element of its
// sole QExpr argument.
func builtinHead(_ *leesp.Environment, args *leesp.SExpr) leesp.Object {
	if errObj, ok := wantArity("head", args, 1); !ok {
		return errObj
	}
	q, errObj, ok := wantQExpr("head", args, 0)
	if !ok {
		return errObj
	}
	if errObj, ok := wantNonEmpty("head", q, 0); !ok {
		return errObj
	}
	first, _ := q.PopFirst()
	return leesp.MakeQExpr(first)
}

// builtinTail returns its sole QExpr argument with the first element
// removed.
func builtinTail(_ *leesp.Environment, args *leesp.SExpr) leesp.Object {
	if errObj, ok := wantArity("tail", args, 1); !ok {
		return errObj
	}
	q, errObj, ok := wantQExpr("tail", args, 0)
	if !ok {
		return errObj
	}
	if errObj, ok := wantNonEmpty("tail", q, 0); !ok {
		return errObj
	}
	_, rest := q.PopFirst()
	return rest
}

// builtinJoin concatenates one or more QExpr arguments in order.
func builtinJoin(_ *leesp.Environment, args *leesp.SExpr) leesp.Object {
	if errObj, ok := wantMinArity("join", args, 1); !ok {
		return errObj
	}
	joined := leesp.EmptyQExpr()
	for i := 0; i < args.Length(); i++ {
		q, errObj, ok := wantQExpr("join", args, i)
		if !ok {
			return errObj
		}
		for _, item := range q.Items() {
			joined = joined.Append(item)
		}
	}
	return joined
}

// builtinEval retypes its sole QExpr argument to SExpr and evaluates it.
func builtinEval(env *leesp.Environment, args *leesp.SExpr) leesp.Object {
	if errObj, ok := wantArity("eval", args, 1); !ok {
		return errObj
	}
	q, errObj, ok := wantQExpr("eval", args, 0)
	if !ok {
		return errObj
	}
	return leeval.Eval(env, q.ToSExpr())
}
