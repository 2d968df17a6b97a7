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

// numericFold implements the shared shape of +, -, *, /: require at least
// one Number argument, then fold left to right. single handles the
// single-argument case (e.g. unary negation for `-`); op combines an
// accumulator with the next operand, returning an Error to short-circuit
// (used by `/` for division by zero).
func numericFold(
	name string,
	args *leesp.SExpr,
	single func(leesp.Number) leesp.Number,
	op func(acc, next leesp.Number) (leesp.Number, leesp.Object),
) leesp.Object {
	if errObj, ok := wantMinArity(name, args, 1); !ok {
		return errObj
	}
	for i := 0; i < args.Length(); i++ {
		if _, errObj, ok := wantNumber(name, args, i); !ok {
			return errObj
		}
	}
	first, _ := leesp.GetNumber(args.Nth(0))
	if args.Length() == 1 {
		if single != nil {
			return single(first)
		}
		return first
	}
	acc := first
	for i := 1; i < args.Length(); i++ {
		next, _ := leesp.GetNumber(args.Nth(i))
		result, errObj := op(acc, next)
		if errObj != nil {
			return errObj
		}
		acc = result
	}
	return acc
}

func builtinAdd(_ *leesp.Environment, args *leesp.SExpr) leesp.Object {
	return numericFold("+", args, nil, func(acc, next leesp.Number) (leesp.Number, leesp.Object) {
		return acc + next, nil
	})
}

func builtinSub(_ *leesp.Environment, args *leesp.SExpr) leesp.Object {
	return numericFold("-", args, func(n leesp.Number) leesp.Number { return -n },
		func(acc, next leesp.Number) (leesp.Number, leesp.Object) {
			return acc - next, nil
		})
}

func builtinMul(_ *leesp.Environment, args *leesp.SExpr) leesp.Object {
	return numericFold("*", args, nil, func(acc, next leesp.Number) (leesp.Number, leesp.Object) {
		return acc * next, nil
	})
}

func builtinDiv(_ *leesp.Environment, args *leesp.SExpr) leesp.Object {
	return numericFold("/", args, nil, func(acc, next leesp.Number) (leesp.Number, leesp.Object) {
		if next == 0 {
			return 0, leesp.MakeError("Division by zero!")
		}
		return acc / next, nil
	})
}
