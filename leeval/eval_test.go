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
	"testing"

	"t73f.de/r/leesp"
)

func add(_ *leesp.Environment, args *leesp.SExpr) leesp.Object {
	var total int64
	for _, item := range args.Items() {
		n, ok := leesp.GetNumber(item)
		if !ok {
			return leesp.MakeError("not a number")
		}
		total += int64(n)
	}
	return leesp.MakeNumber(total)
}

func sub(_ *leesp.Environment, args *leesp.SExpr) leesp.Object {
	items := args.Items()
	a, _ := leesp.GetNumber(items[0])
	b, _ := leesp.GetNumber(items[1])
	return leesp.MakeNumber(int64(a) - int64(b))
}

func eq(_ *leesp.Environment, args *leesp.SExpr) leesp.Object {
	items := args.Items()
	if items[0].IsEqual(items[1]) {
		return leesp.MakeNumber(1)
	}
	return leesp.MakeNumber(0)
}

func ifBuiltin(env *leesp.Environment, args *leesp.SExpr) leesp.Object {
	items := args.Items()
	cond, _ := leesp.GetNumber(items[0])
	branch, _ := leesp.GetQExpr(items[1])
	if cond == 0 {
		branch, _ = leesp.GetQExpr(items[2])
	}
	return Eval(env, branch.ToSExpr())
}

func newTestEnv() *leesp.Environment {
	env := leesp.NewEnvironment(nil)
	env.Def(leesp.MakeSymbol("+"), leesp.MakeBuiltin("+", add))
	env.Def(leesp.MakeSymbol("-"), leesp.MakeBuiltin("-", sub))
	env.Def(leesp.MakeSymbol("=="), leesp.MakeBuiltin("==", eq))
	env.Def(leesp.MakeSymbol("if"), leesp.MakeBuiltin("if", ifBuiltin))
	return env
}

func TestEvalSymbolLookup(t *testing.T) {
	env := newTestEnv()
	env.Def(leesp.MakeSymbol("x"), leesp.MakeNumber(5))
	got := Eval(env, leesp.MakeSymbol("x"))
	if !got.IsEqual(leesp.MakeNumber(5)) {
		t.Errorf("Eval(x) = %v, want 5", got)
	}
}

func TestEvalUnboundSymbol(t *testing.T) {
	env := newTestEnv()
	got := Eval(env, leesp.MakeSymbol("foo"))
	e, ok := leesp.GetError(got)
	if !ok {
		t.Fatalf("expected Error, got %v", got)
	}
	if got, want := e.String(), "Error: Unbound symbol 'foo'"; got != want {
		t.Errorf("Error = %q, want %q", got, want)
	}
}

func TestEvalEmptySExprIsNoop(t *testing.T) {
	env := newTestEnv()
	got := Eval(env, leesp.EmptySExpr())
	if !got.IsEqual(leesp.EmptySExpr()) {
		t.Errorf("Eval(()) = %v, want ()", got)
	}
}

func TestEvalSingleElementUnwraps(t *testing.T) {
	env := newTestEnv()
	got := Eval(env, leesp.MakeSExpr(leesp.MakeNumber(9)))
	if !got.IsEqual(leesp.MakeNumber(9)) {
		t.Errorf("Eval((9)) = %v, want 9", got)
	}
}

func TestEvalCallsBuiltin(t *testing.T) {
	env := newTestEnv()
	got := Eval(env, leesp.MakeSExpr(leesp.MakeSymbol("+"), leesp.MakeNumber(1), leesp.MakeNumber(2), leesp.MakeNumber(3)))
	if !got.IsEqual(leesp.MakeNumber(6)) {
		t.Errorf("Eval(+ 1 2 3) = %v, want 6", got)
	}
}

func TestEvalNonFunctionCalleeErrors(t *testing.T) {
	env := newTestEnv()
	got := Eval(env, leesp.MakeSExpr(leesp.MakeNumber(1), leesp.MakeNumber(2)))
	e, ok := leesp.GetError(got)
	if !ok {
		t.Fatalf("expected Error, got %v", got)
	}
	want := "Error: S-Expression starts with incorrect type. Got Number, expected Function."
	if got := e.String(); got != want {
		t.Errorf("Error = %q, want %q", got, want)
	}
}

func TestEvalErrorShortCircuits(t *testing.T) {
	env := newTestEnv()
	got := Eval(env, leesp.MakeSExpr(leesp.MakeSymbol("+"), leesp.MakeSymbol("undefined"), leesp.MakeNumber(2)))
	if !leesp.IsError(got) {
		t.Errorf("expected error to propagate, got %v", got)
	}
}

func TestEvalQExprUnchanged(t *testing.T) {
	env := newTestEnv()
	q := leesp.MakeQExpr(leesp.MakeNumber(1), leesp.MakeSymbol("undefined"))
	got := Eval(env, q)
	if !got.IsEqual(q) {
		t.Error("QExpr must be returned unchanged, never evaluated")
	}
}

func TestLambdaFullApplication(t *testing.T) {
	env := newTestEnv()
	l := leesp.MakeLambda(
		leesp.MakeQExpr(leesp.MakeSymbol("x"), leesp.MakeSymbol("y")),
		leesp.MakeQExpr(leesp.MakeSymbol("+"), leesp.MakeSymbol("x"), leesp.MakeSymbol("y")),
	)
	got := Call(env, l, leesp.MakeSExpr(leesp.MakeNumber(3), leesp.MakeNumber(4)))
	if !got.IsEqual(leesp.MakeNumber(7)) {
		t.Errorf("Call = %v, want 7", got)
	}
}

func TestLambdaPartialApplicationLaw(t *testing.T) {
	env := newTestEnv()
	makeLambda := func() *leesp.Lambda {
		return leesp.MakeLambda(
			leesp.MakeQExpr(leesp.MakeSymbol("x"), leesp.MakeSymbol("y")),
			leesp.MakeQExpr(leesp.MakeSymbol("+"), leesp.MakeSymbol("x"), leesp.MakeSymbol("y")),
		)
	}

	curried := Call(env, makeLambda(), leesp.MakeSExpr(leesp.MakeNumber(1)))
	l, ok := leesp.GetLambda(curried)
	if !ok {
		t.Fatalf("partial application must yield a Lambda, got %v", curried)
	}
	got := Call(env, l, leesp.MakeSExpr(leesp.MakeNumber(2)))

	direct := Call(env, makeLambda(), leesp.MakeSExpr(leesp.MakeNumber(1), leesp.MakeNumber(2)))

	if !got.IsEqual(direct) {
		t.Errorf("(f 1) 2 = %v, want same as (f 1 2) = %v", got, direct)
	}
}

func TestLambdaVariadicEmptiness(t *testing.T) {
	env := newTestEnv()
	l := leesp.MakeLambda(
		leesp.MakeQExpr(leesp.AmpersandSymbol, leesp.MakeSymbol("xs")),
		leesp.MakeQExpr(leesp.MakeSymbol("xs")),
	)
	got := Call(env, l, leesp.EmptySExpr())
	if !got.IsEqual(leesp.EmptyQExpr()) {
		t.Errorf("variadic call with no args: got %v, want {}", got)
	}
}

func TestLambdaVariadicGathersRemaining(t *testing.T) {
	env := newTestEnv()
	l := leesp.MakeLambda(
		leesp.MakeQExpr(leesp.MakeSymbol("x"), leesp.AmpersandSymbol, leesp.MakeSymbol("xs")),
		leesp.MakeQExpr(leesp.MakeSymbol("xs")),
	)
	got := Call(env, l, leesp.MakeSExpr(leesp.MakeNumber(1), leesp.MakeNumber(2), leesp.MakeNumber(3)))
	if got, want := got.String(), "{2 3}"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestLambdaRecursionRebindsPerCall reproduces
// def {f} (\ {n} { if (== n 0) {0} {+ (f (- n 1)) n} }); f 2
// A lambda fetched from the environment must never be the environment's
// own stored value: each nested self-call binds its own 'n' into its own
// copy, so the outer call's 'n' must still read 2 once the recursion
// unwinds, giving 0+1+2 = 3. Before Environment.Get copied lambdas, every
// recursive call bound 'n' into the one shared Env, so the unwound
// additions all saw the innermost 'n' (0), yielding 0 instead of 3.
func TestLambdaRecursionRebindsPerCall(t *testing.T) {
	env := newTestEnv()

	recurse := leesp.MakeSExpr(leesp.MakeSymbol("f"),
		leesp.MakeSExpr(leesp.MakeSymbol("-"), leesp.MakeSymbol("n"), leesp.MakeNumber(1)))
	ifCall := leesp.MakeSExpr(leesp.MakeSymbol("if"),
		leesp.MakeSExpr(leesp.MakeSymbol("=="), leesp.MakeSymbol("n"), leesp.MakeNumber(0)),
		leesp.MakeQExpr(leesp.MakeNumber(0)),
		leesp.MakeQExpr(leesp.MakeSExpr(leesp.MakeSymbol("+"), recurse, leesp.MakeSymbol("n"))))
	f := leesp.MakeLambda(leesp.MakeQExpr(leesp.MakeSymbol("n")), leesp.MakeQExpr(ifCall))
	env.Def(leesp.MakeSymbol("f"), f)

	callee, ok := env.Get(leesp.MakeSymbol("f"))
	if !ok {
		t.Fatal("f must be bound")
	}
	got := Call(env, callee, leesp.MakeSExpr(leesp.MakeNumber(2)))
	if want := leesp.MakeNumber(3); !got.IsEqual(want) {
		t.Errorf("f 2 = %v, want %v", got, want)
	}
}

func TestLambdaTooManyArguments(t *testing.T) {
	env := newTestEnv()
	l := leesp.MakeLambda(leesp.MakeQExpr(leesp.MakeSymbol("x")), leesp.MakeQExpr(leesp.MakeSymbol("x")))
	got := Call(env, l, leesp.MakeSExpr(leesp.MakeNumber(1), leesp.MakeNumber(2)))
	e, ok := leesp.GetError(got)
	if !ok {
		t.Fatalf("expected Error, got %v", got)
	}
	want := "Error: Function passed too many arguments. Got 2, expected 1"
	if got := e.String(); got != want {
		t.Errorf("Error = %q, want %q", got, want)
	}
}
