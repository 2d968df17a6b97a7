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

package leesp

import "io"

// Lambda is a user-defined function: a captured Environment plus a formals
// list and a body, both QExpr. Lambda is always used through a pointer so
// that the Caller can rewire its Env's parent link for the duration of a
// call without affecting any other holder of the same Lambda value.
type Lambda struct {
	Env     *Environment
	Formals QExpr
	Body    QExpr
}

// MakeLambda creates a Lambda with a fresh, parentless environment. The
// caller is responsible for validating that formals contains only Symbols
// and at most one '&' — the Caller protocol (not construction) is where
// spec.md requires that error to surface.
func MakeLambda(formals, body QExpr) *Lambda {
	return &Lambda{
		Env:     NewEnvironment(nil),
		Formals: formals,
		Body:    body,
	}
}

func (*Lambda) IsNil() bool  { return false }
func (*Lambda) IsAtom() bool { return true }

// IsEqual compares two Lambdas structurally: formals and body must match.
// The captured environment is never compared, per spec.md §4.6.
func (l *Lambda) IsEqual(other Object) bool {
	o, ok := other.(*Lambda)
	if !ok {
		return false
	}
	return l.Formals.IsEqual(o.Formals) && l.Body.IsEqual(o.Body)
}

func (l *Lambda) String() string {
	return "(\\ " + l.Formals.String() + " " + l.Body.String() + ")"
}

func (l *Lambda) Print(w io.Writer) (int, error) {
	length, err := io.WriteString(w, `(\ `)
	if err != nil {
		return length, err
	}
	n, err := l.Formals.Print(w)
	length += n
	if err != nil {
		return length, err
	}
	n, err = io.WriteString(w, " ")
	length += n
	if err != nil {
		return length, err
	}
	n, err = l.Body.Print(w)
	length += n
	if err != nil {
		return length, err
	}
	n, err = io.WriteString(w, ")")
	length += n
	return length, err
}

func (*Lambda) typeName() string { return "Function" }

// Copy returns a deep copy of the Lambda: a fresh environment holding
// copies of every binding, and copies of the formals/body sequences.
// Environment.Get relies on this to hand every caller its own Lambda, so
// that binding a formal in one call can never be observed by another
// holder of the same stored value — the Caller then binds formals
// directly into the copy it was given, and produces a curried Lambda for
// partial application the same way.
func (l *Lambda) Copy() Object {
	return &Lambda{
		Env:     l.Env.Copy(),
		Formals: l.Formals.Copy().(QExpr),
		Body:    l.Body.Copy().(QExpr),
	}
}

// GetLambda returns obj as a *Lambda, if possible.
func GetLambda(obj Object) (*Lambda, bool) {
	l, ok := obj.(*Lambda)
	return l, ok
}
