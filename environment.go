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

// Environment is a lexical scope: a Symbol-to-Object binding table with an
// optional parent. Lookup walks outward from the innermost scope to the
// root. There is no locking here — concurrent evaluation is out of scope,
// so a single goroutine owns an Environment chain at a time.
type Environment struct {
	parent *Environment
	vars   map[Symbol]Object
}

// NewEnvironment creates an Environment with the given parent, which may be
// nil for a root (global) scope.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, vars: make(map[Symbol]Object)}
}

// Root walks up the parent chain and returns the outermost Environment.
func (e *Environment) Root() *Environment {
	cur := e
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Get looks up sym, searching outward through enclosing scopes, and
// returns a copy of the stored Value so that the caller can freely mutate
// it (e.g. rewire a Lambda's captured environment during a call) without
// corrupting the binding.
func (e *Environment) Get(sym Symbol) (Object, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if obj, ok := cur.vars[sym]; ok {
			return copyObject(obj), true
		}
	}
	return nil, false
}

// Put binds sym to obj in this Environment only, shadowing any binding of
// the same name in an enclosing scope. This is what `=` and lambda-call
// argument binding use. The value is deep-copied before storage.
func (e *Environment) Put(sym Symbol, obj Object) {
	e.vars[sym] = copyObject(obj)
}

// Def binds sym to obj in the root (global) Environment of this chain. This
// is what the `def` builtin uses.
func (e *Environment) Def(sym Symbol, obj Object) {
	e.Root().Put(sym, obj)
}

// SetParent rewires this Environment's parent link. The Caller uses this to
// point a fully-applied Lambda's captured environment at the dynamic
// (calling) environment for the duration of evaluating its body.
func (e *Environment) SetParent(parent *Environment) { e.parent = parent }

// Copy returns a deep copy of this single Environment frame: a fresh
// binding table holding copies of every value, sharing the same parent
// pointer. Used when a Lambda is copied for partial application or
// currying.
func (e *Environment) Copy() *Environment {
	cp := &Environment{parent: e.parent, vars: make(map[Symbol]Object, len(e.vars))}
	for sym, obj := range e.vars {
		cp.vars[sym] = copyObject(obj)
	}
	return cp
}

// Names returns the symbols bound directly in this Environment, excluding
// any enclosing scope. Order is unspecified; builtins that need a stable
// listing (e.g. for diagnostics) must sort it themselves.
func (e *Environment) Names() []Symbol {
	names := make([]Symbol, 0, len(e.vars))
	for sym := range e.vars {
		names = append(names, sym)
	}
	return names
}
