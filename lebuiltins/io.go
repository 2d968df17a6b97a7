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
	"io"
	"os"

	"t73f.de/r/leesp"
	"t73f.de/r/leesp/leeval"
)

// ParseFunc parses Leesp source text into its top-level expressions. It is
// injected into the Library rather than reached for as process-wide state,
// so that `load` always parses with exactly the grammar the host driver
// uses.
type ParseFunc func(src string) ([]leesp.Object, error)

// Library holds the capabilities the I/O builtins need: a parser for
// `load` and an output sink for `print`.
type Library struct {
	parse  ParseFunc
	output io.Writer
}

// New creates a Library. out is typically os.Stdout; parse is typically
// lereader.ReadAll.
func New(parse ParseFunc, out io.Writer) *Library {
	return &Library{parse: parse, output: out}
}

// builtinLoad parses the file at args[0] (a String path), evaluates each
// top-level expression in env, and prints any that evaluate to an Error.
func (lib *Library) builtinLoad(env *leesp.Environment, args *leesp.SExpr) leesp.Object {
	if errObj, ok := wantArity("load", args, 1); !ok {
		return errObj
	}
	path, errObj, ok := wantString("load", args, 0)
	if !ok {
		return errObj
	}
	content, err := os.ReadFile(path.Value())
	if err != nil {
		return leesp.MakeError(fmt.Sprintf("Could not load library %s", path.Value()))
	}
	exprs, err := lib.parse(string(content))
	if err != nil {
		return leesp.MakeError(fmt.Sprintf("Could not load library %s", err))
	}
	for _, expr := range exprs {
		result := leeval.Eval(env, expr)
		if leesp.IsError(result) {
			fmt.Fprintln(lib.output, result.String())
		}
	}
	return leesp.EmptySExpr()
}

// builtinPrint writes each argument separated by a single space, followed
// by a newline, and returns an empty SExpr.
func (lib *Library) builtinPrint(_ *leesp.Environment, args *leesp.SExpr) leesp.Object {
	for i, item := range args.Items() {
		if i > 0 {
			fmt.Fprint(lib.output, " ")
		}
		_, _ = item.Print(lib.output)
	}
	fmt.Fprintln(lib.output)
	return leesp.EmptySExpr()
}

// builtinError returns an Error whose message is the sole String argument,
// taken literally — never interpreted as a format string.
func builtinError(_ *leesp.Environment, args *leesp.SExpr) leesp.Object {
	if errObj, ok := wantArity("error", args, 1); !ok {
		return errObj
	}
	s, errObj, ok := wantString("error", args, 0)
	if !ok {
		return errObj
	}
	return leesp.MakeError(s.Value())
}
