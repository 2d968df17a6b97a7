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

package lereader

import (
	"strconv"

	"t73f.de/r/leesp"
)

// Read converts source text into a single top-level leesp.Object: an SExpr
// whose children are the program's top-level expressions. It performs no
// evaluation and no semantic validation beyond numeric range, per the
// reader's contract.
func Read(src string) (leesp.Object, error) {
	root, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return readNode(root), nil
}

// ReadAll is like Read but returns the top-level expressions individually,
// which is what the `load` builtin and the file driver need: each
// top-level form is evaluated (and, on error, reported) independently.
func ReadAll(src string) ([]leesp.Object, error) {
	root, err := Parse(src)
	if err != nil {
		return nil, err
	}
	exprs := make([]leesp.Object, 0, len(root.Children))
	for _, child := range root.Children {
		exprs = append(exprs, readNode(child))
	}
	return exprs, nil
}

func readNode(n *Node) leesp.Object {
	switch n.Tag {
	case tagNumber:
		return readNumber(n)
	case tagSymbol:
		return leesp.MakeSymbol(n.Text)
	case tagString:
		return leesp.MakeString(n.Text)
	case tagSExpr, tagProgram:
		sexpr := leesp.EmptySExpr()
		for _, child := range n.Children {
			sexpr.Append(readNode(child))
		}
		return sexpr
	case tagQExpr:
		qexpr := leesp.EmptyQExpr()
		for _, child := range n.Children {
			qexpr = qexpr.Append(readNode(child))
		}
		return qexpr
	default:
		return leesp.MakeError("invalid parse node")
	}
}

func readNumber(n *Node) leesp.Object {
	v, err := strconv.ParseInt(n.Text, 10, 64)
	if err != nil {
		return leesp.MakeError("invalid number")
	}
	return leesp.MakeNumber(v)
}
