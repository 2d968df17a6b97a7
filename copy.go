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

// copier is implemented by Objects whose value is shared mutable state
// (sequences, lambdas) and therefore must be deep-copied whenever they are
// stored into an Environment or into another sequence. Objects that are
// immutable by construction — Number, Symbol, String, Error, Builtin — do
// not need it: copyObject passes them through unchanged.
type copier interface {
	Copy() Object
}

// copyObject returns an independent copy of obj suitable for storing into
// an Environment binding or as an element of another sequence. Immutable
// Objects are returned as-is.
func copyObject(obj Object) Object {
	if obj == nil {
		return nil
	}
	if c, ok := obj.(copier); ok {
		return c.Copy()
	}
	return obj
}
