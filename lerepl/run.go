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

package lerepl

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"t73f.de/r/leesp"
)

// Run starts the Bubble Tea REPL program bound to env, the global
// environment builtins have already been installed into. It blocks until
// the user exits (ctrl+c / ctrl+d).
func Run(env *leesp.Environment, logger *slog.Logger) error {
	logger.Debug("repl start")
	p := tea.NewProgram(newModel(env, logger))
	_, err := p.Run()
	logger.Debug("repl exit", "error", err)
	return err
}
