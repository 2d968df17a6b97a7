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

// Package lerepl implements the interactive Leesp prompt as a Bubble Tea
// program: a single-line textinput, styled with lipgloss, that feeds each
// submitted line to the Evaluator and echoes its printed result.
package lerepl

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"t73f.de/r/leesp"
	"t73f.de/r/leesp/leeval"
	"t73f.de/r/leesp/lereader"
)

const prompt = "leesp> "

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// model is the Bubble Tea model backing the REPL.
type model struct {
	env      *leesp.Environment
	input    textinput.Model
	logger   *slog.Logger
	history  []string
	histIdx  int
	quitting bool
}

// submittedMsg carries one evaluated line's printed result for the
// transcript, via tea.Println.
type submittedMsg struct{ line string }

// newModel builds the initial REPL model bound to env, the global
// environment builtins have already been installed into.
func newModel(env *leesp.Environment, logger *slog.Logger) model {
	ti := textinput.New()
	ti.Placeholder = ""
	ti.Prompt = promptStyle.Render(prompt)
	ti.Focus()

	return model{env: env, input: ti, logger: logger}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		case "up":
			return m.historyPrev(), nil
		case "down":
			return m.historyNext(), nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")
	m.histIdx = len(m.history) + 1

	if strings.TrimSpace(line) == "" {
		return m, nil
	}
	m.history = append(m.history, line)

	rendered := evalLine(m.env, line)
	echo := promptStyle.Render(prompt) + line
	return m, tea.Sequence(tea.Println(echo), tea.Println(rendered))
}

// evalLine reads, evaluates, and renders one line of input, styling an
// Error result distinctly from a normal one.
func evalLine(env *leesp.Environment, line string) string {
	v, err := lereader.Read(line)
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %s", err))
	}
	result := leeval.Eval(env, v)
	if leesp.IsError(result) {
		return errorStyle.Render(result.String())
	}
	return resultStyle.Render(result.String())
}

func (m model) historyPrev() model {
	if m.histIdx > 0 {
		m.histIdx--
	}
	if m.histIdx < len(m.history) {
		m.input.SetValue(m.history[m.histIdx])
	}
	return m
}

func (m model) historyNext() model {
	if m.histIdx < len(m.history) {
		m.histIdx++
	}
	if m.histIdx < len(m.history) {
		m.input.SetValue(m.history[m.histIdx])
	} else {
		m.input.SetValue("")
	}
	return m
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	return m.input.View() + "\n"
}
