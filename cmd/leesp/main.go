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

// Command leesp is the Leesp driver: with no file arguments it starts the
// interactive REPL, and with one or more file arguments it loads each in
// turn and exits.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"t73f.de/r/leesp"
	"t73f.de/r/leesp/leeval"
	"t73f.de/r/leesp/lebuiltins"
	"t73f.de/r/leesp/lereader"
	"t73f.de/r/leesp/lerepl"
)

// cli is the command-line surface: zero or more source files to load. With
// no files, the interactive REPL starts instead.
type cli struct {
	Files []string `arg:"" optional:"" type:"existingfile" help:"Leesp source files to load; omit to start the REPL."`

	LogLevel string `help:"Minimum log level (debug, info, warn, error)." default:"warn" enum:"debug,info,warn,error"`
}

const preludeEnvVar = "LEESP_PRELUDE_DIR"
const preludeFile = "prelude.leesp"

func main() {
	var c cli
	kong.Parse(&c,
		kong.Name("leesp"),
		kong.Description(fmt.Sprintf("Leesp version %s", leesp.Version)),
		kong.UsageOnError(),
	)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(c.LogLevel),
	}))

	root := leesp.NewEnvironment(nil)
	lib := lebuiltins.New(lereader.ReadAll, os.Stdout)
	lib.BindAll(root)

	loadPrelude(root, logger)

	if len(c.Files) > 0 {
		for _, path := range c.Files {
			loadFile(root, path, logger)
		}
		return
	}

	fmt.Printf("Leesp version %s\n", leesp.Version)
	fmt.Println("Press ctrl+c to exit")

	if err := lerepl.Run(root, logger); err != nil {
		logger.Error("repl exited with error", "error", err)
		os.Exit(1)
	}
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// loadPrelude loads $LEESP_PRELUDE_DIR/prelude.leesp into root if the
// environment variable is set. A missing prelude is logged, not fatal.
func loadPrelude(root *leesp.Environment, logger *slog.Logger) {
	dir := os.Getenv(preludeEnvVar)
	if dir == "" {
		return
	}
	path := dir + string(os.PathSeparator) + preludeFile
	if _, err := os.Stat(path); err != nil {
		logger.Warn("prelude not found", "path", path, "error", err)
		return
	}
	loadFile(root, path, logger)
}

func loadFile(root *leesp.Environment, path string, logger *slog.Logger) {
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Error("could not read file", "path", path, "error", err)
		return
	}
	exprs, err := lereader.ReadAll(string(content))
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		return
	}
	for _, expr := range exprs {
		result := leeval.Eval(root, expr)
		if leesp.IsError(result) {
			fmt.Println(result.String())
		}
	}
}
