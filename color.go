// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stest

import (
	"io"
	"runtime"

	"golang.org/x/term"
)

// ANSI escape sequences of colored interactive output.
const (
	green = "\033[0;32m"
	red   = "\033[0;31m"
	reset = "\033[0m"
)

// fder is implemented by *os.File.
type fder interface{ Fd() uintptr }

// CanColor reports if output written to given writer may be colored,
// i.e. the platform isn't windows and w is an interactive terminal.
func CanColor(w io.Writer) bool {
	if runtime.GOOS == "windows" {
		return false
	}
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func colorize(s, color string, enabled bool) string {
	if !enabled {
		return s
	}
	return color + s + reset
}
