// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stest

import (
	"errors"
	"fmt"
)

// Mode tells Main what to do with the registered tests.
type Mode int

const (
	// ModeRun executes the tests (default).
	ModeRun Mode = iota
	// ModeDisplayOnly lists fixtures and tests without running them.
	ModeDisplayOnly
	// ModeHelp does nothing; the help text has already been printed.
	ModeHelp
	// ModeAbort indicates a broken command line; nothing is run.
	ModeAbort
)

func (m Mode) String() string {
	switch m {
	case ModeRun:
		return "run"
	case ModeDisplayOnly:
		return "display-only"
	case ModeHelp:
		return "help"
	case ModeAbort:
		return "abort"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// DefaultWidth is the column width of headers and footers.
const DefaultWidth = 70

// Exit codes returned by Main and Runner.Run.  Any positive value is
// the number of failed assertions.
const (
	ExitOK    = 0
	ExitAbort = -1
)

// Config is the configuration of a test run.  It is built once from
// the command line by ParseArgs and passed by value thereafter.
type Config struct {
	Mode Mode

	// Filter holds the fixture (-f) and test (-t) prefixes.
	Filter Filter

	Verbose         bool
	MachineReadable bool
	VSStyle         bool

	// Marker is prepended to each machine readable record (-k).
	Marker string

	// Color is the cached decision whether interactive output is
	// colored; see CanColor.
	Color bool

	// Width of headers and footers; DefaultWidth if zero.
	Width int

	// AbortOnFailure stops the current test at its first failed
	// assertion.  Following tests still run.
	AbortOnFailure bool

	// Err is set if parsing the command line failed.
	Err error
}

// DisplayOnly reports if tests are listed rather than run.
func (c Config) DisplayOnly() bool { return c.Mode == ModeDisplayOnly }

// Framed reports if decorative headers and footers are printed.
func (c Config) Framed() bool {
	return c.Mode != ModeDisplayOnly && !c.MachineReadable
}

func (c Config) width() int {
	if c.Width <= 0 {
		return DefaultWidth
	}
	return c.Width
}

var (
	// ErrMissingValue is reported for a value option which isn't
	// followed by a value or whose value looks like an option.
	ErrMissingValue = errors.New("option expects to be followed by a value")

	// ErrUnsupportedOption is reported for an unknown token.
	ErrUnsupportedOption = errors.New("option is not supported")
)

// ConfigError describes a broken command line.
type ConfigError struct {
	Option string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("stest: %s: %v", e.Option, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
