// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stest

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"
)

// Help is the usage screen printed for -h, --help and unknown options.
const Help = "Usage: [-t <testname>] [-f <fixturename>] [-d] [-h | --help] [-v] " +
	"[-vs] [-m] [-k <marker>]\r\n" +
	"Flags:\r\n" +
	"\thelp:\twill display this help\r\n" +
	"\t-t:\twill only run tests that match <testname>\r\n" +
	"\t-f:\twill only run fixtures that match <fixturename>\r\n" +
	"\t-d:\twill just display test names and fixtures without\r\n" +
	"\t\trunning the test\r\n" +
	"\t-v:\twill print a more verbose version of the test run\r\n" +
	"\t-vs:\twill print failures as <file> (<line>)\t\t<test>,<message>\r\n" +
	"\t   \tfor IDE problem matchers\r\n" +
	"\t-m:\twill print a machine readable format of the test run, ie :- \r\n" +
	"\t   \t<textfixture>,<testname>,<linenumber>,<testresult><EOL>\r\n" +
	"\t-k:\twill prepend <marker> before machine readable output \r\n" +
	"\t   \t<marker> cannot start with a '-'\r\n"

const (
	missingValueErr = "Error: The %s option expects to be followed by a value\r\n"
	unsupportedErr  = "Error: %s option is not supported. Here is the help menu:\n"
)

// valueOption is a command line option which consumes the following
// token.
type valueOption struct {
	name string
	set  func(*Config, string)
}

var valueOptions = []valueOption{
	{"-t", func(c *Config, v string) { c.Filter.Test = v }},
	{"-f", func(c *Config, v string) { c.Filter.Fixture = v }},
	{"-k", func(c *Config, v string) { c.Marker = v }},
}

// isOption matches given token case-insensitive against given names.
func isOption(token string, names ...string) bool {
	return slices.ContainsFunc(names, func(n string) bool {
		return strings.EqualFold(n, token)
	})
}

// hasValueAfter reports if the token following the i-th token exists
// and doesn't look like an option.
func hasValueAfter(args []string, i int) bool {
	if i+1 >= len(args) {
		return false
	}
	return !strings.HasPrefix(args[i+1], "-")
}

// ParseArgs interprets given command line tokens (without the program
// name) from left to right.  Errors and the help screen are written to
// out.  A help request or an unknown option stops the parsing with
// ModeHelp; a value option missing its value stops the parsing with
// ModeAbort.  Tokens after a stop are ignored.
func ParseArgs(args []string, out io.Writer) Config {
	cfg := Config{Mode: ModeRun}
	for i := 0; i < len(args); i++ {
		token := args[i]
		switch {
		case isOption(token, "--help", "-h"):
			fmt.Fprint(out, Help)
			cfg.Mode = ModeHelp
			return cfg
		case isOption(token, "-d"):
			cfg.Mode = ModeDisplayOnly
		case isOption(token, "-v"):
			cfg.Verbose = true
		case isOption(token, "-vs"):
			cfg.VSStyle = true
		case isOption(token, "-m"):
			cfg.MachineReadable = true
		default:
			idx := slices.IndexFunc(valueOptions, func(o valueOption) bool {
				return isOption(token, o.name)
			})
			if idx < 0 {
				fmt.Fprintf(out, unsupportedErr, token)
				fmt.Fprint(out, Help)
				cfg.Mode = ModeHelp
				cfg.Err = &ConfigError{Option: token, Err: ErrUnsupportedOption}
				return cfg
			}
			opt := valueOptions[idx]
			if !hasValueAfter(args, i) {
				fmt.Fprintf(out, missingValueErr, opt.name)
				cfg.Mode = ModeAbort
				cfg.Err = &ConfigError{Option: opt.name, Err: ErrMissingValue}
				return cfg
			}
			i++
			opt.set(&cfg, args[i])
		}
	}
	return cfg
}
