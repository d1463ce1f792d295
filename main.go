// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stest

// Main interprets given command line tokens (without the program name)
// and runs given entry point accordingly.  Setup and teardown are the
// optional suite hooks wrapping every test.  Main returns
//
//   - ExitOK after help, an unsupported option, a display-only run or a
//     run without failed assertions,
//   - ExitAbort if an option misses its value; nothing is run,
//   - the number of failed assertions otherwise.
//
// Typically a test binary's main function is just
//
//	os.Exit(stest.Main(os.Args[1:], allTests, nil, nil))
func Main(
	args []string, tests func(*Runner), setup, teardown func(),
	oo ...Option,
) int {
	s := newSettings(oo)
	cfg := ParseArgs(args, s.out)
	s.log.V(1).Info("command line", "mode", cfg.Mode.String(),
		"fixtureFilter", cfg.Filter.Fixture, "testFilter", cfg.Filter.Test,
		"verbose", cfg.Verbose, "machineReadable", cfg.MachineReadable,
		"vsStyle", cfg.VSStyle, "marker", cfg.Marker)

	switch cfg.Mode {
	case ModeHelp:
		if cfg.Err != nil {
			s.log.V(1).Info("nothing to do", "reason", cfg.Err.Error())
		}
		return ExitOK
	case ModeDisplayOnly:
		newRunner(cfg, s).Run(tests)
		return ExitOK
	case ModeRun:
		r := newRunner(cfg, s)
		r.SuiteSetup(setup)
		r.SuiteTeardown(teardown)
		return r.Run(tests)
	default:
		s.log.Error(cfg.Err, "invalid command line")
		return ExitAbort
	}
}
