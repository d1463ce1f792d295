// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stest

// Outcome is the result of a single assertion: if it passed, the
// human readable expectation and the function and line the assertion
// was made in.
type Outcome struct {
	Passed   bool
	Message  string
	Function string
	Line     int
}

// Counters are a run's running totals.  Run counts executed tests while
// Passed and Failed count assertions.
type Counters struct {
	Run, Passed, Failed uint
}

// ResultSink consumes assertion outcomes.
type ResultSink interface {
	Record(Outcome)
}

// LoggingSink counts outcomes and reports them: failures always,
// successes only if verbose.
type LoggingSink struct {
	Counters

	// Path of the currently active fixture which is reported along with
	// machine readable and vs-style records.
	Path string

	reporter *Reporter
	verbose  bool
}

// NewLoggingSink returns a sink reporting to given reporter.
func NewLoggingSink(r *Reporter, verbose bool) *LoggingSink {
	return &LoggingSink{reporter: r, verbose: verbose}
}

// Record counts given outcome and forwards it to the reporter.
func (s *LoggingSink) Record(o Outcome) {
	if !o.Passed {
		s.reporter.Failure(s.Path, o)
		s.Failed++
		return
	}
	if s.verbose {
		s.reporter.Success(s.Path, o)
	}
	s.Passed++
}

// SilentSink remembers the latest outcome without counting or
// reporting it.  It lets assertions be checked by assertions.
type SilentSink struct {
	Last     Outcome
	Recorded bool
}

// Record replaces the latest outcome.
func (s *SilentSink) Record(o Outcome) {
	s.Last, s.Recorded = o, true
}
