// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stest

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	interactiveLine = "%-30s Line %-5d %s\r\n"
	vsLine          = "%s (%d)\t\t%s,%s\r\n"
	machineLine     = "%s%s,%s,%d,%s\r\n"

	passed       = "Passed"
	failedBanner = "failed"
	passedBanner = "ALL TESTS PASSED"
	abortedTest  = "Test has been finished with failure.\r\n"
)

// Reporter renders a run's results either as aligned, optionally
// colored, interactive lines or as machine readable records.  Which
// rendition is used is decided by the configuration a Reporter is
// created with.
type Reporter struct {
	out io.Writer
	cfg Config
}

// NewReporter returns a reporter writing to given writer according to
// given configuration.
func NewReporter(out io.Writer, cfg Config) *Reporter {
	return &Reporter{out: out, cfg: cfg}
}

// Header writes given label centered in a line of the configured width
// whose remaining columns are filled with given fill character.  An
// empty label is rendered as two fill characters.  Escape sequences
// don't count to a label's width.  Nothing is written in display-only
// or machine readable mode.
func (r *Reporter) Header(label string, fill rune) {
	if !r.cfg.Framed() {
		return
	}
	width, n := r.cfg.width(), text.RuneWidthWithoutEscSequences(label)
	d := (width - (n + 2)) / 2
	f := string(fill)

	b := strings.Builder{}
	b.WriteString(strings.Repeat(f, max(d, 0)))
	if n == 0 {
		b.WriteString(f + f)
	} else {
		b.WriteString(" " + label + " ")
	}
	b.WriteString(strings.Repeat(f, max(width-(d+n+2), 0)))
	b.WriteString("\r\n")
	io.WriteString(r.out, b.String())
}

// Failure reports a failed assertion of the fixture with given path.
func (r *Reporter) Failure(path string, o Outcome) {
	if r.cfg.MachineReadable {
		if r.cfg.VSStyle {
			fmt.Fprintf(r.out, vsLine, path, o.Line, o.Function, o.Message)
			return
		}
		fmt.Fprintf(r.out, machineLine,
			r.cfg.Marker, path, o.Function, o.Line, o.Message)
		return
	}
	msg := colorize(o.Message, red, r.cfg.Color)
	if r.cfg.VSStyle {
		fmt.Fprintf(r.out, vsLine, path, o.Line, o.Function, msg)
		return
	}
	fmt.Fprintf(r.out, interactiveLine, o.Function, o.Line, msg)
}

// Success reports a passed assertion of the fixture with given path.
func (r *Reporter) Success(path string, o Outcome) {
	if r.cfg.MachineReadable {
		fmt.Fprintf(r.out, machineLine,
			r.cfg.Marker, path, o.Function, o.Line, passed)
		return
	}
	fmt.Fprintf(r.out, interactiveLine, o.Function, o.Line,
		colorize(passed, green, r.cfg.Color))
}

// AbortedTest is printed when a test is stopped at a failed assertion.
const AbortedTest = abortedTest

// Aborted reports that a test was stopped at a failed assertion.
func (r *Reporter) Aborted() { io.WriteString(r.out, abortedTest) }

// ListFixture writes a fixture's name in display-only mode.
func (r *Reporter) ListFixture(name string) {
	fmt.Fprintf(r.out, "Fixture: %s\n", name)
}

// ListTest writes a test's name in display-only mode.
func (r *Reporter) ListTest(name string) { fmt.Fprintf(r.out, "%s\n", name) }

// FixtureStart writes the header of the fixture with given name.
func (r *Reporter) FixtureStart(name string) { r.Header(name, '-') }

// FixtureSummary writes the number of tests run and assertions failed
// within a fixture followed by an empty line.
func (r *Reporter) FixtureSummary(run, failed uint) {
	r.Header(fmt.Sprintf("%d run %d failed", run, failed), ' ')
	if !r.cfg.Framed() {
		return
	}
	io.WriteString(r.out, "\r\n")
}

// Summary writes the closing block of a run: the passed/failed banner,
// the number of run tests, the elapsed milliseconds and a closing
// border.
func (r *Reporter) Summary(c Counters, elapsed time.Duration) {
	if !r.cfg.Framed() {
		return
	}
	io.WriteString(r.out, "\r\n")
	if c.Failed > 0 {
		r.Header(colorize(failedBanner, red, r.cfg.Color), ' ')
	} else {
		r.Header(colorize(passedBanner, green, r.cfg.Color), ' ')
	}
	if c.Run == 1 {
		r.Header("1 test run", ' ')
	} else {
		r.Header(fmt.Sprintf("%d tests run", c.Run), ' ')
	}
	r.Header(fmt.Sprintf("in %d ms", max(elapsed.Milliseconds(), 0)), ' ')
	io.WriteString(r.out, "\r\n")
	r.Header("", '=')
}
