// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stest

import (
	"io"
	"math"
	"os"

	"github.com/go-logr/logr"
)

// Runner executes fixtures and tests registered by an entry point and
// reports their results.  A Runner holds all state of one run: its
// configuration, counters, the active fixture and the suite hooks.  It
// must not be used concurrently.
//
//	func allTests(r *stest.Runner) {
//	    r.Fixture()
//	    r.FixtureSetup(connect)
//	    r.Test("adds", func(t *stest.T) { t.IntEqual(4, add(2, 2)) })
//	    r.FixtureEnd()
//	}
//
//	func main() { os.Exit(stest.Main(os.Args[1:], allTests, nil, nil)) }
type Runner struct {
	cfg      Config
	out      io.Writer
	log      logr.Logger
	clock    Clock
	reporter *Reporter
	sink     *LoggingSink
	suite    hooks
	fixture  fixture
}

// settings collect the values of Options.
type settings struct {
	out   io.Writer
	log   logr.Logger
	clock Clock
	color *bool
	width int
	abort bool
}

// Option configures a Runner beyond what the command line can express.
type Option func(*settings)

// WithOutput sets the writer reports are written to (default stdout).
func WithOutput(w io.Writer) Option { return func(s *settings) { s.out = w } }

// WithLogger sets the logger for diagnostics of the runner itself
// (default: discard).
func WithLogger(l logr.Logger) Option { return func(s *settings) { s.log = l } }

// WithClock sets the clock measuring a run's elapsed time.
func WithClock(c Clock) Option { return func(s *settings) { s.clock = c } }

// WithColor overrides the terminal-based decision if interactive output
// is colored.
func WithColor(enabled bool) Option {
	return func(s *settings) { s.color = &enabled }
}

// WithWidth sets the column width of headers and footers.
func WithWidth(w int) Option { return func(s *settings) { s.width = w } }

// WithAbortOnFailure stops a test at its first failed assertion.
func WithAbortOnFailure() Option { return func(s *settings) { s.abort = true } }

func newSettings(oo []Option) *settings {
	s := &settings{out: os.Stdout, log: logr.Discard(), clock: systemClock{}}
	for _, o := range oo {
		o(s)
	}
	return s
}

// NewRunner returns a runner for given configuration.  Whether output
// is colored is decided here once unless WithColor is given.
func NewRunner(cfg Config, oo ...Option) *Runner {
	return newRunner(cfg, newSettings(oo))
}

func newRunner(cfg Config, s *settings) *Runner {
	if s.color != nil {
		cfg.Color = *s.color
	} else {
		cfg.Color = CanColor(s.out)
	}
	if s.width > 0 {
		cfg.Width = s.width
	}
	if s.abort {
		cfg.AbortOnFailure = true
	}
	r := &Runner{cfg: cfg, out: s.out, log: s.log, clock: s.clock}
	r.reporter = NewReporter(s.out, cfg)
	r.sink = NewLoggingSink(r.reporter, cfg.Verbose)
	return r
}

// Config returns the configuration of the run.
func (r *Runner) Config() Config { return r.cfg }

// Counters returns the run's current totals.
func (r *Runner) Counters() Counters { return r.sink.Counters }

// SuiteSetup registers given function to be run before each test.
func (r *Runner) SuiteSetup(setUp func()) { r.suite.setUp = setUp }

// SuiteTeardown registers given function to be run after each test.
func (r *Runner) SuiteTeardown(tearDown func()) { r.suite.tearDown = tearDown }

// Test runs given test body unless the filter rejects it.  A rejected
// test touches neither counters nor hooks.  In display-only mode only
// the test's name is printed.  Otherwise the body is wrapped by the
// suite and fixture hooks:
//
//	suite setup, fixture setup, body, fixture teardown, suite teardown
func (r *Runner) Test(name string, body func(*T)) {
	if !r.cfg.Filter.ShouldRunTest(r.fixture.name, name) {
		r.log.V(1).Info("test filtered",
			"fixture", r.fixture.name, "test", name)
		return
	}
	if r.cfg.DisplayOnly() {
		r.reporter.ListTest(name)
		return
	}

	r.suite.before()
	r.fixture.before()
	r.execute(name, body)
	r.fixture.after()
	r.suite.after()
	r.sink.Run++
}

// abortTest is the panic value unwinding a test body whose assertion
// failed while AbortOnFailure is set.
type abortTest struct{}

// execute calls given body and recovers an aborted test.  Other panics
// are passed on.
func (r *Runner) execute(name string, body func(*T)) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if _, ok := p.(abortTest); !ok {
			panic(p)
		}
		r.reporter.Aborted()
		r.log.V(1).Info("test aborted", "fixture", r.fixture.name, "test", name)
	}()
	body(&T{r: r, sink: r.sink, abort: r.cfg.AbortOnFailure})
}

// Run calls given entry point which registers fixtures and tests and
// measures the time it takes.  Unless in display-only or machine
// readable mode a summary is printed.  Run returns ExitOK if no
// assertion failed or the run was display-only; otherwise the number of
// failed assertions.
func (r *Runner) Run(entry func(*Runner)) int {
	start := r.clock.Now()
	entry(r)
	d := elapsed(start, r.clock.Now())

	c := r.sink.Counters
	r.log.Info("run finished", "mode", r.cfg.Mode.String(),
		"run", c.Run, "passed", c.Passed, "failed", c.Failed,
		"elapsed", d)

	if r.cfg.DisplayOnly() {
		return ExitOK
	}
	r.reporter.Summary(c, d)
	return r.Outcome()
}

// Outcome maps the number of failed assertions to an exit code which is
// ExitOK if nothing failed.  Counts beyond the integer range are
// capped.
func (r *Runner) Outcome() int {
	if r.sink.Failed > math.MaxInt {
		return math.MaxInt
	}
	return int(r.sink.Failed)
}
