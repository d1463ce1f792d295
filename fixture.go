// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stest

import "runtime"

// hooks wrap each test execution.  Unset hooks are no-ops.
type hooks struct {
	setUp, tearDown func()
}

func (h hooks) before() {
	if h.setUp != nil {
		h.setUp()
	}
}

func (h hooks) after() {
	if h.tearDown != nil {
		h.tearDown()
	}
}

// fixture is the context of the fixture block which is currently
// executed.
type fixture struct {
	hooks
	name, path string

	// active is false if the fixture was rejected by the filter.
	active bool

	// snapshot of the counters at the fixture's start.
	snapshot Counters
}

// FixtureStart begins a fixture block whose display name is the last
// segment of given path.  If the fixture passes the fixture filter its
// header is printed (or its name in display-only mode) and previously
// registered fixture hooks are discarded, i.e. each fixture registers
// its own hooks after FixtureStart.  A rejected fixture leaves
// everything else untouched.
func (r *Runner) FixtureStart(path string) {
	r.fixture.path, r.fixture.name = path, FixtureName(path)
	r.fixture.active = false
	r.sink.Path = path

	if !r.cfg.Filter.ShouldRunFixture(r.fixture.name) {
		r.log.V(1).Info("fixture filtered", "fixture", r.fixture.name)
		return
	}
	r.fixture.active = true

	if r.cfg.DisplayOnly() {
		r.reporter.ListFixture(r.fixture.name)
	} else {
		r.reporter.FixtureStart(r.fixture.name)
		r.fixture.snapshot = r.sink.Counters
	}
	r.fixture.hooks = hooks{}
}

// Fixture begins a fixture block named after the source file of its
// caller.
func (r *Runner) Fixture() {
	_, file, _, ok := runtime.Caller(1)
	if !ok {
		file = "unknown"
	}
	r.FixtureStart(file)
}

// FixtureSetup registers given function to be run before each test of
// the current fixture.
func (r *Runner) FixtureSetup(setUp func()) { r.fixture.setUp = setUp }

// FixtureTeardown registers given function to be run after each test
// of the current fixture.
func (r *Runner) FixtureTeardown(tearDown func()) {
	r.fixture.tearDown = tearDown
}

// FixtureEnd closes the current fixture block reporting how many tests
// were run and how many assertions failed since FixtureStart.  Closing a
// fixture rejected by the filter reports nothing.
func (r *Runner) FixtureEnd() {
	if !r.fixture.active {
		return
	}
	r.fixture.active = false
	run := r.sink.Run - r.fixture.snapshot.Run
	failed := r.sink.Failed - r.fixture.snapshot.Failed
	r.log.V(1).Info("fixture done",
		"fixture", r.fixture.name, "run", run, "failed", failed)
	r.reporter.FixtureSummary(run, failed)
}
