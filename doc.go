// Package stest is a minimal unit-testing framework which is linked
// into a test binary rather than being run by an external harness.  A
// test binary registers its tests explicitly, grouped into fixtures, in
// an entry point which is handed to [Main] together with the command
// line:
//
//	func testAdd(t *stest.T) {
//	    t.IntEqual(4, add(2, 2))
//	    t.IntEqual(0, add(-2, 2))
//	}
//
//	func mathFixture(r *stest.Runner) {
//	    r.Fixture()
//	    r.FixtureSetup(func() { resetRegisters() })
//	    r.Test("testAdd", testAdd)
//	    r.FixtureEnd()
//	}
//
//	func allTests(r *stest.Runner) { mathFixture(r) }
//
//	func main() {
//	    os.Exit(stest.Main(os.Args[1:], allTests, nil, nil))
//	}
//
// Tests run strictly sequentially in registration order.  Each test is
// wrapped by the suite hooks given to Main and the hooks registered by
// its fixture:
//
//	suite setup, fixture setup, test, fixture teardown, suite teardown
//
// Fixture hooks don't leak into the next fixture since FixtureStart
// discards them.
//
// The command line
//
//	prog [-t <testname>] [-f <fixturename>] [-d] [-h|--help] [-v] [-vs] [-m] [-k <marker>]
//
// selects tests (-t) and fixtures (-f) by case-sensitive name prefix,
// only lists them (-d), reports passed assertions too (-v), switches to
// IDE friendly (-vs) or machine readable (-m) records and prefixes the
// later with a marker (-k).  A machine readable failure looks like
//
//	RUN1math_test,checkFoo,42,Expected foo but was bar
//
// i.e. marker, fixture path, function, line and message.  Interactive
// output is colored iff it goes to a terminal on a non-windows
// platform.  Main's return value is meant to be the process's exit
// code: the number of failed assertions, zero or -1 for a broken
// command line.
package stest
