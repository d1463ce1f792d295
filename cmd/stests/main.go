/*
Stests runs stest's assertions against themselves: each of the fifteen
tests of its single fixture checks that an assertion passes or fails on
given input.  It accepts the command line of every stest test binary:

	stests [-h] [-d] [-v] [-vs] [-m] [-k marker] [-t test] [-f fixture]

Its exit code is the number of failed assertions, -1 if an option
misses its value.  Besides the command line stests is configured by the
environment or an optional stest.yaml in the working directory:

	STEST_LOGLEVEL          logrus level of diagnostics written to stderr
	STEST_ABORT_ON_FAILURE  stop a test at its first failed assertion
*/
package main

import "os"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
