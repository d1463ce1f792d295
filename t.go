// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stest

import (
	"fmt"
	"runtime"
	"strings"
)

// T instances are passed to test bodies providing the assertions of a
// test.  Each assertion forwards its outcome to the runner's result
// sink together with the function and line it was called from:
//
//	r.Test("adds", func(t *stest.T) {
//	    t.IntEqual(4, add(2, 2))
//	})
type T struct {
	r     *Runner
	sink  ResultSink
	abort bool
}

// Record forwards given outcome to the result sink.  It is the sole
// contract an assertion must fulfill, i.e. custom assertions compute
// their outcome and pass it to Record.  If the runner aborts tests on
// failures a failed outcome stops the test body.
func (t *T) Record(o Outcome) {
	t.sink.Record(o)
	if !o.Passed && t.abort {
		panic(abortTest{})
	}
}

// report records given result as originating from the caller of the
// assertion which called report and returns passed.
func (t *T) report(passed bool, message string) bool {
	fn, line := origin(3)
	t.Record(Outcome{
		Passed: passed, Message: message, Function: fn, Line: line})
	return passed
}

// origin returns the unqualified function name and line of the frame
// skip levels above its caller.
func origin(skip int) (string, int) {
	pcs := make([]uintptr, 1)
	if runtime.Callers(skip+1, pcs) == 0 {
		return "?", 0
	}
	frame, _ := runtime.CallersFrames(pcs).Next()
	return funcName(frame.Function), frame.Line
}

// funcName strips the package path from given fully qualified function
// name, e.g. "github.com/a/b.checkFoo" becomes "checkFoo" and
// "main.(*s).m" becomes "(*s).m".
func funcName(qualified string) string {
	name := qualified[strings.LastIndex(qualified, "/")+1:]
	if i := strings.Index(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Log writes given arguments to the runner's logger.
func (t *T) Log(args ...interface{}) { t.r.log.Info(fmt.Sprint(args...)) }

// Logf writes given format string leveraging Sprintf to the runner's
// logger.
func (t *T) Logf(format string, args ...interface{}) {
	t.Log(fmt.Sprintf(format, args...))
}

// Silently runs given function with a T whose outcomes are neither
// counted nor reported.  It returns the latest outcome recorded by fn
// and false if fn didn't record any.
func (t *T) Silently(fn func(*T)) (Outcome, bool) {
	silent := &SilentSink{}
	fn(&T{r: t.r, sink: silent})
	return silent.Last, silent.Recorded
}

// Passes asserts that the latest assertion of given function passes.
func (t *T) Passes(fn func(*T)) bool {
	o, ok := t.Silently(fn)
	return t.report(ok && o.Passed, trueErr)
}

// Fails asserts that the latest assertion of given function fails.
func (t *T) Fails(fn func(*T)) bool {
	o, ok := t.Silently(fn)
	return t.report(ok && !o.Passed, falseErr)
}
