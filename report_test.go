// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stest_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/acarl005/stripansi"
	"github.com/google/go-cmp/cmp"

	"github.com/slukits/stest"
)

var fooBar = stest.Outcome{
	Passed:   false,
	Message:  "Expected foo but was bar",
	Function: "checkFoo",
	Line:     42,
}

func reporter(cfg stest.Config) (*stest.Reporter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return stest.NewReporter(out, cfg), out
}

func Test_header_centers_its_label_in_the_fill_character(t *testing.T) {
	r, out := reporter(stest.Config{Width: 20})
	r.Header("abc", '-')
	exp := "-------" + " abc " + "--------" + "\r\n"
	if diff := cmp.Diff(exp, out.String()); diff != "" {
		t.Error(diff)
	}
}

func Test_header_defaults_to_seventy_columns(t *testing.T) {
	r, out := reporter(stest.Config{})
	r.Header("", '=')
	exp := strings.Repeat("=", 70) + "\r\n"
	if diff := cmp.Diff(exp, out.String()); diff != "" {
		t.Error(diff)
	}
}

func Test_header_ignores_escape_sequences_when_centering(t *testing.T) {
	plain, plainOut := reporter(stest.Config{})
	colored, coloredOut := reporter(stest.Config{Color: true})
	plain.Header("ALL TESTS PASSED", ' ')
	colored.Header("\033[0;32mALL TESTS PASSED\033[0m", ' ')
	if coloredOut.String() == plainOut.String() {
		t.Fatal("expected colored header to contain escape sequences")
	}
	if diff := cmp.Diff(
		plainOut.String(), stripansi.Strip(coloredOut.String()),
	); diff != "" {
		t.Error(diff)
	}
}

func Test_header_of_an_over_long_label_has_no_fill(t *testing.T) {
	r, out := reporter(stest.Config{Width: 4})
	r.Header("abcdef", '-')
	if diff := cmp.Diff(" abcdef \r\n", out.String()); diff != "" {
		t.Error(diff)
	}
}

func Test_header_is_suppressed_in_display_only_and_machine_mode(t *testing.T) {
	for _, cfg := range []stest.Config{
		{Mode: stest.ModeDisplayOnly}, {MachineReadable: true},
	} {
		r, out := reporter(cfg)
		r.Header("math", '-')
		r.FixtureSummary(1, 0)
		r.Summary(stest.Counters{Run: 1}, time.Millisecond)
		if out.Len() != 0 {
			t.Errorf("%+v: expected no output; got %q", cfg, out.String())
		}
	}
}

func Test_interactive_failure_is_aligned(t *testing.T) {
	r, out := reporter(stest.Config{})
	r.Failure("math_test", fooBar)
	exp := "checkFoo" + strings.Repeat(" ", 22) +
		" Line 42    Expected foo but was bar\r\n"
	if diff := cmp.Diff(exp, out.String()); diff != "" {
		t.Error(diff)
	}
}

func Test_interactive_failure_message_is_red_if_colored(t *testing.T) {
	r, out := reporter(stest.Config{Color: true})
	r.Failure("math_test", fooBar)
	if !strings.Contains(out.String(),
		"\033[0;31mExpected foo but was bar\033[0m") {
		t.Errorf("expected red message; got %q", out.String())
	}
}

func Test_interactive_success_is_green_if_colored(t *testing.T) {
	r, out := reporter(stest.Config{Color: true})
	r.Success("math_test", stest.Outcome{
		Passed: true, Function: "checkFoo", Line: 7})
	exp := "checkFoo" + strings.Repeat(" ", 22) +
		" Line 7     \033[0;32mPassed\033[0m\r\n"
	if diff := cmp.Diff(exp, out.String()); diff != "" {
		t.Error(diff)
	}
}

func Test_machine_readable_failure_is_a_marked_record(t *testing.T) {
	r, out := reporter(stest.Config{
		MachineReadable: true, Marker: "RUN1", Color: true})
	r.Failure("math_test", fooBar)
	exp := "RUN1math_test,checkFoo,42,Expected foo but was bar\r\n"
	if diff := cmp.Diff(exp, out.String()); diff != "" {
		t.Error(diff)
	}
}

func Test_machine_readable_success_reports_passed(t *testing.T) {
	r, out := reporter(stest.Config{MachineReadable: true})
	r.Success("math_test", stest.Outcome{
		Passed: true, Function: "checkFoo", Line: 7})
	exp := "math_test,checkFoo,7,Passed\r\n"
	if diff := cmp.Diff(exp, out.String()); diff != "" {
		t.Error(diff)
	}
}

func Test_vs_style_failure_names_path_and_line_first(t *testing.T) {
	exp := "tests/math_test (42)\t\tcheckFoo,Expected foo but was bar\r\n"
	for _, cfg := range []stest.Config{
		{VSStyle: true}, {VSStyle: true, MachineReadable: true},
	} {
		r, out := reporter(cfg)
		r.Failure("tests/math_test", fooBar)
		if diff := cmp.Diff(exp, out.String()); diff != "" {
			t.Errorf("%+v: %s", cfg, diff)
		}
	}
}

func Test_fixture_summary_is_followed_by_an_empty_line(t *testing.T) {
	r, out := reporter(stest.Config{Width: 20})
	r.FixtureSummary(2, 1)
	exp := "   2 run 1 failed   \r\n\r\n"
	if diff := cmp.Diff(exp, out.String()); diff != "" {
		t.Error(diff)
	}
}

func Test_summary_of_a_passing_run(t *testing.T) {
	r, out := reporter(stest.Config{Width: 24})
	r.Summary(stest.Counters{Run: 1, Passed: 3}, 12*time.Millisecond)
	exp := "\r\n" +
		"    ALL TESTS PASSED    \r\n" +
		"       1 test run       \r\n" +
		"        in 12 ms        \r\n" +
		"\r\n" +
		strings.Repeat("=", 24) + "\r\n"
	if diff := cmp.Diff(exp, out.String()); diff != "" {
		t.Error(diff)
	}
}

func Test_summary_of_a_failing_run(t *testing.T) {
	r, out := reporter(stest.Config{Width: 24, Color: true})
	r.Summary(stest.Counters{Run: 2, Passed: 3, Failed: 1}, 0)
	got := strings.Split(stripansi.Strip(out.String()), "\r\n")
	exp := []string{
		"",
		"         failed         ",
		"      2 tests run       ",
		"        in 0 ms         ",
		"",
		strings.Repeat("=", 24),
		"",
	}
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Error(diff)
	}
}

func Test_listing_prints_bare_names(t *testing.T) {
	r, out := reporter(stest.Config{Mode: stest.ModeDisplayOnly})
	r.ListFixture("math")
	r.ListTest("test_add")
	if diff := cmp.Diff("Fixture: math\ntest_add\n", out.String()); diff != "" {
		t.Error(diff)
	}
}
