// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stest_test

import (
	"testing"

	"github.com/slukits/stest"
)

func Test_filter_without_fixture_prefix_accepts_every_fixture(t *testing.T) {
	var f stest.Filter
	for _, name := range []string{"", "math", "Math", "strings_test"} {
		if !f.ShouldRunFixture(name) {
			t.Errorf("expected fixture %q to run", name)
		}
	}
}

func Test_filter_matches_fixtures_by_case_sensitive_prefix(t *testing.T) {
	f := stest.Filter{Fixture: "math"}
	for name, exp := range map[string]bool{
		"math":       true,
		"math_test":  true,
		"Math":       false,
		"mat":        false,
		"test_math":  false,
		"":           false,
		"mathematic": true,
	} {
		if got := f.ShouldRunFixture(name); got != exp {
			t.Errorf("fixture %q: expected %v; got %v", name, exp, got)
		}
	}
}

func Test_filter_runs_a_test_only_if_its_fixture_runs(t *testing.T) {
	f := stest.Filter{Fixture: "math"}
	if f.ShouldRunTest("strings", "anything") {
		t.Error("expected test of filtered fixture not to run")
	}
	if !f.ShouldRunTest("math", "anything") {
		t.Error("expected test of accepted fixture to run")
	}
}

func Test_filter_matches_tests_by_case_sensitive_prefix(t *testing.T) {
	f := stest.Filter{Test: "test_add"}
	for name, exp := range map[string]bool{
		"test_add":        true,
		"test_add_signed": true,
		"test_ad":         false,
		"Test_add":        false,
		"my_test_add":     false,
	} {
		if got := f.ShouldRunTest("math", name); got != exp {
			t.Errorf("test %q: expected %v; got %v", name, exp, got)
		}
	}
}

func Test_filter_requires_both_prefixes_to_match(t *testing.T) {
	f := stest.Filter{Fixture: "ma", Test: "add"}
	type args struct{ fixture, test string }
	for a, exp := range map[args]bool{
		{"math", "add"}:    true,
		{"math", "sub"}:    false,
		{"strings", "add"}: false,
		{"strings", "sub"}: false,
	} {
		if got := f.ShouldRunTest(a.fixture, a.test); got != exp {
			t.Errorf("%v: expected %v; got %v", a, exp, got)
		}
	}
}

func Test_filter_lets_an_unnamed_test_pass_the_test_prefix(t *testing.T) {
	f := stest.Filter{Fixture: "math", Test: "add"}
	if !f.ShouldRunUnnamed("math") {
		t.Error("expected unnamed test of accepted fixture to run")
	}
	if f.ShouldRunUnnamed("strings") {
		t.Error("expected unnamed test of filtered fixture not to run")
	}
}
