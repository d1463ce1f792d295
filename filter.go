// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stest

import "strings"

// Filter decides which fixtures and tests of a run are executed.  Both
// filters are case-sensitive prefixes; an empty filter accepts
// everything.  The zero value accepts all fixtures and tests.
type Filter struct {
	Fixture string
	Test    string
}

// ShouldRunFixture returns true iff no fixture filter is set or given
// fixture name starts with it.
func (f Filter) ShouldRunFixture(fixture string) bool {
	return f.Fixture == "" || strings.HasPrefix(fixture, f.Fixture)
}

// ShouldRunTest returns true iff given fixture passes the fixture
// filter and given test name passes the test filter.
func (f Filter) ShouldRunTest(fixture, test string) bool {
	if !f.ShouldRunFixture(fixture) {
		return false
	}
	return f.Test == "" || strings.HasPrefix(test, f.Test)
}

// ShouldRunUnnamed is ShouldRunTest for an absent test name which
// always passes the test filter, i.e. filtering happens at fixture
// granularity only.
func (f Filter) ShouldRunUnnamed(fixture string) bool {
	return f.ShouldRunFixture(fixture)
}
