// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package selftest checks every stest assertion with stest itself: each
// test asserts that an assertion passes or fails on given input using
// the silent checks [stest.T.Passes] and [stest.T.Fails].
package selftest

import "github.com/slukits/stest"

// AllTests is the entry point of the self-test binary.
func AllTests(r *stest.Runner) { Fixture(r) }

// Fixture runs the assertion fixture.
func Fixture(r *stest.Runner) {
	r.Fixture()
	r.Test("assert_true", assertTrue)
	r.Test("assert_false", assertFalse)
	r.Test("assert_int_equal", assertIntEqual)
	r.Test("assert_ulong_equal", assertUlongEqual)
	r.Test("assert_string_equal", assertStringEqual)
	r.Test("assert_n_array_equal", assertNArrayEqual)
	r.Test("assert_fail", assertFail)
	r.Test("assert_bit_set", assertBitSet)
	r.Test("assert_bit_not_set", assertBitNotSet)
	r.Test("assert_bit_mask_matches", assertBitMaskMatches)
	r.Test("assert_double_equal", assertDoubleEqual)
	r.Test("assert_string_contains", assertStringContains)
	r.Test("assert_string_not_contains", assertStringNotContains)
	r.Test("assert_string_starts_with", assertStringStartsWith)
	r.Test("assert_string_ends_with", assertStringEndsWith)
	r.FixtureEnd()
}

// intBits is the width of the C int the bit assertions were first
// checked against.
const intBits = 32

func assertNArrayEqual(t *stest.T) {
	a1, a2, a3 := []int{0, 1, 2, 3}, []int{0, 1, 2, 4}, []int{0, 1, 2, 3}
	t.Passes(func(t *stest.T) { t.NArrayEqual(a1, a1, 4) })
	t.Passes(func(t *stest.T) { t.NArrayEqual(a1, a3, 4) })
	t.Passes(func(t *stest.T) { t.NArrayEqual(a1, a2, 3) })
	t.Fails(func(t *stest.T) { t.NArrayEqual(a1, a2, 4) })
	t.Fails(func(t *stest.T) { t.NArrayEqual(a1, a2, 0) })
}

func assertStringEqual(t *stest.T) {
	foo, bar := "foo", "bar"
	t.Passes(func(t *stest.T) { t.StringPtrEqual(nil, nil) })
	t.Passes(func(t *stest.T) { t.StringEqual("", "") })
	t.Passes(func(t *stest.T) { t.StringEqual("foo", "foo") })
	t.Fails(func(t *stest.T) { t.StringPtrEqual(nil, &bar) })
	t.Fails(func(t *stest.T) { t.StringPtrEqual(&foo, nil) })
	t.Fails(func(t *stest.T) { t.StringEqual("foo", "bar") })
	t.Fails(func(t *stest.T) { t.StringEqual("foo", "Foo") })
	t.Fails(func(t *stest.T) { t.StringEqual("foo", "foo\n") })
}

func assertUlongEqual(t *stest.T) {
	minusTwo := uint64(1<<64 - 2)
	t.Passes(func(t *stest.T) { t.UlongEqual(1, 1) })
	t.Passes(func(t *stest.T) { t.UlongEqual(minusTwo, minusTwo) })
	t.Fails(func(t *stest.T) { t.UlongEqual(1, 0) })
	t.Fails(func(t *stest.T) { t.UlongEqual(minusTwo, 2) })
}

func assertIntEqual(t *stest.T) {
	t.Passes(func(t *stest.T) { t.IntEqual(1, 1) })
	t.Passes(func(t *stest.T) { t.IntEqual(-2, -2) })
	t.Fails(func(t *stest.T) { t.IntEqual(1, 0) })
	t.Fails(func(t *stest.T) { t.IntEqual(-2, 2) })
}

func assertTrue(t *stest.T) {
	t.Passes(func(t *stest.T) { t.True(true) })
	t.Fails(func(t *stest.T) { t.True(false) })
}

func assertFalse(t *stest.T) {
	t.Passes(func(t *stest.T) { t.False(false) })
	t.Fails(func(t *stest.T) { t.False(true) })
}

func assertFail(t *stest.T) {
	t.Fails(func(t *stest.T) { t.Fail("") })
}

func assertBitSet(t *stest.T) {
	for bit, value := uint(0), uint64(1); bit < intBits; bit, value = bit+1, value<<1 {
		t.Passes(func(t *stest.T) { t.BitSet(bit, value) })
		if bit > 0 {
			t.Fails(func(t *stest.T) { t.BitSet(bit-1, value) })
		}
	}
}

func assertBitNotSet(t *stest.T) {
	for bit, value := uint(0), uint64(1); bit < intBits; bit, value = bit+1, value<<1 {
		t.Fails(func(t *stest.T) { t.BitNotSet(bit, value) })
		if bit > 0 {
			t.Passes(func(t *stest.T) { t.BitNotSet(bit-1, value) })
		}
	}
}

func assertBitMaskMatches(t *stest.T) {
	// 0b000100100011010001010110
	const mask = 0x123456
	for i := uint64(0); i < intBits-1; i++ {
		t.Passes(func(t *stest.T) { t.BitMaskMatches(i|mask, mask) })
		t.Fails(func(t *stest.T) { t.BitMaskMatches(i, mask) })
	}
}

func assertDoubleEqual(t *stest.T) {
	const delta = 0.001
	d1, d2 := 1.5, 2.5
	t.Passes(func(t *stest.T) { t.DoubleEqual(1.0, 1.0, delta) })
	t.Fails(func(t *stest.T) { t.DoubleEqual(1.0, 2.0, delta) })
	t.Passes(func(t *stest.T) { t.DoubleEqual(d2-1, d1, delta) })
	t.Passes(func(t *stest.T) { t.DoubleEqual(d1+1, d2, delta) })
	t.Fails(func(t *stest.T) { t.DoubleEqual(d1, d2, delta) })
}

const (
	one        = "string one"
	oneAndMore = "string one and more"
)

func assertStringContains(t *stest.T) {
	t.Passes(func(t *stest.T) { t.StringContains(one, oneAndMore) })
	t.Fails(func(t *stest.T) { t.StringContains(oneAndMore, one) })
}

func assertStringNotContains(t *stest.T) {
	t.Fails(func(t *stest.T) { t.StringNotContains(one, oneAndMore) })
	t.Passes(func(t *stest.T) { t.StringNotContains(oneAndMore, one) })
}

func assertStringStartsWith(t *stest.T) {
	t.Passes(func(t *stest.T) { t.StringStartsWith(one, oneAndMore) })
	t.Fails(func(t *stest.T) { t.StringStartsWith(oneAndMore, one) })
}

func assertStringEndsWith(t *stest.T) {
	t.Passes(func(t *stest.T) { t.StringEndsWith("and more", oneAndMore) })
	t.Fails(func(t *stest.T) { t.StringEndsWith(oneAndMore, "and more") })
}
