// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stest

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

const (
	trueErr      = "Should have been true"
	falseErr     = "Should have been false"
	equalErr     = "Expected %d but was %d"
	floatErr     = "Expected %f but was %f"
	stringErr    = "Expected %s but was %s"
	endsWithErr  = "Expected %s to end with %s"
	startsErr    = "Expected %s to start with %s"
	containsErr  = "Expected %s to be in %s"
	notContained = "Expected %s not to have %s in it"
	positionErr  = "Expected %d to be %d at position %d"
	lengthErr    = "Expected %d elements to compare but have %d and %d"
	bitSetErr    = "Expected bit to be set"
	bitNotSetErr = "Expected bit not to be set"
	maskErr      = "Expected all bits of mask to be set"
	valueErr     = "Expected %v but was %v"
	null         = "<NULL>"
)

// True passes iff given value is true.
func (t *T) True(value bool) bool { return t.report(value, trueErr) }

// False passes iff given value is false.
func (t *T) False(value bool) bool { return t.report(!value, falseErr) }

// Fail records a failure with given message.
func (t *T) Fail(message string) bool { return t.report(false, message) }

// IntEqual passes iff given integers are equal.
func (t *T) IntEqual(expected, actual int) bool {
	return t.report(expected == actual,
		fmt.Sprintf(equalErr, expected, actual))
}

// UlongEqual passes iff given unsigned integers are equal.
func (t *T) UlongEqual(expected, actual uint64) bool {
	return t.report(expected == actual,
		fmt.Sprintf(equalErr, expected, actual))
}

// FloatEqual passes iff given values differ by at most delta.
func (t *T) FloatEqual(expected, actual, delta float32) bool {
	return t.report(
		float32(math.Abs(float64(expected-actual))) <= delta,
		fmt.Sprintf(floatErr, expected, actual))
}

// DoubleEqual passes iff given values differ by at most delta.
func (t *T) DoubleEqual(expected, actual, delta float64) bool {
	return t.report(math.Abs(expected-actual) <= delta,
		fmt.Sprintf(floatErr, expected, actual))
}

// StringEqual passes iff given strings are equal.
func (t *T) StringEqual(expected, actual string) bool {
	return t.report(expected == actual,
		fmt.Sprintf(stringErr, expected, actual))
}

// StringPtrEqual passes iff both given strings are nil or both point
// to equal strings.  A nil string is reported as <NULL>.
func (t *T) StringPtrEqual(expected, actual *string) bool {
	switch {
	case expected == nil && actual == nil:
		return t.report(true, fmt.Sprintf(stringErr, null, null))
	case expected == nil:
		return t.report(false, fmt.Sprintf(stringErr, null, *actual))
	case actual == nil:
		return t.report(false, fmt.Sprintf(stringErr, *expected, null))
	}
	return t.report(*expected == *actual,
		fmt.Sprintf(stringErr, *expected, *actual))
}

// StringEndsWith passes iff actual ends with expected.
func (t *T) StringEndsWith(expected, actual string) bool {
	return t.report(strings.HasSuffix(actual, expected),
		fmt.Sprintf(endsWithErr, actual, expected))
}

// StringStartsWith passes iff actual starts with expected.
func (t *T) StringStartsWith(expected, actual string) bool {
	return t.report(strings.HasPrefix(actual, expected),
		fmt.Sprintf(startsErr, actual, expected))
}

// StringContains passes iff expected is a sub-string of actual.
func (t *T) StringContains(expected, actual string) bool {
	return t.report(strings.Contains(actual, expected),
		fmt.Sprintf(containsErr, expected, actual))
}

// StringNotContains passes iff expected is not a sub-string of actual.
func (t *T) StringNotContains(expected, actual string) bool {
	return t.report(!strings.Contains(actual, expected),
		fmt.Sprintf(notContained, actual, expected))
}

// NArrayEqual compares the first n elements of given slices recording
// one outcome per position.  It fails once if n isn't positive or
// exceeds one of the slices.
func (t *T) NArrayEqual(expected, actual []int, n int) bool {
	if n <= 0 || n > len(expected) || n > len(actual) {
		return t.report(false,
			fmt.Sprintf(lengthErr, n, len(expected), len(actual)))
	}
	equal := true
	for i := 0; i < n; i++ {
		if !t.report(expected[i] == actual[i],
			fmt.Sprintf(positionErr, actual[i], expected[i], i)) {
			equal = false
		}
	}
	return equal
}

// BitSet passes iff given bit of given value is set.
func (t *T) BitSet(bit uint, value uint64) bool {
	return t.report(value&(1<<bit) != 0, bitSetErr)
}

// BitNotSet passes iff given bit of given value is not set.
func (t *T) BitNotSet(bit uint, value uint64) bool {
	return t.report(value&(1<<bit) == 0, bitNotSetErr)
}

// BitMaskMatches passes iff all bits set in mask are set in value.
func (t *T) BitMaskMatches(value, mask uint64) bool {
	return t.report(value&mask == mask, maskErr)
}

// exportAll lets cmp compare unexported struct fields.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Equal passes iff given values are deeply equal in the sense of
// cmp.Equal, unexported fields included.  A mismatch's diff is written
// to the runner's logger.
func (t *T) Equal(expected, actual interface{}) bool {
	if cmp.Equal(expected, actual, exportAll) {
		return t.report(true, fmt.Sprintf(valueErr, expected, actual))
	}
	t.r.log.Info("values differ",
		"diff", cmp.Diff(expected, actual, exportAll))
	return t.report(false, fmt.Sprintf(valueErr, expected, actual))
}
