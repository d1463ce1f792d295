// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stest

import "strings"

// FixtureName returns the final segment of given path whereas both '/'
// and '\' separate segments, i.e. "tests/math_test" and
// `tests\math_test` both become "math_test".
func FixtureName(path string) string {
	return path[strings.LastIndexAny(path, `/\`)+1:]
}
