// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stest

// TrueErr default message for a failed True-assertion.
const TrueErr = trueErr

// FalseErr default message for a failed False-assertion.
const FalseErr = falseErr

// FuncName exposes the stripping of package paths from function names.
var FuncName = funcName

// Elapsed exposes the clamped duration between two clock readings.
var Elapsed = elapsed

// SetFailed overwrites the number of failed assertions of a run.
func (r *Runner) SetFailed(n uint) { r.sink.Failed = n }
