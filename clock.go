// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stest

import "time"

// Clock provides the points in time a run's elapsed time is measured
// with.
type Clock interface {
	Now() time.Time
}

// systemClock is time.Now whose readings carry a monotonic component.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// StepClock is a deterministic clock which advances by its step after
// each reading.  The step defaults to 1 millisecond.  The zero value is
// ready to use.
type StepClock struct {
	now  time.Time
	step time.Duration
}

// Step is the duration a step-clock advances per reading.
func (c *StepClock) Step() time.Duration {
	if c.step == 0 {
		c.step = 1 * time.Millisecond
	}
	return c.step
}

// SetStep sets the duration a step-clock advances per reading.
func (c *StepClock) SetStep(d time.Duration) *StepClock {
	c.step = d
	return c
}

// Now returns the clock's current time and advances it by one step.
func (c *StepClock) Now() time.Time {
	now := c.now
	c.now = c.now.Add(c.Step())
	return now
}

// elapsed returns the non-negative duration from start to end.
func elapsed(start, end time.Time) time.Duration {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}
	return d
}
