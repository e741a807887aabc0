// Package clock abstracts delayed callbacks so game timing can be driven manually in tests.
package clock

import "time"

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop prevents the callback from firing. It returns false if the callback already fired
	// or was already stopped.
	Stop() bool
}

// Clock schedules callbacks after a delay.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}

// Real is the wall clock backed by time.AfterFunc.
type Real struct{}

func (Real) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

func (Real) Now() time.Time { return time.Now() }
