// Package schedule decides whether a student may hold one more
// active registration given the events they are already committed to.
//
// Every event occupies a busy window around its start time. Two
// events conflict when they fall on the same calendar date and their
// windows overlap. Events on different dates never conflict, even
// when a window crosses midnight.
package schedule

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultPreBuffer  = time.Hour
	DefaultPostBuffer = 2 * time.Hour
)

type Config struct {
	// PreBuffer is how long before the start the student is
	// considered busy, PostBuffer how long after.
	PreBuffer  time.Duration
	PostBuffer time.Duration
}

type Checker struct {
	pre  time.Duration
	post time.Duration
}

func NewChecker(cfg Config) Checker {
	c := Checker{
		pre:  cfg.PreBuffer,
		post: cfg.PostBuffer,
	}
	if c.pre <= 0 {
		c.pre = DefaultPreBuffer
	}
	if c.post <= 0 {
		c.post = DefaultPostBuffer
	}
	return c
}

// Busy is one existing commitment: an event the student holds an
// active registration for.
type Busy struct {
	EventID  uuid.UUID
	Title    string
	StartsAt time.Time
}

// FindConflict returns the first commitment whose busy window
// overlaps the candidate's, or ok=false when the student is free.
// Commitments without a start time are skipped: a malformed stored
// date must not block a registration.
func (c Checker) FindConflict(candidate time.Time, busy []Busy) (Busy, bool) {
	candStart, candEnd := c.window(candidate)
	for _, b := range busy {
		if b.StartsAt.IsZero() {
			continue
		}
		if !sameDate(candidate, b.StartsAt) {
			continue
		}
		busyStart, busyEnd := c.window(b.StartsAt)
		if candStart.Before(busyEnd) && candEnd.After(busyStart) {
			return b, true
		}
	}
	return Busy{}, false
}

func (c Checker) window(start time.Time) (time.Time, time.Time) {
	return start.Add(-c.pre), start.Add(c.post)
}

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
