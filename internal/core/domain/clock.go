package domain

import (
	"fmt"
	"time"
	_ "time/tzdata" // slim images ship without a zoneinfo database
)

// DefaultTimezone is the civil timezone that defines "today" for every verification source.
const DefaultTimezone = "Asia/Shanghai"

// Clock computes civil-day boundaries in one fixed timezone, independent of the caller.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// NewClock loads the named timezone. now may be nil to use time.Now.
func NewClock(timezone string, now func() time.Time) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", timezone, err)
	}
	if now == nil {
		now = time.Now
	}
	return &Clock{loc: loc, now: now}, nil
}

// Location returns the clock's timezone.
func (c *Clock) Location() *time.Location {
	return c.loc
}

// Now returns the current instant in the clock's timezone.
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// StartOfDay returns local midnight of the current civil day.
func (c *Clock) StartOfDay() time.Time {
	n := c.Now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, c.loc)
}

// Today returns the current civil date as midnight UTC, the form stored in the ledger.
func (c *Clock) Today() time.Time {
	return CivilDate(c.Now())
}

// CivilDate strips t to its Y-M-D in t's own location, expressed at midnight UTC.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
