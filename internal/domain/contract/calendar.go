package contract

import "time"

// Calendar answers whether a date is a non-working day (weekend or
// public holiday). Implementations must be pure and cheap: the
// scheduler calls this in a loop when skipping holiday runs.
type Calendar interface {
	IsNonWorkingDay(date time.Time) bool
}
