package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestIsNonWorkingDay_Weekends(t *testing.T) {
	c := New("no")

	assert.True(t, c.IsNonWorkingDay(date(2025, time.December, 20)), "Saturday")
	assert.True(t, c.IsNonWorkingDay(date(2025, time.December, 21)), "Sunday")
	assert.False(t, c.IsNonWorkingDay(date(2025, time.December, 22)), "Monday")
}

func TestIsNonWorkingDay_NorwegianHolidays(t *testing.T) {
	c := New("no")

	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{name: "first day of Christmas", day: date(2025, time.December, 25), want: true},
		{name: "second day of Christmas", day: date(2025, time.December, 26), want: true},
		{name: "constitution day", day: date(2026, time.May, 18), want: false}, // May 17th 2026 is a Sunday; the 18th is a regular Monday
		{name: "constitution day on a weekday", day: date(2027, time.May, 17), want: true},
		{name: "regular Wednesday", day: date(2025, time.December, 17), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsNonWorkingDay(tt.day))
		})
	}
}

func TestIsNonWorkingDay_UnknownRegionDegradesToWeekendsOnly(t *testing.T) {
	c := New("atlantis")

	// Christmas 2025 is a Thursday; without holiday data it counts as a workday.
	assert.False(t, c.IsNonWorkingDay(date(2025, time.December, 25)))
	assert.True(t, c.IsNonWorkingDay(date(2025, time.December, 27)), "Saturday still skipped")
}

func TestIsNonWorkingDay_RegionCodeIsCaseInsensitive(t *testing.T) {
	c := New("NO")

	assert.True(t, c.IsNonWorkingDay(date(2025, time.December, 25)))
}
