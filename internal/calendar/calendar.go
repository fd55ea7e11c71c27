package calendar

import (
	"log"
	"strings"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/dk"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/no"
	"github.com/rickar/cal/v2/se"
	"github.com/rickar/cal/v2/us"
)

// regionHolidays maps supported region codes to their public holiday
// definitions. Regions not listed here degrade to weekends-only so
// scheduling stays live.
var regionHolidays = map[string][]*cal.Holiday{
	"no": no.Holidays,
	"dk": dk.Holidays,
	"se": se.Holidays,
	"de": de.Holidays,
	"gb": gb.Holidays,
	"us": us.Holidays,
}

// WorkdayCalendar answers whether a date is a weekend or a public
// holiday for the configured region.
type WorkdayCalendar struct {
	cal *cal.BusinessCalendar
}

func New(region string) *WorkdayCalendar {
	c := cal.NewBusinessCalendar()

	holidays, ok := regionHolidays[strings.ToLower(region)]
	if !ok {
		log.Printf("No holiday definitions for region %q, skipping weekends only", region)
	}
	c.AddHoliday(holidays...)

	return &WorkdayCalendar{cal: c}
}

func (w *WorkdayCalendar) IsNonWorkingDay(date time.Time) bool {
	return !w.cal.IsWorkday(date)
}
