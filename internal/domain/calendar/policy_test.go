package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsWeekend(t *testing.T) {
	p := NewPolicy()

	assert.True(t, p.IsWeekend(date(2025, time.January, 4)))  // Saturday
	assert.True(t, p.IsWeekend(date(2025, time.January, 5)))  // Sunday
	assert.False(t, p.IsWeekend(date(2025, time.January, 6))) // Monday
}

func TestIsPublicHoliday(t *testing.T) {
	p := NewPolicy()

	holidays := []time.Time{
		date(2025, time.January, 1),
		date(2025, time.January, 26),
		date(2025, time.May, 1),
		date(2025, time.August, 15),
		date(2025, time.October, 2),
		date(2025, time.December, 25),
	}
	for _, d := range holidays {
		assert.True(t, p.IsPublicHoliday(d), d.Format(time.DateOnly))
	}

	// Year-independent
	assert.True(t, p.IsPublicHoliday(date(1999, time.December, 25)))

	assert.False(t, p.IsPublicHoliday(date(2025, time.March, 17)))
	assert.False(t, p.IsPublicHoliday(date(2025, time.December, 24)))
}

func TestIsHoliday(t *testing.T) {
	p := NewPolicy()

	// Weekday public holiday
	assert.True(t, p.IsHoliday(date(2025, time.May, 1))) // Thursday
	// Plain weekend
	assert.True(t, p.IsHoliday(date(2025, time.May, 3)))
	// Regular working day
	assert.False(t, p.IsHoliday(date(2025, time.May, 2)))
}

func TestCustomHolidaySet(t *testing.T) {
	p := NewPolicyWithHolidays([]MonthDay{{time.July, 4}})

	assert.True(t, p.IsPublicHoliday(date(2025, time.July, 4)))
	assert.False(t, p.IsPublicHoliday(date(2025, time.January, 1)))
}
