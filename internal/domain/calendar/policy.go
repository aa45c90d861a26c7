// Package calendar holds the company holiday policy shared by the
// attendance, leave, and rollup services.
package calendar

import "time"

type MonthDay struct {
	Month time.Month
	Day   int
}

// Policy classifies calendar days as working days or holidays. Public
// holidays are a fixed (month, day) set and do not account for
// observances that move between calendar days from year to year.
type Policy struct {
	publicHolidays map[MonthDay]struct{}
}

// defaultPublicHolidays is the fixed company holiday table: New Year,
// Republic Day, Labour Day, Independence Day, Gandhi Jayanti, Christmas.
var defaultPublicHolidays = []MonthDay{
	{time.January, 1},
	{time.January, 26},
	{time.May, 1},
	{time.August, 15},
	{time.October, 2},
	{time.December, 25},
}

// NewPolicy returns the default company holiday policy.
func NewPolicy() *Policy {
	return NewPolicyWithHolidays(defaultPublicHolidays)
}

// NewPolicyWithHolidays builds a policy from an explicit (month, day) set.
func NewPolicyWithHolidays(days []MonthDay) *Policy {
	p := &Policy{publicHolidays: make(map[MonthDay]struct{}, len(days))}
	for _, d := range days {
		p.publicHolidays[d] = struct{}{}
	}
	return p
}

// IsWeekend reports whether d falls on Saturday or Sunday.
func (p *Policy) IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsPublicHoliday reports whether d matches the fixed holiday table,
// regardless of year.
func (p *Policy) IsPublicHoliday(d time.Time) bool {
	_, ok := p.publicHolidays[MonthDay{d.Month(), d.Day()}]
	return ok
}

// IsHoliday reports whether d is a weekend or a public holiday.
func (p *Policy) IsHoliday(d time.Time) bool {
	return p.IsWeekend(d) || p.IsPublicHoliday(d)
}
