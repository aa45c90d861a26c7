package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("dev@jivass.com"))
	assert.False(t, IsValidEmail("dev@jivass"))
	assert.False(t, IsValidEmail("not-an-email"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2025-07-15")
	assert.True(t, ok)
	assert.Equal(t, 15, d.Day())

	_, ok = IsValidDate("15-07-2025")
	assert.False(t, ok)
}

func TestIsValidMonth(t *testing.T) {
	m, ok := IsValidMonth("2025-05")
	assert.True(t, ok)
	assert.Equal(t, 2025, m.Year())

	_, ok = IsValidMonth("2025-5")
	assert.False(t, ok)
}

func TestIsValidClockTime(t *testing.T) {
	ct, ok := IsValidClockTime("09:30")
	assert.True(t, ok)
	assert.Equal(t, 9, ct.Hour())
	assert.Equal(t, 30, ct.Minute())

	_, ok = IsValidClockTime("9:3")
	assert.False(t, ok)
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "start_date must be YYYY-MM-DD"},
		{Field: "leave_type", Message: "unknown leave type"},
	}
	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "unknown leave type", m["leave_type"])
	assert.Contains(t, errs.Error(), "start_date")
}
