package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(h, m int) *time.Time {
	t := time.Date(2025, time.March, 10, h, m, 0, 0, time.UTC)
	return &t
}

func TestRecomputeFullDay(t *testing.T) {
	att := Attendance{EntryTime: clock(9, 0), ExitTime: clock(17, 30)}
	att.Recompute()

	require.NotNil(t, att.WorkDuration)
	assert.InDelta(t, 8.5, att.WorkDuration.Hours(), 0.001)
	assert.Equal(t, StatusPresent, att.Status)
}

func TestRecomputeHalfDay(t *testing.T) {
	att := Attendance{EntryTime: clock(9, 0), ExitTime: clock(14, 0)}
	att.Recompute()

	assert.Equal(t, StatusHalfAbsent, att.Status)
}

func TestRecomputeShortDay(t *testing.T) {
	att := Attendance{EntryTime: clock(9, 0), ExitTime: clock(12, 0)}
	att.Recompute()

	assert.Equal(t, StatusAbsent, att.Status)
}

func TestRecomputeExitBeforeEntry(t *testing.T) {
	att := Attendance{EntryTime: clock(17, 0), ExitTime: clock(9, 0)}
	att.Recompute()

	// Garbage clock order leaves the duration unset and derives Absent.
	assert.Nil(t, att.WorkDuration)
	assert.Equal(t, StatusAbsent, att.Status)
}

func TestRecomputeEntryOnly(t *testing.T) {
	att := Attendance{EntryTime: clock(9, 0)}
	att.Recompute()

	assert.Nil(t, att.WorkDuration)
	assert.Equal(t, StatusAbsent, att.Status)
}

func TestRecomputePreservesLeaveLikeStatus(t *testing.T) {
	leaveLike := []Status{
		StatusHoliday, StatusPaidLeave, StatusHalfPaidLeave,
		StatusUnpaidLeave, StatusHalfUnpaidLeave, StatusSickLeave,
	}
	for _, status := range leaveLike {
		att := Attendance{Status: status, EntryTime: clock(9, 0), ExitTime: clock(18, 0)}
		att.Recompute()
		assert.Equal(t, status, att.Status, string(status))
	}
}

func TestRecomputeIdempotent(t *testing.T) {
	att := Attendance{EntryTime: clock(9, 0), ExitTime: clock(17, 30)}
	att.Recompute()
	first := att.Status

	att.Recompute()
	assert.Equal(t, first, att.Status)
}

func TestClearTimes(t *testing.T) {
	att := Attendance{EntryTime: clock(9, 0), ExitTime: clock(17, 30)}
	att.Recompute()
	att.ClearTimes()

	assert.Nil(t, att.EntryTime)
	assert.Nil(t, att.ExitTime)
	assert.Nil(t, att.WorkDuration)
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusPresent.IsValid())
	assert.True(t, StatusLeave.IsValid())
	assert.False(t, Status("Vacation").IsValid())
}
