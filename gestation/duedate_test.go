package gestation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDueDate_LastPeriod(t *testing.T) {
	tests := []struct {
		name      string
		reference time.Time
		want      time.Time
	}{
		{"plain date", day(2026, 1, 15), day(2026, 10, 22)},
		{"leap day", day(2024, 2, 29), day(2024, 12, 7)},
		{"year boundary", day(2025, 12, 28), day(2026, 10, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DueDate(tt.reference, MethodLastPeriod)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDueDate_Conception(t *testing.T) {
	got, err := DueDate(day(2026, 1, 15), MethodConception)
	require.NoError(t, err)
	assert.Equal(t, day(2026, 10, 8), got)
}

func TestDueDate_Ultrasound(t *testing.T) {
	reported := day(2026, 9, 30)
	got, err := DueDate(reported, MethodUltrasound)
	require.NoError(t, err)
	assert.Equal(t, reported, got)
}

func TestDueDate_UnknownMethod(t *testing.T) {
	_, err := DueDate(day(2026, 1, 15), Method(99))
	assert.Error(t, err)
}

func TestProgressAt(t *testing.T) {
	due := day(2026, 10, 22)

	// 100 days before the due date: 180 days elapsed.
	progress := ProgressAt(due, day(2026, 7, 14))
	assert.Equal(t, 100, progress.DaysRemaining)
	assert.Equal(t, 25, progress.Week)
	assert.Equal(t, 5, progress.Day)

	// On the due date itself.
	progress = ProgressAt(due, due)
	assert.Equal(t, 0, progress.DaysRemaining)
	assert.Equal(t, 40, progress.Week)
	assert.Equal(t, 0, progress.Day)

	// Past the due date the remaining count goes negative.
	progress = ProgressAt(due, day(2026, 10, 25))
	assert.Equal(t, -3, progress.DaysRemaining)

	// Long before the start of the pregnancy elapsed clamps to zero.
	progress = ProgressAt(due, day(2025, 1, 1))
	assert.Equal(t, 0, progress.Week)
	assert.Equal(t, 0, progress.Day)

	// Time-of-day is irrelevant.
	progress = ProgressAt(due.Add(23*time.Hour), day(2026, 7, 14).Add(time.Minute))
	assert.Equal(t, 100, progress.DaysRemaining)
}
