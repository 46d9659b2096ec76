package models

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func TestAttendance_Recalculate(t *testing.T) {
	day := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name         string
		checkIn      time.Time
		checkOut     time.Time
		workingHours float64
		overtime     float64
	}

	run := func(t *testing.T, tc testCase) {
		attendance := Attendance{CheckIn: tc.checkIn, CheckOut: tc.checkOut}
		attendance.Recalculate()
		assert.Equal(t, attendance.WorkingHours, tc.workingHours)
		assert.Equal(t, attendance.Overtime, tc.overtime)
	}

	testCases := []testCase{
		{
			name:         "standard day",
			checkIn:      day.Add(9 * time.Hour),
			checkOut:     day.Add(17 * time.Hour),
			workingHours: 8,
			overtime:     0,
		},
		{
			name:         "overtime",
			checkIn:      day.Add(9 * time.Hour),
			checkOut:     day.Add(19*time.Hour + 30*time.Minute),
			workingHours: 10.5,
			overtime:     2.5,
		},
		{
			name:         "partial hours rounded",
			checkIn:      day.Add(9 * time.Hour),
			checkOut:     day.Add(13*time.Hour + 20*time.Minute),
			workingHours: 4.33,
			overtime:     0,
		},
		{
			name:     "missing check-out",
			checkIn:  day.Add(9 * time.Hour),
			checkOut: time.Time{},
		},
		{
			name:     "check-out before check-in",
			checkIn:  day.Add(17 * time.Hour),
			checkOut: day.Add(9 * time.Hour),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run(t, tc)
		})
	}
}
