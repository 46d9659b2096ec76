package models

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func TestInclusiveDays(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, InclusiveDays(date(2023, 7, 3), date(2023, 7, 7)), 5)
	assert.Equal(t, InclusiveDays(date(2023, 7, 3), date(2023, 7, 3)), 1)
	assert.Equal(t, InclusiveDays(date(2023, 12, 30), date(2024, 1, 2)), 4)
	assert.Equal(t, InclusiveDays(date(2023, 7, 7), date(2023, 7, 3)), 0)

	// time of day is ignored
	late := time.Date(2023, 7, 3, 23, 50, 0, 0, time.UTC)
	early := time.Date(2023, 7, 4, 0, 10, 0, 0, time.UTC)
	assert.Equal(t, InclusiveDays(late, early), 2)
}
