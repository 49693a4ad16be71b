package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentPeriod_UsesBusinessTimezone(t *testing.T) {
	require.NoError(t, Init("Europe/Istanbul"))
	// 22:30 UTC on Jan 31 is already Feb 1 in Istanbul (UTC+3).
	restore := SetNowFunc(func() time.Time {
		return time.Date(2025, time.January, 31, 22, 30, 0, 0, time.UTC)
	})
	defer restore()

	month, year := CurrentPeriod()
	assert.Equal(t, 2, month)
	assert.Equal(t, 2025, year)
}

func TestDueDate_ClampsToMonthLength(t *testing.T) {
	require.NoError(t, Init("UTC"))
	defer func() { _ = Init(DefaultTimezone) }()

	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), DueDate(2024, 2, 31))
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), DueDate(2025, 3, 10))
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), DueDate(2025, 4, 0))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 28, DaysInMonth(2025, 2))
	assert.Equal(t, 31, DaysInMonth(2025, 12))
}
