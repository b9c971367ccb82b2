package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartOfWeek(t *testing.T) {
	// 2024-03-13 is a Wednesday; the week starts on Sunday 2024-03-10.
	wednesday := time.Date(2024, 3, 13, 15, 30, 0, 0, time.UTC)
	require.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), StartOfWeek(wednesday))

	// A Sunday is its own week start.
	sunday := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)
	require.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), StartOfWeek(sunday))
}

func TestDaysBetween(t *testing.T) {
	lateNight := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)
	earlyMorning := time.Date(2024, 3, 11, 0, 1, 0, 0, time.UTC)

	require.Equal(t, 1, DaysBetween(lateNight, earlyMorning))
	require.Equal(t, 0, DaysBetween(lateNight, lateNight))
	require.Equal(t, 5, DaysBetween(
		time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC),
	))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 3, 10, 0, 0, 1, 0, time.UTC)
	b := time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC)
	require.True(t, SameDay(a, b))
	require.False(t, SameDay(a, b.Add(time.Minute)))
}
