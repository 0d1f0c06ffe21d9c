package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDayAndEndOfDay(t *testing.T) {
	date := time.Date(2024, 6, 15, 14, 30, 45, 123456789, time.UTC)

	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), StartOfDay(date))
	assert.Equal(t, time.Date(2024, 6, 15, 23, 59, 59, 999000000, time.UTC), EndOfDay(date))
}

func TestStartOfWeek(t *testing.T) {
	t.Run("Week starts on Sunday", func(t *testing.T) {
		// Saturday June 15, 2024 → Sunday June 9.
		saturday := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), StartOfWeek(saturday))
	})

	t.Run("Sunday maps to itself", func(t *testing.T) {
		sunday := time.Date(2024, 6, 9, 23, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), StartOfWeek(sunday))
	})

	t.Run("Week crossing a month boundary", func(t *testing.T) {
		// Monday July 1, 2024 → Sunday June 30.
		monday := time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), StartOfWeek(monday))
	})
}

func TestMonthAndYearBoundaries(t *testing.T) {
	t.Run("February of a leap year ends on the 29th", func(t *testing.T) {
		date := time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 999000000, time.UTC), EndOfMonth(date))
	})

	t.Run("February of a common year ends on the 28th", func(t *testing.T) {
		date := time.Date(2023, 2, 10, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2023, 2, 28, 23, 59, 59, 999000000, time.UTC), EndOfMonth(date))
	})

	t.Run("Year boundaries", func(t *testing.T) {
		date := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), StartOfYear(date))
		assert.Equal(t, time.Date(2024, 12, 31, 23, 59, 59, 999000000, time.UTC), EndOfYear(date))
	})
}

func TestAddDays(t *testing.T) {
	date := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC), AddDays(date, -1), "stepping back over a leap day")
	assert.Equal(t, time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC), AddDays(date, 7))
	assert.Equal(t, date, AddDays(date, 0))
}
