package dateutil_test

import (
	"testing"
	"time"

	"github.com/SscSPs/ledger_entry_app/internal/utils/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	parsed, err := dateutil.ParseDay("2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), parsed)

	_, err = dateutil.ParseDay("31-03-2024")
	assert.Error(t, err)
}

func TestFormatDay(t *testing.T) {
	// A non-UTC timestamp renders as its UTC calendar date.
	loc := time.FixedZone("UTC+9", 9*3600)
	assert.Equal(t, "2024-03-30", dateutil.FormatDay(time.Date(2024, 3, 31, 8, 0, 0, 0, loc)))
	assert.Equal(t, "2024-03-31", dateutil.FormatDay(time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)))
}

func TestAddDays(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		days     int
		expected string
	}{
		{name: "forward one day", input: "2024-03-31", days: 1, expected: "2024-04-01"},
		{name: "backward one day", input: "2024-03-01", days: -1, expected: "2024-02-29"},
		{name: "across year boundary", input: "2023-12-31", days: 1, expected: "2024-01-01"},
		{name: "DST spring-forward date stays integral", input: "2024-03-30", days: 1, expected: "2024-03-31"},
		{name: "invalid input unchanged", input: "whenever", days: 3, expected: "whenever"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, dateutil.AddDays(tc.input, tc.days))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	testCases := []struct {
		name     string
		from     string
		to       string
		expected int
		ok       bool
	}{
		{name: "adjacent days", from: "2024-03-30", to: "2024-03-31", expected: 1, ok: true},
		{name: "same day", from: "2024-03-31", to: "2024-03-31", expected: 0, ok: true},
		{name: "negative gap", from: "2024-03-31", to: "2024-03-29", expected: -2, ok: true},
		{name: "across DST transition", from: "2024-03-30", to: "2024-04-02", expected: 3, ok: true},
		{name: "invalid from", from: "nope", to: "2024-03-31", ok: false},
		{name: "invalid to", from: "2024-03-31", to: "nope", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gap, ok := dateutil.DaysBetween(tc.from, tc.to)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, gap)
			}
		})
	}
}
