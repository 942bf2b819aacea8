package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthOf(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestParseDateRangeMonthYear(t *testing.T) {
	start, end, current := ParseDateRange("Jan 2020 - Mar 2022")
	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, monthOf(2020, time.January), *start)
	assert.Equal(t, monthOf(2022, time.March), *end)
	assert.False(t, current)
}

func TestParseDateRangePresent(t *testing.T) {
	start, end, current := ParseDateRange("Jan 2020 - Present")
	require.NotNil(t, start)
	assert.Equal(t, monthOf(2020, time.January), *start)
	assert.Nil(t, end, "an ongoing position has no end date")
	assert.True(t, current)
}

func TestParseDateRangeBareYears(t *testing.T) {
	start, end, current := ParseDateRange("2018-2021")
	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, 2018, start.Year())
	assert.Equal(t, 2021, end.Year())
	assert.False(t, current)
}

func TestParseDateRangeNumericMonths(t *testing.T) {
	start, end, _ := ParseDateRange("03/2019 - 11/2021")
	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, monthOf(2019, time.March), *start)
	assert.Equal(t, monthOf(2021, time.November), *end)
}

func TestParseDateRangeTwoDigitYearPivot(t *testing.T) {
	start, _, _ := ParseDateRange("Jan '99 - Dec '01")
	require.NotNil(t, start)
	assert.Equal(t, 1999, start.Year())

	_, end, _ := ParseDateRange("Jan '99 - Dec '01")
	require.NotNil(t, end)
	assert.Equal(t, 2001, end.Year())
}

func TestParseDateRangeUnordered(t *testing.T) {
	// Noisy lines list dates out of order; earliest wins as start.
	start, end, _ := ParseDateRange("2021, 2017, 2019")
	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, 2017, start.Year())
	assert.Equal(t, 2021, end.Year())
}

func TestParseDateRangeVerboseMonths(t *testing.T) {
	start, end, _ := ParseDateRange("September 2015 to December 2018")
	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, monthOf(2015, time.September), *start)
	assert.Equal(t, monthOf(2018, time.December), *end)
}

func TestParseDateRangeGarbage(t *testing.T) {
	for _, s := range []string{"", "   ", "no dates here", "call 555-1234"} {
		start, end, current := ParseDateRange(s)
		assert.Nil(t, start, "input %q", s)
		assert.Nil(t, end, "input %q", s)
		assert.False(t, current, "input %q", s)
	}
}

func TestParseDateRangeCurrentOnly(t *testing.T) {
	start, end, current := ParseDateRange("Present")
	assert.Nil(t, start)
	assert.Nil(t, end)
	assert.True(t, current)
}
