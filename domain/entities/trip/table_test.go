package trip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTable(t *testing.T, startTimes ...string) *Table {
	t.Helper()
	table := NewTable("washington", []string{"Start Time"}, false, false)
	for _, startTime := range startTimes {
		parsed, err := time.Parse("2006-01-02 15:04:05", startTime)
		require.NoError(t, err)
		table.Add(NewTripData(parsed, "A", "B", 60, "Subscriber"))
	}
	return table
}

func TestNewTripData_DerivesCalendarFields(t *testing.T) {
	startTime := time.Date(2017, time.March, 6, 17, 45, 0, 0, time.UTC)
	tripData := NewTripData(startTime, "A", "B", 60, "Customer")

	assert.Equal(t, 3, tripData.Month)
	assert.Equal(t, time.Monday, tripData.Weekday)
	assert.Equal(t, "Monday", tripData.GetWeekdayName())
	assert.Equal(t, 17, tripData.Hour)
	assert.False(t, tripData.HasGender())
	assert.False(t, tripData.HasBirthYear())
}

func TestTable_FilterByMonth(t *testing.T) {
	table := buildTable(t, "2017-03-06 10:00:00", "2017-04-06 10:00:00", "2017-03-20 10:00:00")

	filtered, err := table.FilterByMonth(time.March)
	require.NoError(t, err)

	assert.Equal(t, 2, filtered.Len())
	for _, tripData := range filtered.Trips {
		assert.Equal(t, 3, tripData.Month)
	}
	assert.Equal(t, 3, table.Len(), "filtering must not modify the original table")
	assert.Equal(t, table.City, filtered.City)
}

func TestTable_FilterByWeekday(t *testing.T) {
	table := buildTable(t, "2017-03-06 10:00:00", "2017-03-07 10:00:00", "2017-03-13 10:00:00")

	filtered, err := table.FilterByWeekday(time.Monday)
	require.NoError(t, err)

	assert.Equal(t, 2, filtered.Len())
	for _, tripData := range filtered.Trips {
		assert.Equal(t, "Monday", tripData.GetWeekdayName())
	}
}

func TestTable_FilterWithoutMatches(t *testing.T) {
	table := buildTable(t, "2017-03-06 10:00:00")

	filtered, err := table.FilterByMonth(time.June)
	require.NoError(t, err)
	assert.True(t, filtered.IsEmpty())
	assert.NotNil(t, filtered.Trips)
}

func TestTable_FilterKeepsTripOrder(t *testing.T) {
	table := buildTable(t,
		"2017-03-06 10:00:00", "2017-03-07 10:00:00", "2017-03-13 11:00:00",
		"2017-04-03 10:00:00", "2017-03-20 12:00:00",
	)

	byMonth, err := table.FilterByMonth(time.March)
	require.NoError(t, err)
	byDay, err := byMonth.FilterByWeekday(time.Monday)
	require.NoError(t, err)

	require.Equal(t, 3, byDay.Len())
	assert.Same(t, table.Trips[0], byDay.Trips[0])
	assert.Same(t, table.Trips[2], byDay.Trips[1])
	assert.Same(t, table.Trips[4], byDay.Trips[2])
}

func TestTable_FilterEmptyTable(t *testing.T) {
	table := buildTable(t)

	filtered, err := table.FilterByWeekday(time.Sunday)
	require.NoError(t, err)
	assert.True(t, filtered.IsEmpty())
}

func TestTable_Page(t *testing.T) {
	table := buildTable(t,
		"2017-01-01 00:00:00", "2017-01-02 00:00:00", "2017-01-03 00:00:00",
		"2017-01-04 00:00:00", "2017-01-05 00:00:00", "2017-01-06 00:00:00",
		"2017-01-07 00:00:00",
	)

	assert.Len(t, table.Page(0, 5), 5)
	assert.Len(t, table.Page(5, 5), 2)
	assert.Empty(t, table.Page(10, 5))
	assert.Empty(t, table.Page(0, 0))
}
