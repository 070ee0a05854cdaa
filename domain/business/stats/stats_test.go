package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
)

type tripRow struct {
	start     string
	from      string
	to        string
	duration  float64
	userType  string
	gender    string
	birthYear int
}

func newTable(t *testing.T, hasGender bool, hasBirthYear bool, rows ...tripRow) *trip.Table {
	t.Helper()
	table := trip.NewTable("chicago", nil, hasGender, hasBirthYear)
	for _, row := range rows {
		startTime, err := time.Parse("2006-01-02 15:04:05", row.start)
		require.NoError(t, err)
		tripData := trip.NewTripData(startTime, row.from, row.to, row.duration, row.userType)
		tripData.Gender = row.gender
		tripData.BirthYear = row.birthYear
		table.Add(tripData)
	}
	return table
}

func sampleTable(t *testing.T) *trip.Table {
	return newTable(t, true, true,
		tripRow{"2017-03-06 08:10:00", "Canal St", "Clark St", 600, "Subscriber", "Male", 1985},
		tripRow{"2017-03-06 08:40:00", "Canal St", "Clark St", 300, "Subscriber", "Female", 1990},
		tripRow{"2017-03-07 17:00:00", "Wells St", "Canal St", 1200, "Customer", "", 0},
		tripRow{"2017-04-03 08:05:00", "Canal St", "Wells St", 900, "Subscriber", "Male", 1985},
		tripRow{"2017-04-04 17:30:00", "Wells St", "Clark St", 3000, "Customer", "Female", 1962},
		tripRow{"2017-03-13 12:00:00", "Lake St", "Clark St", 0, "Dependent", "Male", 2001},
	)
}

func TestComputeTimeStats(t *testing.T) {
	timeStats := ComputeTimeStats(sampleTable(t))

	assert.Equal(t, StatusOK, timeStats.Status)
	assert.Equal(t, time.March, timeStats.Month)
	assert.Equal(t, 4, timeStats.MonthCount)
	assert.Equal(t, time.Monday, timeStats.Weekday)
	assert.Equal(t, 4, timeStats.WeekdayCount)
	assert.Equal(t, 8, timeStats.Hour)
	assert.Equal(t, 3, timeStats.HourCount)
}

func TestComputeTimeStats_TieUsesSmallestMonth(t *testing.T) {
	table := newTable(t, false, false,
		tripRow{"2017-05-01 10:00:00", "A", "B", 1, "Subscriber", "", 0},
		tripRow{"2017-02-01 10:00:00", "A", "B", 1, "Subscriber", "", 0},
	)

	timeStats := ComputeTimeStats(table)
	assert.Equal(t, time.February, timeStats.Month)
}

func TestComputeTimeStats_TieUsesFirstWeekdayFromSunday(t *testing.T) {
	tests := []struct {
		name  string
		start []string
		want  time.Weekday
	}{
		{"saturday and sunday", []string{"2017-01-07 10:00:00", "2017-01-08 10:00:00"}, time.Sunday},
		{"saturday and monday", []string{"2017-01-07 10:00:00", "2017-01-09 10:00:00"}, time.Monday},
		{"friday and wednesday", []string{"2017-01-06 10:00:00", "2017-01-04 10:00:00"}, time.Wednesday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := make([]tripRow, 0, len(tt.start))
			for _, start := range tt.start {
				rows = append(rows, tripRow{start, "A", "B", 1, "Subscriber", "", 0})
			}

			timeStats := ComputeTimeStats(newTable(t, false, false, rows...))
			assert.Equal(t, tt.want, timeStats.Weekday)
			assert.Equal(t, 1, timeStats.WeekdayCount)
		})
	}
}

func TestComputeTimeStats_TieUsesSmallestHour(t *testing.T) {
	table := newTable(t, false, false,
		tripRow{"2017-01-02 17:00:00", "A", "B", 1, "Subscriber", "", 0},
		tripRow{"2017-01-02 09:00:00", "A", "B", 1, "Subscriber", "", 0},
		tripRow{"2017-01-03 17:30:00", "A", "B", 1, "Subscriber", "", 0},
		tripRow{"2017-01-03 09:30:00", "A", "B", 1, "Subscriber", "", 0},
		tripRow{"2017-01-04 00:15:00", "A", "B", 1, "Subscriber", "", 0},
	)

	timeStats := ComputeTimeStats(table)
	assert.Equal(t, 9, timeStats.Hour)
	assert.Equal(t, 2, timeStats.HourCount)
}

func TestComputeStationStats(t *testing.T) {
	stationStats := ComputeStationStats(sampleTable(t), nil)

	assert.Equal(t, StatusOK, stationStats.Status)
	assert.Equal(t, "Canal St", stationStats.StartStation)
	assert.Equal(t, 3, stationStats.StartStationCount)
	assert.Equal(t, "Clark St", stationStats.EndStation)
	assert.Equal(t, 4, stationStats.EndStationCount)
	assert.Equal(t, StationPair{StartStation: "Canal St", EndStation: "Clark St", Count: 2}, stationStats.PopularTrip)
	assert.Equal(t, StatusUnavailable, stationStats.DistanceStatus)
}

func TestComputeStationStats_Distance(t *testing.T) {
	locations := station.Locations{}
	locations.Add(station.StationData{Name: "Canal St", Latitude: 0, Longitude: 0})
	locations.Add(station.StationData{Name: "Clark St", Latitude: 0, Longitude: 1})

	stationStats := ComputeStationStats(sampleTable(t), locations)

	assert.Equal(t, StatusOK, stationStats.DistanceStatus)
	assert.InDelta(t, 111.19, stationStats.DistanceKm, 0.5)
}

func TestComputeStationStats_PairTieIsDeterministic(t *testing.T) {
	table := newTable(t, false, false,
		tripRow{"2017-01-02 10:00:00", "B", "A", 1, "Subscriber", "", 0},
		tripRow{"2017-01-02 10:00:00", "A", "C", 1, "Subscriber", "", 0},
		tripRow{"2017-01-02 10:00:00", "A", "B", 1, "Subscriber", "", 0},
	)

	stationStats := ComputeStationStats(table, nil)
	assert.Equal(t, "A", stationStats.PopularTrip.StartStation)
	assert.Equal(t, "B", stationStats.PopularTrip.EndStation)
}

func TestComputeDurationStats(t *testing.T) {
	durationStats := ComputeDurationStats(sampleTable(t))

	assert.Equal(t, StatusOK, durationStats.Status)
	assert.Equal(t, 6, durationStats.Trips)
	assert.Equal(t, 6000.0, durationStats.TotalSeconds)
	assert.Equal(t, 1000.0, durationStats.MeanSeconds)
	assert.Equal(t, "01:40:00", durationStats.FormattedTotal())
	assert.Equal(t, "00:16:40", durationStats.FormattedMean())
}

func TestComputeDurationStats_MoreThanADay(t *testing.T) {
	table := newTable(t, false, false,
		tripRow{"2017-01-02 10:00:00", "A", "B", 45000, "Subscriber", "", 0},
		tripRow{"2017-01-02 11:00:00", "A", "B", 45000, "Subscriber", "", 0},
	)

	durationStats := ComputeDurationStats(table)
	assert.Equal(t, "25:00:00", durationStats.FormattedTotal())
	assert.Equal(t, "12:30:00", durationStats.FormattedMean())
}

func TestComputeUserTypeStats(t *testing.T) {
	userTypeStats := ComputeUserTypeStats(sampleTable(t))

	assert.Equal(t, StatusOK, userTypeStats.Status)
	assert.Equal(t, []modecounter.Count[string]{
		{Value: "Subscriber", Count: 3},
		{Value: "Customer", Count: 2},
		{Value: "Dependent", Count: 1},
	}, userTypeStats.Counts)
}

func TestComputeDemographicStats(t *testing.T) {
	demographicStats := ComputeDemographicStats(sampleTable(t))

	assert.Equal(t, StatusOK, demographicStats.GenderStatus)
	assert.Equal(t, []modecounter.Count[string]{
		{Value: "Male", Count: 3},
		{Value: "Female", Count: 2},
	}, demographicStats.GenderCounts)

	assert.Equal(t, StatusOK, demographicStats.BirthYearStatus)
	assert.Equal(t, 1962, demographicStats.OldestBirthYear)
	assert.Equal(t, 2001, demographicStats.YoungestBirthYear)
	assert.Equal(t, 1985, demographicStats.CommonBirthYear)
	assert.Equal(t, 2, demographicStats.CommonBirthYearUses)
}

func TestComputeDemographicStats_BirthYearTieUsesSmallestYear(t *testing.T) {
	table := newTable(t, false, true,
		tripRow{"2017-01-02 10:00:00", "A", "B", 1, "Subscriber", "", 1990},
		tripRow{"2017-01-02 10:00:00", "A", "B", 1, "Subscriber", "", 2000},
		tripRow{"2017-01-02 10:00:00", "A", "B", 1, "Subscriber", "", 1975},
		tripRow{"2017-01-02 10:00:00", "A", "B", 1, "Subscriber", "", 1990},
		tripRow{"2017-01-02 10:00:00", "A", "B", 1, "Subscriber", "", 1975},
	)

	demographicStats := ComputeDemographicStats(table)
	assert.Equal(t, StatusOK, demographicStats.BirthYearStatus)
	assert.Equal(t, 1975, demographicStats.CommonBirthYear)
	assert.Equal(t, 2, demographicStats.CommonBirthYearUses)
	assert.Equal(t, 1975, demographicStats.OldestBirthYear)
	assert.Equal(t, 2000, demographicStats.YoungestBirthYear)
}

func TestComputeDemographicStats_MissingColumns(t *testing.T) {
	table := newTable(t, false, false,
		tripRow{"2017-01-02 10:00:00", "A", "B", 10, "Subscriber", "", 0},
	)

	demographicStats := ComputeDemographicStats(table)
	assert.Equal(t, StatusUnavailable, demographicStats.GenderStatus)
	assert.Nil(t, demographicStats.GenderCounts)
	assert.Equal(t, StatusUnavailable, demographicStats.BirthYearStatus)
}

func TestComputeDemographicStats_ColumnWithoutValues(t *testing.T) {
	table := newTable(t, true, true,
		tripRow{"2017-01-02 10:00:00", "A", "B", 10, "Customer", "", 0},
	)

	demographicStats := ComputeDemographicStats(table)
	assert.Equal(t, StatusNoData, demographicStats.GenderStatus)
	assert.Equal(t, StatusNoData, demographicStats.BirthYearStatus)
}

func TestEmptyTableReportsNoData(t *testing.T) {
	table := newTable(t, true, true)

	assert.Equal(t, StatusNoData, ComputeTimeStats(table).Status)

	stationStats := ComputeStationStats(table, nil)
	assert.Equal(t, StatusNoData, stationStats.Status)
	assert.Equal(t, StatusNoData, stationStats.DistanceStatus)

	assert.Equal(t, StatusNoData, ComputeDurationStats(table).Status)
	assert.Equal(t, StatusNoData, ComputeUserTypeStats(table).Status)

	demographicStats := ComputeDemographicStats(table)
	assert.Equal(t, StatusNoData, demographicStats.GenderStatus)
	assert.Equal(t, StatusNoData, demographicStats.BirthYearStatus)
}
