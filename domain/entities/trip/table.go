package trip

import (
	"fmt"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

const (
	rowColumn     = "row"
	monthColumn   = "month"
	weekdayColumn = "weekday"
)

// Table ordered collection of trips that belongs to a single city.
// Once loaded it is never modified: filters return a new Table sharing the same trips.
type Table struct {
	City         string
	Header       []string
	Trips        []*TripData
	HasGender    bool
	HasBirthYear bool
}

func NewTable(city string, header []string, hasGender bool, hasBirthYear bool) *Table {
	return &Table{
		City:         city,
		Header:       header,
		HasGender:    hasGender,
		HasBirthYear: hasBirthYear,
	}
}

// Add appends a trip to the table. Only used while loading.
func (t *Table) Add(tripData *TripData) {
	t.Trips = append(t.Trips, tripData)
}

func (t *Table) Len() int {
	return len(t.Trips)
}

func (t *Table) IsEmpty() bool {
	return len(t.Trips) == 0
}

// FilterByMonth returns a table with the trips that started in the given month
func (t *Table) FilterByMonth(month time.Month) (*Table, error) {
	return t.filter(monthColumn, int(month))
}

// FilterByWeekday returns a table with the trips that started in the given weekday
func (t *Table) FilterByWeekday(weekday time.Weekday) (*Table, error) {
	return t.filter(weekdayColumn, int(weekday))
}

// Page returns the trips in [offset, offset+size). The slice is empty when offset is out of range
func (t *Table) Page(offset int, size int) []*TripData {
	if offset < 0 || offset >= len(t.Trips) || size <= 0 {
		return nil
	}
	end := offset + size
	if end > len(t.Trips) {
		end = len(t.Trips)
	}
	return t.Trips[offset:end]
}

// frame returns the calendar fields of the trips as a dataframe. The row column keeps the
// position of each trip in the table
func (t *Table) frame() dataframe.DataFrame {
	rows := make([]int, len(t.Trips))
	months := make([]int, len(t.Trips))
	weekdays := make([]int, len(t.Trips))
	for idx, td := range t.Trips {
		rows[idx] = idx
		months[idx] = td.Month
		weekdays[idx] = int(td.Weekday)
	}

	return dataframe.New(
		series.New(rows, series.Int, rowColumn),
		series.New(months, series.Int, monthColumn),
		series.New(weekdays, series.Int, weekdayColumn),
	)
}

func (t *Table) filter(column string, value int) (*Table, error) {
	filtered := NewTable(t.City, t.Header, t.HasGender, t.HasBirthYear)
	filtered.Trips = make([]*TripData, 0, len(t.Trips))
	if t.IsEmpty() {
		return filtered, nil
	}

	selected := t.frame().Filter(dataframe.F{
		Colname:    column,
		Comparator: series.Eq,
		Comparando: value,
	})
	if selected.Err != nil {
		return nil, fmt.Errorf("error filtering trips by %s: %w", column, selected.Err)
	}

	rows, err := selected.Col(rowColumn).Int()
	if err != nil {
		return nil, fmt.Errorf("error filtering trips by %s: %w", column, err)
	}
	for _, row := range rows {
		filtered.Trips = append(filtered.Trips, t.Trips[row])
	}
	return filtered, nil
}
