package loader

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"

	"bikeshare/client/config"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
)

const (
	loaderStr     = "loader"
	stationFields = 3
)

// Loader reads the trips of a city from its configured source
type Loader struct {
	config *config.ClientConfig
}

func NewLoader(clientConfig *config.ClientConfig) *Loader {
	return &Loader{
		config: clientConfig,
	}
}

func (l *Loader) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", loaderStr, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", loaderStr, method, message)
}

// Load reads the whole table of the selected city and applies the month and day filters
func (l *Loader) Load(selection filter.Selection) (*trip.Table, error) {
	table, err := l.LoadTable(selection.City)
	if err != nil {
		return nil, err
	}

	filtered, err := ApplyFilters(table, selection)
	if err != nil {
		return nil, err
	}

	log.Debug(l.getLogMessage("Load", fmt.Sprintf("%v of %v trips left after filtering by %s", filtered.Len(), table.Len(), selection), nil))
	return filtered, nil
}

// LoadTable reads every trip of the city. Any invalid row makes the whole load fail
func (l *Loader) LoadTable(city string) (*trip.Table, error) {
	sourcePath, err := l.config.SourcePath(city)
	if err != nil {
		return nil, err
	}

	sourceFile, err := os.Open(sourcePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, sourcePath)
		}
		return nil, fmt.Errorf("error opening %s: %w", sourcePath, err)
	}

	defer func(sourceFile *os.File) {
		err := sourceFile.Close()
		if err != nil {
			log.Error(l.getLogMessage("LoadTable", fmt.Sprintf("error closing %s", sourcePath), err))
		}
	}(sourceFile)

	table, err := ReadTable(sourceFile, city, l.config.Columns, l.config.TimestampLayouts)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", sourcePath, err)
	}

	log.Debug(l.getLogMessage("LoadTable", fmt.Sprintf("[city: %s] %v trips loaded from %s", city, table.Len(), sourcePath), nil))
	return table, nil
}

// LoadStations reads the location of the stations of the city. A city without stations file
// returns empty locations
func (l *Loader) LoadStations(city string) (station.Locations, error) {
	stationsPath, err := l.config.StationsPath(city)
	if err != nil {
		return nil, err
	}

	if stationsPath == "" {
		log.Debug(l.getLogMessage("LoadStations", fmt.Sprintf("[city: %s] no stations file configured", city), nil))
		return station.Locations{}, nil
	}

	stationsFile, err := os.Open(stationsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, stationsPath)
		}
		return nil, fmt.Errorf("error opening %s: %w", stationsPath, err)
	}
	defer stationsFile.Close()

	locations, err := ReadStations(stationsFile)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", stationsPath, err)
	}
	return locations, nil
}

// ApplyFilters returns the trips of the table that match the month and day of the selection
func ApplyFilters(table *trip.Table, selection filter.Selection) (*trip.Table, error) {
	filtered := table
	if selection.FiltersByMonth() {
		month, err := filter.MonthNumber(selection.Month)
		if err != nil {
			return nil, err
		}
		filtered, err = filtered.FilterByMonth(month)
		if err != nil {
			return nil, err
		}
	}

	if selection.FiltersByDay() {
		weekday, err := filter.Weekday(selection.Day)
		if err != nil {
			return nil, err
		}
		filtered, err = filtered.FilterByWeekday(weekday)
		if err != nil {
			return nil, err
		}
	}

	return filtered, nil
}

// ReadTable reads a CSV with header from reader
func ReadTable(reader io.Reader, city string, columnsConfig config.ColumnsConfig, layouts []string) (*trip.Table, error) {
	header, records, err := readRecords(reader)
	if err != nil {
		return nil, err
	}

	columns, err := resolveColumns(header, columnsConfig)
	if err != nil {
		return nil, err
	}

	table := trip.NewTable(city, header, columns.hasGender(), columns.hasBirthYear())
	for idx, record := range records {
		tripData, err := getTripData(record, columns, layouts)
		if err != nil {
			return nil, fmt.Errorf("row %v: %w", idx+1, err)
		}
		table.Add(tripData)
	}

	return table, nil
}

// ReadStations reads a CSV with header name,latitude,longitude
func ReadStations(reader io.Reader) (station.Locations, error) {
	header, records, err := readRecords(reader)
	if err != nil {
		return nil, err
	}
	if len(header) != stationFields {
		return nil, fmt.Errorf("%w: expected %v station fields, got %v", ErrMalformedSource, stationFields, len(header))
	}

	locations := station.Locations{}
	for idx, record := range records {
		row := idx + 1
		latitude, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %v: invalid latitude %q: %w", row, record[1], ErrInvalidStationData)
		}

		longitude, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %v: invalid longitude %q: %w", row, record[2], ErrInvalidStationData)
		}

		locations.Add(station.StationData{
			Name:      strings.TrimSpace(record[0]),
			Latitude:  latitude,
			Longitude: longitude,
		})
	}

	return locations, nil
}

// readRecords loads the whole CSV as a dataframe of strings and returns its header and rows.
// The header is read as a regular row so a source without trips still has its columns
func readRecords(reader io.Reader) ([]string, [][]string, error) {
	frame := dataframe.ReadCSV(reader,
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
	if frame.Err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrMalformedSource, frame.Err)
	}

	// first record has the names generated by the dataframe
	records := frame.Records()
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("%w: empty source", ErrMalformedSource)
	}
	return records[1], records[2:], nil
}

func getTripData(record []string, columns tripColumns, layouts []string) (*trip.TripData, error) {
	startTime, err := parseTimestamp(record[columns.StartTime], layouts)
	if err != nil {
		log.Debugf("Invalid start time: %v", record[columns.StartTime])
		return nil, fmt.Errorf("%w: start time %q: %w", ErrInvalidTripData, record[columns.StartTime], err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(record[columns.TripDuration]), 64)
	if err != nil || math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		log.Debugf("Invalid duration type: %v", record[columns.TripDuration])
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidTripData, record[columns.TripDuration], ErrInvalidDurationType)
	}

	tripData := trip.NewTripData(
		startTime,
		strings.TrimSpace(record[columns.StartStation]),
		strings.TrimSpace(record[columns.EndStation]),
		duration,
		strings.TrimSpace(record[columns.UserType]),
	)
	tripData.Raw = record

	if columns.EndTime != notPresent && strings.TrimSpace(record[columns.EndTime]) != "" {
		endTime, err := parseTimestamp(record[columns.EndTime], layouts)
		if err != nil {
			log.Debugf("Invalid end time: %v", record[columns.EndTime])
			return nil, fmt.Errorf("%w: end time %q: %w", ErrInvalidTripData, record[columns.EndTime], err)
		}
		tripData.EndTime = endTime
	}

	if columns.hasGender() {
		tripData.Gender = strings.TrimSpace(record[columns.Gender])
	}

	if columns.hasBirthYear() {
		birthYear, err := parseBirthYear(record[columns.BirthYear])
		if err != nil {
			log.Debugf("Invalid birth year: %v", record[columns.BirthYear])
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidTripData, record[columns.BirthYear], err)
		}
		tripData.BirthYear = birthYear
	}

	return tripData, nil
}

func parseTimestamp(value string, layouts []string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, ErrInvalidTimestamp
}

// parseBirthYear accepts integers and floats such as 1992.0. Empty and NaN values are unknown birth years
func parseBirthYear(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	birthYear, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, ErrInvalidBirthYear
	}
	if math.IsNaN(birthYear) {
		return 0, nil
	}
	if math.IsInf(birthYear, 0) {
		return 0, ErrInvalidBirthYear
	}
	return int(birthYear), nil
}
