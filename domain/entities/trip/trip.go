package trip

import (
	"time"
)

// TripData struct that contains the data of a single bike trip
// + StartTime: moment in which the trip begins
// + EndTime: moment in which the trip ends. Zero value when the source has no end time
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + Duration: duration of the trip in seconds
// + UserType: kind of user, e.g. Subscriber or Customer
// + Gender: gender of the user. Empty when unknown
// + BirthYear: birth year of the user. Zero when unknown
// + Month, Weekday, Hour: fields derived from StartTime
// + Raw: the record as it was read from the source
type TripData struct {
	StartTime    time.Time    `json:"start_time"`
	EndTime      time.Time    `json:"end_time"`
	StartStation string       `json:"start_station"`
	EndStation   string       `json:"end_station"`
	Duration     float64      `json:"duration"`
	UserType     string       `json:"user_type"`
	Gender       string       `json:"gender,omitempty"`
	BirthYear    int          `json:"birth_year,omitempty"`
	Month        int          `json:"month"`
	Weekday      time.Weekday `json:"weekday"`
	Hour         int          `json:"hour"`
	Raw          []string     `json:"-"`
}

// NewTripData builds a TripData and derives the calendar fields from startTime
func NewTripData(startTime time.Time, startStation string, endStation string, duration float64, userType string) *TripData {
	td := &TripData{
		StartTime:    startTime,
		StartStation: startStation,
		EndStation:   endStation,
		Duration:     duration,
		UserType:     userType,
	}
	td.deriveCalendarFields()
	return td
}

func (td *TripData) deriveCalendarFields() {
	td.Month = int(td.StartTime.Month())
	td.Weekday = td.StartTime.Weekday()
	td.Hour = td.StartTime.Hour()
}

// GetWeekdayName returns the full english name of the weekday, e.g. Monday
func (td *TripData) GetWeekdayName() string {
	return td.Weekday.String()
}

// HasGender returns true if the gender of the user is known
func (td *TripData) HasGender() bool {
	return td.Gender != ""
}

// HasBirthYear returns true if the birth year of the user is known
func (td *TripData) HasBirthYear() bool {
	return td.BirthYear != 0
}
