package filter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bikeshare/utils"
)

// AllFilter value that disables a month or day filter
const AllFilter = "all"

var (
	ErrInvalidCity  = errors.New("invalid city")
	ErrInvalidMonth = errors.New("invalid month")
	ErrInvalidDay   = errors.New("invalid day")
)

var (
	// DefaultMonths months for which the datasets have data
	DefaultMonths = []string{"january", "february", "march", "april", "may", "june"}
	// DefaultDays days of the week, starting on monday
	DefaultDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

	monthsOfYear = []string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}
)

// Selection filters chosen by the user in a session
// + City: city to analyze
// + Month: month to filter by, or "all"
// + Day: day of the week to filter by, or "all"
type Selection struct {
	City  string `json:"city"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

func NewSelection(city string, month string, day string) Selection {
	return Selection{
		City:  normalize(city),
		Month: normalize(month),
		Day:   normalize(day),
	}
}

func (s Selection) FiltersByMonth() bool {
	return s.Month != AllFilter
}

func (s Selection) FiltersByDay() bool {
	return s.Day != AllFilter
}

func (s Selection) String() string {
	return fmt.Sprintf("city: %s, month: %s, day: %s", s.City, s.Month, s.Day)
}

// Validate checks the three values of the selection against the allowed ones
func (s Selection) Validate(cities []string, months []string, days []string) error {
	if _, err := ParseCity(s.City, cities); err != nil {
		return err
	}
	if _, err := ParseMonth(s.Month, months); err != nil {
		return err
	}
	if _, err := ParseDay(s.Day, days); err != nil {
		return err
	}
	return nil
}

// ParseCity returns the normalized city if it belongs to the allowed cities
func ParseCity(value string, cities []string) (string, error) {
	city := normalize(value)
	if !utils.ContainsString(city, cities) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCity, value)
	}
	return city, nil
}

// ParseMonth returns the normalized month if it is "all" or belongs to the allowed months
func ParseMonth(value string, months []string) (string, error) {
	month := normalize(value)
	if month != AllFilter && !utils.ContainsString(month, months) {
		return "", fmt.Errorf("%w: %q", ErrInvalidMonth, value)
	}
	return month, nil
}

// ParseDay returns the normalized day if it is "all" or belongs to the allowed days
func ParseDay(value string, days []string) (string, error) {
	day := normalize(value)
	if day != AllFilter && !utils.ContainsString(day, days) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDay, value)
	}
	return day, nil
}

// MonthNumber converts a month name into its ordinal, january is 1
func MonthNumber(name string) (time.Month, error) {
	month := normalize(name)
	for idx, monthName := range monthsOfYear {
		if monthName == month {
			return time.Month(idx + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMonth, name)
}

// Weekday converts a day name into a time.Weekday
func Weekday(name string) (time.Weekday, error) {
	day := normalize(name)
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		if strings.ToLower(weekday.String()) == day {
			return weekday, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDay, name)
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
