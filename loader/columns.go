package loader

import (
	"fmt"
	"strings"

	"bikeshare/client/config"
)

const (
	notPresent    = -1
	byteOrderMark = "\ufeff"
)

// tripColumns contains the index of each field to analyze. Optional fields are notPresent when the
// source has no column for them
type tripColumns struct {
	StartTime    int
	EndTime      int
	TripDuration int
	StartStation int
	EndStation   int
	UserType     int
	Gender       int
	BirthYear    int
}

func (tc tripColumns) hasGender() bool {
	return tc.Gender != notPresent
}

func (tc tripColumns) hasBirthYear() bool {
	return tc.BirthYear != notPresent
}

// resolveColumns finds the index of every configured column in the header
func resolveColumns(header []string, columnsConfig config.ColumnsConfig) (tripColumns, error) {
	indexes := make(map[string]int, len(header))
	for idx, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, byteOrderMark))
		if _, ok := indexes[name]; !ok {
			indexes[name] = idx
		}
	}

	var missing []string
	required := func(name string) int {
		idx, ok := indexes[name]
		if !ok {
			missing = append(missing, name)
			return notPresent
		}
		return idx
	}
	optional := func(name string) int {
		if name == "" {
			return notPresent
		}
		idx, ok := indexes[name]
		if !ok {
			return notPresent
		}
		return idx
	}

	columns := tripColumns{
		StartTime:    required(columnsConfig.StartTime),
		EndTime:      optional(columnsConfig.EndTime),
		TripDuration: required(columnsConfig.TripDuration),
		StartStation: required(columnsConfig.StartStation),
		EndStation:   required(columnsConfig.EndStation),
		UserType:     required(columnsConfig.UserType),
		Gender:       optional(columnsConfig.Gender),
		BirthYear:    optional(columnsConfig.BirthYear),
	}

	if len(missing) > 0 {
		return tripColumns{}, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return columns, nil
}
