package loader

import "errors"

var (
	ErrSourceNotFound      = errors.New("data source not found")
	ErrMalformedSource     = errors.New("malformed data source")
	ErrMissingColumn       = errors.New("missing required column")
	ErrInvalidTripData     = errors.New("invalid trip data")
	ErrInvalidTimestamp    = errors.New("invalid timestamp")
	ErrInvalidDurationType = errors.New("invalid duration type")
	ErrInvalidBirthYear    = errors.New("invalid birth year")
	ErrInvalidStationData  = errors.New("invalid station data")
)
