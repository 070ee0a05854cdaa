package durationaccumulator

import "errors"

var ErrEmptyAccumulator = errors.New("cannot get average, counter is zero")

// DurationAccumulator struct that collects the duration of trips
// + Counter: counts the amount of trips collected
// + TotalDuration: sum of the durations, in seconds
type DurationAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDuration float64 `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(newDuration float64) {
	da.Counter += 1
	da.TotalDuration += newDuration
}

func (da *DurationAccumulator) GetTotalDuration() float64 {
	return da.TotalDuration
}

func (da *DurationAccumulator) GetAverageDuration() (float64, error) {
	if da.Counter == 0 {
		return 0, ErrEmptyAccumulator
	}
	return da.TotalDuration / float64(da.Counter), nil
}
