package stats

import (
	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

// DurationStats total and mean trip duration, in seconds
type DurationStats struct {
	Status       Status  `json:"status"`
	Trips        int     `json:"trips"`
	TotalSeconds float64 `json:"total_seconds"`
	MeanSeconds  float64 `json:"mean_seconds"`
}

func ComputeDurationStats(table *trip.Table) *DurationStats {
	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, tripData := range table.Trips {
		accumulator.UpdateAccumulator(tripData.Duration)
	}

	mean, err := accumulator.GetAverageDuration()
	if err != nil {
		return &DurationStats{Status: StatusNoData}
	}

	return &DurationStats{
		Status:       StatusOK,
		Trips:        accumulator.Counter,
		TotalSeconds: accumulator.GetTotalDuration(),
		MeanSeconds:  mean,
	}
}

// FormattedTotal total duration as HH:MM:SS
func (ds *DurationStats) FormattedTotal() string {
	return utils.FormatDuration(ds.TotalSeconds)
}

// FormattedMean mean duration as HH:MM:SS
func (ds *DurationStats) FormattedMean() string {
	return utils.FormatDuration(ds.MeanSeconds)
}
