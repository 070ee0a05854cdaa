package stats

import (
	"time"

	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities/trip"
)

// TimeStats most frequent times of travel
type TimeStats struct {
	Status       Status       `json:"status"`
	Month        time.Month   `json:"month"`
	MonthCount   int          `json:"month_count"`
	Weekday      time.Weekday `json:"weekday"`
	WeekdayCount int          `json:"weekday_count"`
	Hour         int          `json:"hour"`
	HourCount    int          `json:"hour_count"`
}

// ComputeTimeStats returns the most frequent month, weekday and start hour of the table
func ComputeTimeStats(table *trip.Table) *TimeStats {
	if table.IsEmpty() {
		return &TimeStats{Status: StatusNoData}
	}

	months := modecounter.NewModeCounter[int]()
	weekdays := modecounter.NewModeCounter[time.Weekday]()
	hours := modecounter.NewModeCounter[int]()
	for _, tripData := range table.Trips {
		months.UpdateCounter(tripData.Month)
		weekdays.UpdateCounter(tripData.Weekday)
		hours.UpdateCounter(tripData.Hour)
	}

	month, monthCount, _ := months.Mode()
	weekday, weekdayCount, _ := weekdays.Mode()
	hour, hourCount, _ := hours.Mode()

	return &TimeStats{
		Status:       StatusOK,
		Month:        time.Month(month),
		MonthCount:   monthCount,
		Weekday:      weekday,
		WeekdayCount: weekdayCount,
		Hour:         hour,
		HourCount:    hourCount,
	}
}
