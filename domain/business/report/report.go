package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bikeshare/domain/business/stats"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
)

const (
	reportType  = "report"
	reportStage = "explorer"
)

// Names of the views of a report, used as keys of Report.Elapsed
const (
	TimeView        = "time"
	StationView     = "station"
	DurationView    = "duration"
	UserTypeView    = "user_type"
	DemographicView = "demographic"
)

// Report contains the five statistical views computed for a session
// + Metadata: city, type and applied filters
// + SessionID: ID of the session that built the report
// + Trips: amount of trips after filtering
// + Elapsed: time that took each view to be computed
type Report struct {
	Metadata     entities.Metadata        `json:"metadata"`
	SessionID    uuid.UUID                `json:"session_id"`
	Selection    filter.Selection         `json:"selection"`
	Trips        int                      `json:"trips"`
	Time         *stats.TimeStats         `json:"time"`
	Station      *stats.StationStats      `json:"station"`
	Duration     *stats.DurationStats     `json:"duration"`
	UserTypes    *stats.UserTypeStats     `json:"user_types"`
	Demographics *stats.DemographicStats  `json:"demographics"`
	Elapsed      map[string]time.Duration `json:"elapsed"`
}

// Build computes every view over the given table. The table must be already filtered
func Build(sessionID uuid.UUID, selection filter.Selection, table *trip.Table, locations station.Locations) *Report {
	report := &Report{
		Metadata:  entities.NewMetadata(selection.City, reportType, reportStage, selection.String()),
		SessionID: sessionID,
		Selection: selection,
		Trips:     table.Len(),
		Elapsed:   make(map[string]time.Duration),
	}

	report.Time = measure(report, TimeView, func() *stats.TimeStats {
		return stats.ComputeTimeStats(table)
	})
	report.Station = measure(report, StationView, func() *stats.StationStats {
		return stats.ComputeStationStats(table, locations)
	})
	report.Duration = measure(report, DurationView, func() *stats.DurationStats {
		return stats.ComputeDurationStats(table)
	})
	report.UserTypes = measure(report, UserTypeView, func() *stats.UserTypeStats {
		return stats.ComputeUserTypeStats(table)
	})
	report.Demographics = measure(report, DemographicView, func() *stats.DemographicStats {
		return stats.ComputeDemographicStats(table)
	})

	return report
}

func (r *Report) GetMetadata() entities.Metadata {
	return r.Metadata
}

// Marshal returns the report as JSON
func (r *Report) Marshal() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("error marshaling report %s: %w", r.SessionID, err)
	}
	return data, nil
}

func measure[T any](report *Report, view string, compute func() T) T {
	start := time.Now()
	result := compute()
	report.Elapsed[view] = time.Since(start)
	return result
}
