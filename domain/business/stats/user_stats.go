package stats

import (
	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities/trip"
)

// UserTypeStats amount of trips per user type, most frequent first
type UserTypeStats struct {
	Status Status                       `json:"status"`
	Counts []modecounter.Count[string] `json:"counts,omitempty"`
}

// DemographicStats gender and birth year of the users.
// Gender and birth year are optional columns, so each one has its own status
type DemographicStats struct {
	GenderStatus        Status                       `json:"gender_status"`
	GenderCounts        []modecounter.Count[string] `json:"gender_counts,omitempty"`
	BirthYearStatus     Status                       `json:"birth_year_status"`
	OldestBirthYear     int                          `json:"oldest_birth_year"`
	YoungestBirthYear   int                          `json:"youngest_birth_year"`
	CommonBirthYear     int                          `json:"common_birth_year"`
	CommonBirthYearUses int                          `json:"common_birth_year_count"`
}

func ComputeUserTypeStats(table *trip.Table) *UserTypeStats {
	userTypes := modecounter.NewModeCounter[string]()
	for _, tripData := range table.Trips {
		if tripData.UserType == "" {
			continue
		}
		userTypes.UpdateCounter(tripData.UserType)
	}

	if userTypes.IsEmpty() {
		return &UserTypeStats{Status: StatusNoData}
	}

	return &UserTypeStats{
		Status: StatusOK,
		Counts: userTypes.Counts(),
	}
}

// ComputeDemographicStats counts genders and finds the oldest, youngest and most common birth year.
// A missing column is reported as unavailable even when the table is empty.
func ComputeDemographicStats(table *trip.Table) *DemographicStats {
	demographicStats := &DemographicStats{
		GenderStatus:    StatusUnavailable,
		BirthYearStatus: StatusUnavailable,
	}

	genders := modecounter.NewModeCounter[string]()
	birthYears := modecounter.NewModeCounter[int]()
	for _, tripData := range table.Trips {
		if table.HasGender && tripData.HasGender() {
			genders.UpdateCounter(tripData.Gender)
		}
		if table.HasBirthYear && tripData.HasBirthYear() {
			birthYears.UpdateCounter(tripData.BirthYear)
		}
	}

	if table.HasGender {
		demographicStats.GenderStatus = StatusNoData
		if !genders.IsEmpty() {
			demographicStats.GenderStatus = StatusOK
			demographicStats.GenderCounts = genders.Counts()
		}
	}

	if table.HasBirthYear {
		demographicStats.BirthYearStatus = StatusNoData
		if !birthYears.IsEmpty() {
			demographicStats.BirthYearStatus = StatusOK
			demographicStats.OldestBirthYear, _ = birthYears.Min()
			demographicStats.YoungestBirthYear, _ = birthYears.Max()
			demographicStats.CommonBirthYear, demographicStats.CommonBirthYearUses, _ = birthYears.Mode()
		}
	}

	return demographicStats
}
