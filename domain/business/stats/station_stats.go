package stats

import (
	"strings"

	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
)

// pairSeparator sorts before any printable character, so pair keys keep the (start, end) order
const pairSeparator = "\x1f"

// StationPair a combination of start and end station
type StationPair struct {
	StartStation string `json:"start_station"`
	EndStation   string `json:"end_station"`
	Count        int    `json:"count"`
}

// StationStats most popular stations and trip
type StationStats struct {
	Status            Status      `json:"status"`
	StartStation      string      `json:"start_station"`
	StartStationCount int         `json:"start_station_count"`
	EndStation        string      `json:"end_station"`
	EndStationCount   int         `json:"end_station_count"`
	PopularTrip       StationPair `json:"popular_trip"`
	DistanceStatus    Status      `json:"distance_status"`
	DistanceKm        float64     `json:"distance_km"`
}

// ComputeStationStats returns the most frequent start station, end station and combination of both.
// If locations has the coordinates of both stations of the popular trip, its distance is calculated
func ComputeStationStats(table *trip.Table, locations station.Locations) *StationStats {
	if table.IsEmpty() {
		return &StationStats{Status: StatusNoData, DistanceStatus: StatusNoData}
	}

	startStations := modecounter.NewModeCounter[string]()
	endStations := modecounter.NewModeCounter[string]()
	pairs := modecounter.NewModeCounter[string]()
	for _, tripData := range table.Trips {
		startStations.UpdateCounter(tripData.StartStation)
		endStations.UpdateCounter(tripData.EndStation)
		pairs.UpdateCounter(tripData.StartStation + pairSeparator + tripData.EndStation)
	}

	startStation, startCount, _ := startStations.Mode()
	endStation, endCount, _ := endStations.Mode()
	pairKey, pairCount, _ := pairs.Mode()
	pairStart, pairEnd, _ := strings.Cut(pairKey, pairSeparator)

	stationStats := &StationStats{
		Status:            StatusOK,
		StartStation:      startStation,
		StartStationCount: startCount,
		EndStation:        endStation,
		EndStationCount:   endCount,
		PopularTrip: StationPair{
			StartStation: pairStart,
			EndStation:   pairEnd,
			Count:        pairCount,
		},
		DistanceStatus: StatusUnavailable,
	}

	if distance, ok := locations.DistanceKm(pairStart, pairEnd); ok {
		stationStats.DistanceStatus = StatusOK
		stationStats.DistanceKm = distance
	}

	return stationStats
}
