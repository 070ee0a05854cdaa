package station

import "github.com/umahmood/haversine"

// StationData struct that contains the location of a station
type StationData struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (sd StationData) GetCoord() haversine.Coord {
	return haversine.Coord{Lat: sd.Latitude, Lon: sd.Longitude}
}

// Locations stations of a city indexed by name
type Locations map[string]StationData

// Add saves the station, replacing any previous station with the same name
func (l Locations) Add(stationData StationData) {
	l[stationData.Name] = stationData
}

// DistanceKm returns the haversine distance in kilometers between two stations.
// The second return value is false if some of the stations has no known location
func (l Locations) DistanceKm(startStation string, endStation string) (float64, bool) {
	start, ok := l[startStation]
	if !ok {
		return 0, false
	}

	end, ok := l[endStation]
	if !ok {
		return 0, false
	}

	_, km := haversine.Distance(start.GetCoord(), end.GetCoord())
	return km, true
}
