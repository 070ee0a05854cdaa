package display

import (
	"fmt"

	"bikeshare/domain/business/report"
	"bikeshare/domain/business/stats"
)

// PrintReport prints the five views of the report, each one followed by the time it took
func (p *Printer) PrintReport(r *report.Report) {
	p.Info("Trips matching %s: %d", r.Selection, r.Trips)
	p.Separator()

	p.PrintTimeStats(r.Time)
	p.Elapsed(r.Elapsed[report.TimeView])

	p.PrintStationStats(r.Station)
	p.Elapsed(r.Elapsed[report.StationView])

	p.PrintDurationStats(r.Duration)
	p.Elapsed(r.Elapsed[report.DurationView])

	p.PrintUserTypeStats(r.UserTypes)
	p.Elapsed(r.Elapsed[report.UserTypeView])

	p.PrintDemographicStats(r.Demographics)
	p.Elapsed(r.Elapsed[report.DemographicView])
}

func (p *Printer) PrintTimeStats(timeStats *stats.TimeStats) {
	p.Header("Calculating The Most Frequent Times of Travel...")
	if !timeStats.Status.IsOK() {
		p.NoData("Most frequent times:")
		return
	}

	p.Value("Most frequent month:     ", fmt.Sprintf("%s (%d trips)", timeStats.Month, timeStats.MonthCount))
	p.Value("Most frequent day:       ", fmt.Sprintf("%s (%d trips)", timeStats.Weekday, timeStats.WeekdayCount))
	p.Value("Most frequent start hour:", fmt.Sprintf("%02d:00 (%d trips)", timeStats.Hour, timeStats.HourCount))
}

func (p *Printer) PrintStationStats(stationStats *stats.StationStats) {
	p.Header("Calculating The Most Popular Stations and Trip...")
	if !stationStats.Status.IsOK() {
		p.NoData("Most popular stations:")
		return
	}

	p.Value("Most frequent start station:", fmt.Sprintf("%s (%d trips)", stationStats.StartStation, stationStats.StartStationCount))
	p.Value("Most frequent end station:  ", fmt.Sprintf("%s (%d trips)", stationStats.EndStation, stationStats.EndStationCount))

	popularTrip := stationStats.PopularTrip
	p.Value("Most frequent combination of start and end stations:",
		fmt.Sprintf("%s -> %s (%d trips)", popularTrip.StartStation, popularTrip.EndStation, popularTrip.Count))

	if stationStats.DistanceStatus.IsOK() {
		p.Value("Distance between them:", fmt.Sprintf("%.2f km", stationStats.DistanceKm))
	} else {
		p.Unavailable("station location")
	}
}

func (p *Printer) PrintDurationStats(durationStats *stats.DurationStats) {
	p.Header("Calculating Trip Duration...")
	if !durationStats.Status.IsOK() {
		p.NoData("Trip duration:")
		return
	}

	p.Value("Total travel time:", durationStats.FormattedTotal())
	p.Value("Mean travel time: ", durationStats.FormattedMean())
}

func (p *Printer) PrintUserTypeStats(userTypeStats *stats.UserTypeStats) {
	p.Header("Calculating User Stats...")
	if !userTypeStats.Status.IsOK() {
		p.NoData("Number of user types:")
		return
	}

	p.Print("Number of user types:")
	p.PrintCounts("User Type", userTypeStats.Counts)
}

func (p *Printer) PrintDemographicStats(demographicStats *stats.DemographicStats) {
	p.Header("Calculating Demographic Stats...")

	switch demographicStats.GenderStatus {
	case stats.StatusOK:
		p.Print("Number of gender:")
		p.PrintCounts("Gender", demographicStats.GenderCounts)
	case stats.StatusUnavailable:
		p.Unavailable("gender")
	default:
		p.NoData("Number of gender:")
	}

	switch demographicStats.BirthYearStatus {
	case stats.StatusOK:
		p.Value("Oldest person with year of birth:  ", demographicStats.OldestBirthYear)
		p.Value("Youngest person with year of birth:", demographicStats.YoungestBirthYear)
		p.Value("Most common year of birth:         ",
			fmt.Sprintf("%d (%d trips)", demographicStats.CommonBirthYear, demographicStats.CommonBirthYearUses))
	case stats.StatusUnavailable:
		p.Unavailable("year of birth")
	default:
		p.NoData("Year of birth:")
	}
}
