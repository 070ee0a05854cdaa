package explorer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bikeshare/client/config"
	"bikeshare/communication"
	"bikeshare/display"
	"bikeshare/domain/business/report"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/loader"
)

const explorerStr = "explorer"

// Explorer runs interactive sessions: ask for filters, load the city data, print its statistics,
// page through the trips and ask whether to start again
type Explorer struct {
	config    *config.ClientConfig
	loader    *loader.Loader
	prompter  *Prompter
	printer   *display.Printer
	publisher communication.ReportPublisher
}

func NewExplorer(
	clientConfig *config.ClientConfig,
	tripLoader *loader.Loader,
	prompter *Prompter,
	printer *display.Printer,
	publisher communication.ReportPublisher,
) *Explorer {
	if publisher == nil {
		publisher = communication.NoopReportPublisher{}
	}
	return &Explorer{
		config:    clientConfig,
		loader:    tripLoader,
		prompter:  prompter,
		printer:   printer,
		publisher: publisher,
	}
}

func (e *Explorer) getLogMessage(sessionID uuid.UUID, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][session: %s][method: %s][status: ERROR] %s: %s", explorerStr, sessionID, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][session: %s][method: %s][status: OK] %s", explorerStr, sessionID, method, message)
}

// Run executes sessions until the user does not want to restart. Closing the input
// finishes without error; a load failure finishes the run with that error
func (e *Explorer) Run(ctx context.Context) error {
	for {
		restart, err := e.RunSession(ctx)
		if errors.Is(err, ErrInputClosed) {
			log.Debugf("[component: %s] input closed, bye!", explorerStr)
			return nil
		}
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
}

// RunSession executes a single session and returns whether the user wants to restart
func (e *Explorer) RunSession(ctx context.Context) (bool, error) {
	sessionID := uuid.New()

	selection, err := e.prompter.GetFilters(e.config.CityNames(), e.config.Months, e.config.Days)
	if err != nil {
		return false, err
	}
	log.Info(e.getLogMessage(sessionID, "RunSession", fmt.Sprintf("filters selected: %s", selection), nil))

	builtReport, table, err := e.BuildReport(ctx, sessionID, selection)
	if err != nil {
		e.printer.Error("Could not load the %s data: %s", selection.City, err.Error())
		return false, err
	}
	e.printer.PrintReport(builtReport)

	err = e.displayTrips(table)
	if err != nil {
		return false, err
	}

	return e.prompter.AskYesNo("\nWould you like to restart? Enter yes or no.\n")
}

// BuildReport loads the selected data, computes its report and publishes it. A publishing error
// is logged and does not fail the report
func (e *Explorer) BuildReport(ctx context.Context, sessionID uuid.UUID, selection filter.Selection) (*report.Report, *trip.Table, error) {
	table, err := e.loader.Load(selection)
	if err != nil {
		log.Error(e.getLogMessage(sessionID, "BuildReport", "error loading trips", err))
		return nil, nil, fmt.Errorf("error loading %s data: %w", selection.City, err)
	}

	locations, err := e.loader.LoadStations(selection.City)
	if err != nil {
		log.Error(e.getLogMessage(sessionID, "BuildReport", "error loading stations", err))
		return nil, nil, fmt.Errorf("error loading %s stations: %w", selection.City, err)
	}

	builtReport := report.Build(sessionID, selection, table, locations)

	err = e.publisher.Publish(ctx, builtReport)
	if err != nil {
		log.Warn(e.getLogMessage(sessionID, "BuildReport", "error publishing report", err))
	}

	return builtReport, table, nil
}

// RunOnce prints the report of a selection given up front, without asking anything
func (e *Explorer) RunOnce(ctx context.Context, selection filter.Selection) error {
	builtReport, _, err := e.BuildReport(ctx, uuid.New(), selection)
	if err != nil {
		e.printer.Error("Could not load the %s data: %s", selection.City, err.Error())
		return err
	}
	e.printer.PrintReport(builtReport)
	return nil
}

// displayTrips shows the filtered trips a page at a time while the user asks for more
func (e *Explorer) displayTrips(table *trip.Table) error {
	pageSize := e.config.PageSize
	for offset := 0; ; offset += pageSize {
		if offset >= table.Len() {
			e.printer.Info("There are no more trips to display.")
			return nil
		}

		showData, err := e.prompter.AskYesNo(fmt.Sprintf("\nWould you like to see %d rows of individual trip data? Enter yes or no please.\n", pageSize))
		if err != nil {
			return err
		}
		if !showData {
			return nil
		}

		e.printer.PrintTrips(table.Header, table.Page(offset, pageSize))
	}
}

// Selection builds a selection from already known values, validating them with the configured ones
func (e *Explorer) Selection(city string, month string, day string) (filter.Selection, error) {
	selection := filter.NewSelection(city, month, day)
	err := selection.Validate(e.config.CityNames(), e.config.Months, e.config.Days)
	if err != nil {
		return filter.Selection{}, err
	}
	return selection, nil
}
