package display

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities/trip"
)

// Table provides table rendering utilities
type Table struct {
	table  *tablewriter.Table
	header []string
	rows   [][]string
}

// NewTable creates a new borderless table
func NewTable(w io.Writer, headers []string) *Table {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.Off,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.On,
				},
			},
		}),
	)

	return &Table{table: table, header: headers}
}

// AddRow adds a row to the table
func (t *Table) AddRow(row []string) {
	t.rows = append(t.rows, row)
}

// Render outputs the table
func (t *Table) Render() {
	t.table.Header(t.header)
	t.table.Bulk(t.rows)
	t.table.Render()
}

// PrintCounts prints value counts, one per row
func (p *Printer) PrintCounts(valueHeader string, counts []modecounter.Count[string]) {
	table := NewTable(p.out, []string{valueHeader, "Trips"})
	for _, count := range counts {
		table.AddRow([]string{count.Value, strconv.Itoa(count.Count)})
	}
	table.Render()
}

// PrintTrips prints the trips as they were read from the source
func (p *Printer) PrintTrips(header []string, trips []*trip.TripData) {
	table := NewTable(p.out, header)
	for _, tripData := range trips {
		table.AddRow(tripData.Raw)
	}
	table.Render()
}
