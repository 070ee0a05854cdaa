// Package stats computes the statistical views shown for a filtered trip table.
// Every view is independent and read-only over the table.
package stats

// Status tells whether a view, or a part of it, holds values
type Status string

const (
	StatusOK Status = "ok"
	// StatusNoData the table has no rows, or no values, to compute the view
	StatusNoData Status = "no data"
	// StatusUnavailable the source has no column to compute the view
	StatusUnavailable Status = "unavailable"
)

func (s Status) IsOK() bool {
	return s == StatusOK
}
