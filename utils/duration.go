package utils

import (
	"fmt"
	"math"
)

// FormatDuration formats an amount of seconds as HH:MM:SS. Hours are not wrapped at 24,
// so 90000 seconds is 25:00:00. Fractions of a second are truncated.
func FormatDuration(seconds float64) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	total := int64(math.Trunc(seconds))
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, minutes, secs)
}
