package duration

import (
	"fmt"
	"time"
)

// FormatClock formats d as zero-padded HH:MM:SS.
func FormatClock(d time.Duration) string {
	total := Seconds(d)
	hours := total / 3600
	minutes := total/60 - hours*60
	seconds := total - hours*3600 - minutes*60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
