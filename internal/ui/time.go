package ui

import (
	"fmt"
	"time"

	internalage "github.com/amonks/butler/internal/age"
)

var shortUnits = []struct {
	suffix string
	size   time.Duration
}{
	{"d", 24 * time.Hour},
	{"h", time.Hour},
	{"m", time.Minute},
}

// FormatTimeAgo returns a compact age string like "2m ago", or "-" when
// then is unset.
func FormatTimeAgo(then time.Time, now time.Time) string {
	duration, ok := internalage.AgeData(then, now)
	if !ok {
		return "-"
	}
	return FormatDurationShort(duration) + " ago"
}

// FormatDurationShort formats a duration in its largest whole unit (s/m/h/d).
func FormatDurationShort(duration time.Duration) string {
	duration = max(duration, 0).Truncate(time.Second)
	for _, unit := range shortUnits {
		if duration >= unit.size {
			return fmt.Sprintf("%d%s", duration/unit.size, unit.suffix)
		}
	}
	return fmt.Sprintf("%ds", duration/time.Second)
}
