// Package age computes how long ago something happened and phrases it for display.
package age

import (
	"fmt"
	"time"
)

// JustNow is the phrase used for anything under a minute old.
const JustNow = "Just now"

// AgeData computes the age of then relative to now and whether timing data exists.
// Future timestamps clamp to zero.
func AgeData(then time.Time, now time.Time) (time.Duration, bool) {
	if then.IsZero() {
		return 0, false
	}
	age := now.Sub(then)
	if age < 0 {
		age = 0
	}
	return age, true
}

// Phrase returns a long-form relative age like "3 minutes ago".
//
// Months are 30 days and years are 12 months.
func Phrase(then time.Time, now time.Time) string {
	duration, ok := AgeData(then, now)
	if !ok {
		return JustNow
	}
	return PhraseDuration(duration)
}

// PhraseDuration phrases an age duration.
func PhraseDuration(duration time.Duration) string {
	seconds := int64(duration / time.Second)
	if seconds < 60 {
		return JustNow
	}

	minutes := seconds / 60
	if minutes < 60 {
		return plural(minutes, "minute")
	}

	hours := minutes / 60
	if hours < 24 {
		return plural(hours, "hour")
	}

	days := hours / 24
	if days < 30 {
		return plural(days, "day")
	}

	months := days / 30
	if months < 12 {
		return plural(months, "month")
	}

	return plural(months/12, "year")
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
