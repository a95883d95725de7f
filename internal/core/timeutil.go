package core

import (
	"time"

	"github.com/dustin/go-humanize"
)

// TimeSince formats a timestamp as a human-relative string ("4 minutes ago").
func TimeSince(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}
