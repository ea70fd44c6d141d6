package period

import (
	"time"

	"GoldTrack/internal/model"
)

// Resolve returns the half-year window containing today: Jan 1 through
// today for the first semester, Jul 1 through today for the second.
// Calling it again later the same day yields the same window.
func Resolve(today time.Time) model.Window {
	y := today.Year()
	start := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	if today.Month() >= time.July {
		start = time.Date(y, time.July, 1, 0, 0, 0, 0, time.UTC)
	}
	end := time.Date(y, today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return model.Window{Start: start, End: end}
}
