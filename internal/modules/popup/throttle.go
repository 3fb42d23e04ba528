package popup

import (
	"time"

	"scraply/internal/domain"
)

// ShouldShow decides whether a popup may be presented again, given when it
// was last shown and its frequency window in hours. The last-shown
// timestamp itself lives client-side; this is the governing policy the
// client applies, kept here so the window math is specified and tested in
// one place.
func ShouldShow(lastShown, now time.Time, frequencyHours int) bool {
	if lastShown.IsZero() {
		return true
	}
	if frequencyHours < domain.PopupMinFrequencyHours {
		frequencyHours = domain.PopupMinFrequencyHours
	}
	elapsed := now.Sub(lastShown)
	return elapsed >= time.Duration(frequencyHours)*time.Hour
}
