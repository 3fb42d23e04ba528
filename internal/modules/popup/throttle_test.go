package popup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShouldShow_NeverShownBefore(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, ShouldShow(time.Time{}, now, 24))
}

func TestShouldShow_WithinWindow(t *testing.T) {
	shown := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, ShouldShow(shown, shown.Add(23*time.Hour), 24))
}

func TestShouldShow_WindowElapsed(t *testing.T) {
	shown := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, ShouldShow(shown, shown.Add(25*time.Hour), 24))
}

func TestShouldShow_ExactBoundary(t *testing.T) {
	shown := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Exactly at the boundary counts as elapsed.
	assert.True(t, ShouldShow(shown, shown.Add(24*time.Hour), 24))
}

func TestShouldShow_FrequencyClampedToMinimum(t *testing.T) {
	shown := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// A zero or negative frequency behaves as the one-hour minimum
	// rather than always-show.
	assert.False(t, ShouldShow(shown, shown.Add(30*time.Minute), 0))
	assert.True(t, ShouldShow(shown, shown.Add(time.Hour), 0))
}
