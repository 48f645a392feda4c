package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestElapsedDays(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		start time.Time
		today time.Time
		want  int
	}{
		{"same day", day(2026, 8, 29), day(2026, 8, 29), 0},
		{"ten days ago", day(2026, 8, 19), day(2026, 8, 29), 10},
		{"ten days ago, mid-afternoon today", day(2026, 8, 19), time.Date(2026, 8, 29, 15, 42, 0, 0, time.UTC), 10},
		{"start in the future counts absolute distance", day(2026, 9, 3), day(2026, 8, 29), 5},
		{"across a month boundary", day(2026, 7, 30), day(2026, 8, 2), 3},
		{"across a year boundary", day(2025, 12, 30), day(2026, 1, 2), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, elapsedDays(tt.start, tt.today))
		})
	}
}
