package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpcomingFixturesOffsets(t *testing.T) {
	today := time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC)

	games := UpcomingFixtures(today)
	require.Len(t, games, 3)

	assert.Equal(t, time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC), games[0].Date)
	assert.Equal(t, time.Date(2026, time.March, 19, 0, 0, 0, 0, time.UTC), games[1].Date)
	assert.Equal(t, time.Date(2026, time.March, 24, 0, 0, 0, 0, time.UTC), games[2].Date)

	for _, g := range games {
		assert.NotEmpty(t, g.Opponent)
		assert.NotEmpty(t, g.Kickoff)
		assert.NotEmpty(t, g.Venue)
		assert.NotEmpty(t, g.Competition)
	}
}

func TestUpcomingFixturesDeterministic(t *testing.T) {
	// Same "today" at different wall-clock times yields identical fixtures.
	morning := time.Date(2026, time.July, 1, 8, 0, 0, 0, time.UTC)
	night := time.Date(2026, time.July, 1, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, UpcomingFixtures(morning), UpcomingFixtures(night))
}
