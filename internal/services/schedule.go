package services

import (
	"time"

	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/models"
)

// fixtureSeeds is placeholder data. The schedule page is explicitly a
// simulation: a real deployment would replace this with fixtures fetched
// from the club's API.
var fixtureSeeds = []struct {
	offsetDays  int
	opponent    string
	kickoff     string
	venue       string
	competition string
}{
	{2, "Leões da Serra", "19:30", "Estádio Jardim do Vale", "Campeonato Estadual"},
	{5, "Atlético Horizonte", "16:00", "Arena Beira-Mar", "Copa Regional"},
	{10, "União Primavera", "20:45", "Estádio Jardim do Vale", "Campeonato Estadual"},
}

// UpcomingFixtures synthesizes the three upcoming games from today's date.
// Deterministic: the same today always yields the same fixtures. Nothing is
// persisted; the schedule is regenerated on every load.
func UpcomingFixtures(today time.Time) []models.Game {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	games := make([]models.Game, 0, len(fixtureSeeds))
	for _, seed := range fixtureSeeds {
		games = append(games, models.Game{
			Opponent:    seed.opponent,
			Date:        day.AddDate(0, 0, seed.offsetDays),
			Kickoff:     seed.kickoff,
			Venue:       seed.venue,
			Competition: seed.competition,
		})
	}
	return games
}
