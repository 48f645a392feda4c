package models

import "time"

// Game is one fixture on the schedule page. Synthesized from "today" at each
// load and never persisted.
type Game struct {
	Opponent    string    `json:"opponent"`
	Date        time.Time `json:"date"`
	Kickoff     string    `json:"kickoff"`
	Venue       string    `json:"venue"`
	Competition string    `json:"competition"`
}

// PlayerMessage is one static congratulatory message on the home page.
type PlayerMessage struct {
	Author  string `json:"author"`
	Role    string `json:"role"`
	Message string `json:"message"`
}
