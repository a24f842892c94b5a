package models

import (
	"time"
)

// Standing is a player's final position in a game
type Standing struct {
	PlayerID PlayerID
	Name     string
	Cash     int
	Wealth   int
	Lost     bool
}

// GameResult summarizes a finished game
type GameResult struct {
	// GameID is the unique identifier for the game
	GameID string

	// Seed is the dice seed the game was played with
	Seed int64

	// Rounds is the number of completed rounds
	Rounds int

	// WinnerID is the sole survivor, NoOwner when the round cap was hit
	WinnerID PlayerID

	// WinnerName is the display name of the winner, empty if none
	WinnerName string

	// Standings holds every player in seat order
	Standings []Standing

	// FinishedAt is when the game ended
	FinishedAt time.Time
}
