package models

import (
	"time"
)

// GameStatus represents the current state of a simulated game
type GameStatus string

const (
	// GameStatusRunning indicates rounds are still being played
	GameStatusRunning GameStatus = "running"

	// GameStatusFinished indicates a survivor was found or the round cap was hit
	GameStatusFinished GameStatus = "finished"

	// GameStatusFailed indicates the engine aborted the game with an error
	GameStatusFailed GameStatus = "failed"
)

// Game represents one simulated game
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Seed is the dice seed the game was played with
	Seed int64

	// Status is the current state of the game
	Status GameStatus

	// PlayerNames lists the players in seat order
	PlayerNames []string

	// Round is the number of completed rounds
	Round int

	// MaxRounds is the round cap for the game
	MaxRounds int

	// WinnerID is the seat of the sole survivor, NoOwner if none
	WinnerID PlayerID

	// Error holds the engine error for failed games
	Error string

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}

// IsRunning returns true if the game is still being played
func (s GameStatus) IsRunning() bool {
	return s == GameStatusRunning
}

// IsDone returns true if no more rounds will be played
func (s GameStatus) IsDone() bool {
	return s == GameStatusFinished || s == GameStatusFailed
}
