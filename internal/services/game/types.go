package game

import (
	"log/slog"

	"github.com/KirkDiggler/monosim/internal/common/clock"
	"github.com/KirkDiggler/monosim/internal/common/uuid"
	"github.com/KirkDiggler/monosim/internal/dice"
	"github.com/KirkDiggler/monosim/internal/models"
	gameRepo "github.com/KirkDiggler/monosim/internal/repositories/game"
	ledgerRepo "github.com/KirkDiggler/monosim/internal/repositories/ledger"
	playerRepo "github.com/KirkDiggler/monosim/internal/repositories/player"
	resultRepo "github.com/KirkDiggler/monosim/internal/repositories/result"
	"github.com/KirkDiggler/monosim/internal/strategy"
)

const (
	// MinPlayers is the smallest table a game can be played at
	MinPlayers = 2

	// DefaultMaxPlayers is used when Config.MaxPlayers is zero
	DefaultMaxPlayers = 8

	// DefaultMaxRounds is used when neither the input nor the config sets a cap
	DefaultMaxRounds = 2000
)

// Config holds configuration for the game service
type Config struct {
	// Maximum number of players per game
	MaxPlayers int

	// Round cap used when SimulateInput.MaxRounds is zero
	MaxRounds int

	// Repository dependencies
	GameRepo   gameRepo.Repository
	PlayerRepo playerRepo.Repository
	LedgerRepo ledgerRepo.Repository
	ResultRepo resultRepo.Repository

	// NewRoller returns the dice of one game. Defaults to a seeded dice.New.
	NewRoller func(seed int64) dice.Roller

	// NewStrategy returns the decision policy of one seat. Defaults to strategy.New.
	NewStrategy func(seat models.PlayerID) strategy.Strategy

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *slog.Logger
}

// SimulateInput contains parameters for simulating a game
type SimulateInput struct {
	// Seed makes the dice, and so the whole game, reproducible
	Seed int64

	// PlayerNames lists the players in seat order
	PlayerNames []string

	// MaxRounds caps the game, zero uses the service default
	MaxRounds int
}

// SimulateOutput contains the result of a simulated game
type SimulateOutput struct {
	Game   *models.Game
	Result *models.GameResult
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	GameID string
}

// GetGameOutput contains a game and its latest player snapshots
type GetGameOutput struct {
	Game    *models.Game
	Players []*models.PlayerState

	// Result is set once the game finished
	Result *models.GameResult
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	GameID   string
	PlayerID models.PlayerID
}

// GetPlayerOutput contains a player snapshot and its cash totals
type GetPlayerOutput struct {
	Player   *models.PlayerState
	Paid     int
	Received int
}

// GetTransactionsInput contains parameters for retrieving a ledger
type GetTransactionsInput struct {
	GameID string

	// PlayerID restricts the ledger to one player when set
	PlayerID models.PlayerID
}

// GetTransactionsOutput contains the transactions in the order they happened
type GetTransactionsOutput struct {
	Transactions []*models.Transaction
}

// ListGamesInput contains parameters for listing games
type ListGamesInput struct {
	Limit int
}

// ListGamesOutput contains games newest first
type ListGamesOutput struct {
	Games []*models.Game
}

// ListActiveGamesInput contains parameters for listing running games
type ListActiveGamesInput struct {
}

// ListActiveGamesOutput contains the running games
type ListActiveGamesOutput struct {
	Games []*models.Game
}

// ListResultsInput contains parameters for listing results
type ListResultsInput struct {
	Limit int
}

// ListResultsOutput contains results newest first
type ListResultsOutput struct {
	Results []*models.GameResult
}

// SummarizeInput contains parameters for summarizing results
type SummarizeInput struct {
}

// SummarizeOutput contains win counts per player name
type SummarizeOutput struct {
	Wins      map[string]int
	Undecided int
}

// DeleteGameInput contains parameters for deleting a game
type DeleteGameInput struct {
	GameID string
}

// DeleteGameOutput contains the result of deleting a game
type DeleteGameOutput struct {
	Success bool
}
