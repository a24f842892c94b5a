package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/monosim/internal/services/game Service

import "context"

// Service defines the interface for simulation operations
type Service interface {
	// Simulate plays one complete game and stores its result
	Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error)

	// GetGame returns a game with its latest player snapshots
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetPlayer returns one player's latest snapshot and cash totals
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)

	// GetTransactions returns the ledger of a game or of one of its players
	GetTransactions(ctx context.Context, input *GetTransactionsInput) (*GetTransactionsOutput, error)

	// ListGames returns the most recent games
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)

	// ListActiveGames returns the games still being played
	ListActiveGames(ctx context.Context, input *ListActiveGamesInput) (*ListActiveGamesOutput, error)

	// ListResults returns stored results, newest first
	ListResults(ctx context.Context, input *ListResultsInput) (*ListResultsOutput, error)

	// Summarize tallies wins across every stored result
	Summarize(ctx context.Context, input *SummarizeInput) (*SummarizeOutput, error)

	// DeleteGame removes a game with its snapshots and ledger
	DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error)
}
