package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/monosim/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/monosim/internal/models"
)

// Repository defines the interface for game data persistence
type Repository interface {
	// SaveGame persists a game
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// GetActiveGames retrieves all games still running
	GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error)

	// ListRecentGames retrieves games newest first
	ListRecentGames(ctx context.Context, input *ListRecentGamesInput) ([]*models.Game, error)
}
