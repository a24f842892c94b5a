package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/monosim/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/monosim/internal/models"
)

// Repository defines the interface for player snapshot persistence
type Repository interface {
	// SavePlayers persists the latest snapshot of every player of a game
	SavePlayers(ctx context.Context, input *SavePlayersInput) error

	// GetPlayer retrieves one player's latest snapshot
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.PlayerState, error)

	// GetPlayersInGame retrieves the latest snapshots of a game in seat order
	GetPlayersInGame(ctx context.Context, input *GetPlayersInGameInput) (*GetPlayersInGameOutput, error)

	// DeletePlayersInGame removes every snapshot of a game
	DeletePlayersInGame(ctx context.Context, input *DeletePlayersInGameInput) error
}
