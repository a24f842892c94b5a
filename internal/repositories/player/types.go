package player

import "github.com/KirkDiggler/monosim/internal/models"

// SavePlayersInput contains parameters for saving player snapshots
type SavePlayersInput struct {
	GameID  string
	Players []models.PlayerState
}

// GetPlayerInput contains parameters for retrieving a player snapshot
type GetPlayerInput struct {
	GameID   string
	PlayerID models.PlayerID
}

// GetPlayersInGameInput contains parameters for retrieving the players of a game
type GetPlayersInGameInput struct {
	GameID string
}

// GetPlayersInGameOutput contains the snapshots of a game in seat order
type GetPlayersInGameOutput struct {
	Players []*models.PlayerState
}

// DeletePlayersInGameInput contains parameters for removing the players of a game
type DeletePlayersInGameInput struct {
	GameID string
}
