package game

import "github.com/KirkDiggler/monosim/internal/models"

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type DeleteGameInput struct {
	GameID string
}

type GetActiveGamesInput struct {
}

type GetActiveGamesOutput struct {
	Games []*models.Game
}

type ListRecentGamesInput struct {
	// Limit caps the number of games returned, 0 means all
	Limit int
}
