package result

import "github.com/KirkDiggler/monosim/internal/models"

type SaveResultInput struct {
	Result *models.GameResult
}

type GetResultInput struct {
	GameID string
}

type ListResultsInput struct {
	// Limit caps the number of results, 0 means all
	Limit int
}

type CountWinsInput struct {
}

type CountWinsOutput struct {
	// Wins maps a winner name to its number of wins
	Wins map[string]int

	// Undecided counts games that hit the round cap with several survivors
	Undecided int
}

type DeleteResultInput struct {
	GameID string
}
