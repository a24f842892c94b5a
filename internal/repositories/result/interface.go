package result

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/monosim/internal/repositories/result Repository

import (
	"context"

	"github.com/KirkDiggler/monosim/internal/models"
)

// Repository defines the interface for finished game results
type Repository interface {
	// SaveResult stores the result of a game, replacing an earlier one
	SaveResult(ctx context.Context, input *SaveResultInput) error

	// GetResult retrieves the result of a game
	GetResult(ctx context.Context, input *GetResultInput) (*models.GameResult, error)

	// ListResults retrieves results newest first
	ListResults(ctx context.Context, input *ListResultsInput) ([]*models.GameResult, error)

	// CountWins tallies wins per player name across every stored result
	CountWins(ctx context.Context, input *CountWinsInput) (*CountWinsOutput, error)

	// DeleteResult removes the result of a game, if any
	DeleteResult(ctx context.Context, input *DeleteResultInput) error
}
