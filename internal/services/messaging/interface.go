package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/monosim/internal/services/messaging Service

import "context"

// Service turns game events into human readable recap lines
type Service interface {
	// GetTransactionMessage describes one ledger entry
	GetTransactionMessage(ctx context.Context, input *GetTransactionMessageInput) (*GetTransactionMessageOutput, error)

	// GetResultMessage announces how a game ended
	GetResultMessage(ctx context.Context, input *GetResultMessageInput) (*GetResultMessageOutput, error)

	// GetStandingMessage returns a leaderboard line for one player
	GetStandingMessage(ctx context.Context, input *GetStandingMessageInput) (*GetStandingMessageOutput, error)

	// GetErrorMessage returns a readable message for a failed game
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
