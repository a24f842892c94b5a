package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/monosim/internal/repositories/ledger Repository

import (
	"context"
)

// Repository defines the interface for transaction ledger persistence
type Repository interface {
	// AddTransactions appends transactions to the ledger in order
	AddTransactions(ctx context.Context, input *AddTransactionsInput) error

	// GetTransactionsForGame retrieves every transaction of a game in order
	GetTransactionsForGame(ctx context.Context, input *GetTransactionsForGameInput) (*GetTransactionsForGameOutput, error)

	// GetTransactionsForPlayer retrieves the transactions a player paid or received
	GetTransactionsForPlayer(ctx context.Context, input *GetTransactionsForPlayerInput) (*GetTransactionsForPlayerOutput, error)

	// GetPlayerTotals retrieves how much a player paid and received in a game
	GetPlayerTotals(ctx context.Context, input *GetPlayerTotalsInput) (*GetPlayerTotalsOutput, error)

	// DeleteTransactions deletes every transaction of a game
	DeleteTransactions(ctx context.Context, input *DeleteTransactionsInput) error
}
