package ledger

import "github.com/KirkDiggler/monosim/internal/models"

// AddTransactionsInput contains parameters for adding transactions
type AddTransactionsInput struct {
	Transactions []*models.Transaction
}

// GetTransactionsForGameInput contains parameters for retrieving the transactions of a game
type GetTransactionsForGameInput struct {
	GameID string
}

// GetTransactionsForGameOutput contains the transactions of a game
type GetTransactionsForGameOutput struct {
	Transactions []*models.Transaction
}

// GetTransactionsForPlayerInput contains parameters for retrieving a player's transactions
type GetTransactionsForPlayerInput struct {
	GameID   string
	PlayerID models.PlayerID
}

// GetTransactionsForPlayerOutput contains a player's transactions
type GetTransactionsForPlayerOutput struct {
	Transactions []*models.Transaction
}

// GetPlayerTotalsInput contains parameters for retrieving a player's totals
type GetPlayerTotalsInput struct {
	GameID   string
	PlayerID models.PlayerID
}

// GetPlayerTotalsOutput contains the cash a player paid out and received
type GetPlayerTotalsOutput struct {
	Paid     int
	Received int
}

// DeleteTransactionsInput contains parameters for deleting the transactions of a game
type DeleteTransactionsInput struct {
	GameID string
}
