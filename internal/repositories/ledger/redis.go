package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/monosim/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	txnKeyPrefix          = "txn:"
	gameTxnsKeyPrefix     = "game_txns:"
	playerTxnsKeyPrefix   = "player_txns:"
	playerTotalsKeyPrefix = "player_totals:"
)

// ErrTransactionNotFound is returned when a transaction is not found
var ErrTransactionNotFound = errors.New("transaction not found")

// Config holds configuration for the Redis ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ledger repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// AddTransactions appends transactions to the ledger in a single pipeline
func (r *redisRepository) AddTransactions(ctx context.Context, input *AddTransactionsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if len(input.Transactions) == 0 {
		return nil
	}

	pipe := r.client.Pipeline()

	for _, txn := range input.Transactions {
		if txn == nil || txn.ID == "" || txn.GameID == "" {
			return errors.New("transaction ID and game ID cannot be empty")
		}

		if txn.Timestamp.IsZero() {
			txn.Timestamp = time.Now()
		}

		txnJSON, err := json.Marshal(txn)
		if err != nil {
			return fmt.Errorf("failed to marshal transaction: %w", err)
		}

		pipe.Set(ctx, txnKeyPrefix+txn.ID, txnJSON, 0)
		pipe.RPush(ctx, gameTxnsKeyPrefix+txn.GameID, txn.ID)

		// The bank has no per-player index
		if txn.From != models.NoOwner {
			pipe.RPush(ctx, playerKey(playerTxnsKeyPrefix, txn.GameID, txn.From), txn.ID)
			pipe.HIncrBy(ctx, playerKey(playerTotalsKeyPrefix, txn.GameID, txn.From), "paid", int64(txn.Amount))
		}
		if txn.To != models.NoOwner {
			pipe.RPush(ctx, playerKey(playerTxnsKeyPrefix, txn.GameID, txn.To), txn.ID)
			pipe.HIncrBy(ctx, playerKey(playerTotalsKeyPrefix, txn.GameID, txn.To), "received", int64(txn.Amount))
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add transactions: %w", err)
	}

	return nil
}

// GetTransactionsForGame retrieves all transactions for a game
func (r *redisRepository) GetTransactionsForGame(ctx context.Context, input *GetTransactionsForGameInput) (*GetTransactionsForGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	txns, err := r.getTransactions(ctx, gameTxnsKeyPrefix+input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetTransactionsForGameOutput{
		Transactions: txns,
	}, nil
}

// GetTransactionsForPlayer retrieves all transactions a player took part in
func (r *redisRepository) GetTransactionsForPlayer(ctx context.Context, input *GetTransactionsForPlayerInput) (*GetTransactionsForPlayerOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	txns, err := r.getTransactions(ctx, playerKey(playerTxnsKeyPrefix, input.GameID, input.PlayerID))
	if err != nil {
		return nil, err
	}

	return &GetTransactionsForPlayerOutput{
		Transactions: txns,
	}, nil
}

// GetPlayerTotals retrieves the running totals of a player
func (r *redisRepository) GetPlayerTotals(ctx context.Context, input *GetPlayerTotalsInput) (*GetPlayerTotalsOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	totals, err := r.client.HGetAll(ctx, playerKey(playerTotalsKeyPrefix, input.GameID, input.PlayerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player totals: %w", err)
	}

	output := &GetPlayerTotalsOutput{}
	if paid, ok := totals["paid"]; ok {
		if output.Paid, err = strconv.Atoi(paid); err != nil {
			return nil, fmt.Errorf("failed to parse paid total: %w", err)
		}
	}
	if received, ok := totals["received"]; ok {
		if output.Received, err = strconv.Atoi(received); err != nil {
			return nil, fmt.Errorf("failed to parse received total: %w", err)
		}
	}

	return output, nil
}

// DeleteTransactions deletes all transactions for a game
func (r *redisRepository) DeleteTransactions(ctx context.Context, input *DeleteTransactionsInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	txns, err := r.getTransactions(ctx, gameTxnsKeyPrefix+input.GameID)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, gameTxnsKeyPrefix+input.GameID)

	seats := make(map[models.PlayerID]struct{})
	for _, txn := range txns {
		pipe.Del(ctx, txnKeyPrefix+txn.ID)
		seats[txn.From] = struct{}{}
		seats[txn.To] = struct{}{}
	}
	delete(seats, models.NoOwner)

	for seat := range seats {
		pipe.Del(ctx, playerKey(playerTxnsKeyPrefix, input.GameID, seat))
		pipe.Del(ctx, playerKey(playerTotalsKeyPrefix, input.GameID, seat))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete transactions: %w", err)
	}

	return nil
}

// getTransactions loads the transactions listed under an index key, in order
func (r *redisRepository) getTransactions(ctx context.Context, indexKey string) ([]*models.Transaction, error) {
	txnIDs, err := r.client.LRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction IDs: %w", err)
	}

	if len(txnIDs) == 0 {
		return []*models.Transaction{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(txnIDs))
	for i, txnID := range txnIDs {
		cmds[i] = pipe.Get(ctx, txnKeyPrefix+txnID)
	}

	// redis.Nil surfaces per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	txns := make([]*models.Transaction, 0, len(txnIDs))
	for i, cmd := range cmds {
		txnJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				return nil, fmt.Errorf("%w: %s", ErrTransactionNotFound, txnIDs[i])
			}
			return nil, fmt.Errorf("failed to get transaction %s: %w", txnIDs[i], err)
		}

		var txn models.Transaction
		if err := json.Unmarshal([]byte(txnJSON), &txn); err != nil {
			return nil, fmt.Errorf("failed to unmarshal transaction %s: %w", txnIDs[i], err)
		}
		txns = append(txns, &txn)
	}

	return txns, nil
}

func playerKey(prefix, gameID string, id models.PlayerID) string {
	return fmt.Sprintf("%s%s:%d", prefix, gameID, id)
}
