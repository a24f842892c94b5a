package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/monosim/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix  = "game:"
	activeGamesKey = "active_games"
	gamesByTimeKey = "games:by_time"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
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

// SaveGame persists a game to Redis
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}
	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	pipe := r.client.Pipeline()

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.Game.ID)
	pipe.Set(ctx, gameKey, gameJSON, 0)

	if input.Game.Status.IsRunning() {
		pipe.SAdd(ctx, activeGamesKey, input.Game.ID)
	} else {
		pipe.SRem(ctx, activeGamesKey, input.Game.ID)
	}

	pipe.ZAdd(ctx, gamesByTimeKey, redis.Z{
		Score:  float64(input.Game.CreatedAt.UnixNano()),
		Member: input.Game.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.GameID)
	gameJSON, err := r.client.Get(ctx, gameKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// DeleteGame removes a game from Redis
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	if _, err := r.GetGame(ctx, &GetGameInput{GameID: input.GameID}); err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, fmt.Sprintf("%s%s", gameKeyPrefix, input.GameID))
	pipe.SRem(ctx, activeGamesKey, input.GameID)
	pipe.ZRem(ctx, gamesByTimeKey, input.GameID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// GetActiveGames retrieves all running games from Redis
func (r *redisRepository) GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error) {
	gameIDs, err := r.client.SMembers(ctx, activeGamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active game IDs: %w", err)
	}

	games, err := r.getGames(ctx, gameIDs)
	if err != nil {
		return nil, err
	}

	return &GetActiveGamesOutput{
		Games: games,
	}, nil
}

// ListRecentGames retrieves games ordered by creation time, newest first
func (r *redisRepository) ListRecentGames(ctx context.Context, input *ListRecentGamesInput) ([]*models.Game, error) {
	stop := int64(-1)
	if input != nil && input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	gameIDs, err := r.client.ZRevRange(ctx, gamesByTimeKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return r.getGames(ctx, gameIDs)
}

// getGames fetches games in a single pipeline, keeping the order of gameIDs
func (r *redisRepository) getGames(ctx context.Context, gameIDs []string) ([]*models.Game, error) {
	if len(gameIDs) == 0 {
		return []*models.Game{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(gameIDs))
	for i, gameID := range gameIDs {
		cmds[i] = pipe.Get(ctx, fmt.Sprintf("%s%s", gameKeyPrefix, gameID))
	}

	// redis.Nil surfaces per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}

	games := make([]*models.Game, 0, len(gameIDs))
	for i, cmd := range cmds {
		gameJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Game was deleted between getting the IDs and fetching the game
				continue
			}
			return nil, fmt.Errorf("failed to get game %s: %w", gameIDs[i], err)
		}

		var game models.Game
		if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game %s: %w", gameIDs[i], err)
		}
		games = append(games, &game)
	}

	return games, nil
}
