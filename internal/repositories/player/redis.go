package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/KirkDiggler/monosim/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis, one hash per game keyed by seat
	gamePlayersKeyPrefix = "game_players:"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
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

// SavePlayers persists player snapshots to Redis, replacing older ones
func (r *redisRepository) SavePlayers(ctx context.Context, input *SavePlayersInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}
	if len(input.Players) == 0 {
		return nil
	}

	values := make(map[string]interface{}, len(input.Players))
	for _, player := range input.Players {
		if player.ID <= models.NoOwner {
			return errors.New("player ID must be positive")
		}

		playerJSON, err := json.Marshal(player)
		if err != nil {
			return fmt.Errorf("failed to marshal player: %w", err)
		}
		values[seatField(player.ID)] = playerJSON
	}

	key := fmt.Sprintf("%s%s", gamePlayersKeyPrefix, input.GameID)
	if err := r.client.HSet(ctx, key, values).Err(); err != nil {
		return fmt.Errorf("failed to save players: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player snapshot from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.PlayerState, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", gamePlayersKeyPrefix, input.GameID)
	playerJSON, err := r.client.HGet(ctx, key, seatField(input.PlayerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var player models.PlayerState
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// GetPlayersInGame retrieves every snapshot of a game from Redis
func (r *redisRepository) GetPlayersInGame(ctx context.Context, input *GetPlayersInGameInput) (*GetPlayersInGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", gamePlayersKeyPrefix, input.GameID)
	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get players in game: %w", err)
	}

	players := make([]*models.PlayerState, 0, len(fields))
	for seat, playerJSON := range fields {
		var player models.PlayerState
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", seat, err)
		}
		players = append(players, &player)
	}

	sort.Slice(players, func(i, j int) bool {
		return players[i].ID < players[j].ID
	})

	return &GetPlayersInGameOutput{
		Players: players,
	}, nil
}

// DeletePlayersInGame removes every snapshot of a game from Redis
func (r *redisRepository) DeletePlayersInGame(ctx context.Context, input *DeletePlayersInGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", gamePlayersKeyPrefix, input.GameID)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete players: %w", err)
	}

	return nil
}

func seatField(id models.PlayerID) string {
	return strconv.Itoa(int(id))
}
