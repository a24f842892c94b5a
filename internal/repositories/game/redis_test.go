package game

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/monosim/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newGame(id string, status models.GameStatus, createdAt time.Time) *models.Game {
	return &models.Game{
		ID:          id,
		Seed:        42,
		Status:      status,
		PlayerNames: []string{"alice", "bob"},
		MaxRounds:   100,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetGame() {
	game := s.newGame("test-game-id", models.GameStatusRunning, s.testNow)
	game.Round = 12

	err := s.repo.SaveGame(context.Background(), &SaveGameInput{
		Game: game,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetGame(context.Background(), &GetGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-game-id", retrieved.ID)
	s.Equal(int64(42), retrieved.Seed)
	s.Equal(models.GameStatusRunning, retrieved.Status)
	s.Equal([]string{"alice", "bob"}, retrieved.PlayerNames)
	s.Equal(12, retrieved.Round)
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetGameNotFound() {
	_, err := s.repo.GetGame(context.Background(), &GetGameInput{
		GameID: "missing",
	})
	s.ErrorIs(err, ErrGameNotFound)

	_, err = s.repo.GetGame(context.Background(), &GetGameInput{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveGameRejectsEmptyInput() {
	s.Error(s.repo.SaveGame(context.Background(), nil))
	s.Error(s.repo.SaveGame(context.Background(), &SaveGameInput{Game: &models.Game{}}))
}

func (s *RedisRepositoryTestSuite) TestActiveGamesTrackStatus() {
	ctx := context.Background()
	running := s.newGame("running", models.GameStatusRunning, s.testNow)
	finished := s.newGame("finished", models.GameStatusFinished, s.testNow)

	s.Require().NoError(s.repo.SaveGame(ctx, &SaveGameInput{Game: running}))
	s.Require().NoError(s.repo.SaveGame(ctx, &SaveGameInput{Game: finished}))

	output, err := s.repo.GetActiveGames(ctx, &GetActiveGamesInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Games, 1)
	s.Equal("running", output.Games[0].ID)

	running.Status = models.GameStatusFailed
	s.Require().NoError(s.repo.SaveGame(ctx, &SaveGameInput{Game: running}))

	output, err = s.repo.GetActiveGames(ctx, &GetActiveGamesInput{})
	s.Require().NoError(err)
	s.Empty(output.Games)
}

func (s *RedisRepositoryTestSuite) TestListRecentGames() {
	ctx := context.Background()
	for i, id := range []string{"first", "second", "third"} {
		game := s.newGame(id, models.GameStatusFinished, s.testNow.Add(time.Duration(i)*time.Minute))
		s.Require().NoError(s.repo.SaveGame(ctx, &SaveGameInput{Game: game}))
	}

	games, err := s.repo.ListRecentGames(ctx, &ListRecentGamesInput{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(games, 2)
	s.Equal("third", games[0].ID)
	s.Equal("second", games[1].ID)

	games, err = s.repo.ListRecentGames(ctx, &ListRecentGamesInput{})
	s.Require().NoError(err)
	s.Len(games, 3)
}

func (s *RedisRepositoryTestSuite) TestDeleteGame() {
	ctx := context.Background()
	game := s.newGame("test-game-id", models.GameStatusRunning, s.testNow)
	s.Require().NoError(s.repo.SaveGame(ctx, &SaveGameInput{Game: game}))

	s.Require().NoError(s.repo.DeleteGame(ctx, &DeleteGameInput{GameID: "test-game-id"}))

	_, err := s.repo.GetGame(ctx, &GetGameInput{GameID: "test-game-id"})
	s.ErrorIs(err, ErrGameNotFound)

	output, err := s.repo.GetActiveGames(ctx, &GetActiveGamesInput{})
	s.Require().NoError(err)
	s.Empty(output.Games)

	games, err := s.repo.ListRecentGames(ctx, &ListRecentGamesInput{})
	s.Require().NoError(err)
	s.Empty(games)

	s.ErrorIs(s.repo.DeleteGame(ctx, &DeleteGameInput{GameID: "test-game-id"}), ErrGameNotFound)
}
