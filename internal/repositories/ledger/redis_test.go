package ledger

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
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
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

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) seed() {
	err := s.repo.AddTransactions(s.ctx, &AddTransactionsInput{
		Transactions: []*models.Transaction{
			{ID: "t1", GameID: "g1", Round: 1, From: 1, To: models.NoOwner, Amount: 60, Reason: models.TransactionPurchase, Asset: "old kent road", Timestamp: s.testNow},
			{ID: "t2", GameID: "g1", Round: 1, From: 2, To: 1, Amount: 2, Reason: models.TransactionRent, Asset: "old kent road", Timestamp: s.testNow},
			{ID: "t3", GameID: "g1", Round: 2, From: models.NoOwner, To: 2, Amount: 200, Reason: models.TransactionPassGo, Timestamp: s.testNow},
			{ID: "t4", GameID: "g2", Round: 1, From: 1, To: models.NoOwner, Amount: 200, Reason: models.TransactionTax, Asset: "income tax"},
		},
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestGetTransactionsForGameKeepsOrder() {
	s.seed()

	output, err := s.repo.GetTransactionsForGame(s.ctx, &GetTransactionsForGameInput{GameID: "g1"})
	s.Require().NoError(err)
	s.Require().Len(output.Transactions, 3)
	s.Equal("t1", output.Transactions[0].ID)
	s.Equal("t2", output.Transactions[1].ID)
	s.Equal("t3", output.Transactions[2].ID)
	s.Equal(models.TransactionRent, output.Transactions[1].Reason)
	s.Equal(s.testNow.Unix(), output.Transactions[0].Timestamp.Unix())
}

func (s *RedisRepositoryTestSuite) TestAddTransactionsStampsTime() {
	s.seed()

	output, err := s.repo.GetTransactionsForGame(s.ctx, &GetTransactionsForGameInput{GameID: "g2"})
	s.Require().NoError(err)
	s.Require().Len(output.Transactions, 1)
	s.False(output.Transactions[0].Timestamp.IsZero())
}

func (s *RedisRepositoryTestSuite) TestGetTransactionsForPlayer() {
	s.seed()

	output, err := s.repo.GetTransactionsForPlayer(s.ctx, &GetTransactionsForPlayerInput{GameID: "g1", PlayerID: 1})
	s.Require().NoError(err)
	s.Require().Len(output.Transactions, 2)
	s.Equal("t1", output.Transactions[0].ID)
	s.Equal("t2", output.Transactions[1].ID)

	output, err = s.repo.GetTransactionsForPlayer(s.ctx, &GetTransactionsForPlayerInput{GameID: "g1", PlayerID: 3})
	s.Require().NoError(err)
	s.Empty(output.Transactions)
}

func (s *RedisRepositoryTestSuite) TestGetPlayerTotals() {
	s.seed()

	totals, err := s.repo.GetPlayerTotals(s.ctx, &GetPlayerTotalsInput{GameID: "g1", PlayerID: 1})
	s.Require().NoError(err)
	s.Equal(60, totals.Paid)
	s.Equal(2, totals.Received)

	totals, err = s.repo.GetPlayerTotals(s.ctx, &GetPlayerTotalsInput{GameID: "g1", PlayerID: 2})
	s.Require().NoError(err)
	s.Equal(2, totals.Paid)
	s.Equal(200, totals.Received)
}

func (s *RedisRepositoryTestSuite) TestAddTransactionsValidatesInput() {
	s.Error(s.repo.AddTransactions(s.ctx, nil))
	s.Error(s.repo.AddTransactions(s.ctx, &AddTransactionsInput{
		Transactions: []*models.Transaction{{GameID: "g1", Amount: 10}},
	}))
	s.NoError(s.repo.AddTransactions(s.ctx, &AddTransactionsInput{}))
}

func (s *RedisRepositoryTestSuite) TestDeleteTransactions() {
	s.seed()

	s.Require().NoError(s.repo.DeleteTransactions(s.ctx, &DeleteTransactionsInput{GameID: "g1"}))

	output, err := s.repo.GetTransactionsForGame(s.ctx, &GetTransactionsForGameInput{GameID: "g1"})
	s.Require().NoError(err)
	s.Empty(output.Transactions)

	totals, err := s.repo.GetPlayerTotals(s.ctx, &GetPlayerTotalsInput{GameID: "g1", PlayerID: 1})
	s.Require().NoError(err)
	s.Zero(totals.Paid)

	other, err := s.repo.GetTransactionsForGame(s.ctx, &GetTransactionsForGameInput{GameID: "g2"})
	s.Require().NoError(err)
	s.Len(other.Transactions, 1)
}
