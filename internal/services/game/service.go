package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/monosim/internal/catalog"
	"github.com/KirkDiggler/monosim/internal/common/clock"
	"github.com/KirkDiggler/monosim/internal/common/uuid"
	"github.com/KirkDiggler/monosim/internal/dice"
	"github.com/KirkDiggler/monosim/internal/models"
	gameRepo "github.com/KirkDiggler/monosim/internal/repositories/game"
	ledgerRepo "github.com/KirkDiggler/monosim/internal/repositories/ledger"
	playerRepo "github.com/KirkDiggler/monosim/internal/repositories/player"
	resultRepo "github.com/KirkDiggler/monosim/internal/repositories/result"
	"github.com/KirkDiggler/monosim/internal/services/player"
	"github.com/KirkDiggler/monosim/internal/strategy"
)

// service implements the Service interface
type service struct {
	maxPlayers  int
	maxRounds   int
	gameRepo    gameRepo.Repository
	playerRepo  playerRepo.Repository
	ledgerRepo  ledgerRepo.Repository
	resultRepo  resultRepo.Repository
	newRoller   func(seed int64) dice.Roller
	newStrategy func(seat models.PlayerID) strategy.Strategy
	clock       clock.Clock
	uuid        uuid.UUID
	logger      *slog.Logger
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
	}
	if cfg.ResultRepo == nil {
		return nil, ErrNilResultRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	s := &service{
		maxPlayers:  cfg.MaxPlayers,
		maxRounds:   cfg.MaxRounds,
		gameRepo:    cfg.GameRepo,
		playerRepo:  cfg.PlayerRepo,
		ledgerRepo:  cfg.LedgerRepo,
		resultRepo:  cfg.ResultRepo,
		newRoller:   cfg.NewRoller,
		newStrategy: cfg.NewStrategy,
		clock:       cfg.Clock,
		uuid:        cfg.UUIDGenerator,
		logger:      cfg.Logger,
	}
	if s.maxPlayers <= 0 {
		s.maxPlayers = DefaultMaxPlayers
	}
	if s.maxRounds <= 0 {
		s.maxRounds = DefaultMaxRounds
	}
	if s.newRoller == nil {
		s.newRoller = func(seed int64) dice.Roller {
			return dice.New(&dice.Config{Seed: &seed})
		}
	}
	if s.newStrategy == nil {
		s.newStrategy = func(models.PlayerID) strategy.Strategy {
			return strategy.New()
		}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s, nil
}

// run is the state of one game being simulated
type run struct {
	game  *models.Game
	table *player.Table
	txns  int
}

// Simulate plays one game round by round. Every round the player snapshots,
// the ledger and the game record are persisted. The game stops when at most
// one player is left, when the round cap is hit or when ctx is done.
func (s *service) Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}
	if n := len(input.PlayerNames); n < MinPlayers || n > s.maxPlayers {
		return nil, fmt.Errorf("%w: %d, want %d to %d", ErrInvalidPlayerCount, n, MinPlayers, s.maxPlayers)
	}

	r, err := s.setup(input)
	if err != nil {
		return nil, err
	}

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: r.game}); err != nil {
		return nil, err
	}

	log := s.logger.With("game", r.game.ID, "seed", r.game.Seed)
	log.Info("game started", "players", len(r.game.PlayerNames), "max_rounds", r.game.MaxRounds)

	if err := s.play(ctx, r); err != nil {
		log.Error("game failed", "round", r.game.Round, "error", err)
		s.fail(ctx, r, err)
		return nil, err
	}

	res, err := s.finish(ctx, r)
	if err != nil {
		return nil, err
	}

	log.Info("game finished", "rounds", res.Rounds, "winner", res.WinnerName)
	return &SimulateOutput{
		Game:   r.game,
		Result: res,
	}, nil
}

func (s *service) setup(input *SimulateInput) (*run, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	table, err := player.NewTable(&player.TableConfig{Catalog: cat})
	if err != nil {
		return nil, err
	}

	// One roller per game keeps the seed reproducible
	roller := s.newRoller(input.Seed)
	for i, name := range input.PlayerNames {
		seat := models.PlayerID(i + 1)
		p, err := player.New(&player.Config{
			ID:         seat,
			Name:       name,
			DiceRoller: roller,
			Strategy:   s.newStrategy(seat),
			Logger:     s.logger,
		})
		if err != nil {
			return nil, err
		}
		if err := table.Seat(p); err != nil {
			return nil, err
		}
	}

	maxRounds := input.MaxRounds
	if maxRounds <= 0 {
		maxRounds = s.maxRounds
	}

	now := s.clock.Now()
	names := make([]string, len(input.PlayerNames))
	copy(names, input.PlayerNames)

	return &run{
		game: &models.Game{
			ID:          s.uuid.NewUUID(),
			Seed:        input.Seed,
			Status:      models.GameStatusRunning,
			PlayerNames: names,
			MaxRounds:   maxRounds,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		table: table,
	}, nil
}

// play runs rounds until the game is decided. Turns are strictly sequential:
// only the player whose turn it is touches the table.
func (s *service) play(ctx context.Context, r *run) error {
	for r.game.Round < r.game.MaxRounds && len(r.table.Active()) > 1 {
		if err := ctx.Err(); err != nil {
			return err
		}

		round := r.game.Round + 1
		r.table.SetRound(round)

		for _, p := range r.table.Players() {
			if p.HasLost() {
				continue
			}
			if err := p.TakeTurn(r.table); err != nil {
				return fmt.Errorf("round %d, player %s: %w", round, p.Name(), err)
			}
			if len(r.table.Active()) <= 1 {
				break
			}
		}

		r.game.Round = round
		if err := s.persist(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

// persist flushes the journal and the snapshots of the round just played
func (s *service) persist(ctx context.Context, r *run) error {
	now := s.clock.Now()

	journal := r.table.Drain()
	if len(journal) > 0 {
		txns := make([]*models.Transaction, len(journal))
		for i := range journal {
			r.txns++
			txn := journal[i]
			txn.ID = fmt.Sprintf("%s:%d", r.game.ID, r.txns)
			txn.GameID = r.game.ID
			txn.Timestamp = now
			txns[i] = &txn
		}
		if err := s.ledgerRepo.AddTransactions(ctx, &ledgerRepo.AddTransactionsInput{Transactions: txns}); err != nil {
			return err
		}
	}

	players := r.table.Players()
	snapshots := make([]models.PlayerState, len(players))
	for i, p := range players {
		snapshots[i] = p.Snapshot(r.table)
	}
	if err := s.playerRepo.SavePlayers(ctx, &playerRepo.SavePlayersInput{
		GameID:  r.game.ID,
		Players: snapshots,
	}); err != nil {
		return err
	}

	r.game.UpdatedAt = now
	return s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: r.game})
}

// fail marks the game as failed. The store uses a context that survives
// cancellation so an interrupted game is not left running.
func (s *service) fail(ctx context.Context, r *run, cause error) {
	r.game.Status = models.GameStatusFailed
	r.game.Error = cause.Error()
	r.game.UpdatedAt = s.clock.Now()

	if err := s.gameRepo.SaveGame(context.WithoutCancel(ctx), &gameRepo.SaveGameInput{Game: r.game}); err != nil {
		s.logger.Error("failed to save failed game", "game", r.game.ID, "error", err)
	}
}

func (s *service) finish(ctx context.Context, r *run) (*models.GameResult, error) {
	now := s.clock.Now()

	res := &models.GameResult{
		GameID:     r.game.ID,
		Seed:       r.game.Seed,
		Rounds:     r.game.Round,
		FinishedAt: now,
	}
	if active := r.table.Active(); len(active) == 1 {
		res.WinnerID = active[0].ID()
		res.WinnerName = active[0].Name()
	}
	for _, p := range r.table.Players() {
		res.Standings = append(res.Standings, models.Standing{
			PlayerID: p.ID(),
			Name:     p.Name(),
			Cash:     p.Cash(),
			Wealth:   p.Wealth(),
			Lost:     p.HasLost(),
		})
	}

	if err := s.resultRepo.SaveResult(ctx, &resultRepo.SaveResultInput{Result: res}); err != nil {
		return nil, err
	}

	r.game.Status = models.GameStatusFinished
	r.game.WinnerID = res.WinnerID
	r.game.UpdatedAt = now
	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: r.game}); err != nil {
		return nil, err
	}

	return res, nil
}

// GetGame returns a game with its latest snapshots, and its result once finished
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, fmt.Errorf("%w: game ID is required", ErrInvalidInput)
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	players, err := s.playerRepo.GetPlayersInGame(ctx, &playerRepo.GetPlayersInGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, err
	}

	output := &GetGameOutput{
		Game:    game,
		Players: players.Players,
	}

	if game.Status == models.GameStatusFinished {
		res, err := s.resultRepo.GetResult(ctx, &resultRepo.GetResultInput{GameID: input.GameID})
		if err != nil && !errors.Is(err, resultRepo.ErrResultNotFound) {
			return nil, err
		}
		output.Result = res
	}

	return output, nil
}

// GetPlayer returns one player's latest snapshot and ledger totals
func (s *service) GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, fmt.Errorf("%w: game ID is required", ErrInvalidInput)
	}

	state, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		GameID:   input.GameID,
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	totals, err := s.ledgerRepo.GetPlayerTotals(ctx, &ledgerRepo.GetPlayerTotalsInput{
		GameID:   input.GameID,
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}

	return &GetPlayerOutput{
		Player:   state,
		Paid:     totals.Paid,
		Received: totals.Received,
	}, nil
}

// GetTransactions returns the ledger of a game, or of one player when set
func (s *service) GetTransactions(ctx context.Context, input *GetTransactionsInput) (*GetTransactionsOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, fmt.Errorf("%w: game ID is required", ErrInvalidInput)
	}

	if input.PlayerID != models.NoOwner {
		output, err := s.ledgerRepo.GetTransactionsForPlayer(ctx, &ledgerRepo.GetTransactionsForPlayerInput{
			GameID:   input.GameID,
			PlayerID: input.PlayerID,
		})
		if err != nil {
			return nil, err
		}
		return &GetTransactionsOutput{Transactions: output.Transactions}, nil
	}

	output, err := s.ledgerRepo.GetTransactionsForGame(ctx, &ledgerRepo.GetTransactionsForGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, err
	}
	return &GetTransactionsOutput{Transactions: output.Transactions}, nil
}

// ListGames returns the most recent games
func (s *service) ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error) {
	limit := 0
	if input != nil {
		limit = input.Limit
	}

	games, err := s.gameRepo.ListRecentGames(ctx, &gameRepo.ListRecentGamesInput{Limit: limit})
	if err != nil {
		return nil, err
	}
	return &ListGamesOutput{Games: games}, nil
}

// ListActiveGames returns the games still being played
func (s *service) ListActiveGames(ctx context.Context, input *ListActiveGamesInput) (*ListActiveGamesOutput, error) {
	output, err := s.gameRepo.GetActiveGames(ctx, &gameRepo.GetActiveGamesInput{})
	if err != nil {
		return nil, err
	}
	return &ListActiveGamesOutput{Games: output.Games}, nil
}

// ListResults returns stored results, newest first
func (s *service) ListResults(ctx context.Context, input *ListResultsInput) (*ListResultsOutput, error) {
	limit := 0
	if input != nil {
		limit = input.Limit
	}

	results, err := s.resultRepo.ListResults(ctx, &resultRepo.ListResultsInput{Limit: limit})
	if err != nil {
		return nil, err
	}
	return &ListResultsOutput{Results: results}, nil
}

// Summarize tallies wins across every stored result
func (s *service) Summarize(ctx context.Context, input *SummarizeInput) (*SummarizeOutput, error) {
	output, err := s.resultRepo.CountWins(ctx, &resultRepo.CountWinsInput{})
	if err != nil {
		return nil, err
	}
	return &SummarizeOutput{
		Wins:      output.Wins,
		Undecided: output.Undecided,
	}, nil
}

// DeleteGame removes a finished or failed game with its snapshots, ledger and stored result
func (s *service) DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, fmt.Errorf("%w: game ID is required", ErrInvalidInput)
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	if game.Status.IsRunning() {
		return nil, fmt.Errorf("%w: game %s is still running", ErrInvalidGameState, game.ID)
	}

	if err := s.ledgerRepo.DeleteTransactions(ctx, &ledgerRepo.DeleteTransactionsInput{GameID: game.ID}); err != nil {
		return nil, err
	}
	if err := s.playerRepo.DeletePlayersInGame(ctx, &playerRepo.DeletePlayersInGameInput{GameID: game.ID}); err != nil {
		return nil, err
	}
	if err := s.resultRepo.DeleteResult(ctx, &resultRepo.DeleteResultInput{GameID: game.ID}); err != nil {
		return nil, err
	}
	if err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{GameID: game.ID}); err != nil {
		return nil, err
	}

	return &DeleteGameOutput{Success: true}, nil
}

func (s *service) getGame(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: gameID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return game, nil
}
