package main

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/monosim/internal/models"
	gameService "github.com/KirkDiggler/monosim/internal/services/game"
	"github.com/KirkDiggler/monosim/internal/services/messaging"
)

// recapper logs a readable summary of every simulated game
type recapper struct {
	games    gameService.Service
	messages messaging.Service
	logger   *slog.Logger
}

// result logs the outcome and leaderboard of a finished game. The full ledger
// is narrated only when debug logging is on.
func (r *recapper) result(ctx context.Context, game *models.Game, res *models.GameResult) error {
	log := r.logger.With("game", game.ID, "seed", game.Seed)

	announce, err := r.messages.GetResultMessage(ctx, &messaging.GetResultMessageInput{Result: res})
	if err != nil {
		return fmt.Errorf("announcing result: %w", err)
	}
	log.Info(announce.Title, "message", announce.Message)

	standings := slices.Clone(res.Standings)
	slices.SortStableFunc(standings, func(a, b models.Standing) int {
		if a.Lost != b.Lost {
			if a.Lost {
				return 1
			}
			return -1
		}
		return cmp.Compare(b.Wealth, a.Wealth)
	})

	names := make(map[models.PlayerID]string, len(standings))
	for rank, st := range standings {
		names[st.PlayerID] = st.Name
		line, err := r.messages.GetStandingMessage(ctx, &messaging.GetStandingMessageInput{
			Standing:     st,
			Rank:         rank,
			TotalPlayers: len(standings),
		})
		if err != nil {
			return fmt.Errorf("describing standing: %w", err)
		}
		log.Info(line.Message, "player", st.Name, "rank", rank+1)
	}

	if !r.logger.Enabled(ctx, slog.LevelDebug) {
		return nil
	}

	ledger, err := r.games.GetTransactions(ctx, &gameService.GetTransactionsInput{GameID: game.ID})
	if err != nil {
		return fmt.Errorf("loading ledger: %w", err)
	}
	for _, txn := range ledger.Transactions {
		line, err := r.messages.GetTransactionMessage(ctx, &messaging.GetTransactionMessageInput{
			Transaction: txn,
			FromName:    names[txn.From],
			ToName:      names[txn.To],
		})
		if err != nil {
			return fmt.Errorf("describing transaction %s: %w", txn.ID, err)
		}
		log.Debug(line.Message, "round", txn.Round, "tone", line.Tone)
	}
	return nil
}

// failure logs why a game could not be finished
func (r *recapper) failure(ctx context.Context, seed int64, cause error) {
	msg, err := r.messages.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: cause, Seed: seed})
	if err != nil {
		r.logger.Error("simulation failed", "seed", seed, "error", cause)
		return
	}
	r.logger.Error(msg.Title, "seed", seed, "message", msg.Message, "error", cause)
}
