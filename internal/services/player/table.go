package player

import (
	"fmt"

	"github.com/KirkDiggler/monosim/internal/catalog"
	"github.com/KirkDiggler/monosim/internal/models"
)

// Table holds the state shared by every player of one game: asset records,
// bank, community chest deck, the seat registry and the transaction journal.
// Only the player whose turn is running may mutate it.
type Table struct {
	Catalog *catalog.Catalog
	Bank    *models.Bank
	Deck    *models.Deck

	players map[models.PlayerID]*Player
	seats   []*Player
	round   int
	journal []models.Transaction
}

// TableConfig holds configuration for a table
type TableConfig struct {
	// Catalog supplies the board, the assets and the opening bank
	Catalog *catalog.Catalog
}

// NewTable creates a table with a fresh bank and deck
func NewTable(cfg *TableConfig) (*Table, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}

	bank := cfg.Catalog.Bank
	return &Table{
		Catalog: cfg.Catalog,
		Bank:    &bank,
		Deck:    models.NewDeck(cfg.Catalog.Cards),
		players: make(map[models.PlayerID]*Player),
	}, nil
}

// Seat registers a player. Seats are taken once at setup.
func (t *Table) Seat(p *Player) error {
	if _, ok := t.players[p.id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateSeat, p.id)
	}
	t.players[p.id] = p
	t.seats = append(t.seats, p)
	return nil
}

// Player looks up a seated player
func (t *Table) Player(id models.PlayerID) (*Player, error) {
	p, ok := t.players[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, id)
	}
	return p, nil
}

// Players returns the seated players in seat order
func (t *Table) Players() []*Player {
	out := make([]*Player, len(t.seats))
	copy(out, t.seats)
	return out
}

// Active returns the players that have not lost, in seat order
func (t *Table) Active() []*Player {
	var out []*Player
	for _, p := range t.seats {
		if !p.lost {
			out = append(out, p)
		}
	}
	return out
}

// SetRound stamps subsequent transactions with the given round
func (t *Table) SetRound(round int) {
	t.round = round
}

// Drain returns and clears the transactions recorded since the last drain
func (t *Table) Drain() []models.Transaction {
	out := t.journal
	t.journal = nil
	return out
}

func (t *Table) record(from, to models.PlayerID, amount int, reason models.TransactionReason, asset string) {
	if amount == 0 {
		return
	}
	t.journal = append(t.journal, models.Transaction{
		Round:  t.round,
		From:   from,
		To:     to,
		Amount: amount,
		Reason: reason,
		Asset:  asset,
	})
}
