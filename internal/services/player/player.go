package player

import (
	"log/slog"

	"github.com/KirkDiggler/monosim/internal/dice"
	"github.com/KirkDiggler/monosim/internal/models"
	"github.com/KirkDiggler/monosim/internal/strategy"
)

const (
	// StartingCash is the balance every player opens with
	StartingCash = 1500

	// PassGoBonus is credited when a move wraps past the start cell
	PassGoBonus = 200

	// JailFee is the price of leaving jail early
	JailFee = 50

	// MaxJailRounds is the number of waited rounds after which the fee is forced
	MaxJailRounds = 3

	// HouseRepairCost and HotelRepairCost are the street repair rates
	HouseRepairCost = 40
	HotelRepairCost = 115
)

// Config holds configuration for a player
type Config struct {
	// ID is the seat number, starting at 1
	ID models.PlayerID

	// Name is shown in logs and results
	Name string

	// DiceRoller rolls the two dice of every turn
	DiceRoller dice.Roller

	// Strategy answers decisions, defaults to strategy.New()
	Strategy strategy.Strategy

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// Player is one participant of a game. It owns its cash, position, jail
// state and asset lists. Shared state is reached through the *Table handed to
// each operation.
type Player struct {
	id       models.PlayerID
	name     string
	dice     dice.Roller
	strategy strategy.Strategy
	logger   *slog.Logger

	position     int
	diceTotal    int
	cash         int
	mortgageable int
	jailCount    int
	jailPass     bool
	freeVisit    bool
	lost         bool

	ownedRoads         []*models.Asset
	ownedStations      []*models.Asset
	ownedUtilities     []*models.Asset
	mortgagedRoads     []*models.Asset
	mortgagedStations  []*models.Asset
	mortgagedUtilities []*models.Asset

	ownedColors  map[models.Color]bool
	improvements map[string]models.Improvements
}

// New creates a player at the start cell with the starting cash
func New(cfg *Config) (*Player, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.ID <= models.NoOwner {
		return nil, ErrInvalidPlayerID
	}

	strat := cfg.Strategy
	if strat == nil {
		strat = strategy.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Player{
		id:           cfg.ID,
		name:         cfg.Name,
		dice:         cfg.DiceRoller,
		strategy:     strat,
		logger:       logger.With("player", cfg.Name),
		cash:         StartingCash,
		ownedColors:  make(map[models.Color]bool),
		improvements: make(map[string]models.Improvements),
	}, nil
}

func (p *Player) ID() models.PlayerID { return p.id }
func (p *Player) Name() string { return p.name }
func (p *Player) Cash() int { return p.cash }
func (p *Player) Position() int { return p.position }
func (p *Player) DiceTotal() int { return p.diceTotal }
func (p *Player) JailCount() int { return p.jailCount }
func (p *Player) HasLost() bool { return p.lost }
func (p *Player) MortgageableAmount() int { return p.mortgageable }

// HasColorGroup reports whether the player holds every road of the color
func (p *Player) HasColorGroup(color models.Color) bool {
	return p.ownedColors[color]
}

// Improvements returns the buildings on one of the player's roads
func (p *Player) Improvements(road string) models.Improvements {
	return p.improvements[road]
}

// OwnedStationCount counts stations regardless of mortgage
func (p *Player) OwnedStationCount() int {
	return len(p.ownedStations)
}

// OwnedUtilityCount counts utilities regardless of mortgage
func (p *Player) OwnedUtilityCount() int {
	return len(p.ownedUtilities)
}

// Wealth is cash plus what the remaining mortgages would raise
func (p *Player) Wealth() int {
	return p.cash + p.mortgageable
}

// Snapshot copies the player state for the turn driver and persistence
func (p *Player) Snapshot(t *Table) models.PlayerState {
	state := models.PlayerState{
		ID:                 p.id,
		Name:               p.name,
		Position:           p.position,
		DiceTotal:          p.diceTotal,
		Cash:               p.cash,
		MortgageableAmount: p.mortgageable,
		JailCount:          p.jailCount,
		JailPass:           p.jailPass,
		FreeVisit:          p.freeVisit,
		OwnedRoads:         names(p.ownedRoads),
		OwnedStations:      names(p.ownedStations),
		OwnedUtilities:     names(p.ownedUtilities),
		MortgagedRoads:     names(p.mortgagedRoads),
		MortgagedStations:  names(p.mortgagedStations),
		MortgagedUtilities: names(p.mortgagedUtilities),
		OwnedColors:        make(map[models.Color]bool, len(p.ownedColors)),
		Improvements:       make(map[string]models.Improvements, len(p.improvements)),
		Lost:               p.lost,
	}
	for color, owned := range p.ownedColors {
		state.OwnedColors[color] = owned
	}
	for road, imp := range p.improvements {
		state.Improvements[road] = imp
	}
	if t != nil {
		state.BankCash = t.Bank.Cash
	}
	return state
}

func (p *Player) situation() strategy.Situation {
	return strategy.Situation{
		Name:               p.name,
		DiceTotal:          p.diceTotal,
		Cash:               p.cash,
		MortgageableAmount: p.mortgageable,
		JailCount:          p.jailCount,
	}
}

func (p *Player) owned(kind models.AssetKind) *[]*models.Asset {
	switch kind {
	case models.AssetStation:
		return &p.ownedStations
	case models.AssetUtility:
		return &p.ownedUtilities
	default:
		return &p.ownedRoads
	}
}

func (p *Player) mortgaged(kind models.AssetKind) *[]*models.Asset {
	switch kind {
	case models.AssetStation:
		return &p.mortgagedStations
	case models.AssetUtility:
		return &p.mortgagedUtilities
	default:
		return &p.mortgagedRoads
	}
}

func (p *Player) holds(asset *models.Asset) bool {
	if asset.Owner != p.id {
		return false
	}
	return indexOf(*p.owned(asset.Kind), asset) >= 0
}

func (p *Player) credit(t *Table, amount int, reason models.TransactionReason, asset string) {
	p.cash += amount
	t.record(models.NoOwner, p.id, amount, reason, asset)
}

func names(assets []*models.Asset) []string {
	out := make([]string, 0, len(assets))
	for _, a := range assets {
		out = append(out, a.Name)
	}
	return out
}

func indexOf(assets []*models.Asset, asset *models.Asset) int {
	for i, a := range assets {
		if a == asset {
			return i
		}
	}
	return -1
}

func remove(assets []*models.Asset, asset *models.Asset) []*models.Asset {
	i := indexOf(assets, asset)
	if i < 0 {
		return assets
	}
	return append(assets[:i], assets[i+1:]...)
}
