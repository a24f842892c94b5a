package strategy

//go:generate mockgen -package=mocks -destination=mocks/mock_strategy.go github.com/KirkDiggler/monosim/internal/strategy Strategy

import "github.com/KirkDiggler/monosim/internal/models"

// Decision is the answer to a buy-or-bid or mortgage-or-bid question
type Decision string

const (
	DecisionBuy      Decision = "buy"
	DecisionMortgage Decision = "mortgage"
	DecisionBid      Decision = "bid"
)

// JailDecision is the answer of a jailed player who did not roll a double
type JailDecision string

const (
	JailWait JailDecision = "wait"
	JailPay  JailDecision = "pay"
)

// Building is the kind of improvement a player is about to buy
type Building string

const (
	BuildingHouse Building = "house"
	BuildingHotel Building = "hotel"
)

// Situation is what a strategy gets to see about the deciding player
type Situation struct {
	Name               string
	DiceTotal          int
	Cash               int
	MortgageableAmount int
	JailCount          int
}

// Strategy answers every decision point of a turn
type Strategy interface {
	// BuyOrBid is asked when the player can pay the asset price from cash
	BuyOrBid(s Situation, asset models.Asset) Decision

	// MortgageOrBid is asked when the price needs cash plus mortgages
	MortgageOrBid(s Situation, asset models.Asset) Decision

	// WantsToBuild is asked when the player owns at least one full color group
	WantsToBuild(s Situation) bool

	// WantsToUnmortgage is asked when the player holds mortgageable assets
	WantsToUnmortgage(s Situation) bool

	// PayOrWait is asked of a jailed player below the third round
	PayOrWait(s Situation) JailDecision

	// MortgageToBuild is asked when cash cannot cover a building
	MortgageToBuild(s Situation, b Building) bool
}

// Default is the deterministic placeholder policy: always buy, build on a
// dice total that is a multiple of 5, unmortgage on an even total, wait in
// jail and never mortgage for buildings.
type Default struct{}

// New returns the default policy
func New() *Default {
	return &Default{}
}

func (d *Default) BuyOrBid(s Situation, asset models.Asset) Decision {
	return DecisionBuy
}

func (d *Default) MortgageOrBid(s Situation, asset models.Asset) Decision {
	return DecisionMortgage
}

func (d *Default) WantsToBuild(s Situation) bool {
	return s.DiceTotal%5 == 0
}

func (d *Default) WantsToUnmortgage(s Situation) bool {
	return s.DiceTotal%2 == 0
}

func (d *Default) PayOrWait(s Situation) JailDecision {
	return JailWait
}

func (d *Default) MortgageToBuild(s Situation, b Building) bool {
	return false
}
