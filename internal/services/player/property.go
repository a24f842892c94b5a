package player

import (
	"fmt"

	"github.com/KirkDiggler/monosim/internal/models"
	"github.com/KirkDiggler/monosim/internal/strategy"
)

// Buy purchases an unowned asset from the bank at its price
func (p *Player) Buy(t *Table, asset *models.Asset) error {
	if asset.IsOwned() {
		return fmt.Errorf("%w: %s already belongs to player %d", ErrInvalidOwnership, asset.Name, asset.Owner)
	}
	if err := p.PayBank(t, asset.Price, models.TransactionPurchase, asset.Name); err != nil {
		return err
	}

	asset.Owner = p.id
	list := p.owned(asset.Kind)
	*list = append(*list, asset)
	p.mortgageable += asset.MortgageValue

	if asset.Kind == models.AssetRoad {
		p.improvements[asset.Name] = models.Improvements{}
		p.refreshColor(t, asset.Color)
	}

	p.logger.Debug("bought asset", "asset", asset.Name, "price", asset.Price, "cash", p.cash)
	return nil
}

// BuyRoad purchases a road
func (p *Player) BuyRoad(t *Table, asset *models.Asset) error {
	if asset.Kind != models.AssetRoad {
		return fmt.Errorf("%w: %s is a %s", ErrInvalidState, asset.Name, asset.Kind)
	}
	return p.Buy(t, asset)
}

// BuyProperty purchases a station or a utility
func (p *Player) BuyProperty(t *Table, asset *models.Asset) error {
	if asset.Kind != models.AssetStation && asset.Kind != models.AssetUtility {
		return fmt.Errorf("%w: %s is a %s", ErrInvalidState, asset.Name, asset.Kind)
	}
	return p.Buy(t, asset)
}

// MortgageAndBuy mortgages assets for the part of the price cash cannot
// cover, then buys
func (p *Player) MortgageAndBuy(t *Table, asset *models.Asset) error {
	if shortfall := asset.Price - p.cash; shortfall > 0 {
		if err := p.RaiseFunds(t, shortfall); err != nil {
			return err
		}
	}
	return p.Buy(t, asset)
}

// acquire handles landing on an unowned asset
func (p *Player) acquire(t *Table, asset *models.Asset) error {
	sit := p.situation()

	switch {
	case p.HasEnoughMoney(asset.Price, false):
		if p.strategy.BuyOrBid(sit, *asset) == strategy.DecisionBuy {
			return p.Buy(t, asset)
		}
	case p.HasEnoughMoney(asset.Price, true):
		if p.strategy.MortgageOrBid(sit, *asset) == strategy.DecisionMortgage {
			return p.MortgageAndBuy(t, asset)
		}
	}

	p.bid(asset)
	return nil
}

// bid leaves the asset with the bank. Auctions are not simulated.
func (p *Player) bid(asset *models.Asset) {
	p.logger.Debug("passing on asset", "asset", asset.Name, "price", asset.Price, "cash", p.cash)
}

func (p *Player) refreshColor(t *Table, color models.Color) {
	roads := t.Catalog.ColorGroups[color]
	count := 0
	for _, asset := range p.ownedRoads {
		if asset.Color == color {
			count++
		}
	}
	p.ownedColors[color] = len(roads) > 0 && count == len(roads)
}

// EstimateRent computes what a visitor owes the owner of asset
func (p *Player) EstimateRent(t *Table, asset *models.Asset) (int, error) {
	if !asset.IsOwned() {
		return 0, fmt.Errorf("%w: %s has no owner", ErrInvalidOwnership, asset.Name)
	}
	owner, err := t.Player(asset.Owner)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidOwnership, err)
	}

	switch asset.Kind {
	case models.AssetRoad:
		return roadRent(owner, asset), nil
	case models.AssetStation:
		return stationRent(owner.OwnedStationCount())
	case models.AssetUtility:
		return utilityRent(owner.OwnedUtilityCount(), p.diceTotal)
	}
	return 0, fmt.Errorf("%w: unknown asset kind %q", ErrInvalidState, asset.Kind)
}

func roadRent(owner *Player, asset *models.Asset) int {
	if !owner.HasColorGroup(asset.Color) {
		return asset.Rent
	}
	imp := owner.Improvements(asset.Name)
	switch {
	case imp.Hotels > 0:
		return asset.RentWithHotel
	case imp.Houses > 0:
		return asset.RentWithHouses[imp.Houses-1]
	}
	return asset.RentWithColorSet
}

var stationRents = map[int]int{1: 25, 2: 50, 3: 100, 4: 200}

func stationRent(count int) (int, error) {
	rent, ok := stationRents[count]
	if !ok {
		return 0, fmt.Errorf("%w: owner holds %d stations", ErrInvalidState, count)
	}
	return rent, nil
}

func utilityRent(count, diceTotal int) (int, error) {
	switch count {
	case 1:
		return diceTotal * 4, nil
	case 2:
		return diceTotal * 10, nil
	}
	return 0, fmt.Errorf("%w: owner holds %d utilities", ErrInvalidState, count)
}

// PayRent settles the rent owed for landing on an opponent's asset
func (p *Player) PayRent(t *Table, asset *models.Asset) error {
	rent, err := p.EstimateRent(t, asset)
	if err != nil {
		return err
	}
	return p.settle(t, rent, func() error {
		return p.PayOpponent(t, asset.Owner, rent, models.TransactionRent, asset.Name)
	})
}
