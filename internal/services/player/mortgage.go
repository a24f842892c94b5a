package player

import (
	"fmt"

	"github.com/KirkDiggler/monosim/internal/models"
)

// Mortgage pledges one of the player's unmortgaged assets to the bank for
// its mortgage value
func (p *Player) Mortgage(t *Table, asset *models.Asset) error {
	if !p.holds(asset) {
		return fmt.Errorf("%w: %s is not owned by %s", ErrInvalidOwnership, asset.Name, p.name)
	}
	if asset.Mortgaged {
		return fmt.Errorf("%w: %s is already mortgaged", ErrInvalidState, asset.Name)
	}

	asset.Mortgaged = true
	list := p.mortgaged(asset.Kind)
	*list = append(*list, asset)
	p.mortgageable -= asset.MortgageValue
	p.credit(t, asset.MortgageValue, models.TransactionMortgage, asset.Name)

	p.logger.Debug("mortgaged asset", "asset", asset.Name, "cash", p.cash)
	return nil
}

// Unmortgage buys back a mortgaged asset at its unmortgage value
func (p *Player) Unmortgage(t *Table, asset *models.Asset) error {
	if !p.holds(asset) {
		return fmt.Errorf("%w: %s is not owned by %s", ErrInvalidOwnership, asset.Name, p.name)
	}
	if !asset.Mortgaged {
		return fmt.Errorf("%w: %s is not mortgaged", ErrInvalidState, asset.Name)
	}
	if err := p.PayBank(t, asset.UnmortgageValue, models.TransactionUnmortgage, asset.Name); err != nil {
		return err
	}

	asset.Mortgaged = false
	list := p.mortgaged(asset.Kind)
	*list = remove(*list, asset)
	p.mortgageable += asset.MortgageValue

	p.logger.Debug("unmortgaged asset", "asset", asset.Name, "cash", p.cash)
	return nil
}

// ChooseMortgageCandidates picks unmortgaged assets, roads first, then
// stations, then utilities, until their mortgage values reach amount
func (p *Player) ChooseMortgageCandidates(amount int) ([]*models.Asset, error) {
	var candidates []*models.Asset
	for _, kind := range []models.AssetKind{models.AssetRoad, models.AssetStation, models.AssetUtility} {
		for _, asset := range *p.owned(kind) {
			if !asset.Mortgaged {
				candidates = append(candidates, asset)
			}
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: nothing left to mortgage for %d", ErrUnsatisfiableLiquidity, amount)
	}

	var (
		chosen []*models.Asset
		total  int
	)
	for _, asset := range candidates {
		if total >= amount {
			break
		}
		chosen = append(chosen, asset)
		total += asset.MortgageValue
	}
	if total < amount {
		return nil, fmt.Errorf("%w: mortgages raise %d of %d", ErrUnsatisfiableLiquidity, total, amount)
	}
	return chosen, nil
}

// RaiseFunds mortgages enough assets to bring in at least amount
func (p *Player) RaiseFunds(t *Table, amount int) error {
	chosen, err := p.ChooseMortgageCandidates(amount)
	if err != nil {
		return err
	}
	for _, asset := range chosen {
		if err := p.Mortgage(t, asset); err != nil {
			return err
		}
	}
	return nil
}

// ChooseUnmortgageCandidates picks mortgaged assets, roads first, then
// stations, then utilities, while the running cost stays below cash
func (p *Player) ChooseUnmortgageCandidates() []*models.Asset {
	var (
		chosen []*models.Asset
		total  int
	)
	for _, kind := range []models.AssetKind{models.AssetRoad, models.AssetStation, models.AssetUtility} {
		for _, asset := range *p.owned(kind) {
			if !asset.Mortgaged {
				continue
			}
			if total+asset.UnmortgageValue < p.cash {
				chosen = append(chosen, asset)
				total += asset.UnmortgageValue
			}
		}
	}
	return chosen
}

// UnmortgageAffordable buys back every asset picked by ChooseUnmortgageCandidates
func (p *Player) UnmortgageAffordable(t *Table) error {
	for _, asset := range p.ChooseUnmortgageCandidates() {
		if err := p.Unmortgage(t, asset); err != nil {
			return err
		}
	}
	return nil
}
