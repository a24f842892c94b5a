package player

import (
	"fmt"

	"github.com/KirkDiggler/monosim/internal/models"
	"github.com/KirkDiggler/monosim/internal/strategy"
)

// buildPriority is the order in which complete color groups are developed
var buildPriority = []models.Color{
	models.ColorBlue,
	models.ColorGreen,
	models.ColorYellow,
	models.ColorRed,
	models.ColorOrange,
	models.ColorPurple,
	models.ColorLightBlue,
	models.ColorBrown,
}

// ChooseBuildTarget picks the least developed road of the first complete
// color group in build priority that is not fully built. ok is false when
// there is nothing to build.
func (p *Player) ChooseBuildTarget(t *Table) (road string, building strategy.Building, ok bool) {
	limit := models.MaxHouses + models.MaxHotels
	for _, color := range buildPriority {
		if !p.ownedColors[color] {
			continue
		}

		least := limit
		for _, name := range t.Catalog.ColorGroups[color] {
			if n := p.improvements[name].Count(); n < least {
				least = n
				road = name
			}
		}

		switch {
		case least == limit:
			continue
		case least == models.MaxHouses:
			return road, strategy.BuildingHotel, true
		default:
			return road, strategy.BuildingHouse, true
		}
	}
	return "", "", false
}

// BuyHouse adds a house to one of the player's roads
func (p *Player) BuyHouse(t *Table, road string) error {
	asset, err := p.ownedRoad(t, road)
	if err != nil {
		return err
	}
	imp := p.improvements[road]

	switch {
	case imp.Houses >= models.MaxHouses:
		return fmt.Errorf("%w: %s already has %d houses", ErrInvalidState, road, imp.Houses)
	case t.Bank.Houses <= 0:
		return fmt.Errorf("%w: bank has no houses left", ErrInvalidState)
	}
	if err := p.PayBank(t, asset.HouseCost, models.TransactionHouse, road); err != nil {
		return err
	}

	imp.Houses++
	p.improvements[road] = imp
	t.Bank.Houses--

	p.logger.Debug("bought house", "road", road, "houses", imp.Houses, "cash", p.cash)
	return nil
}

// BuyHotel adds a hotel to a road that carries four houses. The houses stay.
func (p *Player) BuyHotel(t *Table, road string) error {
	asset, err := p.ownedRoad(t, road)
	if err != nil {
		return err
	}
	imp := p.improvements[road]

	switch {
	case imp.Hotels >= models.MaxHotels:
		return fmt.Errorf("%w: %s already has a hotel", ErrInvalidState, road)
	case t.Bank.Hotels <= 0:
		return fmt.Errorf("%w: bank has no hotels left", ErrInvalidState)
	case imp.Houses != models.MaxHouses:
		return fmt.Errorf("%w: %s needs %d houses before a hotel, has %d", ErrInvalidState, road, models.MaxHouses, imp.Houses)
	}
	if err := p.PayBank(t, asset.HotelCost, models.TransactionHotel, road); err != nil {
		return err
	}

	imp.Hotels++
	p.improvements[road] = imp
	t.Bank.Hotels--

	p.logger.Debug("bought hotel", "road", road, "cash", p.cash)
	return nil
}

// build runs the optional building step of a turn
func (p *Player) build(t *Table) error {
	road, building, ok := p.ChooseBuildTarget(t)
	if !ok {
		return nil
	}
	asset, err := p.ownedRoad(t, road)
	if err != nil {
		return err
	}
	imp := p.improvements[road]

	var (
		cost int
		buy  func(*Table, string) error
	)
	switch building {
	case strategy.BuildingHouse:
		if t.Bank.Houses <= 0 || imp.Houses >= models.MaxHouses {
			return nil
		}
		cost, buy = asset.HouseCost, p.BuyHouse
	case strategy.BuildingHotel:
		if t.Bank.Hotels <= 0 || imp.Hotels > 0 {
			return nil
		}
		cost, buy = asset.HotelCost, p.BuyHotel
	default:
		return fmt.Errorf("%w: unknown building %q", ErrInvalidState, building)
	}

	if p.HasEnoughMoney(cost, false) {
		return buy(t, road)
	}
	if p.HasEnoughMoney(cost, true) && p.strategy.MortgageToBuild(p.situation(), building) {
		if err := p.RaiseFunds(t, cost-p.cash); err != nil {
			return err
		}
		return buy(t, road)
	}
	return nil
}

// StreetRepair charges every house and hotel standing on complete color groups
func (p *Player) StreetRepair(t *Table) error {
	var houses, hotels int
	for _, color := range models.Colors {
		if !p.ownedColors[color] {
			continue
		}
		for _, road := range t.Catalog.ColorGroups[color] {
			imp := p.improvements[road]
			houses += imp.Houses
			hotels += imp.Hotels
		}
	}

	amount := houses*HouseRepairCost + hotels*HotelRepairCost
	if amount == 0 {
		return nil
	}
	p.logger.Debug("street repair", "houses", houses, "hotels", hotels, "amount", amount)
	return p.PayTax(t, amount, models.TransactionStreetRepair, "")
}

func (p *Player) ownedRoad(t *Table, road string) (*models.Asset, error) {
	asset, ok := t.Catalog.Roads[road]
	if !ok {
		return nil, fmt.Errorf("%w: unknown road %q", ErrInvalidState, road)
	}
	if !p.holds(asset) {
		return nil, fmt.Errorf("%w: %s is not owned by %s", ErrInvalidOwnership, road, p.name)
	}
	return asset, nil
}
