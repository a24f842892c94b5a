package player

import (
	"fmt"

	"github.com/KirkDiggler/monosim/internal/models"
	"github.com/KirkDiggler/monosim/internal/strategy"
)

// cardCredits are the community chest cards paid out by the bank
var cardCredits = map[models.CardID]int{
	models.CardStockSale:   50,
	models.CardHolidayFund: 100,
	models.CardSecondPrize: 100,
	models.CardInherit:     100,
	models.CardConsultancy: 25,
	models.CardIncomeTax:   20,
	models.CardInsurance:   100,
	models.CardBankError:   200,
}

// cardDebits are the community chest cards paid to the bank
var cardDebits = map[models.CardID]int{
	models.CardHospitalFees: 100,
	models.CardSchoolFees:   50,
	models.CardDoctorFees:   50,
}

// TakeTurn plays one full turn: roll, move, resolve the jail or the landed
// cell, then the optional build and unmortgage steps. A player who has lost
// does nothing.
func (p *Player) TakeTurn(t *Table) error {
	if p.lost {
		return nil
	}

	roll := models.Roll{First: p.dice.Roll(6), Second: p.dice.Roll(6)}
	p.diceTotal = roll.Total()
	p.move(t)

	var err error
	if p.position == t.Catalog.JailPosition() && !p.freeVisit {
		err = p.resolveJail(t, roll)
	} else {
		err = p.resolveCell(t, t.Catalog.Board[p.position])
	}
	if err != nil {
		return err
	}
	if p.lost {
		return nil
	}

	if p.hasAnyColorGroup() && p.strategy.WantsToBuild(p.situation()) {
		if err := p.build(t); err != nil {
			return err
		}
	}
	if p.mortgageable > 0 && p.strategy.WantsToUnmortgage(p.situation()) {
		if err := p.UnmortgageAffordable(t); err != nil {
			return err
		}
	}
	return nil
}

// move advances the token unless it sits in jail. Landing on the jail cell
// by a move is a free visit.
func (p *Player) move(t *Table) {
	jail := t.Catalog.JailPosition()
	if p.position == jail && !p.freeVisit {
		return
	}

	p.position = (p.position + p.diceTotal) % t.Catalog.Size()
	p.freeVisit = p.position == jail
	if p.position < p.diceTotal {
		p.credit(t, PassGoBonus, models.TransactionPassGo, "")
	}
}

func (p *Player) resolveJail(t *Table, roll models.Roll) error {
	if roll.IsDouble() {
		p.leaveJail()
		return nil
	}
	if p.jailCount == MaxJailRounds {
		return p.payJailFee(t)
	}

	decision, err := p.PayOrWait()
	if err != nil {
		return err
	}
	if decision == strategy.JailPay {
		return p.payJailFee(t)
	}
	p.jailCount++
	return nil
}

// PayOrWait asks the strategy whether to pay the jail fee. In the last jail
// round paying is forced and asking is an error.
func (p *Player) PayOrWait() (strategy.JailDecision, error) {
	if p.jailCount >= MaxJailRounds {
		return "", fmt.Errorf("%w: jail decision after %d rounds", ErrInvalidState, p.jailCount)
	}
	decision := p.strategy.PayOrWait(p.situation())
	switch decision {
	case strategy.JailWait, strategy.JailPay:
		return decision, nil
	}
	return "", fmt.Errorf("%w: unknown jail decision %q", ErrInvalidState, decision)
}

func (p *Player) payJailFee(t *Table) error {
	return p.settle(t, JailFee, func() error {
		if err := p.PayBank(t, JailFee, models.TransactionJailFee, ""); err != nil {
			return err
		}
		p.leaveJail()
		return nil
	})
}

// leaveJail releases the player and moves it by the dice total. The move
// cannot pass the start cell and the destination is not resolved.
func (p *Player) leaveJail() {
	p.jailCount = 0
	p.position += p.diceTotal
	p.logger.Debug("left jail", "position", p.position)
}

// GoToJail sends the player to the jail cell without passing the start cell
func (p *Player) GoToJail(t *Table) {
	p.position = t.Catalog.JailPosition()
	p.freeVisit = false
	p.jailCount = 0
	p.logger.Debug("sent to jail")
}

func (p *Player) resolveCell(t *Table, cell models.Cell) error {
	switch cell.Type {
	case models.CellRoad, models.CellStation, models.CellUtility:
		asset, err := t.Catalog.Asset(cell)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidState, err)
		}
		return p.landOnAsset(t, asset)
	case models.CellTax:
		amount, err := t.Catalog.Tax(cell.Name)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidState, err)
		}
		return p.PayTax(t, amount, models.TransactionTax, cell.Name)
	case models.CellCommunityChest:
		return p.PlayCommunityChest(t)
	case models.CellGoToJail:
		p.GoToJail(t)
	}
	return nil
}

func (p *Player) landOnAsset(t *Table, asset *models.Asset) error {
	switch {
	case asset.Owner == p.id:
		return nil
	case !asset.IsOwned():
		return p.acquire(t, asset)
	case asset.Mortgaged:
		return nil
	}
	return p.PayRent(t, asset)
}

// PlayCommunityChest draws the front card of the deck and applies it
func (p *Player) PlayCommunityChest(t *Table) error {
	card, ok := t.Deck.Draw()
	if !ok {
		return nil
	}
	p.logger.Debug("drew community chest", "card", card)

	if amount, ok := cardCredits[card]; ok {
		p.credit(t, amount, models.TransactionCardCredit, string(card))
		return nil
	}
	if amount, ok := cardDebits[card]; ok {
		return p.PayTax(t, amount, models.TransactionCardDebit, string(card))
	}

	switch card {
	case models.CardStreetRepair:
		return p.StreetRepair(t)
	case models.CardJail:
		p.GoToJail(t)
		return nil
	case models.CardToGo:
		p.position = 0
		p.credit(t, PassGoBonus, models.TransactionPassGo, string(card))
		return nil
	}
	return fmt.Errorf("%w: unknown card %q", ErrInvalidState, card)
}

func (p *Player) hasAnyColorGroup() bool {
	for _, owned := range p.ownedColors {
		if owned {
			return true
		}
	}
	return false
}
