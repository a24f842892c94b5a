package player

import (
	"fmt"

	"github.com/KirkDiggler/monosim/internal/models"
)

// HasEnoughMoney reports whether amount can be paid from cash, or from cash
// plus the remaining mortgage capacity when withMortgages is set
func (p *Player) HasEnoughMoney(amount int, withMortgages bool) bool {
	available := p.cash
	if withMortgages {
		available += p.mortgageable
	}
	return amount <= available
}

// IsBankrupt marks the player as lost when cash and every remaining mortgage
// cannot cover amount. The flag never clears.
func (p *Player) IsBankrupt(amount int) bool {
	if p.cash+p.mortgageable < amount {
		if !p.lost {
			p.logger.Debug("player is bankrupt", "amount", amount, "cash", p.cash, "mortgageable", p.mortgageable)
		}
		p.lost = true
	}
	return p.lost
}

// PayBank moves amount from the player's cash to the bank
func (p *Player) PayBank(t *Table, amount int, reason models.TransactionReason, asset string) error {
	if amount > p.cash {
		return fmt.Errorf("%w: %d due, %d in cash", ErrInsufficientFunds, amount, p.cash)
	}
	p.cash -= amount
	t.Bank.Cash += amount
	t.record(p.id, models.NoOwner, amount, reason, asset)
	return nil
}

// PayOpponent moves amount from the player's cash to another seated player
func (p *Player) PayOpponent(t *Table, to models.PlayerID, amount int, reason models.TransactionReason, asset string) error {
	opponent, err := t.Player(to)
	if err != nil {
		return err
	}
	if amount > p.cash {
		return fmt.Errorf("%w: %d due, %d in cash", ErrInsufficientFunds, amount, p.cash)
	}
	p.cash -= amount
	opponent.cash += amount
	t.record(p.id, to, amount, reason, asset)
	return nil
}

// PayTax settles a bank debit, mortgaging assets for the shortfall. A player
// who cannot cover it loses and nothing is paid.
func (p *Player) PayTax(t *Table, amount int, reason models.TransactionReason, asset string) error {
	return p.settle(t, amount, func() error {
		return p.PayBank(t, amount, reason, asset)
	})
}

// settle runs the payment protocol shared by every obligation: pay from cash
// when possible, otherwise go bankrupt or mortgage the shortfall and pay.
func (p *Player) settle(t *Table, amount int, pay func() error) error {
	if p.HasEnoughMoney(amount, false) {
		return pay()
	}
	if p.IsBankrupt(amount) {
		return nil
	}
	if err := p.RaiseFunds(t, amount-p.cash); err != nil {
		return err
	}
	return pay()
}
