package models

// CardID identifies a community chest card
type CardID string

const (
	CardStreetRepair CardID = "street_repair"
	CardStockSale    CardID = "stock_sale"
	CardHolidayFund  CardID = "holiday_fund"
	CardSecondPrize  CardID = "second_price"
	CardInherit      CardID = "inherit"
	CardConsultancy  CardID = "consultancy"
	CardIncomeTax    CardID = "income_tax"
	CardInsurance    CardID = "insurance"
	CardBankError    CardID = "bank_error"
	CardHospitalFees CardID = "hospital_fees"
	CardSchoolFees   CardID = "school_fees"
	CardDoctorFees   CardID = "doctor_fees"
	CardJail         CardID = "jail"
	CardToGo         CardID = "to_go"
)

// Deck is a cyclic queue of cards: the drawn card goes to the back
type Deck struct {
	Cards []CardID `json:"cards"`
}

// NewDeck copies the given card order into a new deck
func NewDeck(cards []CardID) *Deck {
	d := &Deck{Cards: make([]CardID, len(cards))}
	copy(d.Cards, cards)
	return d
}

// Draw returns the front card and rotates it to the back. ok is false when
// the deck is empty.
func (d *Deck) Draw() (card CardID, ok bool) {
	if len(d.Cards) == 0 {
		return "", false
	}
	card = d.Cards[0]
	d.Cards = append(d.Cards[1:], card)
	return card, true
}
