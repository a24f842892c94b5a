package models

import (
	"time"
)

// TransactionReason represents why cash moved
type TransactionReason string

const (
	TransactionPurchase     TransactionReason = "purchase"
	TransactionRent         TransactionReason = "rent"
	TransactionTax          TransactionReason = "tax"
	TransactionJailFee      TransactionReason = "jail_fee"
	TransactionHouse        TransactionReason = "house"
	TransactionHotel        TransactionReason = "hotel"
	TransactionMortgage     TransactionReason = "mortgage"
	TransactionUnmortgage   TransactionReason = "unmortgage"
	TransactionPassGo       TransactionReason = "pass_go"
	TransactionCardCredit   TransactionReason = "card_credit"
	TransactionCardDebit    TransactionReason = "card_debit"
	TransactionStreetRepair TransactionReason = "street_repair"
)

// Transaction records a single cash movement. A zero From or To is the bank.
type Transaction struct {
	// ID is the unique identifier for the transaction
	ID string

	// GameID is the ID of the game the transaction belongs to
	GameID string

	// Round is the round during which the cash moved
	Round int

	// From is the paying player, NoOwner for the bank
	From PlayerID

	// To is the receiving player, NoOwner for the bank
	To PlayerID

	// Amount is the cash moved
	Amount int

	// Reason is why the cash moved
	Reason TransactionReason

	// Asset is the asset involved, if any
	Asset string

	// Timestamp is when the transaction was stored
	Timestamp time.Time
}
