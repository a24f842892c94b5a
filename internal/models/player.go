package models

// PlayerID is the seat number of a player, starting at 1
type PlayerID int

// NoOwner marks an asset still held by the bank
const NoOwner PlayerID = 0

// PlayerState is the read-only snapshot of a player exposed to the turn
// driver and persisted between rounds
type PlayerState struct {
	// ID is the seat number of the player
	ID PlayerID `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`

	Position           int  `json:"position"`
	DiceTotal          int  `json:"dice_total"`
	Cash               int  `json:"cash"`
	MortgageableAmount int  `json:"mortgageable_amount"`
	JailCount          int  `json:"jail_count"`
	JailPass           bool `json:"jail_pass"`
	FreeVisit          bool `json:"free_visit"`

	OwnedRoads         []string `json:"owned_roads"`
	OwnedStations      []string `json:"owned_stations"`
	OwnedUtilities     []string `json:"owned_utilities"`
	MortgagedRoads     []string `json:"mortgaged_roads"`
	MortgagedStations  []string `json:"mortgaged_stations"`
	MortgagedUtilities []string `json:"mortgaged_utilities"`

	OwnedColors  map[Color]bool          `json:"owned_colors"`
	Improvements map[string]Improvements `json:"improvements"`

	// Lost is set once the player went bankrupt
	Lost bool `json:"lost"`

	// BankCash is the bank balance when the snapshot was taken
	BankCash int `json:"bank_cash"`
}
