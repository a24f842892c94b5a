package models

// CellType identifies what happens when a player lands on a board cell
type CellType string

const (
	CellGo             CellType = "go"
	CellRoad           CellType = "road"
	CellStation        CellType = "station"
	CellUtility        CellType = "utility"
	CellTax            CellType = "tax"
	CellCommunityChest CellType = "community-chest"
	CellChance         CellType = "chance"
	CellJail           CellType = "jail"
	CellGoToJail       CellType = "go-to-jail"
	CellFreeParking    CellType = "free-parking"
)

// IsAsset reports whether the cell refers to a purchasable asset
func (c CellType) IsAsset() bool {
	return c == CellRoad || c == CellStation || c == CellUtility
}

// Cell is a single square of the board
type Cell struct {
	// Position is the index of the cell on the board
	Position int `yaml:"position" json:"position"`

	// Type selects the cell resolution rule
	Type CellType `yaml:"type" json:"type"`

	// Name is the cell label; for asset and tax cells it is the lookup key
	Name string `yaml:"name" json:"name"`
}

// AssetKind is the category of a purchasable asset
type AssetKind string

const (
	AssetRoad    AssetKind = "road"
	AssetStation AssetKind = "station"
	AssetUtility AssetKind = "utility"
)

// Color is the color group of a road
type Color string

const (
	ColorBrown     Color = "brown"
	ColorLightBlue Color = "light_blue"
	ColorPurple    Color = "purple"
	ColorOrange    Color = "orange"
	ColorRed       Color = "red"
	ColorYellow    Color = "yellow"
	ColorGreen     Color = "green"
	ColorBlue      Color = "blue"
)

// Colors lists every color group in board order
var Colors = []Color{
	ColorBrown, ColorLightBlue, ColorPurple, ColorOrange,
	ColorRed, ColorYellow, ColorGreen, ColorBlue,
}

// GroupSize returns how many roads make up a full color group
func (c Color) GroupSize() int {
	if c == ColorBrown || c == ColorBlue {
		return 2
	}
	return 3
}

// Asset is a road, station or utility. Records are shared by every player of a
// game and mutated in place on purchase, mortgage and unmortgage.
type Asset struct {
	Name     string    `yaml:"name" json:"name"`
	Kind     AssetKind `yaml:"kind" json:"kind"`
	Color    Color     `yaml:"color,omitempty" json:"color,omitempty"`
	Position int       `yaml:"position" json:"position"`

	Price           int `yaml:"price" json:"price"`
	MortgageValue   int `yaml:"mortgage_value" json:"mortgage_value"`
	UnmortgageValue int `yaml:"unmortgage_value" json:"unmortgage_value"`

	// Rent is the base rent; stations and utilities compute rent from
	// ownership counts instead
	Rent             int   `yaml:"rent,omitempty" json:"rent,omitempty"`
	RentWithColorSet int   `yaml:"rent_with_color_set,omitempty" json:"rent_with_color_set,omitempty"`
	RentWithHouses   []int `yaml:"rent_with_houses,omitempty" json:"rent_with_houses,omitempty"`
	RentWithHotel    int   `yaml:"rent_with_hotel,omitempty" json:"rent_with_hotel,omitempty"`
	HouseCost        int   `yaml:"house_cost,omitempty" json:"house_cost,omitempty"`
	HotelCost        int   `yaml:"hotel_cost,omitempty" json:"hotel_cost,omitempty"`

	// Owner is NoOwner while the bank holds the asset
	Owner     PlayerID `yaml:"-" json:"owner"`
	Mortgaged bool     `yaml:"-" json:"mortgaged"`
}

// IsOwned reports whether a player holds the asset
func (a *Asset) IsOwned() bool {
	return a.Owner != NoOwner
}

// Improvements counts the buildings on a road. A hotel is stored alongside
// the four houses it was built on.
type Improvements struct {
	Houses int `json:"houses"`
	Hotels int `json:"hotels"`
}

// Count is the number of houses plus hotels
func (i Improvements) Count() int {
	return i.Houses + i.Hotels
}

const (
	// MaxHouses is the number of houses a road holds before a hotel
	MaxHouses = 4

	// MaxHotels is the number of hotels a road holds
	MaxHotels = 1
)
