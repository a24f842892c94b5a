package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/KirkDiggler/monosim/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed board.yaml
var boardYAML []byte

// ErrUnknownAsset is returned when a name does not match any asset
var ErrUnknownAsset = errors.New("unknown asset")

// ErrUnknownTax is returned when a tax cell name has no amount
var ErrUnknownTax = errors.New("unknown tax")

// Catalog holds the static board data and the asset records shared by every
// player of one game
type Catalog struct {
	// Board is the ordered sequence of cells
	Board []models.Cell

	// Roads, Stations and Utilities are keyed by asset name
	Roads     map[string]*models.Asset
	Stations  map[string]*models.Asset
	Utilities map[string]*models.Asset

	// ColorGroups lists the road names of each color in board order
	ColorGroups map[models.Color][]string

	// Cards is the community chest card order at the start of a game
	Cards []models.CardID

	// Bank is the opening bank ledger
	Bank models.Bank

	taxes map[string]int
	jail  int
}

type document struct {
	Bank      models.Bank     `yaml:"bank"`
	Board     []models.Cell   `yaml:"board"`
	Taxes     map[string]int  `yaml:"taxes"`
	Roads     []*models.Asset `yaml:"roads"`
	Stations  []*models.Asset `yaml:"stations"`
	Utilities []*models.Asset `yaml:"utilities"`
	Cards     []models.CardID `yaml:"community_chest"`
}

// Load parses the embedded board. Every call returns fresh asset records so
// games never share mutable state.
func Load() (*Catalog, error) {
	return Parse(boardYAML)
}

// Parse builds a catalog from a YAML board document
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse board: %w", err)
	}

	c := &Catalog{
		Board:       doc.Board,
		Roads:       make(map[string]*models.Asset, len(doc.Roads)),
		Stations:    make(map[string]*models.Asset, len(doc.Stations)),
		Utilities:   make(map[string]*models.Asset, len(doc.Utilities)),
		ColorGroups: make(map[models.Color][]string),
		Cards:       doc.Cards,
		Bank:        doc.Bank,
		taxes:       doc.Taxes,
		jail:        -1,
	}

	for _, road := range doc.Roads {
		road.Kind = models.AssetRoad
		if len(road.RentWithHouses) != models.MaxHouses {
			return nil, fmt.Errorf("road %q needs %d house rents, got %d", road.Name, models.MaxHouses, len(road.RentWithHouses))
		}
		c.Roads[road.Name] = road
		c.ColorGroups[road.Color] = append(c.ColorGroups[road.Color], road.Name)
	}
	for _, station := range doc.Stations {
		station.Kind = models.AssetStation
		c.Stations[station.Name] = station
	}
	for _, utility := range doc.Utilities {
		utility.Kind = models.AssetUtility
		c.Utilities[utility.Name] = utility
	}

	for color, roads := range c.ColorGroups {
		if len(roads) != color.GroupSize() {
			return nil, fmt.Errorf("color %s has %d roads, want %d", color, len(roads), color.GroupSize())
		}
	}

	for i, cell := range c.Board {
		if cell.Position != i {
			return nil, fmt.Errorf("cell %q at index %d has position %d", cell.Name, i, cell.Position)
		}
		switch cell.Type {
		case models.CellJail:
			c.jail = i
		case models.CellRoad, models.CellStation, models.CellUtility:
			if _, err := c.Asset(cell); err != nil {
				return nil, err
			}
		}
	}
	if c.jail < 0 {
		return nil, errors.New("board has no jail cell")
	}

	return c, nil
}

// Asset returns the record referenced by an asset cell
func (c *Catalog) Asset(cell models.Cell) (*models.Asset, error) {
	var (
		asset *models.Asset
		ok    bool
	)
	switch cell.Type {
	case models.CellRoad:
		asset, ok = c.Roads[cell.Name]
	case models.CellStation:
		asset, ok = c.Stations[cell.Name]
	case models.CellUtility:
		asset, ok = c.Utilities[cell.Name]
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s cell %q", ErrUnknownAsset, cell.Type, cell.Name)
	}
	return asset, nil
}

// Tax returns the amount due for a tax cell
func (c *Catalog) Tax(name string) (int, error) {
	amount, ok := c.taxes[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTax, name)
	}
	return amount, nil
}

// JailPosition is the index of the jail cell
func (c *Catalog) JailPosition() int {
	return c.jail
}

// Size is the number of board cells
func (c *Catalog) Size() int {
	return len(c.Board)
}
