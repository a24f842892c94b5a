package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/monosim/internal/dice Roller

import (
	"math/rand"
	"time"
)

// Roller provides dice rolling functionality
type Roller interface {
	// Roll returns a uniform value between 1 and sides
	Roll(sides int) int
}

// SeededRoller is a Roller backed by math/rand
type SeededRoller struct {
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed; nil seeds from the clock
	Seed *int64
}

// New creates a new dice roller
func New(cfg *Config) *SeededRoller {
	var seed int64
	if cfg != nil && cfg.Seed != nil {
		seed = *cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &SeededRoller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *SeededRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	return r.random.Intn(sides) + 1
}
