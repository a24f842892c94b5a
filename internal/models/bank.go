package models

// Bank is the shared ledger of a game. Cash only accumulates; houses and
// hotels are checked before every decrement.
type Bank struct {
	Cash   int `yaml:"cash" json:"cash"`
	Houses int `yaml:"houses" json:"houses"`
	Hotels int `yaml:"hotels" json:"hotels"`
}
