package models

// Roll is the outcome of throwing two dice
type Roll struct {
	// First is the value of the first die
	First int

	// Second is the value of the second die
	Second int
}

// Total is the sum of both dice
func (r Roll) Total() int {
	return r.First + r.Second
}

// IsDouble reports whether both dice show the same value
func (r Roll) IsDouble() bool {
	return r.First == r.Second
}
