package player

// Error is a custom error type for engine errors
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrInsufficientFunds is returned when a payment exceeds the payer's cash
	ErrInsufficientFunds Error = "insufficient funds"

	// ErrInvalidOwnership is returned when an asset is not held by the acting player
	ErrInvalidOwnership Error = "invalid ownership"

	// ErrInvalidState is returned for impossible transitions: double mortgages,
	// building past the caps, unknown tags, jail decisions in the wrong round
	ErrInvalidState Error = "invalid state"

	// ErrUnsatisfiableLiquidity is returned when mortgages cannot raise the amount required
	ErrUnsatisfiableLiquidity Error = "unsatisfiable liquidity"

	ErrNilConfig       Error = "config cannot be nil"
	ErrNilDiceRoller   Error = "dice roller cannot be nil"
	ErrNilCatalog      Error = "catalog cannot be nil"
	ErrInvalidPlayerID Error = "player ID must be positive"
	ErrDuplicateSeat   Error = "seat already taken"
	ErrUnknownPlayer   Error = "player not at table"
)
