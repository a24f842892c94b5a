package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound       GameError = "game not found"
	ErrPlayerNotFound     GameError = "player not found"
	ErrInvalidInput       GameError = "invalid input"
	ErrInvalidPlayerCount GameError = "invalid number of players"
	ErrInvalidGameState   GameError = "invalid game state"
	ErrNilConfig          GameError = "config cannot be nil"
	ErrNilGameRepo        GameError = "game repository cannot be nil"
	ErrNilPlayerRepo      GameError = "player repository cannot be nil"
	ErrNilLedgerRepo      GameError = "ledger repository cannot be nil"
	ErrNilResultRepo      GameError = "result repository cannot be nil"
	ErrNilClock           GameError = "clock cannot be nil"
	ErrNilUUIDGenerator   GameError = "UUID generator cannot be nil"
)
