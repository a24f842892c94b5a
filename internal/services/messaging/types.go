package messaging

import (
	"github.com/KirkDiggler/monosim/internal/dice"
	"github.com/KirkDiggler/monosim/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// Config contains configuration for the messaging service
type Config struct {
	// Roller picks among message variants. Defaults to an unseeded dice.New.
	Roller dice.Roller
}

// GetTransactionMessageInput contains parameters for describing a transaction
type GetTransactionMessageInput struct {
	Transaction *models.Transaction

	// FromName and ToName are the display names of the two sides, empty for the bank
	FromName string
	ToName   string

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetTransactionMessageOutput contains a transaction description
type GetTransactionMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetResultMessageInput contains parameters for announcing a result
type GetResultMessageInput struct {
	Result *models.GameResult
}

// GetResultMessageOutput contains the announcement of a result
type GetResultMessageOutput struct {
	Title   string
	Message string
}

// GetStandingMessageInput contains parameters for a leaderboard line
type GetStandingMessageInput struct {
	Standing models.Standing

	// Rank is zero based, ordered by wealth
	Rank int

	TotalPlayers int
}

// GetStandingMessageOutput contains a leaderboard line
type GetStandingMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for describing a failure
type GetErrorMessageInput struct {
	Err  error
	Seed int64
}

// GetErrorMessageOutput contains the description of a failure
type GetErrorMessageOutput struct {
	Title   string
	Message string
}
