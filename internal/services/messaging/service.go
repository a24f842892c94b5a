package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/monosim/internal/dice"
	"github.com/KirkDiggler/monosim/internal/models"
	"github.com/KirkDiggler/monosim/internal/services/player"
)

const bankName = "the bank"

// service implements the Service interface
type service struct {
	// Roller for selecting random messages, shared by concurrent games
	mu     sync.Mutex
	roller dice.Roller
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	roller := dice.Roller(nil)
	if cfg != nil {
		roller = cfg.Roller
	}
	if roller == nil {
		roller = dice.New(&dice.Config{})
	}

	return &service{
		roller: roller,
	}, nil
}

// pick returns one of messages at random
func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.roller.Roll(len(messages))-1]
}

// GetTransactionMessage describes one ledger entry
func (s *service) GetTransactionMessage(ctx context.Context, input *GetTransactionMessageInput) (*GetTransactionMessageOutput, error) {
	if input == nil || input.Transaction == nil {
		return nil, errors.New("input and transaction cannot be nil")
	}

	txn := input.Transaction
	from, to := input.FromName, input.ToName
	if from == "" {
		from = bankName
	}
	if to == "" {
		to = bankName
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneNeutral
	}

	var messages []string
	switch txn.Reason {
	case models.TransactionPurchase:
		messages = []string{
			fmt.Sprintf("%s buys %s for %d.", from, txn.Asset, txn.Amount),
			fmt.Sprintf("%s is now the proud owner of %s (%d).", from, txn.Asset, txn.Amount),
			fmt.Sprintf("Sold! %s goes to %s for %d.", txn.Asset, from, txn.Amount),
		}
	case models.TransactionRent:
		messages = []string{
			fmt.Sprintf("%s pays %s %d rent for %s.", from, to, txn.Amount, txn.Asset),
			fmt.Sprintf("%s lands on %s and hands %d to %s.", from, txn.Asset, txn.Amount, to),
		}
		if txn.Amount >= 500 && input.PreferredTone == "" {
			tone = ToneSarcastic
			messages = []string{
				fmt.Sprintf("Ouch. %s coughs up %d at %s. %s says thank you.", from, txn.Amount, txn.Asset, to),
				fmt.Sprintf("%s just paid for %s's holiday: %d rent at %s.", from, to, txn.Amount, txn.Asset),
			}
		}
	case models.TransactionTax:
		messages = []string{
			fmt.Sprintf("%s pays %d in %s.", from, txn.Amount, txn.Asset),
			fmt.Sprintf("The taxman collects %d from %s.", txn.Amount, from),
		}
	case models.TransactionJailFee:
		messages = []string{
			fmt.Sprintf("%s pays %d to get out of jail.", from, txn.Amount),
			fmt.Sprintf("%s buys their freedom for %d.", from, txn.Amount),
		}
	case models.TransactionHouse:
		messages = []string{
			fmt.Sprintf("%s builds a house on %s for %d.", from, txn.Asset, txn.Amount),
			fmt.Sprintf("A new house goes up on %s (%s, %d).", txn.Asset, from, txn.Amount),
		}
	case models.TransactionHotel:
		tone = ToneCelebration
		messages = []string{
			fmt.Sprintf("%s opens a hotel on %s for %d!", from, txn.Asset, txn.Amount),
			fmt.Sprintf("Grand opening! %s puts a hotel on %s (%d).", from, txn.Asset, txn.Amount),
		}
	case models.TransactionMortgage:
		messages = []string{
			fmt.Sprintf("%s mortgages %s for %d.", to, txn.Asset, txn.Amount),
			fmt.Sprintf("%s hands the deeds of %s to the bank for %d.", to, txn.Asset, txn.Amount),
		}
	case models.TransactionUnmortgage:
		messages = []string{
			fmt.Sprintf("%s lifts the mortgage on %s for %d.", from, txn.Asset, txn.Amount),
			fmt.Sprintf("%s buys back %s from the bank for %d.", from, txn.Asset, txn.Amount),
		}
	case models.TransactionPassGo:
		messages = []string{
			fmt.Sprintf("%s passes go and collects %d.", to, txn.Amount),
			fmt.Sprintf("Another lap for %s: +%d.", to, txn.Amount),
		}
	case models.TransactionCardCredit:
		tone = ToneFunny
		messages = []string{
			fmt.Sprintf("%s draws %s and collects %d.", to, txn.Asset, txn.Amount),
			fmt.Sprintf("Lucky card! %s gets %d from %s.", to, txn.Amount, txn.Asset),
		}
	case models.TransactionCardDebit:
		messages = []string{
			fmt.Sprintf("%s draws %s and pays %d.", from, txn.Asset, txn.Amount),
			fmt.Sprintf("%s loses %d to %s.", from, txn.Amount, txn.Asset),
		}
	case models.TransactionStreetRepair:
		tone = ToneSarcastic
		messages = []string{
			fmt.Sprintf("%s pays %d for street repairs. Should have built fewer houses.", from, txn.Amount),
			fmt.Sprintf("The council sends %s a bill of %d for repairs.", from, txn.Amount),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s pays %s %d (%s).", from, to, txn.Amount, txn.Reason),
		}
	}

	return &GetTransactionMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetResultMessage announces how a game ended
func (s *service) GetResultMessage(ctx context.Context, input *GetResultMessageInput) (*GetResultMessageOutput, error) {
	if input == nil || input.Result == nil {
		return nil, errors.New("input and result cannot be nil")
	}

	res := input.Result
	if res.WinnerID == models.NoOwner {
		titles := []string{
			"Stalemate!",
			"Nobody Wins!",
			"Out of Time!",
		}
		standing := survivors(res)
		messages := []string{
			fmt.Sprintf("%d rounds and still %d players standing. Call it a draw.", res.Rounds, standing),
			fmt.Sprintf("The round cap strikes at %d. Seed %d has no winner.", res.Rounds, res.Seed),
		}
		if standing == len(res.Standings) {
			messages = append(messages,
				fmt.Sprintf("After %d rounds nobody went broke. Seed %d ends in a draw.", res.Rounds, res.Seed))
		}
		return &GetResultMessageOutput{
			Title:   s.pick(titles),
			Message: s.pick(messages),
		}, nil
	}

	titles := []string{
		"We Have a Winner!",
		"Last One Standing!",
		"Monopoly!",
	}
	messages := []string{
		fmt.Sprintf("%s wins after %d rounds!", res.WinnerName, res.Rounds),
		fmt.Sprintf("%s bankrupted everyone in %d rounds.", res.WinnerName, res.Rounds),
		fmt.Sprintf("All hail %s, sole survivor of seed %d after %d rounds!", res.WinnerName, res.Seed, res.Rounds),
	}
	return &GetResultMessageOutput{
		Title:   s.pick(titles),
		Message: s.pick(messages),
	}, nil
}

// GetStandingMessage returns a leaderboard line for one player
func (s *service) GetStandingMessage(ctx context.Context, input *GetStandingMessageInput) (*GetStandingMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	st := input.Standing
	var messages []string
	switch {
	case st.Lost:
		messages = []string{
			fmt.Sprintf("%s went bankrupt.", st.Name),
			fmt.Sprintf("%s is out. The bank sends its regards.", st.Name),
		}
	case input.Rank == 0:
		messages = []string{
			fmt.Sprintf("First place: %s, worth %d (%d in cash).", st.Name, st.Wealth, st.Cash),
			fmt.Sprintf("%s tops the table with %d.", st.Name, st.Wealth),
		}
	case input.Rank == input.TotalPlayers-1:
		messages = []string{
			fmt.Sprintf("Last place: %s, worth %d.", st.Name, st.Wealth),
			fmt.Sprintf("%s brings up the rear with %d.", st.Name, st.Wealth),
		}
	default:
		messages = []string{
			fmt.Sprintf("#%d %s, worth %d.", input.Rank+1, st.Name, st.Wealth),
			fmt.Sprintf("%s sits in place %d with %d.", st.Name, input.Rank+1, st.Wealth),
		}
	}

	return &GetStandingMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetErrorMessage returns a readable message for a failed game
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input and error cannot be nil")
	}

	var title, message string
	switch {
	case errors.Is(input.Err, context.Canceled), errors.Is(input.Err, context.DeadlineExceeded):
		title = "Game Interrupted"
		message = fmt.Sprintf("Seed %d was stopped before it finished.", input.Seed)
	case errors.Is(input.Err, player.ErrInsufficientFunds),
		errors.Is(input.Err, player.ErrUnsatisfiableLiquidity):
		title = "Cash Trouble"
		message = fmt.Sprintf("Seed %d hit a payment nobody could cover: %v", input.Seed, input.Err)
	case errors.Is(input.Err, player.ErrInvalidOwnership),
		errors.Is(input.Err, player.ErrInvalidState):
		title = "Rules Broken"
		message = fmt.Sprintf("Seed %d reached an impossible position: %v", input.Seed, input.Err)
	default:
		title = "Game Failed"
		message = fmt.Sprintf("Seed %d failed: %v", input.Seed, input.Err)
	}

	return &GetErrorMessageOutput{
		Title:   title,
		Message: message,
	}, nil
}

func survivors(res *models.GameResult) int {
	n := 0
	for _, st := range res.Standings {
		if !st.Lost {
			n++
		}
	}
	return n
}
