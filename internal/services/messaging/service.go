package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/everdell-tracker/internal/models"
	"github.com/KirkDiggler/everdell-tracker/internal/services/tracker"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting flavor text, guarded by mu
	mu   sync.Mutex
	rand *rand.Rand
}

// pick returns a random element of options
func (s *service) pick(options []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return options[s.rand.Intn(len(options))]
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

var leaderFlavor = []string{
	"The valley takes notice.",
	"Someone fetch the berries, we have a front-runner.",
	"A fine city is taking shape.",
	"The Ever Tree casts a long shadow.",
	"Still plenty of seasons left to catch up!",
}

// GetLeaderMessage returns the leader banner for a scoreboard
func (s *service) GetLeaderMessage(ctx context.Context, input *GetLeaderMessageInput) (*GetLeaderMessageOutput, error) {
	if input == nil || input.Board == nil {
		return nil, errors.New("input and board cannot be nil")
	}

	board := input.Board
	if !board.ShowLeader || board.Leader == nil {
		return &GetLeaderMessageOutput{Show: false}, nil
	}

	return &GetLeaderMessageOutput{
		Show:    true,
		Title:   fmt.Sprintf("🎉 %s is Leading!", board.Leader.Player.Name),
		Message: fmt.Sprintf("with %d points", board.Leader.Total),
		Flavor:  s.pick(leaderFlavor),
		Tone:    ToneCelebration,
	}, nil
}

// GetScoringGuide returns the scoring reference text
func (s *service) GetScoringGuide(ctx context.Context, input *GetScoringGuideInput) (*GetScoringGuideOutput, error) {
	return &GetScoringGuideOutput{
		Title: "📖 Scoring Reference",
		Sections: []GuideSection{
			{
				Title: "Point Sources",
				Entries: []GuideEntry{
					{Name: "Purple Cards", Detail: "Worth printed points"},
					{Name: "Tan Cards", Detail: "Worth printed points"},
					{Name: "Prosperity Cards", Detail: "Bonus points"},
					{Name: "Basic Events", Detail: "3 points each"},
					{Name: "Special Events", Detail: "4 points each"},
				},
			},
			{
				Title: "Additional Points",
				Entries: []GuideEntry{
					{Name: "Journey Tiles", Detail: "(Bellfaire expansion)"},
					{Name: "Point Tokens", Detail: "From various sources"},
					{Name: "Other Bonuses", Detail: "Miscellaneous scoring"},
				},
			},
		},
		Categories: models.Categories(),
	}, nil
}

// GetResetConfirmation returns the prompt shown before scores are reset
func (s *service) GetResetConfirmation(ctx context.Context, input *GetResetConfirmationInput) (*GetResetConfirmationOutput, error) {
	message := "Every category for every player goes back to 0. This cannot be undone."
	if input != nil && input.PlayerCount == 1 {
		message = "Every category goes back to 0. This cannot be undone."
	}

	return &GetResetConfirmationOutput{
		Title:   "Reset all scores?",
		Message: message,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	switch {
	case errors.Is(input.Err, tracker.ErrUnknownCategory):
		tone = ToneNeutral
		messages = []string{
			"That isn't a scoring category. Pick one of cards, prosperity, events, journey or other.",
		}
	case errors.Is(input.Err, tracker.ErrPlayerNotFound):
		messages = []string{
			"There's no critter sitting in that seat. Check the player number on the board.",
			"No player at that position. Count again from the top of the board!",
		}
	case errors.Is(input.Err, tracker.ErrSessionNotFound):
		messages = []string{
			"There's no scoreboard in this channel yet. Use `/everdell board` to start one.",
		}
	case errors.Is(input.Err, tracker.ErrResetNotConfirmed):
		tone = ToneNeutral
		messages = []string{
			"Scores were not reset.",
		}
	default:
		messages = []string{
			"Something went wrong! Try again in a moment.",
			"A squirrel ran off with the score pad. Try again.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
