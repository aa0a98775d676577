package messaging

import "github.com/KirkDiggler/everdell-tracker/internal/models"

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Seed fixes the flavor text selection, zero uses the current time
	Seed int64
}

// GetLeaderMessageInput contains parameters for the leader banner
type GetLeaderMessageInput struct {
	// Board is the scoreboard to describe
	Board *models.Scoreboard
}

// GetLeaderMessageOutput contains the leader banner
type GetLeaderMessageOutput struct {
	// Show is false when no banner should be displayed
	Show bool

	// Title is the headline, e.g. "🎉 Ada is Leading!"
	Title string

	// Message is the points line, e.g. "with 12 points"
	Message string

	// Flavor is an optional extra line
	Flavor string

	// Tone is the tone of the flavor line
	Tone MessageTone
}

// GetScoringGuideInput contains parameters for the scoring reference
type GetScoringGuideInput struct {
}

// GuideSection is one titled list in the scoring reference
type GuideSection struct {
	Title   string
	Entries []GuideEntry
}

// GuideEntry is one line of a guide section
type GuideEntry struct {
	Name   string
	Detail string
}

// GetScoringGuideOutput contains the scoring reference
type GetScoringGuideOutput struct {
	Title      string
	Sections   []GuideSection
	Categories []models.CategoryInfo
}

// GetResetConfirmationInput contains parameters for the reset prompt
type GetResetConfirmationInput struct {
	// PlayerCount is the number of players whose scores will be cleared
	PlayerCount int
}

// GetResetConfirmationOutput contains the reset prompt
type GetResetConfirmationOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error returned by the tracker service
	Err error

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}
