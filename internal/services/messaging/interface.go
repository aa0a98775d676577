package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetLeaderMessage returns the leader banner for a scoreboard, if one should be shown
	GetLeaderMessage(ctx context.Context, input *GetLeaderMessageInput) (*GetLeaderMessageOutput, error)

	// GetScoringGuide returns the scoring reference text
	GetScoringGuide(ctx context.Context, input *GetScoringGuideInput) (*GetScoringGuideOutput, error)

	// GetResetConfirmation returns the prompt shown before scores are reset
	GetResetConfirmation(ctx context.Context, input *GetResetConfirmationInput) (*GetResetConfirmationOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
