package tracker

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/everdell-tracker/internal/services/tracker Service

import "context"

// Service defines the scoreboard operations available to presentation layers
type Service interface {
	// GetBoard returns the channel's scoreboard, starting a session if there is none
	GetBoard(ctx context.Context, input *GetBoardInput) (*GetBoardOutput, error)

	// AddPlayer adds a default player to the channel's session
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// RemovePlayer removes a player from the channel's session
	RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error)

	// RenamePlayer changes a player's display name
	RenamePlayer(ctx context.Context, input *RenamePlayerInput) (*RenamePlayerOutput, error)

	// AdjustScore changes one category of one player by a delta
	AdjustScore(ctx context.Context, input *AdjustScoreInput) (*AdjustScoreOutput, error)

	// ResetScores zeroes every score in the channel's session
	ResetScores(ctx context.Context, input *ResetScoresInput) (*ResetScoresOutput, error)

	// EndSession discards the channel's session
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)
}
