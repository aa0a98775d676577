package tracker

import (
	"github.com/KirkDiggler/everdell-tracker/internal/common/clock"
	"github.com/KirkDiggler/everdell-tracker/internal/common/uuid"
	"github.com/KirkDiggler/everdell-tracker/internal/models"
	"github.com/KirkDiggler/everdell-tracker/internal/repositories/scoreboard"
)

// Config holds configuration for the tracker service
type Config struct {
	// Repository dependencies
	ScoreboardRepo scoreboard.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// PlayerRef identifies a player either by ID or by 1-based board position.
// ID wins when both are set.
type PlayerRef struct {
	// PlayerID is the stable player identifier
	PlayerID string

	// Position is the player's place in the board's player list
	Position int
}

// GetBoardInput contains parameters for reading a scoreboard
type GetBoardInput struct {
	// ChannelID is the channel the scoreboard lives in
	ChannelID string
}

// GetBoardOutput contains the current scoreboard
type GetBoardOutput struct {
	Board *models.Scoreboard

	// Created indicates a new session was started by this call
	Created bool
}

// AddPlayerInput contains parameters for adding a player
type AddPlayerInput struct {
	ChannelID string
}

// AddPlayerOutput contains the result of adding a player
type AddPlayerOutput struct {
	Board *models.Scoreboard

	// Player is the new player, nil when the board was already full
	Player *models.Player

	// Added is false when the board was already full
	Added bool
}

// RemovePlayerInput contains parameters for removing a player
type RemovePlayerInput struct {
	ChannelID string
	Player    PlayerRef
}

// RemovePlayerOutput contains the result of removing a player
type RemovePlayerOutput struct {
	Board *models.Scoreboard

	// Removed is false when the last player would have been removed
	Removed bool
}

// RenamePlayerInput contains parameters for renaming a player
type RenamePlayerInput struct {
	ChannelID string
	Player    PlayerRef
	Name      string
}

// RenamePlayerOutput contains the result of renaming a player
type RenamePlayerOutput struct {
	Board   *models.Scoreboard
	Renamed bool
}

// AdjustScoreInput contains parameters for changing a score
type AdjustScoreInput struct {
	ChannelID string
	Player    PlayerRef

	// Category is the raw category key, validated by the service
	Category string

	// Delta is added to the current value, the result is clamped at zero
	Delta int
}

// AdjustScoreOutput contains the result of changing a score
type AdjustScoreOutput struct {
	Board    *models.Scoreboard
	Adjusted bool
}

// ResetScoresInput contains parameters for resetting every score
type ResetScoresInput struct {
	ChannelID string

	// Confirmed must be set once the user has agreed to the reset
	Confirmed bool
}

// ResetScoresOutput contains the result of resetting scores
type ResetScoresOutput struct {
	Board *models.Scoreboard
}

// EndSessionInput contains parameters for discarding a session
type EndSessionInput struct {
	ChannelID string
}

// EndSessionOutput contains the final state of the discarded session
type EndSessionOutput struct {
	// FinalBoard is the scoreboard as it stood when the session ended
	FinalBoard *models.Scoreboard
}
