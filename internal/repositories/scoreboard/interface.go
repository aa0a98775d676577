package scoreboard

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/everdell-tracker/internal/repositories/scoreboard Repository

import (
	"context"

	"github.com/KirkDiggler/everdell-tracker/internal/scoresession"
)

// Repository keeps the live score sessions, one per channel
type Repository interface {
	// SaveSession stores the session for a channel, replacing any existing one
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves the session for a channel
	GetSession(ctx context.Context, input *GetSessionInput) (*scoresession.Session, error)

	// DeleteSession discards the session for a channel
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// GetActiveChannels lists the channels that currently have a session
	GetActiveChannels(ctx context.Context, input *GetActiveChannelsInput) (*GetActiveChannelsOutput, error)
}
