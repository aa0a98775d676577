package scoreboard

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/KirkDiggler/everdell-tracker/internal/scoresession"
	"github.com/samber/lo"
)

// ErrSessionNotFound is returned when a channel has no session
var ErrSessionNotFound = errors.New("session not found")

// Config holds configuration for the in-memory scoreboard repository
type Config struct {
	// MaxSessions caps the number of live channels, zero means unlimited
	MaxSessions int
}

// ErrTooManySessions is returned when MaxSessions would be exceeded
var ErrTooManySessions = errors.New("too many active sessions")

// memoryRepository implements the Repository interface with a process-local map.
// Sessions are lost when the process exits.
type memoryRepository struct {
	mu          sync.RWMutex
	sessions    map[string]*scoresession.Session
	maxSessions int
}

// NewMemory creates a new in-memory scoreboard repository
func NewMemory(cfg *Config) (*memoryRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.MaxSessions < 0 {
		return nil, errors.New("max sessions cannot be negative")
	}

	return &memoryRepository{
		sessions:    make(map[string]*scoresession.Session),
		maxSessions: cfg.MaxSessions,
	}, nil
}

// SaveSession stores a session for a channel
func (r *memoryRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	if input.ChannelID == "" {
		return errors.New("channel ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.sessions[input.ChannelID]
	if !exists && r.maxSessions > 0 && len(r.sessions) >= r.maxSessions {
		return ErrTooManySessions
	}

	r.sessions[input.ChannelID] = input.Session

	return nil
}

// GetSession retrieves the session for a channel
func (r *memoryRepository) GetSession(ctx context.Context, input *GetSessionInput) (*scoresession.Session, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[input.ChannelID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// DeleteSession discards the session for a channel
func (r *memoryRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.ChannelID == "" {
		return errors.New("input and channel ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[input.ChannelID]; !ok {
		return ErrSessionNotFound
	}

	delete(r.sessions, input.ChannelID)

	return nil
}

// GetActiveChannels lists channels with a session, sorted for stable output
func (r *memoryRepository) GetActiveChannels(ctx context.Context, input *GetActiveChannelsInput) (*GetActiveChannelsOutput, error) {
	r.mu.RLock()
	channelIDs := lo.Keys(r.sessions)
	r.mu.RUnlock()

	sort.Strings(channelIDs)

	return &GetActiveChannelsOutput{
		ChannelIDs: channelIDs,
	}, nil
}
