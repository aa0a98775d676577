package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/KirkDiggler/everdell-tracker/internal/common/clock"
	"github.com/KirkDiggler/everdell-tracker/internal/common/uuid"
	"github.com/KirkDiggler/everdell-tracker/internal/models"
	"github.com/KirkDiggler/everdell-tracker/internal/repositories/scoreboard"
	"github.com/KirkDiggler/everdell-tracker/internal/scoresession"
	"github.com/rs/zerolog/log"
)

// service implements the Service interface. Discord dispatches handlers on
// separate goroutines, so every operation holds mu while it touches a session.
type service struct {
	mu             sync.Mutex
	scoreboardRepo scoreboard.Repository
	clock          clock.Clock
	uuidGenerator  uuid.UUID
}

// New creates a new tracker service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ScoreboardRepo == nil {
		return nil, ErrNilRepository
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		scoreboardRepo: cfg.ScoreboardRepo,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
	}, nil
}

// GetBoard returns the channel's scoreboard, starting a session if there is none
func (s *service) GetBoard(ctx context.Context, input *GetBoardInput) (*GetBoardOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, created, err := s.loadOrCreate(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	return &GetBoardOutput{
		Board:   s.board(input.ChannelID, session),
		Created: created,
	}, nil
}

// AddPlayer adds a default player to the channel's session
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, _, err := s.loadOrCreate(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	player, added := session.AddPlayer()
	if added {
		log.Debug().
			Str("channel_id", input.ChannelID).
			Str("player_id", player.ID).
			Str("color", string(player.Color)).
			Msg("player added")
	}

	return &AddPlayerOutput{
		Board:  s.board(input.ChannelID, session),
		Player: player,
		Added:  added,
	}, nil
}

// RemovePlayer removes a player from the channel's session
func (s *service) RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, _, err := s.loadOrCreate(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	playerID, err := resolvePlayer(session, input.Player)
	if err != nil {
		return nil, err
	}

	removed := session.RemovePlayer(playerID)
	if removed {
		log.Debug().
			Str("channel_id", input.ChannelID).
			Str("player_id", playerID).
			Msg("player removed")
	}

	return &RemovePlayerOutput{
		Board:   s.board(input.ChannelID, session),
		Removed: removed,
	}, nil
}

// RenamePlayer changes a player's display name
func (s *service) RenamePlayer(ctx context.Context, input *RenamePlayerInput) (*RenamePlayerOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, _, err := s.loadOrCreate(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	playerID, err := resolvePlayer(session, input.Player)
	if err != nil {
		return nil, err
	}

	renamed := session.RenamePlayer(playerID, input.Name)

	return &RenamePlayerOutput{
		Board:   s.board(input.ChannelID, session),
		Renamed: renamed,
	}, nil
}

// AdjustScore changes one category of one player by a delta
func (s *service) AdjustScore(ctx context.Context, input *AdjustScoreInput) (*AdjustScoreOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	// The core treats an unknown category as a programming error, so user input
	// has to be checked before it gets there.
	category, ok := models.ParseCategory(strings.ToLower(strings.TrimSpace(input.Category)))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, input.Category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, _, err := s.loadOrCreate(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	playerID, err := resolvePlayer(session, input.Player)
	if err != nil {
		return nil, err
	}

	adjusted := session.AdjustScore(playerID, category, input.Delta)
	if adjusted {
		log.Debug().
			Str("channel_id", input.ChannelID).
			Str("player_id", playerID).
			Str("category", string(category)).
			Int("delta", input.Delta).
			Msg("score adjusted")
	}

	return &AdjustScoreOutput{
		Board:    s.board(input.ChannelID, session),
		Adjusted: adjusted,
	}, nil
}

// ResetScores zeroes every score in the channel's session
func (s *service) ResetScores(ctx context.Context, input *ResetScoresInput) (*ResetScoresOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	if !input.Confirmed {
		return nil, ErrResetNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, _, err := s.loadOrCreate(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	session.ResetAll()
	log.Info().Str("channel_id", input.ChannelID).Msg("scores reset")

	return &ResetScoresOutput{
		Board: s.board(input.ChannelID, session),
	}, nil
}

// EndSession discards the channel's session
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.scoreboardRepo.GetSession(ctx, &scoreboard.GetSessionInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, scoreboard.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	finalBoard := s.board(input.ChannelID, session)

	err = s.scoreboardRepo.DeleteSession(ctx, &scoreboard.DeleteSessionInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete session: %w", err)
	}

	log.Info().Str("channel_id", input.ChannelID).Msg("score session ended")

	return &EndSessionOutput{
		FinalBoard: finalBoard,
	}, nil
}

// loadOrCreate fetches the channel's session, starting one with a single
// default player when the channel has none. Callers must hold s.mu.
func (s *service) loadOrCreate(ctx context.Context, channelID string) (*scoresession.Session, bool, error) {
	session, err := s.scoreboardRepo.GetSession(ctx, &scoreboard.GetSessionInput{
		ChannelID: channelID,
	})
	if err == nil {
		return session, false, nil
	}

	if !errors.Is(err, scoreboard.ErrSessionNotFound) {
		return nil, false, fmt.Errorf("failed to get session: %w", err)
	}

	session, err = scoresession.New(&scoresession.Config{
		UUIDGenerator: s.uuidGenerator,
		Clock:         s.clock,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to create session: %w", err)
	}

	err = s.scoreboardRepo.SaveSession(ctx, &scoreboard.SaveSessionInput{
		ChannelID: channelID,
		Session:   session,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to save session: %w", err)
	}

	log.Info().Str("channel_id", channelID).Msg("score session started")

	return session, true, nil
}

func (s *service) board(channelID string, session *scoresession.Session) *models.Scoreboard {
	board := session.Snapshot()
	board.ChannelID = channelID
	return board
}

// resolvePlayer turns a PlayerRef into an ID. An unknown ID is passed through so
// the session can ignore it; an out of range position is reported because it
// came straight from user input.
func resolvePlayer(session *scoresession.Session, ref PlayerRef) (string, error) {
	if ref.PlayerID != "" {
		return ref.PlayerID, nil
	}

	players := session.Players()
	if ref.Position < 1 || ref.Position > len(players) {
		return "", ErrPlayerNotFound
	}

	return players[ref.Position-1].ID, nil
}
