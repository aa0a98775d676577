// Package scoresession holds the authoritative player and score state for
// one scoreboard. A Session has a single writer and does no locking.
package scoresession

import (
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/everdell-tracker/internal/common/clock"
	"github.com/KirkDiggler/everdell-tracker/internal/common/uuid"
	"github.com/KirkDiggler/everdell-tracker/internal/models"
)

const (
	// MaxPlayers is the player limit, enforced regardless of palette size
	MaxPlayers = 4

	// MinPlayers is the number of players that can never be removed
	MinPlayers = 1
)

// Config holds the dependencies for a session
type Config struct {
	// UUIDGenerator assigns player IDs
	UUIDGenerator uuid.UUID

	// Clock stamps the last change time
	Clock clock.Clock

	// OnChange is called with a fresh snapshot after every mutation that changed state (optional)
	OnChange func(*models.Scoreboard)
}

// Session is the player collection and its score breakdowns
type Session struct {
	players   []*models.Player
	usedIDs   map[string]struct{}
	ids       uuid.UUID
	clock     clock.Clock
	onChange  func(*models.Scoreboard)
	updatedAt time.Time
}

// New creates a session holding exactly one default player
func New(cfg *Config) (*Session, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	s := &Session{
		players:  make([]*models.Player, 0, MaxPlayers),
		usedIDs:  make(map[string]struct{}, MaxPlayers),
		ids:      cfg.UUIDGenerator,
		clock:    cfg.Clock,
		onChange: cfg.OnChange,
	}
	s.players = append(s.players, s.newPlayer())
	s.updatedAt = s.clock.Now()

	return s, nil
}

// AddPlayer appends a player with a positional default name and the next palette
// color. It does nothing once MaxPlayers is reached.
func (s *Session) AddPlayer() (*models.Player, bool) {
	if len(s.players) >= MaxPlayers {
		return nil, false
	}

	p := s.newPlayer()
	s.players = append(s.players, p)
	s.changed()

	return p.Clone(), true
}

// RemovePlayer removes the player with the given ID. It does nothing when the ID
// is unknown or when only MinPlayers remain.
func (s *Session) RemovePlayer(id string) bool {
	if len(s.players) <= MinPlayers {
		return false
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}

	s.players = append(s.players[:idx], s.players[idx+1:]...)
	s.changed()

	return true
}

// RenamePlayer replaces a player's name. Empty and duplicate names are allowed.
func (s *Session) RenamePlayer(id, name string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}

	s.players[idx].Name = name
	s.changed()

	return true
}

// AdjustScore adds delta to one category of one player, clamping at zero.
// An unknown category is a programming error and panics.
func (s *Session) AdjustScore(id string, category models.Category, delta int) bool {
	if !category.Valid() {
		panic(fmt.Sprintf("scoresession: unknown category %q", category))
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}

	p := s.players[idx]
	p.Scores[category] = models.AddScore(p.Scores[category], delta)
	s.changed()

	return true
}

// ResetAll zeroes every category for every player. Names, IDs, colors and the
// player set are left untouched.
func (s *Session) ResetAll() {
	for _, p := range s.players {
		p.Scores = models.NewScores()
	}
	s.changed()
}

// Players returns copies of the players in collection order
func (s *Session) Players() []*models.Player {
	out := make([]*models.Player, len(s.players))
	for i, p := range s.players {
		out[i] = p.Clone()
	}
	return out
}

// Len returns the number of players
func (s *Session) Len() int {
	return len(s.players)
}

// Player returns a copy of the player with the given ID
func (s *Session) Player(id string) (*models.Player, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, false
	}
	return s.players[idx].Clone(), true
}

// TotalScore sums a player's category values
func TotalScore(p *models.Player) int {
	return p.Total()
}

// Standings ranks players by descending total. Players with equal totals keep
// their collection order.
func (s *Session) Standings() []*models.Standing {
	ranked := s.Players()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total() > ranked[j].Total()
	})

	out := make([]*models.Standing, len(ranked))
	for i, p := range ranked {
		out[i] = &models.Standing{
			Rank:   i + 1,
			Player: p,
			Total:  p.Total(),
		}
	}
	return out
}

// Leader returns the first standing
func (s *Session) Leader() *models.Standing {
	standings := s.Standings()
	if len(standings) == 0 {
		return nil
	}
	return standings[0]
}

// ShowLeader reports whether a leader banner is meaningful: at least two players
// and a leader with a positive total.
func (s *Session) ShowLeader() bool {
	if len(s.players) < 2 {
		return false
	}
	leader := s.Leader()
	return leader != nil && leader.Total > 0
}

// Snapshot returns the full derived state for renderers
func (s *Session) Snapshot() *models.Scoreboard {
	standings := s.Standings()

	board := &models.Scoreboard{
		Players:         s.Players(),
		Standings:       standings,
		CanAddPlayer:    len(s.players) < MaxPlayers,
		CanRemovePlayer: len(s.players) > MinPlayers,
		UpdatedAt:       s.updatedAt,
	}
	if len(standings) > 0 {
		board.Leader = standings[0]
		board.ShowLeader = len(s.players) >= 2 && standings[0].Total > 0
	}

	return board
}

func (s *Session) newPlayer() *models.Player {
	n := len(s.players)
	return &models.Player{
		ID:     s.nextID(),
		Name:   fmt.Sprintf("Player %d", n+1),
		Color:  models.ColorForIndex(n),
		Scores: models.NewScores(),
	}
}

// nextID never hands out an ID twice, even if the generator repeats itself
func (s *Session) nextID() string {
	id := s.ids.NewUUID()
	for i := 2; ; i++ {
		if _, taken := s.usedIDs[id]; !taken && id != "" {
			break
		}
		id = fmt.Sprintf("%s-%d", id, i)
	}
	s.usedIDs[id] = struct{}{}
	return id
}

func (s *Session) indexOf(id string) int {
	for i, p := range s.players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Session) changed() {
	s.updatedAt = s.clock.Now()
	if s.onChange != nil {
		s.onChange(s.Snapshot())
	}
}
