package models

import "time"

// Standing is a player's place in the ranked standings
type Standing struct {
	// Rank is the 1-based position in the standings
	Rank int

	// Player is a copy of the ranked player
	Player *Player

	// Total is the player's summed score
	Total int
}

// Scoreboard is a read-only snapshot of a session handed to renderers
type Scoreboard struct {
	// ChannelID is the channel the session belongs to
	ChannelID string

	// Players is the player collection in creation order
	Players []*Player

	// Standings is the player collection ordered by descending total
	Standings []*Standing

	// Leader is the first standing, nil only for an empty board
	Leader *Standing

	// ShowLeader indicates whether a leader banner should be displayed
	ShowLeader bool

	// CanAddPlayer is false once the player limit is reached
	CanAddPlayer bool

	// CanRemovePlayer is false when only one player remains
	CanRemovePlayer bool

	// UpdatedAt is when the session last changed
	UpdatedAt time.Time
}

// PlayerAt returns the player at a 1-based position
func (b *Scoreboard) PlayerAt(position int) (*Player, bool) {
	if b == nil || position < 1 || position > len(b.Players) {
		return nil, false
	}
	return b.Players[position-1], true
}
