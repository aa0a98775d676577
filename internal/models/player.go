package models

import (
	"maps"
	"math"

	"github.com/samber/lo"
)

// Player is one participant on the scoreboard
type Player struct {
	// ID is the unique identifier assigned when the player is created
	ID string

	// Name is the editable display name
	Name string

	// Color is the cosmetic marker assigned at creation
	Color ColorTag

	// Scores holds the value for each of the fixed categories
	Scores map[Category]int
}

// Total returns the sum of every category value, saturating at math.MaxInt
func (p *Player) Total() int {
	return lo.Reduce(lo.Values(p.Scores), func(total int, v int, _ int) int {
		return AddScore(total, v)
	}, 0)
}

// AddScore returns value+delta clamped to [0, math.MaxInt]
func AddScore(value, delta int) int {
	if delta > 0 && value > math.MaxInt-delta {
		return math.MaxInt
	}
	return max(0, value+delta)
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	c := *p
	c.Scores = maps.Clone(p.Scores)
	return &c
}
