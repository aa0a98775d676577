package models

// Category identifies one of the fixed score breakdown buckets
type Category string

const (
	// CategoryCards covers points printed on purple and tan cards
	CategoryCards Category = "cards"

	// CategoryProsperity covers prosperity card bonuses
	CategoryProsperity Category = "prosperity"

	// CategoryEvents covers basic and special events
	CategoryEvents Category = "events"

	// CategoryJourney covers journey tiles from the Bellfaire expansion
	CategoryJourney Category = "journey"

	// CategoryOther covers point tokens and any remaining bonuses
	CategoryOther Category = "other"
)

// CategoryInfo is the display metadata for a category
type CategoryInfo struct {
	// Key is the stable category key
	Key Category

	// Label is the short display name
	Label string

	// Description is the one-line hint shown under the label
	Description string
}

var categories = [...]CategoryInfo{
	{Key: CategoryCards, Label: "Cards", Description: "Purple & Tan cards"},
	{Key: CategoryProsperity, Label: "Prosperity", Description: "Basic & Special events"},
	{Key: CategoryEvents, Label: "Events", Description: "Completed events"},
	{Key: CategoryJourney, Label: "Journey", Description: "Journey tiles (Bellfaire)"},
	{Key: CategoryOther, Label: "Other", Description: "Tokens, bonuses, etc."},
}

// Categories returns the fixed, ordered category list. The returned slice is a copy.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories[:])
	return out
}

// Valid reports whether c is one of the fixed category keys
func (c Category) Valid() bool {
	_, ok := c.Info()
	return ok
}

// Info returns the display metadata for c
func (c Category) Info() (CategoryInfo, bool) {
	for _, info := range categories {
		if info.Key == c {
			return info, true
		}
	}
	return CategoryInfo{}, false
}

// Label returns the display label, or the raw key for an unknown category
func (c Category) Label() string {
	if info, ok := c.Info(); ok {
		return info.Label
	}
	return string(c)
}

// ParseCategory converts user input into a Category
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, c.Valid()
}

// NewScores returns a score breakdown with every category set to zero
func NewScores() map[Category]int {
	scores := make(map[Category]int, len(categories))
	for _, info := range categories {
		scores[info.Key] = 0
	}
	return scores
}
