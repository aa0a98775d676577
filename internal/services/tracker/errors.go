package tracker

// TrackerError is a custom error type for scoreboard errors
type TrackerError string

// Error implements the error interface
func (e TrackerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         TrackerError = "config cannot be nil"
	ErrNilRepository     TrackerError = "scoreboard repository cannot be nil"
	ErrNilClock          TrackerError = "clock cannot be nil"
	ErrNilUUIDGenerator  TrackerError = "UUID generator cannot be nil"
	ErrInvalidInput      TrackerError = "invalid input"
	ErrUnknownCategory   TrackerError = "unknown score category"
	ErrPlayerNotFound    TrackerError = "no player at that position"
	ErrResetNotConfirmed TrackerError = "reset must be confirmed"
	ErrSessionNotFound   TrackerError = "no scoreboard in this channel"
)
