package scoresession

// SessionError is the error type returned when a session cannot be built
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        SessionError = "config cannot be nil"
	ErrNilUUIDGenerator SessionError = "UUID generator cannot be nil"
	ErrNilClock         SessionError = "clock cannot be nil"
)
