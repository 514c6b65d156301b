package game

import "errors"

// Error kinds returned by store operations. The serving layer maps these
// to client-visible statuses; everything else is treated as internal.
var (
	// ErrInvalidInput indicates a malformed or out-of-range argument,
	// such as an empty name, a non-positive bet or a self-targeting
	// opponent selection.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates the referenced player name does not exist.
	ErrNotFound = errors.New("player not found")

	// ErrPhaseMismatch indicates the operation is not legal in the
	// current phase.
	ErrPhaseMismatch = errors.New("operation not allowed in current phase")

	// ErrNoJokersLeft indicates a joker request by a player with zero
	// jokers remaining.
	ErrNoJokersLeft = errors.New("no jokers left")

	// ErrLoadFailure indicates the question source was unreadable or
	// malformed.
	ErrLoadFailure = errors.New("question load failure")
)
