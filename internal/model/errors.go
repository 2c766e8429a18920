package model

import "errors"

// ErrorCode is the session outcome reported to the platform adapter
type ErrorCode int

const (
	ErrorNone        ErrorCode = iota // Everything is OK
	ErrorPlayerQuits                  // The player quit; a normal termination
	ErrorNoMemory                     // Not enough memory
	ErrorNoVideo                      // Video system was not initialized
	ErrorNoImages                     // Problem loading the image assets
	ErrorAssert                       // An internal invariant was violated
)

// String returns the lowercase name of the code
func (c ErrorCode) String() string {
	switch c {
	case ErrorNone:
		return "none"
	case ErrorPlayerQuits:
		return "player_quits"
	case ErrorNoMemory:
		return "no_memory"
	case ErrorNoVideo:
		return "no_video"
	case ErrorNoImages:
		return "no_images"
	case ErrorAssert:
		return "assert"
	default:
		return "unknown"
	}
}

// Common errors used across the application
var (
	// Session outcomes, one per non-zero ErrorCode
	ErrPlayerQuits = errors.New("player quits")
	ErrNoMemory    = errors.New("not enough memory")
	ErrNoVideo     = errors.New("video system not initialized")
	ErrNoImages    = errors.New("could not load images")
	ErrAssert      = errors.New("internal invariant violated")

	// Engine errors
	ErrNotInitialized = errors.New("game not initialized")
	ErrInvalidConfig  = errors.New("invalid configuration")

	// History errors
	ErrNoHistory = errors.New("no finished games recorded")
)

// CodeOf maps an error chain to its ErrorCode. Errors outside the
// session taxonomy are reported as ErrorAssert.
func CodeOf(err error) ErrorCode {
	switch {
	case err == nil:
		return ErrorNone
	case errors.Is(err, ErrPlayerQuits):
		return ErrorPlayerQuits
	case errors.Is(err, ErrNoMemory):
		return ErrorNoMemory
	case errors.Is(err, ErrNoVideo):
		return ErrorNoVideo
	case errors.Is(err, ErrNoImages):
		return ErrorNoImages
	default:
		return ErrorAssert
	}
}
