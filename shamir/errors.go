package shamir

import "errors"

var (
	// ErrInvalidThreshold is returned when threshold is less than 1.
	ErrInvalidThreshold = errors.New("shamir: threshold must be at least 1")

	// ErrInsufficientShares is returned when not enough shares are provided for reconstruction.
	ErrInsufficientShares = errors.New("shamir: insufficient shares for reconstruction")

	// ErrInvalidShareX is returned when share X coordinate is not positive.
	ErrInvalidShareX = errors.New("shamir: share X coordinate must be positive")

	// ErrInvalidShareY is returned when share Y coordinate is negative.
	ErrInvalidShareY = errors.New("shamir: share Y coordinate must be non-negative")

	// ErrDegenerateShares is returned when two shares collapse to the same
	// x-coordinate in the field and the Lagrange denominator has no inverse.
	ErrDegenerateShares = errors.New("shamir: degenerate share set")

	// ErrUnknownStrategy is returned for an unsupported wrong-point detection strategy.
	ErrUnknownStrategy = errors.New("shamir: unknown detection strategy")
)
