package shamir

import (
	"fmt"
	"math/big"
)

// Share is a single (x, y) point of the sharing polynomial.
// Shares are treated as immutable once constructed.
type Share struct {
	// X is the x-coordinate (share index), must be positive.
	X *big.Int
	// Y is the polynomial value at X, already decoded from its source base.
	Y *big.Int
}

// NewShare validates and copies the coordinates into a new Share.
func NewShare(x, y *big.Int) (*Share, error) {
	if x == nil || x.Sign() <= 0 {
		return nil, ErrInvalidShareX
	}

	if y == nil || y.Sign() < 0 {
		return nil, ErrInvalidShareY
	}

	return &Share{
		X: new(big.Int).Set(x),
		Y: new(big.Int).Set(y),
	}, nil
}

// String returns the share as "(x, y)".
func (s *Share) String() string {
	return fmt.Sprintf("(%s, %s)", s.X, s.Y)
}

// Clone creates a deep copy of the share.
func (s *Share) Clone() *Share {
	return &Share{
		X: new(big.Int).Set(s.X),
		Y: new(big.Int).Set(s.Y),
	}
}

// Equal checks if two shares are equal.
func (s *Share) Equal(other *Share) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.X.Cmp(other.X) == 0 && s.Y.Cmp(other.Y) == 0
}
