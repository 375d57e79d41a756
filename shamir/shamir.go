package shamir

import (
	"fmt"
	"math/big"

	"github.com/vitalvas/shamirkit/field"
)

// Reconstruct recovers the secret from the leading threshold shares.
//
// Parameters:
//   - f: the prime field the shares were generated over
//   - shares: ordered shares; entries past threshold are ignored
//   - threshold: minimum number of shares required for reconstruction (k)
//
// Returns the secret in [0, p).
func Reconstruct(f *field.Field, shares []*Share, threshold int) (*big.Int, error) {
	if err := checkThreshold(shares, threshold); err != nil {
		return nil, err
	}

	return Interpolate(f, shares[:threshold])
}

func checkThreshold(shares []*Share, threshold int) error {
	if threshold < 1 {
		return ErrInvalidThreshold
	}

	if len(shares) < threshold {
		return fmt.Errorf("%w: need %d, got %d", ErrInsufficientShares, threshold, len(shares))
	}

	return nil
}
