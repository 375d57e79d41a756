package shamir

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/vitalvas/shamirkit/field"
)

// Strategy selects how redundant shares are checked against the baseline.
type Strategy int

const (
	// StrategySubstitute keeps the baseline shares and swaps each redundant
	// share in for the last baseline share. A redundant share is flagged when
	// the swapped-in set yields a different secret, which happens exactly when
	// the share does not lie on the baseline polynomial.
	StrategySubstitute Strategy = iota

	// StrategyHoldOut removes each share in turn from the full set and
	// interpolates the first threshold shares of what remains. A share is
	// flagged when that secret differs from the baseline. Only baseline
	// shares can be flagged under this scan.
	StrategyHoldOut
)

var strategyNames = map[Strategy]string{
	StrategySubstitute: "substitute",
	StrategyHoldOut:    "holdout",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy converts a strategy name into a Strategy.
// An empty name selects StrategySubstitute.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return StrategySubstitute, nil
	}

	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// FindWrongPoints returns the shares that are inconsistent with the
// polynomial defined by the first threshold shares (the baseline).
// The input slice is never modified; returned shares are copies.
//
// When len(shares) == threshold there is nothing to compare against and the
// result is empty. Interpolation failures abort the scan and are returned
// as errors, never as flagged shares.
func FindWrongPoints(f *field.Field, shares []*Share, threshold int, strategy Strategy) ([]*Share, error) {
	baseline, err := Reconstruct(f, shares, threshold)
	if err != nil {
		return nil, fmt.Errorf("baseline: %w", err)
	}

	if len(shares) == threshold {
		return nil, nil
	}

	switch strategy {
	case StrategySubstitute:
		return substituteScan(f, shares, threshold, baseline)
	case StrategyHoldOut:
		return holdOutScan(f, shares, threshold, baseline)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
}

func substituteScan(f *field.Field, shares []*Share, threshold int, baseline *big.Int) ([]*Share, error) {
	var wrong []*Share

	candidate := make([]*Share, threshold)
	copy(candidate, shares[:threshold-1])

	for i := threshold; i < len(shares); i++ {
		candidate[threshold-1] = shares[i]

		secret, err := Interpolate(f, candidate)
		if err != nil {
			return nil, fmt.Errorf("share %s: %w", shares[i], err)
		}

		if secret.Cmp(baseline) != 0 {
			wrong = append(wrong, shares[i].Clone())
		}
	}

	return wrong, nil
}

func holdOutScan(f *field.Field, shares []*Share, threshold int, baseline *big.Int) ([]*Share, error) {
	var wrong []*Share

	for i := range shares {
		remaining := make([]*Share, 0, len(shares)-1)
		remaining = append(remaining, shares[:i]...)
		remaining = append(remaining, shares[i+1:]...)

		secret, err := Interpolate(f, remaining[:threshold])
		if err != nil {
			return nil, fmt.Errorf("without share %s: %w", shares[i], err)
		}

		if secret.Cmp(baseline) != 0 {
			wrong = append(wrong, shares[i].Clone())
		}
	}

	return wrong, nil
}

// VerifyAllShares reports whether every share lies on the polynomial defined
// by the first threshold shares.
func VerifyAllShares(f *field.Field, shares []*Share, threshold int) (bool, error) {
	wrong, err := FindWrongPoints(f, shares, threshold, StrategySubstitute)
	if err != nil {
		return false, err
	}

	return len(wrong) == 0, nil
}

// Expected returns the value the baseline polynomial predicts at x.
func Expected(f *field.Field, shares []*Share, threshold int, x *big.Int) (*big.Int, error) {
	if err := checkThreshold(shares, threshold); err != nil {
		return nil, err
	}

	return Evaluate(f, shares[:threshold], x)
}
