package shamir

import (
	"fmt"
	"math/big"

	"github.com/vitalvas/shamirkit/field"
)

// Interpolate performs Lagrange interpolation over all given shares and
// returns the constant term f(0) in [0, p).
//
// Every pair of shares must have distinct x-coordinates modulo p. A repeated
// coordinate makes a basis denominator zero and is reported as
// ErrDegenerateShares rather than a wrong secret.
func Interpolate(f *field.Field, shares []*Share) (*big.Int, error) {
	return Evaluate(f, shares, big.NewInt(0))
}

// Evaluate performs Lagrange interpolation over the given shares and returns
// the value of the interpolated polynomial at x.
func Evaluate(f *field.Field, shares []*Share, x *big.Int) (*big.Int, error) {
	if len(shares) == 0 {
		return nil, ErrInsufficientShares
	}

	result := big.NewInt(0)

	for i := range shares {
		// Calculate the Lagrange basis polynomial L_i(x)
		numerator := big.NewInt(1)
		denominator := big.NewInt(1)

		for j := range shares {
			if i == j {
				continue
			}

			// numerator *= (x - x_j), which is -x_j at zero
			numerator = f.Mul(numerator, f.Sub(x, shares[j].X))

			// denominator *= (x_i - x_j)
			denominator = f.Mul(denominator, f.Sub(shares[i].X, shares[j].X))
		}

		basis, err := f.Div(numerator, denominator)
		if err != nil {
			return nil, fmt.Errorf("%w: share x=%s: %w", ErrDegenerateShares, shares[i].X, err)
		}

		// result += y_i * L_i(x)
		result = f.Add(result, f.Mul(shares[i].Y, basis))
	}

	return f.Mod(result), nil
}
