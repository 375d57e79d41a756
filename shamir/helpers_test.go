package shamir

import (
	"math/big"

	"github.com/vitalvas/shamirkit/field"
)

// polynomial is a test-only polynomial over the field.
// coefficients[0] is the constant term (the secret).
type polynomial struct {
	f            *field.Field
	coefficients []*big.Int
}

func newPolynomial(f *field.Field, coefficients ...int64) *polynomial {
	p := &polynomial{f: f}
	for _, c := range coefficients {
		p.coefficients = append(p.coefficients, f.Mod(big.NewInt(c)))
	}
	return p
}

// evaluate evaluates the polynomial at point x using Horner's method.
func (p *polynomial) evaluate(x *big.Int) *big.Int {
	if len(p.coefficients) == 0 {
		return big.NewInt(0)
	}

	result := new(big.Int).Set(p.coefficients[len(p.coefficients)-1])
	for i := len(p.coefficients) - 2; i >= 0; i-- {
		result = p.f.Mul(result, x)
		result = p.f.Add(result, p.coefficients[i])
	}

	return result
}

// shares samples the polynomial at the given x-coordinates.
func (p *polynomial) shares(xs ...int64) []*Share {
	out := make([]*Share, len(xs))
	for i, x := range xs {
		bx := big.NewInt(x)
		out[i] = &Share{X: bx, Y: p.evaluate(bx)}
	}
	return out
}

func share(x, y int64) *Share {
	return &Share{X: big.NewInt(x), Y: big.NewInt(y)}
}

func cloneShares(shares []*Share) []*Share {
	out := make([]*Share, len(shares))
	for i, s := range shares {
		out[i] = s.Clone()
	}
	return out
}
