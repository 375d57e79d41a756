package field

import (
	"errors"
	"math/big"
)

// DefaultModulus is the prime used when no modulus is configured.
const DefaultModulus = 104729

var (
	// ErrInvalidModulus is returned when the modulus is nil or less than 2.
	ErrInvalidModulus = errors.New("field: modulus must be at least 2")

	// ErrNoInverse is returned when a value has no multiplicative inverse modulo p.
	ErrNoInverse = errors.New("field: value has no modular inverse")
)

// Field is arithmetic modulo a fixed prime p.
// A Field is immutable and safe for concurrent use.
type Field struct {
	p *big.Int
}

// New returns a field over the given modulus.
// The modulus is copied; primality is not checked.
func New(p *big.Int) (*Field, error) {
	if p == nil || p.Cmp(big.NewInt(2)) < 0 {
		return nil, ErrInvalidModulus
	}

	return &Field{p: new(big.Int).Set(p)}, nil
}

// Default returns the field over DefaultModulus.
func Default() *Field {
	return &Field{p: big.NewInt(DefaultModulus)}
}

// Modulus returns a copy of the field modulus.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// Mod reduces a into [0, p), including negative values.
func (f *Field) Mod(a *big.Int) *big.Int {
	// big.Int.Mod is Euclidean, so the result is never negative
	return new(big.Int).Mod(a, f.p)
}

// Contains reports whether a is already a canonical element in [0, p).
func (f *Field) Contains(a *big.Int) bool {
	return a.Sign() >= 0 && a.Cmp(f.p) < 0
}

// Add computes (a + b) mod p
func (f *Field) Add(a, b *big.Int) *big.Int {
	result := new(big.Int).Add(a, b)
	return result.Mod(result, f.p)
}

// Sub computes (a - b) mod p
func (f *Field) Sub(a, b *big.Int) *big.Int {
	result := new(big.Int).Sub(a, b)
	return result.Mod(result, f.p)
}

// Mul computes (a * b) mod p
func (f *Field) Mul(a, b *big.Int) *big.Int {
	result := new(big.Int).Mul(a, b)
	return result.Mod(result, f.p)
}

// Neg computes (-a) mod p
func (f *Field) Neg(a *big.Int) *big.Int {
	result := new(big.Int).Neg(a)
	return result.Mod(result, f.p)
}

// Div computes (a / b) mod p using the modular inverse of b.
func (f *Field) Div(a, b *big.Int) (*big.Int, error) {
	inv, err := f.Inverse(b)
	if err != nil {
		return nil, err
	}

	return f.Mul(a, inv), nil
}

// Inverse returns the unique inv in [0, p) with (a * inv) mod p == 1.
// It runs the extended Euclidean algorithm on (a mod p, p) and fails with
// ErrNoInverse when gcd(a, p) != 1, which for a prime p means a ≡ 0.
func (f *Field) Inverse(a *big.Int) (*big.Int, error) {
	oldR := f.Mod(a)
	r := new(big.Int).Set(f.p)
	oldS := big.NewInt(1)
	s := big.NewInt(0)

	quotient := new(big.Int)
	tmp := new(big.Int)

	for r.Sign() != 0 {
		quotient.Div(oldR, r)

		// (oldR, r) <- (r, oldR - q*r)
		tmp.Mul(quotient, r)
		tmp.Sub(oldR, tmp)
		oldR, r = r, new(big.Int).Set(tmp)

		// (oldS, s) <- (s, oldS - q*s)
		tmp.Mul(quotient, s)
		tmp.Sub(oldS, tmp)
		oldS, s = s, new(big.Int).Set(tmp)
	}

	if oldR.Cmp(big.NewInt(1)) != 0 {
		return nil, ErrNoInverse
	}

	return f.Mod(oldS), nil
}
