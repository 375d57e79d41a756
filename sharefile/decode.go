package sharefile

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const (
	minBase = 2
	maxBase = 36
)

// DecodeValue parses a non-negative numeral in the given base (2 to 36).
// Digits above 9 are letters in either case, so "ff" in base 16 is 255.
func DecodeValue(value string, base int) (*big.Int, error) {
	if base < minBase || base > maxBase {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBase, base)
	}

	value = strings.TrimSpace(value)
	if value == "" || strings.HasPrefix(value, "-") || strings.HasPrefix(value, "+") {
		return nil, fmt.Errorf("%w: %q in base %d", ErrInvalidValue, value, base)
	}

	n, ok := new(big.Int).SetString(value, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q in base %d", ErrInvalidValue, value, base)
	}

	return n, nil
}

// ParseBase parses a base given in decimal, such as "16".
func ParseBase(s string) (int, error) {
	base, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || base < minBase || base > maxBase {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBase, s)
	}

	return base, nil
}

func parseX(key string) (*big.Int, error) {
	x, ok := new(big.Int).SetString(strings.TrimSpace(key), 10)
	if !ok || x.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidX, key)
	}

	return x, nil
}
