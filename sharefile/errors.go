package sharefile

import "errors"

var (
	// ErrUnsupportedFormat is returned for files that are neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("sharefile: unsupported file format")

	// ErrMissingKeys is returned when the "keys" record is absent.
	ErrMissingKeys = errors.New("sharefile: missing keys record")

	// ErrInvalidKeys is returned when k or n is out of range.
	ErrInvalidKeys = errors.New("sharefile: invalid keys record")

	// ErrCountMismatch is returned when n does not match the number of shares in the file.
	ErrCountMismatch = errors.New("sharefile: share count does not match n")

	// ErrInvalidX is returned when a share key is not a positive decimal integer.
	ErrInvalidX = errors.New("sharefile: share key must be a positive integer")

	// ErrDuplicateX is returned when two share keys denote the same x-coordinate.
	ErrDuplicateX = errors.New("sharefile: duplicate share x-coordinate")

	// ErrInvalidBase is returned when a base is not an integer in [2, 36].
	ErrInvalidBase = errors.New("sharefile: base must be an integer between 2 and 36")

	// ErrInvalidValue is returned when a value is not a valid numeral in its base.
	ErrInvalidValue = errors.New("sharefile: invalid value for base")
)
