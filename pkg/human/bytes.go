// Package human renders byte counts as short strings such as "341B" or "54.1K".
package human

import (
	"errors"
	"fmt"
)

const (
	// MaxSupportedSize is the largest byte count accepted by Format. It renders as "1G".
	MaxSupportedSize int64 = 1_000_000_000
	// DefaultSignificantDigits is the digit budget used by FormatBytes.
	DefaultSignificantDigits = 3
)

// ErrOutOfRange is matched by every argument validation failure.
var ErrOutOfRange = errors.New("argument out of range")

// RangeError names the argument that was rejected and its value.
type RangeError struct {
	Arg   string
	Value int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s %d", ErrOutOfRange, e.Arg, e.Value)
}

// Unwrap allows errors.Is(err, ErrOutOfRange).
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// FormatBytes formats n with DefaultSignificantDigits.
func FormatBytes(n int64) (string, error) {
	return Format(n, DefaultSignificantDigits)
}

// Format converts numberOfBytes into a decimal number followed by one of the
// suffixes B, K, M or G, keeping at most maxSignificantDigits digits.
//
// Rounding is half-up. Integer digits are never dropped, so the budget only
// limits the fractional part once the integer part is wider than it. When
// rounding carries the integer part past the budget the value moves to the
// next scale as "1".
func Format(numberOfBytes int64, maxSignificantDigits int) (string, error) {
	if numberOfBytes < 0 || numberOfBytes > MaxSupportedSize {
		return "", &RangeError{Arg: "numberOfBytes", Value: numberOfBytes}
	}
	if maxSignificantDigits < 1 {
		return "", &RangeError{Arg: "maxSignificantDigits", Value: int64(maxSignificantDigits)}
	}
	switch numberOfBytes {
	case 0:
		return "0" + scales[0], nil
	case MaxSupportedSize:
		return "1" + scales[len(scales)-1], nil
	}

	reduced, scale := resolveScale(numberOfBytes)
	d := renderDigits(reduced)
	d.round(max(maxSignificantDigits, d.intDigits()))
	d.trimFraction()

	number := d.String()
	if d.intDigits() > max(maxSignificantDigits, scaleDigits) && scale < len(scales)-1 {
		scale++
		number = "1"
	}
	return number + scales[scale], nil
}
