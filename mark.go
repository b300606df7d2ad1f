package pickchar

import (
	"errors"
	"fmt"
)

// Radix selects the base a point mark is written in.
type Radix string

const (
	RadixHex Radix = "hex"
	RadixDec Radix = "dec"
	RadixOct Radix = "oct"
	RadixBin Radix = "bin"
)

// ErrInvalidRadix reports a radix outside hex, dec, oct and bin.
var ErrInvalidRadix = errors.New("invalid mark radix")

// ParseRadix validates a radix name.
func ParseRadix(s string) (Radix, error) {
	switch r := Radix(s); r {
	case RadixHex, RadixDec, RadixOct, RadixBin:
		return r, nil
	}
	return "", fmt.Errorf("%w %q (valid: hex dec oct bin)", ErrInvalidRadix, s)
}

// defaultZeroFill is the per-radix mark width used without an override:
// hex covers a byte in two digits, oct in three, bin in eight.
var defaultZeroFill = map[Radix]int{
	RadixHex: 2,
	RadixDec: 0,
	RadixOct: 3,
	RadixBin: 8,
}

// FormatMark renders a character point as mark text in the given radix,
// left-padded with zeros to zfill digits. A negative zfill selects the
// radix default. Padding never truncates: a point too wide for the fill
// width keeps all its digits. Hex marks are uppercase with no prefix.
func FormatMark(p rune, radix Radix, zfill int) (string, error) {
	if zfill < 0 {
		zfill = defaultZeroFill[radix]
	}
	switch radix {
	case RadixHex:
		return fmt.Sprintf("%0*X", zfill, p), nil
	case RadixDec:
		return fmt.Sprintf("%0*d", zfill, p), nil
	case RadixOct:
		return fmt.Sprintf("%0*o", zfill, p), nil
	case RadixBin:
		return fmt.Sprintf("%0*b", zfill, p), nil
	}
	return "", fmt.Errorf("%w %q", ErrInvalidRadix, radix)
}
