package pickchar

import (
	"errors"
	"strings"
	"testing"
)

type markTestCase struct {
	Point rune
	Radix Radix
	Zfill int
	Want  string
}

var markTestCases = []markTestCase{
	// radix defaults
	{Point: 10, Radix: RadixHex, Zfill: -1, Want: "0A"},
	{Point: 255, Radix: RadixHex, Zfill: -1, Want: "FF"},
	{Point: 8, Radix: RadixOct, Zfill: -1, Want: "010"},
	{Point: 5, Radix: RadixBin, Zfill: -1, Want: "00000101"},
	{Point: 42, Radix: RadixDec, Zfill: -1, Want: "42"},
	{Point: 0, Radix: RadixDec, Zfill: -1, Want: "0"},
	// wider than the fill width, kept whole
	{Point: 0x1F600, Radix: RadixHex, Zfill: -1, Want: "1F600"},
	{Point: 255, Radix: RadixBin, Zfill: 0, Want: "11111111"},
	// explicit overrides
	{Point: 7, Radix: RadixDec, Zfill: 4, Want: "0007"},
	{Point: 9, Radix: RadixOct, Zfill: 6, Want: "000011"},
	{Point: 0xAB, Radix: RadixHex, Zfill: 5, Want: "000AB"},
}

func TestFormatMark(t *testing.T) {
	for _, c := range markTestCases {
		t.Run(string(c.Radix)+"/"+c.Want, func(t *testing.T) {
			got, err := FormatMark(c.Point, c.Radix, c.Zfill)
			if err != nil {
				t.Fatalf("FormatMark(%d, %s, %d) failed: %v", c.Point, c.Radix, c.Zfill, err)
			}
			if got != c.Want {
				t.Errorf("FormatMark(%d, %s, %d) = %q, want %q", c.Point, c.Radix, c.Zfill, got, c.Want)
			}
		})
	}
}

func TestFormatMarkNeverTruncates(t *testing.T) {
	for _, radix := range []Radix{RadixHex, RadixDec, RadixOct, RadixBin} {
		for zfill := 0; zfill <= 10; zfill++ {
			for _, p := range []rune{0, 1, 9, 0x41, 0xFF, 0x2500} {
				got, err := FormatMark(p, radix, zfill)
				if err != nil {
					t.Fatalf("FormatMark(%d, %s, %d) failed: %v", p, radix, zfill, err)
				}
				if len(got) < zfill {
					t.Errorf("FormatMark(%d, %s, %d) = %q, shorter than the fill width", p, radix, zfill, got)
				}
			}
		}
	}
}

func TestFormatMarkBadRadix(t *testing.T) {
	_, err := FormatMark(65, "roman", -1)
	if !errors.Is(err, ErrInvalidRadix) {
		t.Fatalf("FormatMark error = %v, want ErrInvalidRadix", err)
	}
}

func TestParseRadix(t *testing.T) {
	for _, s := range []string{"hex", "dec", "oct", "bin"} {
		r, err := ParseRadix(s)
		if err != nil {
			t.Fatalf("ParseRadix(%q) failed: %v", s, err)
		}
		if string(r) != s {
			t.Errorf("ParseRadix(%q) = %q", s, r)
		}
	}
	// radix names are case sensitive
	_, err := ParseRadix("HEX")
	if !errors.Is(err, ErrInvalidRadix) {
		t.Fatalf("ParseRadix(\"HEX\") error = %v, want ErrInvalidRadix", err)
	}
	if !strings.Contains(err.Error(), "HEX") {
		t.Errorf("error %q does not name the bad radix", err)
	}
}
