package daxie

import (
	"fmt"
	"math"
	"strings"

	"github.com/govalues/decimal"
)

// MinorToMajor converts an integer, representing minor units (e.g. fens,
// cents), to a major-unit string with exactly 2 fraction digits and
// thousands separators in the integer part.
// Amounts below one major unit are written as "0.0N" or "0.NN".
// See also [MajorToMinor].
//
//	MinorToMajor(5)         // 0.05
//	MinorToMajor(100)       // 1.00
//	MinorToMajor(-123456789) // -1,234,567.89
func MinorToMajor(minor int64) string {
	// Any int64 fits into the decimal coefficient, scale 2 is always valid.
	d := decimal.MustNew(minor, fracDigits)
	return FormatGrouped(d.String())
}

// MajorToMinor converts a major-unit string to minor units (e.g. fens, cents).
// Grouping separators, a single currency symbol ($, ¥ or ￥) and full-width
// characters are accepted.
// A fraction shorter than 2 digits is right-padded with zeros, a longer one is
// truncated, not rounded:
//
//	MajorToMinor("$1,234.5")  // 123450
//	MajorToMinor("1.239")     // 123
//	MajorToMinor("5")         // 500
//
// MajorToMinor returns an error if:
//   - no digits remain after stripping, or other characters are present,
//     see [ErrInvalidFormat];
//   - the result does not fit into int64, see [ErrUnsupportedMagnitude].
func MajorToMinor(major string) (int64, error) {
	m, err := majorToMinor(major)
	if err != nil {
		return 0, fmt.Errorf("converting %q to minor units: %w", major, err)
	}
	return m, nil
}

func majorToMinor(major string) (int64, error) {
	p, err := splitAmount(major)
	if err != nil {
		return 0, err
	}
	intg := strings.TrimLeft(p.intg, "0")
	if intg == "" {
		intg = "0"
	}
	frac := p.frac
	if len(frac) > fracDigits {
		frac = frac[:fracDigits]
	}
	s := intg
	if frac != "" {
		s += "." + frac
	}
	d, err := decimal.Parse(s)
	if err != nil {
		return 0, ErrUnsupportedMagnitude
	}
	if d.Scale() < fracDigits {
		d = d.Pad(fracDigits)
		if d.Scale() < fracDigits {
			return 0, ErrUnsupportedMagnitude
		}
	}
	u := d.Coef()
	if p.neg {
		if u > -math.MinInt64 {
			return 0, ErrUnsupportedMagnitude
		}
		return -int64(u), nil
	}
	if u > math.MaxInt64 {
		return 0, ErrUnsupportedMagnitude
	}
	return int64(u), nil
}
