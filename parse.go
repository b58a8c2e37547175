package daxie

import (
	"strings"

	"golang.org/x/text/width"
)

// currencySymbols lists prefixes removed from raw amounts.
// The full-width yen sign is folded to ¥ before the lookup, it is listed
// for callers that skip folding.
var currencySymbols = [...]string{"$", "¥", "￥"}

// amountParts holds the pieces of a raw amount after cleanup.
// Both digit strings contain only ASCII digits and may be empty.
type amountParts struct {
	neg  bool
	intg string
	frac string
}

// splitAmount removes decoration from a raw amount and splits it at the
// decimal point.
// It returns ErrInvalidFormat if anything other than digits and a single
// decimal point remains, or if no digits remain at all.
func splitAmount(raw string) (amountParts, error) {
	s := strings.TrimSpace(width.Narrow.String(raw))
	var p amountParts
	s, p.neg = trimSign(s)
	if t, ok := trimSymbol(s); ok {
		s = t
		if !p.neg {
			s, p.neg = trimSign(s)
		}
	}
	s = stripSeparators(s)
	p.intg, p.frac, _ = strings.Cut(s, ".")
	if p.intg == "" && p.frac == "" {
		return amountParts{}, ErrInvalidFormat
	}
	if !isDigits(p.intg) || !isDigits(p.frac) {
		return amountParts{}, ErrInvalidFormat
	}
	return p, nil
}

func trimSign(s string) (string, bool) {
	switch {
	case strings.HasPrefix(s, "-"):
		return s[1:], true
	case strings.HasPrefix(s, "+"):
		return s[1:], false
	}
	return s, false
}

func trimSymbol(s string) (string, bool) {
	for _, sym := range currencySymbols {
		if t, ok := strings.CutPrefix(s, sym); ok {
			return t, true
		}
	}
	return s, false
}

// stripSeparators removes grouping separators.
// It is idempotent: a string without separators is returned unchanged.
func stripSeparators(s string) string {
	if !strings.Contains(s, ",") {
		return s
	}
	return strings.ReplaceAll(s, ",", "")
}

// padFraction right-pads a fraction with zeros or truncates it to exactly
// 2 digits.
// Truncation never rounds.
func padFraction(frac string) string {
	switch n := len(frac); {
	case n >= fracDigits:
		return frac[:fracDigits]
	case n == 1:
		return frac + "0"
	default:
		return "00"
	}
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
