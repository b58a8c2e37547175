package daxie

import "strings"

// FormatGrouped inserts thousands separators into the integer part of
// a major-unit string.
// Existing separators are removed first, so the function is idempotent.
// A leading sign or currency symbol and the fractional part are kept as is.
//
//	FormatGrouped("1234567.89")  // 1,234,567.89
//	FormatGrouped("-$1234")      // -$1,234
func FormatGrouped(major string) string {
	s := stripSeparators(major)

	// Prefix (sign, currency symbol) ends at the first digit or decimal point
	start := strings.IndexAny(s, "0123456789.")
	if start < 0 {
		return s
	}
	prefix, s := s[:start], s[start:]

	// Integer part ends at the first non-digit
	end := len(s)
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			end = i
			break
		}
	}
	intg, rest := s[:end], s[end:]
	if len(intg) <= 3 {
		return prefix + intg + rest
	}

	width := len(intg) + (len(intg)-1)/3
	buf := make([]byte, width)
	pos := width - 1
	for i := 0; i < len(intg); i++ {
		if i > 0 && i%3 == 0 {
			buf[pos] = ','
			pos--
		}
		buf[pos] = intg[len(intg)-1-i]
		pos--
	}

	return prefix + string(buf) + rest
}
