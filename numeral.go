package daxie

import "fmt"

var (
	// digitGlyphs is indexed by digit value.
	digitGlyphs = [10]rune{'零', '壹', '贰', '叁', '肆', '伍', '陆', '柒', '捌', '玖'}
	// positionUnits is indexed by the position of a digit within its group
	// of 4; the ones position has no unit.
	positionUnits = [4]rune{0, '拾', '佰', '仟'}
	// groupUnits is indexed by the group number counted from the ones group.
	groupUnits = [3]rune{0, '万', '亿'}
)

const (
	majorUnit     = '元'
	tenthsUnit    = '角'
	hundredthUnit = '分'
	exactWord     = '整'
)

// numeralCap bounds the length of a numeral in runes: every integer digit
// emits at most 3 runes, the fraction at most 4, plus the major unit.
const numeralCap = 3*maxIntDigits + 4 + 1

// RenderNumeral returns the capitalized Chinese numeral of a positive amount,
// as written on cheques and invoices:
//
//	1.00      壹元整
//	100.00    壹佰元整
//	1001.05   壹仟零壹元零伍分
//	100000.10 壹拾万元壹角
//	0.05      伍分
//
// RenderNumeral returns an error if:
//   - the amount is zero, see [ErrZeroAmount];
//   - the amount is negative, see [ErrInvalidFormat].
func RenderNumeral(a Canonical) (string, error) {
	switch {
	case a.IsZero():
		return "", fmt.Errorf("rendering %v: %w", a, ErrZeroAmount)
	case a.IsNeg():
		return "", fmt.Errorf("rendering %v: %w: negative amount", a, ErrInvalidFormat)
	case a.coef >= maxCoef:
		// Unreachable through constructors.
		return "", fmt.Errorf("rendering %v: %w", a, ErrUnsupportedMagnitude)
	}
	return renderNumeral(a.coef), nil
}

// MustRenderNumeral is like [RenderNumeral] but panics if the amount cannot
// be rendered.
func MustRenderNumeral(a Canonical) string {
	s, err := RenderNumeral(a)
	if err != nil {
		panic(fmt.Sprintf("RenderNumeral(%v) failed: %v", a, err))
	}
	return s
}

// Render normalizes a raw amount string and returns its capitalized numeral.
// See [Normalize] and [RenderNumeral] for the accepted input and errors.
func Render(raw string) (string, error) {
	a, err := Normalize(raw)
	if err != nil {
		return "", err
	}
	return RenderNumeral(a)
}

// RenderMinor returns the capitalized numeral of an amount given in minor
// units (e.g. fens, cents).
// See [NewCanonicalFromMinor] and [RenderNumeral] for the errors.
func RenderMinor(minor int64) (string, error) {
	a, err := NewCanonicalFromMinor(minor)
	if err != nil {
		return "", err
	}
	return RenderNumeral(a)
}

// renderNumeral fills the buffer from right to left, so runes are put in
// reverse reading order: fraction, major unit, then integer digits starting
// from the ones digit.
func renderNumeral(coef uint64) string {
	var buf [numeralCap]rune
	pos := len(buf)
	put := func(r rune) {
		pos--
		buf[pos] = r
	}

	whole, frac := coef/100, coef%100
	tenths, hundredths := frac/10, frac%10

	// Fractional part
	switch {
	case frac == 0:
		put(exactWord)
	default:
		if hundredths != 0 {
			put(hundredthUnit)
			put(digitGlyphs[hundredths])
		}
		switch {
		case tenths != 0:
			put(tenthsUnit)
			put(digitGlyphs[tenths])
		case whole != 0:
			put(digitGlyphs[0])
		}
	}

	if whole == 0 {
		return string(buf[pos:])
	}

	// Major unit
	put(majorUnit)

	// Integer digits, ones digit first
	var digs [maxIntDigits]byte
	n := 0
	for ; whole > 0; whole /= 10 {
		digs[n] = byte(whole % 10)
		n++
	}

	for j := 0; j < n; j++ {
		group, p := j/4, j%4
		if digs[j] == 0 {
			// Zero placeholder only when the digit to the right is nonzero;
			// the ones digit never has one.
			if j > 0 && digs[j-1] != 0 {
				put(digitGlyphs[0])
			}
			if p == 0 && group > 0 && groupHasDigits(&digs, j, n) {
				put(groupUnits[group])
			}
			continue
		}
		if p == 0 && group > 0 {
			put(groupUnits[group])
		}
		if p > 0 {
			put(positionUnits[p])
		}
		put(digitGlyphs[digs[j]])
	}

	return string(buf[pos:])
}

// groupHasDigits reports whether any of the up to 3 digits more significant
// than position j is nonzero.
func groupHasDigits(digs *[maxIntDigits]byte, j, n int) bool {
	for k := j + 1; k <= j+3 && k < n; k++ {
		if digs[k] != 0 {
			return true
		}
	}
	return false
}
