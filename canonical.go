package daxie

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/govalues/decimal"
	"github.com/govalues/money"
)

var (
	// ErrInvalidFormat is returned when an amount does not have the shape
	// integer.fraction after separators and currency symbols are removed.
	ErrInvalidFormat = errors.New("invalid amount format")
	// ErrZeroAmount is returned for amounts equal to zero, which have no
	// numeral representation.
	ErrZeroAmount = errors.New("zero amount")
	// ErrUnsupportedMagnitude is returned when the integer part of an amount
	// has more than 12 digits, or a value does not fit into int64.
	ErrUnsupportedMagnitude = errors.New("unsupported magnitude")
)

const (
	maxIntDigits = 12
	fracDigits   = 2
	maxCoef      = 100_000_000_000_000 // 10^(maxIntDigits+fracDigits)
)

var canonicalPattern = regexp.MustCompile(`^(0|[1-9][0-9]{0,11})\.([0-9]{2})$`)

// Canonical represents a validated monetary amount with 1 to 12 integer digits
// and exactly 2 fraction digits.
// Its zero value corresponds to "0.00", which is not a valid input for
// [RenderNumeral].
// Canonical is designed to be safe for concurrent use by multiple goroutines
// and can be compared with the == operator.
type Canonical struct {
	neg  bool   // true if the amount is negative
	coef uint64 // absolute value in minor units, less than 10^14
}

// Normalize converts a raw amount string to a canonical amount.
// The following repairs are applied before validation:
//   - full-width characters are folded to their ASCII equivalents;
//   - surrounding spaces are removed;
//   - a single currency symbol ($, ¥ or ￥) before or after the sign is removed;
//   - grouping separators are removed;
//   - the fraction is right-padded with zeros or truncated to 2 digits.
//
// Normalize returns an error if:
//   - the result does not match (0|[1-9][0-9]{0,11}).[0-9]{2}, see [ErrInvalidFormat];
//   - the integer part has more than 12 digits, see [ErrUnsupportedMagnitude];
//   - the amount is zero, see [ErrZeroAmount].
func Normalize(raw string) (Canonical, error) {
	a, err := normalize(raw)
	if err != nil {
		return Canonical{}, fmt.Errorf("normalizing %q: %w", raw, err)
	}
	return a, nil
}

func normalize(raw string) (Canonical, error) {
	p, err := splitAmount(raw)
	if err != nil {
		return Canonical{}, err
	}
	intg := p.intg
	if intg == "" {
		intg = "0"
	}
	s := intg + "." + padFraction(p.frac)
	m := canonicalPattern.FindStringSubmatch(s)
	if m == nil {
		if len(intg) > maxIntDigits && intg[0] != '0' {
			return Canonical{}, ErrUnsupportedMagnitude
		}
		return Canonical{}, ErrInvalidFormat
	}
	// Both groups are short digit runs, parsing cannot fail.
	whole, _ := strconv.ParseUint(m[1], 10, 64)
	frac, _ := strconv.ParseUint(m[2], 10, 64)
	coef := whole*100 + frac
	if coef == 0 {
		return Canonical{}, ErrZeroAmount
	}
	return Canonical{neg: p.neg, coef: coef}, nil
}

// MustNormalize is like [Normalize] but panics if the string cannot be normalized.
// It simplifies safe initialization of global variables holding amounts.
func MustNormalize(raw string) Canonical {
	a, err := Normalize(raw)
	if err != nil {
		panic(fmt.Sprintf("Normalize(%q) failed: %v", raw, err))
	}
	return a
}

// NewCanonicalFromMinor converts an integer, representing minor units
// (e.g. fens, cents), to a canonical amount.
// See also method [Canonical.MinorUnits].
//
// NewCanonicalFromMinor returns an error if the amount is zero or its absolute
// value is 10^14 or greater.
func NewCanonicalFromMinor(minor int64) (Canonical, error) {
	a, err := newCanonical(minor < 0, absInt64(minor))
	if err != nil {
		return Canonical{}, fmt.Errorf("converting minor units %v: %w", minor, err)
	}
	return a, nil
}

// NewCanonicalFromDecimal converts a decimal to a canonical amount.
// Digits beyond the second fraction digit are truncated, not rounded.
// See also method [Canonical.Decimal].
//
// NewCanonicalFromDecimal returns an error if the truncated amount is zero
// or its integer part has more than 12 digits.
func NewCanonicalFromDecimal(d decimal.Decimal) (Canonical, error) {
	a, err := newCanonicalFromDecimal(d)
	if err != nil {
		return Canonical{}, fmt.Errorf("converting decimal %v: %w", d, err)
	}
	return a, nil
}

func newCanonicalFromDecimal(d decimal.Decimal) (Canonical, error) {
	d = d.Trunc(fracDigits)
	if d.Scale() < fracDigits {
		d = d.Pad(fracDigits)
		if d.Scale() < fracDigits {
			return Canonical{}, ErrUnsupportedMagnitude
		}
	}
	return newCanonical(d.IsNeg(), d.Coef())
}

// NewCanonicalFromAmount converts a monetary amount to a canonical amount.
// The currency of the amount is ignored and digits beyond the second fraction
// digit are truncated, so amounts in currencies with 3-digit minor units lose
// their last digit.
func NewCanonicalFromAmount(a money.Amount) (Canonical, error) {
	c, err := newCanonicalFromDecimal(a.Decimal())
	if err != nil {
		return Canonical{}, fmt.Errorf("converting amount %v: %w", a, err)
	}
	return c, nil
}

func newCanonical(neg bool, coef uint64) (Canonical, error) {
	switch {
	case coef == 0:
		return Canonical{}, ErrZeroAmount
	case coef >= maxCoef:
		return Canonical{}, ErrUnsupportedMagnitude
	}
	return Canonical{neg: neg, coef: coef}, nil
}

// absInt64 returns |v| without overflowing on math.MinInt64.
func absInt64(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Canonical) IsNeg() bool {
	return a.neg
}

// IsZero returns true only for the zero value of Canonical.
func (a Canonical) IsZero() bool {
	return a.coef == 0
}

// Abs returns the absolute value of the amount.
func (a Canonical) Abs() Canonical {
	return Canonical{coef: a.coef}
}

// Integer returns the digits of the integer part, without sign and without
// leading zeros.
// An amount below one has the integer part "0".
func (a Canonical) Integer() string {
	return strconv.FormatUint(a.coef/100, 10)
}

// Fraction returns exactly 2 digits of the fractional part.
func (a Canonical) Fraction() string {
	f := a.coef % 100
	return string([]byte{byte(f/10) + '0', byte(f%10) + '0'})
}

// MinorUnits returns the amount in minor units (e.g. fens, cents).
// See also constructor [NewCanonicalFromMinor].
func (a Canonical) MinorUnits() int64 {
	if a.neg {
		return -int64(a.coef)
	}
	return int64(a.coef)
}

// Decimal returns the amount as a decimal with a scale of 2.
// See also constructor [NewCanonicalFromDecimal].
func (a Canonical) Decimal() decimal.Decimal {
	return decimal.MustNew(a.MinorUnits(), fracDigits)
}

// String implements the [fmt.Stringer] interface and returns the canonical
// representation of the amount, such as "1234.50" or "-0.05".
// The result is accepted by [Normalize] and maps back to the same value.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Canonical) String() string {
	return string(a.appendString(make([]byte, 0, 24)))
}

func (a Canonical) appendString(text []byte) []byte {
	if a.neg {
		text = append(text, '-')
	}
	text = strconv.AppendUint(text, a.coef/100, 10)
	f := a.coef % 100
	return append(text, '.', byte(f/10)+'0', byte(f%10)+'0')
}

// Grouped returns the canonical representation with thousands separators,
// such as "1,234.50".
// See also [FormatGrouped].
func (a Canonical) Grouped() string {
	return FormatGrouped(a.String())
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both JSON strings and JSON numbers are accepted.
// See also constructor [Normalize].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Canonical) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*a, err = Normalize(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Canonical{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted canonical string.
// See also method [Canonical.String].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Canonical) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 26)
	text = append(text, '"')
	text = a.appendString(text)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Normalize].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Canonical) UnmarshalText(text []byte) error {
	var err error
	*a, err = Normalize(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Canonical{}, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// See also method [Canonical.String].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (a Canonical) AppendText(text []byte) ([]byte, error) {
	return a.appendString(text), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Canonical.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Canonical) MarshalText() ([]byte, error) {
	return a.appendString(make([]byte, 0, 24)), nil
}

// Scan implements the [sql.Scanner] interface.
// Strings and byte slices are normalized; int64 values are treated as whole
// major units, as returned by drivers for NUMERIC columns with a scale of 0.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (a *Canonical) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*a, err = Normalize(value)
	case []byte:
		*a, err = Normalize(string(value))
	case int64:
		var minor int64
		minor, err = MajorUnitsToMinor(value)
		if err == nil {
			*a, err = NewCanonicalFromMinor(minor)
		}
	case nil:
		err = fmt.Errorf("%T does not support null values", Canonical{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Canonical{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (a Canonical) Value() (driver.Value, error) {
	return a.String(), nil
}

// MajorUnitsToMinor converts whole major units (e.g. yuan, dollars) to minor
// units by multiplying by 100.
//
// MajorUnitsToMinor returns an error if the result does not fit into int64.
func MajorUnitsToMinor(major int64) (int64, error) {
	if major > math.MaxInt64/100 || major < math.MinInt64/100 {
		return 0, fmt.Errorf("converting major units %v: %w", major, ErrUnsupportedMagnitude)
	}
	return major * 100, nil
}
