/*
Package daxie converts monetary amounts between integer minor units, grouped
decimal strings and the capitalized Chinese numerals (大写金额) written on
cheques, invoices and other financial documents.
It leverages the [decimal] package for exact scaling between minor and major
units, and renders every digit and magnitude as a distinct character so that
the written figure cannot be altered.

# Features

  - Exact conversion between minor units (fen, cents) and major-unit strings
  - Thousands grouping of major-unit strings
  - Normalization of user input: grouping separators, currency symbols,
    full-width characters and fraction padding or truncation
  - Rendering of amounts up to 999,999,999,999.99 as capitalized numerals,
    with zero elision and 万/亿 group words
  - Immutable values and read-only tables, safe for concurrent use by
    multiple goroutines

# Representation

The central type is [Canonical], a validated amount with at most 12 integer
digits and exactly 2 fraction digits.
It is produced by [Normalize], [NewCanonicalFromMinor],
[NewCanonicalFromDecimal] and [NewCanonicalFromAmount], and consumed by
[RenderNumeral].

	Normalize("¥1,001.05")   // 1001.05
	RenderNumeral(...)       // 壹仟零壹元零伍分

# Scaling

[MinorToMajor] and [MajorToMinor] convert between minor units and major-unit
strings.
Fractions longer than 2 digits are truncated, never rounded.
For every int64 value m, MajorToMinor(MinorToMajor(m)) == m.

# Errors

All failures are validation failures, reported as one of [ErrInvalidFormat],
[ErrZeroAmount] or [ErrUnsupportedMagnitude] wrapped with context.
Use [errors.Is] to classify them.
The Must* helpers panic instead of returning errors and are meant for
initialization of package-level variables.
*/
package daxie
