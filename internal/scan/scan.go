// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package scan implements the single-forward-pass syntactic scanner shared
// by every public entry point: it walks a digit buffer once, classifying
// sign, integer part, decimal point, fraction, exponent and suffix, and
// reports the result as a Descriptor rather than a parsed value. Turning
// scanned components into a number is someone else's job (the oracle for
// floats, internal/digits for arbitrary precision).
//
// Grammar is the configuration surface of Scan: the decimal float, hex
// float and JSON number entry points are the same scan loop driven by a
// different Grammar value, rather than one function per grammar. BigInteger
// and BigDecimal literals have their own scanners, ScanBigIntLiteral and
// ScanBigDecimalLiteral, which take no Grammar.
package scan

import (
	"github.com/swarnum/numlit/internal/swar"
)

// CodeUnit re-exports the buffer element constraint so callers only need to
// import one package's type parameter.
type CodeUnit = swar.CodeUnit

// Descriptor is the result of a single scan: index ranges and flags
// describing the number literal's shape. All indices are positions in the
// caller's original buffer, not relative to the scanned window.
type Descriptor struct {
	IsNegative bool

	IntegerStart, IntegerEnd int
	HasLeadingZero           bool

	DecimalPointIndex          int // equals IntegerEnd if there was no '.'
	FractionStart, FractionEnd int

	ExponentIndicatorIndex int // exponent letter, or end of the number if none; -1 from ScanBigIntLiteral
	Exponent               int64

	IsHex bool

	DigitCount int64

	// PackedSignificand and the truncation fields are not filled in by any
	// scanner in this package and are always zero; the float value
	// assembler packs its significand from the digit ranges itself.
	PackedSignificand    uint64
	SignificandTruncated bool
	TruncatedExponent    int64

	Illegal bool
}

// Grammar configures which phases of the scan loop run and how strictly.
type Grammar struct {
	AllowSign               bool
	AllowLeadingWhitespace  bool
	AllowTrailingWhitespace bool
	AllowHex                bool // '0x'/'0X' prefix switches to hex digits + binary exponent
	AllowFraction           bool
	AllowExponent           bool
	// StrictLeadingZero enforces the JSON rule: the integer part is either
	// a single '0' or a nonzero digit followed by more digits, never a
	// zero followed by more digits.
	StrictLeadingZero bool
	AllowSuffix       bool
	SuffixChars       string // e.g. "fFdD"
}

func isDigit[T CodeUnit](c T) bool { return c >= '0' && c <= '9' }

func isHexDigit[T CodeUnit](c T) bool {
	_, ok := swar.HexNibble(c)
	return ok
}

func isSpace[T CodeUnit](c T) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func skipSpace[T CodeUnit](buf []T, i, to int) int {
	for i < to && isSpace(buf[i]) {
		i++
	}
	return i
}

// Scan runs the configured grammar over buf[from:to). The caller is
// responsible for bounds/MAX_INPUT_LENGTH checks before calling Scan; those
// are a precondition violation, not a syntax error, and are reported
// differently at the public boundary.
func Scan[T CodeUnit](buf []T, from, to int, g Grammar) Descriptor {
	var d Descriptor
	d.ExponentIndicatorIndex = -1
	i := from

	if g.AllowLeadingWhitespace {
		i = skipSpace(buf, i, to)
	}
	if i >= to {
		d.Illegal = true
		return d
	}
	if g.AllowSign {
		switch buf[i] {
		case '-':
			d.IsNegative = true
			i++
		case '+':
			i++
		}
		if i >= to {
			d.Illegal = true
			return d
		}
	}

	if g.AllowHex && buf[i] == '0' && i+1 < to && (buf[i+1] == 'x' || buf[i+1] == 'X') {
		d.IsHex = true
		i += 2
		i = scanHexBody(buf, i, to, &d)
	} else {
		i = scanDecimalBody(buf, i, to, g, &d)
	}
	if d.Illegal {
		return d
	}

	if g.AllowSuffix && i < to {
		for _, c := range g.SuffixChars {
			if buf[i] == T(c) {
				i++
				break
			}
		}
	}
	if g.AllowTrailingWhitespace {
		i = skipSpace(buf, i, to)
	}

	if i != to || d.DigitCount == 0 {
		d.Illegal = true
		return d
	}
	if d.Exponent > int64(maxExponentMagnitude) || d.Exponent < -int64(maxExponentMagnitude) {
		d.Illegal = true
	}
	return d
}

// maxExponentMagnitude is MAX_EXPONENT_NUMBER (2^31-1); it lives here too
// so Scan can enforce it without importing the numlit package (which
// imports scan, not the other way around).
const maxExponentMagnitude = 1<<31 - 1

func scanDecimalBody[T CodeUnit](buf []T, i, to int, g Grammar, d *Descriptor) int {
	d.IntegerStart = i
	if g.StrictLeadingZero {
		if i < to && buf[i] == '0' {
			d.HasLeadingZero = true
			i++
		} else if i < to && isDigit(buf[i]) {
			for i < to && isDigit(buf[i]) {
				i++
			}
		} else {
			d.Illegal = true
			return i
		}
	} else {
		for i < to && buf[i] == '0' {
			d.HasLeadingZero = true
			i++
		}
		for i < to && isDigit(buf[i]) {
			i++
		}
	}
	d.IntegerEnd = i
	d.DigitCount += int64(d.IntegerEnd - d.IntegerStart)

	d.DecimalPointIndex = i
	d.FractionStart, d.FractionEnd = i, i
	if g.AllowFraction && i < to && buf[i] == '.' {
		i++
		d.FractionStart = i
		for i < to && isDigit(buf[i]) {
			i++
		}
		d.FractionEnd = i
		d.DigitCount += int64(d.FractionEnd - d.FractionStart)
		if d.FractionEnd == d.FractionStart && d.IntegerEnd == d.IntegerStart {
			// "." alone, with no digits on either side, is never legal.
			d.Illegal = true
			return i
		}
	}

	d.ExponentIndicatorIndex = i
	if g.AllowExponent && i < to && (buf[i] == 'e' || buf[i] == 'E') {
		d.ExponentIndicatorIndex = i
		var ok bool
		i, ok = scanExponent(buf, i+1, to, d)
		if !ok {
			d.Illegal = true
			return i
		}
	} else {
		d.ExponentIndicatorIndex = i
	}
	return i
}

func scanExponent[T CodeUnit](buf []T, i, to int, d *Descriptor) (int, bool) {
	negative := false
	if i < to && (buf[i] == '+' || buf[i] == '-') {
		negative = buf[i] == '-'
		i++
	}
	start := i
	var magnitude int64
	for i < to && isDigit(buf[i]) {
		if magnitude <= maxExponentMagnitude {
			magnitude = magnitude*10 + int64(buf[i]-'0')
			if magnitude > maxExponentMagnitude {
				// Saturate one past the ceiling rather than at it, so the
				// final check in Scan can still distinguish a legitimate
				// exponent that exactly reaches MAX_EXPONENT_NUMBER from one
				// that truly overflowed it.
				magnitude = maxExponentMagnitude + 1
			}
		}
		i++
	}
	if i == start {
		return i, false
	}
	if negative {
		d.Exponent = -magnitude
	} else {
		d.Exponent = magnitude
	}
	return i, true
}

func scanHexBody[T CodeUnit](buf []T, i, to int, d *Descriptor) int {
	d.IntegerStart = i
	for i < to && buf[i] == '0' {
		d.HasLeadingZero = true
		i++
	}
	for i < to && isHexDigit(buf[i]) {
		i++
	}
	d.IntegerEnd = i
	d.DigitCount += int64(d.IntegerEnd - d.IntegerStart)

	d.DecimalPointIndex = i
	d.FractionStart, d.FractionEnd = i, i
	if i < to && buf[i] == '.' {
		i++
		d.FractionStart = i
		for i < to && isHexDigit(buf[i]) {
			i++
		}
		d.FractionEnd = i
		d.DigitCount += int64(d.FractionEnd - d.FractionStart)
	}
	if d.DigitCount == 0 {
		d.Illegal = true
		return i
	}

	// scanHexBody backs hex float scanning only (ScanBigIntLiteral's hex
	// path is a separate, simpler scanner in bigint.go); a binary exponent
	// introduced by 'p'/'P' is therefore mandatory, per C99/Java hex float
	// grammar.
	d.ExponentIndicatorIndex = i
	if i < to && (buf[i] == 'p' || buf[i] == 'P') {
		var ok bool
		i, ok = scanExponent(buf, i+1, to, d)
		if !ok {
			d.Illegal = true
		}
	} else {
		d.Illegal = true
	}
	return i
}
