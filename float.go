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

package numlit

import (
	"strconv"
	"strings"

	"github.com/swarnum/numlit/internal/oracle"
	"github.com/swarnum/numlit/internal/scan"
)

var floatGrammar = scan.Grammar{
	AllowSign:               true,
	AllowLeadingWhitespace:  true,
	AllowTrailingWhitespace: true,
	AllowHex:                true,
	AllowFraction:           true,
	AllowExponent:           true,
	AllowSuffix:             true,
	SuffixChars:             "fFdD",
}

// ParseFloat64 parses buf[offset:offset+length] as a decimal or
// 0x-prefixed hex floating-point literal, rounding via oracle.Default.
func ParseFloat64[T scan.CodeUnit](buf []T, offset, length int) (float64, error) {
	if err := checkWindow(buf, offset, length); err != nil {
		return 0, err
	}
	from, to := offset, offset+length
	d := scan.Scan(buf, from, to, floatGrammar)
	if d.Illegal {
		return 0, syntaxError(offset, length)
	}
	if d.DigitCount > MaxDigitCountBigDecimal {
		return 0, valueExceedsLimits(offset, length)
	}

	if d.IsHex {
		v, err := parseHexFloat(buf, d)
		if err != nil {
			return 0, syntaxError(offset, length)
		}
		return v, nil
	}
	return assembleDecimalFloat(buf, d), nil
}

// ParseFloat32 parses the same grammar as ParseFloat64 and narrows the
// result, matching how a grammar-correct float32 literal is defined: the
// nearest float64 to the decimal value, narrowed to the nearest float32.
func ParseFloat32[T scan.CodeUnit](buf []T, offset, length int) (float32, error) {
	v, err := ParseFloat64(buf, offset, length)
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}

// assembleDecimalFloat implements the float fast path: packSignificand
// packs up to 19 integer and fraction digits into a uint64, and if that is
// all of them the significand is exact and the oracle's fast Round path is
// called directly. Otherwise the packed significand only holds the first 19
// digits, which is enough for a truncation-aware fast rounding oracle (e.g.
// Eisel-Lemire) but not for Default, which has no faster exact algorithm to
// fall back on — so RoundExact gets the complete digit string instead,
// guaranteeing the correctly-rounded result regardless of digit count.
func assembleDecimalFloat[T scan.CodeUnit](buf []T, d scan.Descriptor) float64 {
	const maxExactDigits = 19

	significand, truncated, _ := packSignificand(buf, d, maxExactDigits)
	fractionLen := d.FractionEnd - d.FractionStart
	if !truncated {
		decimalExponent := int(d.Exponent) - fractionLen
		return oracle.Default.Round(d.IsNegative, significand, decimalExponent, false, decimalExponent)
	}

	truncatedExponent := int(d.Exponent) - fractionLen
	digits := fullDigitString(buf, d)
	return oracle.Default.RoundExact(d.IsNegative, digits, truncatedExponent)
}

// fullDigitString concatenates the integer and fraction digit ranges (in
// order, skipping the decimal point) into the complete, untruncated decimal
// digit string, for callers that need exact rounding regardless of length.
func fullDigitString[T scan.CodeUnit](buf []T, d scan.Descriptor) string {
	var b strings.Builder
	b.Grow(int(d.DigitCount))
	for i := d.IntegerStart; i < d.IntegerEnd; i++ {
		b.WriteByte(byte(buf[i]))
	}
	for i := d.FractionStart; i < d.FractionEnd; i++ {
		b.WriteByte(byte(buf[i]))
	}
	return b.String()
}

// packSignificand walks the integer and fraction digit ranges in order,
// accumulating into a uint64 until either the range is exhausted or limit
// digits have been consumed, reporting whether it had to stop early.
func packSignificand[T scan.CodeUnit](buf []T, d scan.Descriptor, limit int) (significand uint64, truncated bool, digitsUsed int) {
	consume := func(from, to int) {
		for ; from < to; from++ {
			if digitsUsed >= limit {
				truncated = true
				return
			}
			significand = significand*10 + uint64(buf[from]-'0')
			digitsUsed++
		}
	}
	consume(d.IntegerStart, d.IntegerEnd)
	consume(d.FractionStart, d.FractionEnd)
	return significand, truncated, digitsUsed
}

func parseHexFloat[T scan.CodeUnit](buf []T, d scan.Descriptor) (float64, error) {
	var b strings.Builder
	if d.IsNegative {
		b.WriteByte('-')
	}
	b.WriteString("0x")
	for i := d.IntegerStart; i < d.IntegerEnd; i++ {
		b.WriteByte(byte(buf[i]))
	}
	if d.FractionEnd > d.FractionStart {
		b.WriteByte('.')
		for i := d.FractionStart; i < d.FractionEnd; i++ {
			b.WriteByte(byte(buf[i]))
		}
	}
	b.WriteByte('p')
	b.WriteString(strconv.FormatInt(d.Exponent, 10))
	return strconv.ParseFloat(b.String(), 64)
}
