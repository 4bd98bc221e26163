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

// Package oracle defines the pluggable decimal-to-binary rounding
// collaborator: given a scanned significand and decimal exponent, decide
// the nearest float64 or float32. The scanner and value assembler never
// perform this rounding decision for decimal literals themselves; they
// always go through an Oracle (hex float literals are converted by
// strconv.ParseFloat directly in the value assembler), so a caller with a faster rounding routine (e.g. a hand-rolled
// Eisel-Lemire implementation) can supply one without touching the scanner.
package oracle

import (
	"strconv"
	"strings"
)

// Oracle rounds a scanned decimal number to the nearest float64.
//
// Round is the fast path: significand is the packed digits gathered by the
// scanner, up to 19 decimal digits. If the real significand needed more
// digits than that to represent exactly, truncated is true, decimalExponent
// already accounts for the digits that were kept, and truncatedExponent
// additionally reports the decimal exponent that would apply to the
// untruncated digit count. A hand-rolled Eisel-Lemire-style oracle can use
// truncated/truncatedExponent to decide when it needs to fall back to a
// slower exact path itself. Default's Round ignores truncated and
// truncatedExponent; the value assembler calls RoundExact instead of Round
// whenever the significand was truncated, since Default has no faster exact
// algorithm of its own to fall back to.
//
// RoundExact rounds from the complete, untruncated decimal digit string
// (digits is ASCII '0'-'9' only, no sign, no point) scaled by
// decimalExponent, for callers that need correctness regardless of digit
// count.
type Oracle interface {
	Round(negative bool, significand uint64, decimalExponent int, truncated bool, truncatedExponent int) float64
	RoundExact(negative bool, digits string, decimalExponent int) float64
}

// Default rounds by reconstructing the shortest decimal string that
// reproduces the scanned digits and exponent and calling strconv.ParseFloat,
// which is specified to return the IEEE-754 nearest value with ties to even.
// Since strconv.ParseFloat already accepts arbitrarily long digit strings
// and rounds them exactly, Default's Round fast path and its RoundExact path
// both bottom out in the same helper — the only difference is which digit
// string the caller had on hand.
var Default Oracle = defaultOracle{}

type defaultOracle struct{}

func (defaultOracle) Round(negative bool, significand uint64, decimalExponent int, _ bool, _ int) float64 {
	return parseDecimal(negative, strconv.FormatUint(significand, 10), decimalExponent)
}

func (defaultOracle) RoundExact(negative bool, digits string, decimalExponent int) float64 {
	return parseDecimal(negative, digits, decimalExponent)
}

func parseDecimal(negative bool, digits string, decimalExponent int) float64 {
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(digits)
	b.WriteByte('e')
	b.WriteString(strconv.Itoa(decimalExponent))

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		// strconv.ParseFloat on an out-of-range magnitude returns
		// ErrRange along with the correctly saturated +-Inf/0 value, which
		// is exactly the value this oracle should return.
		return v
	}
	return v
}
