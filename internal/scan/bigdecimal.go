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

package scan

import "github.com/swarnum/numlit/internal/swar"

// ManyDigitsThreshold is the window-length boundary at or above which
// ScanBigDecimalLiteral skips leading zero/digit runs at word-parallel SWAR
// speed. Below it, a plain per-character loop is just as fast and the SWAR
// setup cost (computing swarLimit, the 8-wide load) isn't worth paying, so
// the zero/digit-run helpers fall back to scalar scanning.
const ManyDigitsThreshold = 1 + 18 + 1 + 1 + 1 + 10

// ScanBigDecimalLiteral scans buf[from:to) as a decimal literal with an
// optional sign, optional fractional part, and optional exponent (no hex,
// no suffix). Leading zero runs in both the integer and fractional part are
// always skipped, so IntegerStart/FractionStart land past them rather than
// on the literal start of each part. At or above ManyDigitsThreshold the
// zero and digit runs are first skipped eight code units at a time via the
// SWAR predicates; below it, skipZeroRun/skipDigitRun use only their plain
// per-character loop. Either way the unscaled value a caller parses from
// [IntegerStart, DecimalPointIndex) and [FractionStart, ExponentIndicatorIndex)
// is numerically identical to parsing the un-skipped range.
//
// DigitCount is the number of digits from the first nonzero digit to the
// end of the significand (0 for an all-zero literal). The exponent, and with
// it the relationship ExponentIndicatorIndex - DecimalPointIndex - 1 =
// number of fractional digit positions, is computed from the un-skipped
// decimal point position, since skipped leading zeros still occupy
// decimal-point-relative positions that matter for scale.
func ScanBigDecimalLiteral[T CodeUnit](buf []T, from, to int) Descriptor {
	var d Descriptor
	d.ExponentIndicatorIndex = -1
	i := from
	if i >= to {
		d.Illegal = true
		return d
	}
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
	integerPartIndex := i
	swarLimit := -1
	if to-from >= ManyDigitsThreshold {
		swarLimit = to - 8
	}

	i = skipZeroRun(buf, i, to, swarLimit)
	d.HasLeadingZero = i > integerPartIndex
	d.IntegerStart = i
	i = skipDigitRun(buf, i, to, swarLimit)

	decimalPointIndex := i
	fractionStart := i
	hasPoint := false
	if i < to && buf[i] == '.' {
		hasPoint = true
		i++
		decimalPointIndex = i - 1
		i = skipZeroRun(buf, i, to, swarLimit)
		fractionStart = i
		i = skipDigitRun(buf, i, to, swarLimit)
	}
	significandEnd := i

	var digitCount int64
	var integerExponent int64
	if !hasPoint {
		// No decimal point at all, so there are no fractional digit
		// positions to correct for: the point-shift correction below only
		// applies when a '.' actually moved the point left of significandEnd.
		digitCount = int64(significandEnd - d.IntegerStart)
		decimalPointIndex = significandEnd
		fractionStart = significandEnd
		integerExponent = 0
	} else if d.IntegerStart == decimalPointIndex {
		digitCount = int64(significandEnd - fractionStart)
		integerExponent = int64(decimalPointIndex) - int64(significandEnd) + 1
	} else {
		digitCount = int64(significandEnd - d.IntegerStart - 1)
		integerExponent = int64(decimalPointIndex) - int64(significandEnd) + 1
	}

	d.IntegerEnd = decimalPointIndex
	d.DecimalPointIndex = decimalPointIndex
	d.FractionStart = fractionStart
	d.FractionEnd = significandEnd

	if i < to && (buf[i] == 'e' || buf[i] == 'E') {
		d.ExponentIndicatorIndex = i
		var ok bool
		i, ok = scanExponent(buf, i+1, to, &d)
		if !ok {
			d.Illegal = true
			return d
		}
		d.Exponent += integerExponent
	} else {
		d.ExponentIndicatorIndex = i
		d.Exponent = integerExponent
	}

	d.DigitCount = digitCount
	// numDigits counts every digit character, skipped leading zeros included,
	// so an all-zero literal such as "0" or "0.00" is legal; only a bare run
	// of two or more zeros with no point and no exponent ("00") is rejected.
	numDigits := significandEnd - integerPartIndex
	if hasPoint {
		numDigits--
	}
	bareZeroRun := digitCount == 0 && numDigits > 1 && !hasPoint && i == significandEnd
	if i != to || numDigits == 0 || bareZeroRun || d.ExponentIndicatorIndex == integerPartIndex {
		d.Illegal = true
	}
	return d
}

func skipZeroRun[T CodeUnit](buf []T, i, to, swarLimit int) int {
	for i < swarLimit && swar.IsEightZeroes(buf, i) {
		i += 8
	}
	for i < to && buf[i] == '0' {
		i++
	}
	return i
}

func skipDigitRun[T CodeUnit](buf []T, i, to, swarLimit int) int {
	for i < swarLimit && swar.IsEightDigits(buf, i) {
		i += 8
	}
	for i < to && isDigit(buf[i]) {
		i++
	}
	return i
}
