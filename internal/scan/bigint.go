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

import (
	"math/big"

	"github.com/swarnum/numlit/internal/swar"
)

// ScanBigIntLiteral scans buf[from:to) as a decimal or 0x-prefixed hex
// integer literal with an optional leading sign. It does not itself parse
// the decimal digit range into a value (that is internal/digits' job via
// the returned Descriptor); the hex case is assembled by HexDigitsToBigInt
// in this file, since it is a pure byte-emission pass with no
// divide-and-conquer regime.
func ScanBigIntLiteral[T CodeUnit](buf []T, from, to int) Descriptor {
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
	if buf[i] == '0' && i+1 < to && (buf[i+1] == 'x' || buf[i+1] == 'X') {
		d.IsHex = true
		i += 2
		d.IntegerStart = i
		for i < to && isHexDigit(buf[i]) {
			i++
		}
		d.IntegerEnd = i
		d.DigitCount = int64(i - d.IntegerStart)
		if d.DigitCount == 0 {
			d.Illegal = true
		}
	} else {
		d.IntegerStart = i
		for i < to && isDigit(buf[i]) {
			i++
		}
		d.IntegerEnd = i
		d.DigitCount = int64(i - d.IntegerStart)
		if d.DigitCount == 0 {
			d.Illegal = true
		}
	}
	d.DecimalPointIndex = i
	d.FractionStart, d.FractionEnd = i, i
	if i != to {
		d.Illegal = true
	}
	return d
}

// HexDigitsToBigInt assembles buf[from:to), a run of ASCII hex digits
// already validated by ScanBigIntLiteral, into an unsigned big.Int: an odd
// leading nibble becomes a single byte, then pairs of hex digits fill
// bytes one at a time until the remaining length is a multiple of 8, and
// the rest is consumed 8 hex digits (4 bytes) at a time via SWAR.
func HexDigitsToBigInt[T CodeUnit](buf []T, from, to int) (*big.Int, bool) {
	from = skipChar(buf, from, to, '0')
	numDigits := to - from
	if numDigits == 0 {
		return big.NewInt(0), true
	}
	bytes := make([]byte, (numDigits+1)/2+1)
	index := 1
	ok := true

	if numDigits&1 != 0 {
		v, valid := swar.HexNibble(buf[from])
		from++
		bytes[index] = v
		index++
		ok = ok && valid
	}
	prerollLimit := from + (to-from)&7
	for ; from < prerollLimit; from += 2 {
		hi, okHi := swar.HexNibble(buf[from])
		lo, okLo := swar.HexNibble(buf[from+1])
		bytes[index] = hi<<4 | lo
		index++
		ok = ok && okHi && okLo
	}
	for ; from < to; from, index = from+8, index+4 {
		v, valid := swar.TryParseEightHexDigits(buf, from)
		swar.WriteUint32BE(bytes, index, v)
		ok = ok && valid
	}
	if !ok {
		return nil, false
	}
	return new(big.Int).SetBytes(bytes), true
}

func skipChar[T CodeUnit](buf []T, from, to int, c byte) int {
	for from < to && buf[from] == T(c) {
		from++
	}
	return from
}
