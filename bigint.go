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
	"math/big"

	"github.com/swarnum/numlit/internal/digits"
	"github.com/swarnum/numlit/internal/pow10"
	"github.com/swarnum/numlit/internal/scan"
	"github.com/swarnum/numlit/internal/swar"
)

// ParseBigIntLiteral parses buf[offset:offset+length] as a decimal or
// 0x-prefixed hexadecimal integer literal with an optional leading sign.
// When parallel is true, digit ranges at or above DefaultParallelThreshold
// are parsed on a bounded worker pool instead of purely sequentially; the
// result is identical either way.
func ParseBigIntLiteral[T scan.CodeUnit](buf []T, offset, length int, parallel bool) (*big.Int, error) {
	if err := checkWindow(buf, offset, length); err != nil {
		return nil, err
	}
	from, to := offset, offset+length

	d := scan.ScanBigIntLiteral(buf, from, to)
	if d.Illegal {
		return nil, syntaxError(offset, length)
	}
	if d.DigitCount > MaxDecimalDigitsBigInt {
		return nil, valueExceedsLimits(offset, length)
	}

	var result *big.Int
	if d.IsHex {
		v, ok := scan.HexDigitsToBigInt(buf, d.IntegerStart, d.IntegerEnd)
		if !ok {
			return nil, syntaxError(offset, length)
		}
		result = v
	} else {
		start := skipLeadingZeroes(buf, d.IntegerStart, d.IntegerEnd)
		var cache *pow10.Cache
		parallelThreshold := 0
		if parallel {
			parallelThreshold = DefaultParallelThreshold
		}
		if d.IntegerEnd-start > RecursionThreshold {
			cache = pow10.New()
			cache.Fill(start, d.IntegerEnd, parallel)
		}
		result = digits.Parse(buf, start, d.IntegerEnd, cache, parallelThreshold)
	}

	if d.IsNegative {
		result.Neg(result)
	}
	return result, nil
}

// skipLeadingZeroes advances from past any run of ASCII '0' characters,
// using the eight-wide SWAR predicate for long runs, mirroring the
// "skip leading zeroes" step of the BigInteger literal assembler.
func skipLeadingZeroes[T scan.CodeUnit](buf []T, from, to int) int {
	limit := to - 8
	for from < limit && swar.IsEightZeroes(buf, from) {
		from += 8
	}
	for from < to && buf[from] == '0' {
		from++
	}
	return from
}

func checkWindow[T any](buf []T, offset, length int) error {
	if offset < 0 || length < 0 || offset+length > len(buf) || length > MaxInputLength {
		return illegalOffsetOrLength(offset, length)
	}
	return nil
}
