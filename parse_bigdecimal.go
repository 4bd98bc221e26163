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
)

// ParseBigDecimalLiteral parses buf[offset:offset+length] as a decimal
// literal with an optional sign, optional fractional part, and optional
// exponent. The result's Scale is the number of fractional digit
// positions minus the scanned exponent.
func ParseBigDecimalLiteral[T scan.CodeUnit](buf []T, offset, length int, parallel bool) (*BigDecimal, error) {
	if err := checkWindow(buf, offset, length); err != nil {
		return nil, err
	}
	from, to := offset, offset+length

	d := scan.ScanBigDecimalLiteral(buf, from, to)
	if d.Illegal {
		return nil, syntaxError(offset, length)
	}
	if d.DigitCount > MaxDigitCountBigDecimal || d.Exponent > MaxExponentNumber || d.Exponent < -MaxExponentNumber {
		return nil, valueExceedsLimits(offset, length)
	}

	integerDigitsCount := d.DecimalPointIndex - d.IntegerStart
	fractionDigitsCount := d.FractionEnd - d.FractionStart

	parallelThreshold := 0
	if parallel {
		parallelThreshold = DefaultParallelThreshold
	}

	var cache *pow10.Cache
	if integerDigitsCount > RecursionThreshold {
		cache = pow10.New()
		cache.Fill(d.IntegerStart, d.DecimalPointIndex, parallel)
	}
	var integerPart *big.Int
	if integerDigitsCount > 0 {
		integerPart = digits.Parse(buf, d.IntegerStart, d.DecimalPointIndex, cache, parallelThreshold)
	} else {
		integerPart = big.NewInt(0)
	}

	var fractionalPart *big.Int
	if fractionDigitsCount > 0 {
		if fractionDigitsCount > RecursionThreshold {
			if cache == nil {
				cache = pow10.New()
			}
			cache.Fill(d.FractionStart, d.FractionEnd, parallel)
		}
		fractionalPart = digits.Parse(buf, d.FractionStart, d.FractionEnd, cache, parallelThreshold)
	} else {
		fractionalPart = big.NewInt(0)
	}

	// The full fraction length (decimal-point-relative digit positions,
	// including any leading zeros ScanBigDecimalLiteral skipped past) is
	// what the integer part must be shifted by to align with the
	// fractional part's value — not the count of significant fraction
	// digits actually parsed.
	fullFractionLen := d.FractionEnd - d.DecimalPointIndex - 1
	if fullFractionLen < 0 {
		fullFractionLen = 0
	}

	significand := integerPart
	if fullFractionLen > 0 {
		shift := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(fullFractionLen)), nil)
		significand = new(big.Int).Mul(integerPart, shift)
		significand.Add(significand, fractionalPart)
	}

	if d.IsNegative {
		significand.Neg(significand)
	}

	// exponent is decimal_exponent such that value = significand * 10^exponent.
	// Scale is defined so that value = Unscaled * 10^-Scale.
	scale := -d.Exponent
	return &BigDecimal{Unscaled: significand, Scale: int32(scale)}, nil
}
