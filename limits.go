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
	"github.com/swarnum/numlit/internal/digits"
	"github.com/swarnum/numlit/internal/scan"
)

const (
	// MaxInputLength bounds the window length accepted by every public
	// entry point.
	MaxInputLength = 1 << 30

	// MaxDecimalDigitsBigInt is the largest decimal digit count whose
	// value still fits in 2^31-1 bits.
	MaxDecimalDigitsBigInt = 646_456_993

	// MaxDigitCountBigDecimal bounds the combined integer+fraction digit
	// count of a BigDecimal literal.
	MaxDigitCountBigDecimal = 1_292_782_621

	// MaxExponentNumber is the largest accepted exponent magnitude. The
	// scanner saturates exponent-magnitude accumulation one past it; an
	// exponent beyond it is ErrSyntax from the float and JSON entry points
	// and ErrValueExceedsLimits from ParseBigDecimalLiteral.
	MaxExponentNumber = 1<<31 - 1

	// RecursionThreshold is the digit-count boundary between the
	// iterative and recursive digit-range parsing regimes.
	RecursionThreshold = digits.RecursionThreshold

	// DefaultParallelThreshold is the digit-count boundary used when a
	// caller asks for parallel parsing without specifying its own
	// threshold.
	DefaultParallelThreshold = digits.DefaultParallelThreshold

	// ManyDigitsThreshold is the input-length boundary at or above which
	// ScanBigDecimalLiteral's leading zero/digit runs are skipped at
	// SWAR speed instead of a plain per-character loop.
	ManyDigitsThreshold = scan.ManyDigitsThreshold
)
