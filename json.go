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

import "github.com/swarnum/numlit/internal/scan"

var jsonNumberGrammar = scan.Grammar{
	AllowSign:         true,
	AllowFraction:     true,
	AllowExponent:     true,
	StrictLeadingZero: true,
}

// ParseJSONNumber parses buf[offset:offset+length] as a JSON number: no
// leading zero on a nonzero integer part, no hex, no type suffix, and no
// surrounding whitespace.
func ParseJSONNumber[T scan.CodeUnit](buf []T, offset, length int) (float64, error) {
	if err := checkWindow(buf, offset, length); err != nil {
		return 0, err
	}
	from, to := offset, offset+length
	d := scan.Scan(buf, from, to, jsonNumberGrammar)
	if d.Illegal {
		return 0, syntaxError(offset, length)
	}
	if d.DigitCount > MaxDigitCountBigDecimal {
		return 0, valueExceedsLimits(offset, length)
	}
	return assembleDecimalFloat(buf, d), nil
}
