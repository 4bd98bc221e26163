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
	"fmt"
	"math/big"
)

// BigDecimal is an arbitrary-precision signed decimal: the represented
// value is Unscaled * 10^-Scale.
type BigDecimal struct {
	Unscaled *big.Int
	Scale    int32
}

// String renders the decimal the same way it would be written back as a
// literal: unscaled digits with the decimal point inserted Scale places
// from the right (scientific notation is never used).
func (b *BigDecimal) String() string {
	if b.Scale <= 0 {
		return new(big.Int).Mul(b.Unscaled, pow10Int(-int(b.Scale))).String()
	}
	s := b.Unscaled.String()
	neg := len(s) > 0 && s[0] == '-'
	if neg {
		s = s[1:]
	}
	for len(s) <= int(b.Scale) {
		s = "0" + s
	}
	point := len(s) - int(b.Scale)
	out := s[:point] + "." + s[point:]
	if neg {
		out = "-" + out
	}
	return out
}

func pow10Int(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func (b *BigDecimal) GoString() string {
	return fmt.Sprintf("numlit.BigDecimal{Unscaled: %s, Scale: %d}", b.Unscaled.String(), b.Scale)
}
