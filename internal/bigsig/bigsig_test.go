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

package bigsig

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulatesDecimalDigitsByGroupsOfNine(t *testing.T) {
	digits := "123456789012345678901234567890"
	s := New(EstimateNumBits(int64(len(digits))))

	const groupLen = 9
	i := 0
	for ; i+groupLen <= len(digits); i += groupLen {
		group := digits[i : i+groupLen]
		var v uint32
		for _, c := range group {
			v = v*10 + uint32(c-'0')
		}
		s.FMASmall(1_000_000_000, v)
	}
	for ; i < len(digits); i++ {
		s.FMASmall(10, uint32(digits[i]-'0'))
	}

	want, ok := new(big.Int).SetString(digits, 10)
	assert.True(t, ok)
	assert.Equal(t, want, s.ToBigInt())
}

func TestMulSmallAndAddSmall(t *testing.T) {
	s := New(EstimateNumBits(20))
	s.AddSmall(42)
	s.MulSmall(1000)
	s.AddSmall(7)

	want := big.NewInt(42*1000 + 7)
	assert.Equal(t, want, s.ToBigInt())
}

func TestZeroValue(t *testing.T) {
	s := New(EstimateNumBits(10))
	assert.Equal(t, big.NewInt(0), s.ToBigInt())
}

func TestEstimateNumBitsNeverUnderestimates(t *testing.T) {
	for _, digits := range []int64{1, 2, 9, 10, 19, 100, 1000, 1_000_000} {
		bits := EstimateNumBits(digits)
		maxValue := new(big.Int).Exp(big.NewInt(10), big.NewInt(digits), nil)
		maxValue.Sub(maxValue, big.NewInt(1))
		assert.LessOrEqual(t, maxValue.BitLen(), int(bits), "digits=%d", digits)
	}
}
