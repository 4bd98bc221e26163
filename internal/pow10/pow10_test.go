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

package pow10

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wantPow(exp int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
}

func TestSplitFloor16(t *testing.T) {
	mid := SplitFloor16(0, 100)
	assert.Zero(t, (100-mid)%16)
	assert.Greater(t, mid, 0)
	assert.Less(t, mid, 100)
}

func TestFillSequentialProducesExactPowers(t *testing.T) {
	c := New()
	c.Fill(0, 500, false)
	for exp := 16; exp <= 500; exp += 16 {
		// Not every multiple of 16 up to 500 is necessarily a key of this
		// particular split tree, so only check keys that are present.
		if v, ok := c.Get(exp); ok {
			assert.Equal(t, wantPow(exp), v, "exp=%d", exp)
		}
	}
}

func TestFillParallelMatchesSequential(t *testing.T) {
	seq := New()
	seq.Fill(0, 2000, false)

	par := New()
	par.Fill(0, 2000, true)

	seq.tree.Scan(func(exp int, v *big.Int) bool {
		pv, ok := par.Get(exp)
		require.True(t, ok, "exp=%d missing from parallel fill", exp)
		assert.Equal(t, v, pv, "exp=%d", exp)
		return true
	})
}

func TestResolveArbitraryExponent(t *testing.T) {
	c := New()
	c.Fill(0, 300, false)
	assert.Equal(t, wantPow(48), c.resolve(48))
	assert.Equal(t, wantPow(1), c.resolve(1))
}

func TestMustGetPanicsOnMiss(t *testing.T) {
	c := New()
	assert.Panics(t, func() {
		c.MustGet(9999)
	})
}

// SplitFloor16 returns mid == to whenever the half-range being split falls
// short of 16, which used to happen for every to-from just above the old
// 16-digit bottom-out threshold (e.g. 28, 30): fillSequential would then
// recurse on (from, to) again unchanged and blow the stack. Sweeping every
// length just above recursionThreshold exercises exactly that range.
func TestFillSequentialTerminatesAcrossLengths(t *testing.T) {
	for to := recursionThreshold + 1; to <= recursionThreshold+200; to++ {
		c := New()
		c.Fill(0, to, false)
	}
}
