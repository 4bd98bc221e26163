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

package oracle

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundBasic(t *testing.T) {
	// 12 * 10^2 = 1200.0
	assert.Equal(t, 1200.0, Default.Round(false, 12, 2, false, 0))
}

func TestRoundNegative(t *testing.T) {
	assert.Equal(t, -1200.0, Default.Round(true, 12, 2, false, 0))
}

func TestRoundUnderflowsToZero(t *testing.T) {
	assert.Equal(t, 0.0, Default.Round(false, 1, -400, false, 0))
}

func TestRoundOverflowsToInf(t *testing.T) {
	got := Default.Round(false, 9, 400, false, 0)
	assert.True(t, math.IsInf(got, 1))
}

func TestRoundExactMatchesRoundWithinNineteenDigits(t *testing.T) {
	assert.Equal(t, Default.Round(false, 12, 2, false, 0), Default.RoundExact(false, "12", 2))
}

func TestRoundExactLongDigitString(t *testing.T) {
	digits := strings.Repeat("1", 40)
	got := Default.RoundExact(false, digits, 0)
	want, err := strconv.ParseFloat(digits, 64)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRoundAllNinesMillionDigitsOverflows(t *testing.T) {
	nines := strings.Repeat("9", 19)
	var significand uint64
	for _, c := range nines {
		significand = significand*10 + uint64(c-'0')
	}
	got := Default.Round(false, significand, 1_000_000-19, false, 0)
	assert.True(t, math.IsInf(got, 1))
}
