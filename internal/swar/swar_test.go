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

package swar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toUint16(s string) []uint16 {
	out := make([]uint16, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = uint16(s[i])
	}
	return out
}

func TestParseEightDigitsBytes(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
	}{
		{"00000000", 0},
		{"12345678", 12345678},
		{"99999999", 99999999},
		{"00000001", 1},
		{"90000009", 90000009},
	}
	for _, c := range cases {
		buf := []byte(c.in + "tail")
		require.True(t, IsEightDigits(buf, 0), c.in)
		got := ParseEightDigits(buf, 0)
		assert.Equal(t, c.want, got, c.in)
		got, ok := TryParseEightDigits(buf, 0)
		require.True(t, ok)
		assert.Equal(t, c.want, got)
	}
}

func TestParseEightDigitsUint16(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
	}{
		{"00000000", 0},
		{"12345678", 12345678},
		{"99999999", 99999999},
		{"40302010", 40302010},
	}
	for _, c := range cases {
		buf := toUint16(c.in + "tail")
		require.True(t, IsEightDigits(buf, 0), c.in)
		got := ParseEightDigits(buf, 0)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestIsEightDigitsRejectsNonDigit(t *testing.T) {
	for pos := 0; pos < 8; pos++ {
		b := []byte("12345678")
		b[pos] = '/' // one below '0'
		assert.False(t, IsEightDigits(b, 0), "pos=%d char=/", pos)
		b[pos] = ':' // one above '9'
		assert.False(t, IsEightDigits(b, 0), "pos=%d char=:", pos)
	}
}

func TestIsEightDigitsAllByteValues(t *testing.T) {
	// Every byte value in a single lane must agree with a plain ASCII
	// digit check; the other 7 lanes are held fixed at '5'.
	for v := 0; v < 256; v++ {
		for pos := 0; pos < 8; pos++ {
			b := []byte("55555555")
			b[pos] = byte(v)
			want := v >= '0' && v <= '9'
			got := IsEightDigits(b, 0)
			if want {
				assert.True(t, got, "pos=%d byte=%d", pos, v)
			} else {
				assert.False(t, got, "pos=%d byte=%d", pos, v)
			}
		}
	}
}

func TestIsEightZeroes(t *testing.T) {
	assert.True(t, IsEightZeroes([]byte("00000000"), 0))
	assert.False(t, IsEightZeroes([]byte("00000001"), 0))
	assert.True(t, IsEightZeroes(toUint16("00000000"), 0))
	assert.False(t, IsEightZeroes(toUint16("10000000"), 0))
}

func TestParseFourDigits(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
	}{
		{"0000", 0},
		{"1234", 1234},
		{"9999", 9999},
		{"0099", 99},
	}
	for _, c := range cases {
		got := ParseFourDigits([]byte(c.in), 0)
		assert.Equal(t, c.want, got, c.in)
		got16 := ParseFourDigits(toUint16(c.in), 0)
		assert.Equal(t, c.want, got16, c.in)

		got, ok := TryParseFourDigits([]byte(c.in), 0)
		require.True(t, ok)
		assert.Equal(t, c.want, got)
	}
	_, ok := TryParseFourDigits([]byte("12a4"), 0)
	assert.False(t, ok)
}

func TestParseUpTo7Digits(t *testing.T) {
	buf := []byte("1234567")
	assert.Equal(t, uint64(0), ParseUpTo7Digits(buf, 0, 0))
	assert.Equal(t, uint64(1), ParseUpTo7Digits(buf, 0, 1))
	assert.Equal(t, uint64(1234567), ParseUpTo7Digits(buf, 0, 7))
}

func TestHexNibble(t *testing.T) {
	v, ok := HexNibble(byte('a'))
	require.True(t, ok)
	assert.Equal(t, byte(10), v)

	v, ok = HexNibble(byte('F'))
	require.True(t, ok)
	assert.Equal(t, byte(15), v)

	_, ok = HexNibble(byte('g'))
	assert.False(t, ok)
}

func TestTryParseEightHexDigits(t *testing.T) {
	v, ok := TryParseEightHexDigits([]byte("deadbeef"), 0)
	require.True(t, ok)
	assert.Equal(t, uint32(0xdeadbeef), v)

	_, ok = TryParseEightHexDigits([]byte("deadbeeg"), 0)
	assert.False(t, ok)
}

func TestWriteUint32BE(t *testing.T) {
	dst := make([]byte, 4)
	WriteUint32BE(dst, 0, 0xdeadbeef)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, dst)
}
