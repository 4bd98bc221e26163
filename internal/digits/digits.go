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

// Package digits turns a contiguous range of ASCII decimal digits into a
// big.Int using whichever of three regimes fits the range's size: a packed
// 64-bit accumulator for short ranges, an iterative BigSignificand for
// medium ranges, and a divide-and-conquer recursion (optionally run on a
// bounded pool) for long ranges.
package digits

import (
	"math/big"

	"github.com/swarnum/numlit/internal/bigsig"
	"github.com/swarnum/numlit/internal/fjpool"
	"github.com/swarnum/numlit/internal/pow10"
	"github.com/swarnum/numlit/internal/swar"
)

// RecursionThreshold is the digit-count boundary above which the recursive
// divide-and-conquer regime replaces the iterative BigSignificand regime.
const RecursionThreshold = 128

// DefaultParallelThreshold is the digit-count boundary at or above which the
// recursive regime forks its left half onto a pool instead of running
// purely sequentially.
const DefaultParallelThreshold = 1 << 16

// Parse converts buf[from:to], which the caller guarantees contains only
// ASCII decimal digits, into a big.Int. cache must already have every
// exponent that a divide-and-conquer split of [from, to) will need; callers
// above RecursionThreshold digits should call cache.Fill(from, to, ...)
// first. parallelThreshold of 0 disables the parallel regime.
func Parse[T swar.CodeUnit](buf []T, from, to int, cache *pow10.Cache, parallelThreshold int) *big.Int {
	n := to - from
	switch {
	case n <= 18:
		return parseUpTo18(buf, from, to)
	case n <= RecursionThreshold:
		return parseIterative(buf, from, to)
	case parallelThreshold <= 0 || n < parallelThreshold:
		return parseRecursive(buf, from, to, cache)
	default:
		pool := fjpool.New(0)
		v := parseParallel(pool, buf, from, to, cache, parallelThreshold)
		pool.Join()
		return v
	}
}

// parseUpTo18 parses a digit range known to fit in a uint64 significand.
func parseUpTo18[T swar.CodeUnit](buf []T, from, to int) *big.Int {
	numDigits := to - from
	preroll := from + numDigits&7
	significand := swar.ParseUpTo7Digits(buf, from, preroll)
	for f := preroll; f < to; f += 8 {
		significand = significand*100_000_000 + uint64(swar.ParseEightDigits(buf, f))
	}
	return new(big.Int).SetUint64(significand)
}

// parseIterative accumulates into a BigSignificand, one 8-digit group at a
// time, for ranges too long to fit in a uint64 but short enough that the
// O(n^2) cost of the limb-by-limb multiply-add loop beats divide-and-conquer.
func parseIterative[T swar.CodeUnit](buf []T, from, to int) *big.Int {
	numDigits := int64(to - from)
	sig := bigsig.New(bigsig.EstimateNumBits(numDigits))
	preroll := from + int(numDigits&7)
	sig.AddSmall(uint32(swar.ParseUpTo7Digits(buf, from, preroll)))
	for f := preroll; f < to; f += 8 {
		sig.FMASmall(100_000_000, swar.ParseEightDigits(buf, f))
	}
	return sig.ToBigInt()
}

// parseRecursive splits [from, to) at the multiple-of-16 midpoint, parses
// each half, and recombines using a cached exact power of ten.
func parseRecursive[T swar.CodeUnit](buf []T, from, to int, cache *pow10.Cache) *big.Int {
	n := to - from
	if n <= 18 {
		return parseUpTo18(buf, from, to)
	}
	if n <= RecursionThreshold {
		return parseIterative(buf, from, to)
	}
	mid := pow10.SplitFloor16(from, to)
	high := parseRecursive(buf, from, mid, cache)
	low := parseRecursive(buf, mid, to, cache)
	high.Mul(high, cache.MustGet(to-mid))
	return high.Add(high, low)
}

// parseParallel mirrors parseRecursive but forks the left half onto pool
// once the remaining range is still at or above parallelThreshold, then
// waits on it via done before combining. This wait is safe against
// deadlock only because pool.Fork never blocks acquiring a slot: a deeply
// recursive left spine that exhausts the pool's capacity just keeps
// forking tasks that run inline instead of stalling goroutines that are
// themselves waiting on a child that can never get scheduled.
func parseParallel[T swar.CodeUnit](pool *fjpool.Pool, buf []T, from, to int, cache *pow10.Cache, parallelThreshold int) *big.Int {
	n := to - from
	if n < parallelThreshold {
		return parseRecursive(buf, from, to, cache)
	}
	mid := pow10.SplitFloor16(from, to)

	var high *big.Int
	done := make(chan struct{})
	pool.Fork(func() {
		high = parseParallel(pool, buf, from, mid, cache, parallelThreshold)
		close(done)
	})
	low := parseParallel(pool, buf, mid, to, cache, parallelThreshold)
	<-done

	high.Mul(high, cache.MustGet(to-mid))
	return high.Add(high, low)
}
