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

// Package pow10 provides a cache of exact powers of ten, keyed by exponent,
// holding the exponents a divide-and-conquer digit-range parse over
// [from, to) will ask for, plus the smaller exponents computed on the way
// to them.
package pow10

import (
	"math/big"
	"sync"

	"github.com/tidwall/btree"

	"github.com/swarnum/numlit/internal/fjpool"
)

// recursionThreshold mirrors internal/digits.RecursionThreshold: the
// digit-range parser only calls MustGet for nodes above that digit count,
// so Fill need not recurse, or compute a power of ten, for any node at or
// below it. It is duplicated here rather than imported because digits
// already imports pow10, and pow10 importing digits back would cycle.
//
// It must also be large enough that SplitFloor16 never returns mid == to
// for any range Fill still recurses into: half := (L+1)/2 must be at least
// 16 for to-(half/16)*16 to land strictly below to, which holds for every
// L > 30. 128 clears that with room to spare.
const recursionThreshold = 128

// baseTable holds 10^0 .. 10^16, the seed values every recursive fill
// bottoms out on.
var baseTable = func() [17]*big.Int {
	var t [17]*big.Int
	p := big.NewInt(1)
	ten := big.NewInt(10)
	for i := range t {
		t[i] = new(big.Int).Set(p)
		p.Mul(p, ten)
	}
	return t
}()

// Cache is an ordered exponent -> 10^exponent map. Fill inserts the
// multiple-of-16 exponents of its split tree; resolve also inserts the
// halved exponents it computes them from (e.g. 72, 36, 18 and 9 on the way
// to 144), which need not be multiples of 16. The same key is always associated with the same value, so concurrent
// fillers racing to insert it agree on the value, but tidwall/btree.Map
// itself is not safe for concurrent writers — Set rebalances shared nodes
// regardless of whether the keys involved are disjoint. mu serializes every
// access so fillParallel's forked goroutines can't race on the tree.
type Cache struct {
	mu   sync.RWMutex
	tree *btree.Map[int, *big.Int]
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{tree: &btree.Map[int, *big.Int]{}}
}

// Get returns 10^exp and true if it has already been inserted.
func (c *Cache) Get(exp int) (*big.Int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tree.Get(exp)
}

// MustGet returns 10^exp, panicking if it has not been filled. Callers in
// the digit-range parser rely on Fill having pre-populated every exponent
// they will ask for; a miss here means the caller computed a split point
// inconsistent with Fill.
func (c *Cache) MustGet(exp int) *big.Int {
	v, ok := c.Get(exp)
	if !ok {
		panic("pow10: cache miss for exponent that Fill should have populated")
	}
	return v
}

func (c *Cache) set(exp int, v *big.Int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tree.Set(exp, v)
}

// SplitFloor16 returns the split point for the range [from, to) such that
// the right half's length is the largest multiple of 16 not exceeding
// (to-from+1)/2, matching the key set Fill populates.
func SplitFloor16(from, to int) int {
	half := (to - from + 1) / 2
	return to - (half/16)*16
}

// Fill populates the cache with every exponent that a divide-and-conquer
// parse of the digit range [from, to) will need: the recursive
// split-on-multiple-of-16 schedule rooted at (from, to), bottoming out once
// a subrange shrinks to recursionThreshold digits or fewer, since the
// digit-range parser switches to its iterative regime there and never
// queries the cache for a node that small. If parallel is true, independent
// subtrees are filled concurrently on a bounded pool.
func (c *Cache) Fill(from, to int, parallel bool) {
	if to-from <= recursionThreshold {
		return
	}
	if !parallel {
		c.fillSequential(from, to)
		return
	}
	pool := fjpool.New(0)
	c.fillParallel(pool, from, to)
	pool.Join()
}

func (c *Cache) fillSequential(from, to int) {
	if to-from <= recursionThreshold {
		return
	}
	mid := SplitFloor16(from, to)
	c.fillSequential(from, mid)
	c.fillSequential(mid, to)
	c.computeAndStore(mid, to)
}

func (c *Cache) fillParallel(pool *fjpool.Pool, from, to int) {
	if to-from <= recursionThreshold {
		return
	}
	mid := SplitFloor16(from, to)
	// The left subtree can run concurrently: both subtrees may insert the
	// same exponents, but always with the same value, and every cache
	// access goes through mu.
	pool.Fork(func() {
		c.fillParallel(pool, from, mid)
	})
	c.fillParallel(pool, mid, to)
	c.computeAndStore(mid, to)
}

// computeAndStore inserts 10^(to-mid) into the cache, computed as the
// product of smaller cached/base powers whose exponents sum to to-mid.
// Because to-mid is itself always a multiple of 16 at depths above the
// base table (by construction of SplitFloor16), this is always either a
// direct base-table hit or the square of 10^(exp/2), which resolve takes
// from the cache or computes and caches on demand.
func (c *Cache) computeAndStore(mid, to int) {
	exp := to - mid
	if _, ok := c.Get(exp); ok {
		return
	}
	if exp <= 16 {
		c.set(exp, baseTable[exp])
		return
	}
	half := exp / 2
	lo := c.resolve(half)
	hi := c.resolve(exp - half)
	v := new(big.Int).Mul(lo, hi)
	c.set(exp, v)
}

// resolve returns 10^exp, computing and caching it on demand if the
// recursive fill schedule has not already produced it (this happens for
// exponents reachable only by halving exp itself, rather than by the
// from/to split tree).
func (c *Cache) resolve(exp int) *big.Int {
	if v, ok := c.Get(exp); ok {
		return v
	}
	if exp <= 16 {
		c.set(exp, baseTable[exp])
		return baseTable[exp]
	}
	half := exp / 2
	lo := c.resolve(half)
	hi := c.resolve(exp - half)
	v := new(big.Int).Mul(lo, hi)
	c.set(exp, v)
	return v
}
