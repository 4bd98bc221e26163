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

// Package fjpool implements a bounded fork-join pool: a caller forks any
// number of tasks, each of which runs on its own goroutine if a semaphore
// slot is free when it is forked, and joins on all of them before continuing. There is no
// queue and no memoization; every Fork either gets a slot or runs inline
// once the pool is saturated, so recursive divide-and-conquer callers never
// deadlock waiting on a child that never got scheduled.
package fjpool

import (
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Pool bounds the number of goroutines concurrently running forked tasks.
type Pool struct {
	sema *semaphore.Weighted
	wg   sync.WaitGroup
}

// New returns a Pool that runs at most maxConcurrency tasks at once on
// goroutines of its own. Tasks forked while every slot is taken run inline
// on the forking goroutine and are not counted against that limit. A
// maxConcurrency of 0 or less defaults to runtime.GOMAXPROCS(0).
func New(maxConcurrency int) *Pool {
	if maxConcurrency <= 0 {
		maxConcurrency = runtime.GOMAXPROCS(0)
	}
	return &Pool{sema: semaphore.NewWeighted(int64(maxConcurrency))}
}

// Fork schedules fn to run on a new goroutine if a semaphore slot is free
// right now, or inline on the calling goroutine otherwise. Acquiring a slot
// never blocks, so a caller that is itself running inside a forked task
// (e.g. a recursive divide-and-conquer split) can never deadlock waiting on
// a child that never got scheduled: a child that finds the pool saturated
// just runs synchronously instead of waiting for one of its siblings to
// free a slot it may itself be holding. The caller must eventually call
// Join to wait for every fn that did get scheduled onto a goroutine.
func (p *Pool) Fork(fn func()) {
	if !p.sema.TryAcquire(1) {
		fn()
		return
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer p.sema.Release(1)
		fn()
	}()
}

// Join waits for every task forked so far to complete.
func (p *Pool) Join() {
	p.wg.Wait()
}
