/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package perft

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/bvargas/chessperft/internal/config"
	"github.com/bvargas/chessperft/internal/movegen"
	"github.com/bvargas/chessperft/internal/position"
	"golang.org/x/sync/semaphore"
)

// Parallel computes perft(pos, depth) by spawning one goroutine per
// legal root move, each running Serial(depth-1) against the shared
// cache, and summing the results. Concurrency is bounded by a weighted
// semaphore sized to config.Settings.Workers (GOMAXPROCS when that is 0)
// so a position with a large branching factor doesn't spin up more
// goroutines than there are cores to run them; every root move still
// gets queued rather than dropped.
func Parallel(pos *position.Position, depth int, cache *Cache) uint64 {
	if depth == 0 {
		return 1
	}

	roots := movegen.LegalMoves(pos)
	if depth == 1 {
		return uint64(len(roots))
	}

	var total uint64
	var wg sync.WaitGroup
	workers := config.Settings.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	sem := semaphore.NewWeighted(int64(workers))
	ctx := context.Background()

	for _, m := range roots {
		next := pos.Apply(m)
		if err := sem.Acquire(ctx, 1); err != nil {
			// ctx is never canceled; Acquire only fails if the request
			// itself exceeds the semaphore's total weight.
			panic(err)
		}
		wg.Add(1)
		go func(p position.Position) {
			defer wg.Done()
			defer sem.Release(1)
			atomic.AddUint64(&total, Serial(&p, depth-1, cache))
		}(next)
	}

	wg.Wait()
	return total
}
