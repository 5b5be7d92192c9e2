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

// Package perft counts leaf nodes of the legal move tree at a fixed
// depth, the standard correctness oracle for a move generator. It
// provides a serial recursive counter with a selective legality filter,
// a root-parallel driver that fans out one worker per root move, and
// the striped fixed-size transposition cache both share.
package perft

import (
	"sync"
	"sync/atomic"

	"github.com/bvargas/chessperft/internal/position"
)

type slot struct {
	hash  position.Key
	depth int
	count uint64
	valid bool
}

// Cache is a fixed-size, power-of-two-sized transposition table keyed
// by (Zobrist hash, depth). Every slot has its own lock, so lookups and
// stores in different slots never contend; replacement is always
// overwrite and a slot only ever matches a query with an equal hash AND
// an equal depth, never a lower-bound reuse.
type Cache struct {
	slots []slot
	locks []sync.Mutex
	mask  uint64

	hits   uint64
	misses uint64
}

// NewCache allocates a cache of the given size rounded up to the next
// power of two (minimum 1).
func NewCache(size int) *Cache {
	n := 1
	for n < size {
		n <<= 1
	}
	return &Cache{
		slots: make([]slot, n),
		locks: make([]sync.Mutex, n),
		mask:  uint64(n - 1),
	}
}

func (c *Cache) index(hash position.Key) uint64 {
	return uint64(hash) & c.mask
}

// Get looks up (hash, depth). ok is false on a miss, including a
// hash collision at a different depth.
func (c *Cache) Get(hash position.Key, depth int) (count uint64, ok bool) {
	idx := c.index(hash)
	c.locks[idx].Lock()
	s := c.slots[idx]
	c.locks[idx].Unlock()

	if s.valid && s.hash == hash && s.depth == depth {
		atomic.AddUint64(&c.hits, 1)
		return s.count, true
	}
	atomic.AddUint64(&c.misses, 1)
	return 0, false
}

// Put stores (hash, depth, count), unconditionally overwriting whatever
// was in that slot before.
func (c *Cache) Put(hash position.Key, depth int, count uint64) {
	idx := c.index(hash)
	c.locks[idx].Lock()
	c.slots[idx] = slot{hash: hash, depth: depth, count: count, valid: true}
	c.locks[idx].Unlock()
}

// Stats is a snapshot of cache hit/miss counters, handy for the CLI's
// diagnostic output.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// Stats returns the current hit/miss counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:   atomic.LoadUint64(&c.hits),
		Misses: atomic.LoadUint64(&c.misses),
	}
}
