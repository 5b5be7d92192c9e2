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

// Results taken from https://www.chessprogramming.org/Perft_Results
package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bvargas/chessperft/internal/movegen"
	"github.com/bvargas/chessperft/internal/position"
)

func TestStandardPerft(t *testing.T) {
	p := position.NewPosition()
	cache := NewCache(1 << 16)

	results := [6]uint64{1, 20, 400, 8_902, 197_281, 4_865_609}
	for depth, want := range results {
		assert.Equal(t, want, Serial(&p, depth, cache))
	}
}

func TestKiwipetePerft(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	cache := NewCache(1 << 16)

	results := [5]uint64{1, 48, 2_039, 97_862, 4_085_603}
	for depth, want := range results {
		assert.Equal(t, want, Serial(&p, depth, cache))
	}
}

func TestEndgameRookPerft(t *testing.T) {
	p, err := position.NewPositionFen("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	require.NoError(t, err)
	cache := NewCache(1 << 16)

	results := [6]uint64{1, 14, 191, 2_812, 43_238, 674_624}
	for depth, want := range results {
		assert.Equal(t, want, Serial(&p, depth, cache))
	}
}

func TestQueensidePromotionPerft(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	require.NoError(t, err)
	cache := NewCache(1 << 16)

	results := [5]uint64{1, 6, 264, 9_467, 422_333}
	for depth, want := range results {
		assert.Equal(t, want, Serial(&p, depth, cache))
	}
}

func TestPos5Perft(t *testing.T) {
	p, err := position.NewPositionFen("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1")
	require.NoError(t, err)
	cache := NewCache(1 << 16)

	results := [5]uint64{1, 44, 1_486, 62_379, 2_103_487}
	for depth, want := range results {
		assert.Equal(t, want, Serial(&p, depth, cache))
	}
}

func TestPos6Perft(t *testing.T) {
	p, err := position.NewPositionFen("r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 1")
	require.NoError(t, err)
	cache := NewCache(1 << 16)

	results := [4]uint64{1, 46, 2_079, 89_890}
	for depth, want := range results {
		assert.Equal(t, want, Serial(&p, depth, cache))
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	p := position.NewPosition()
	serialCache := NewCache(1 << 16)
	parallelCache := NewCache(1 << 16)

	for depth := 1; depth <= 4; depth++ {
		assert.Equal(t, Serial(&p, depth, serialCache), Parallel(&p, depth, parallelCache))
	}
}

func TestCacheHitAfterFirstVisit(t *testing.T) {
	p := position.NewPosition()
	cache := NewCache(1 << 10)

	Serial(&p, 3, cache)
	before := cache.Stats()
	Serial(&p, 3, cache)
	after := cache.Stats()

	assert.Greater(t, after.Hits, before.Hits)
}

func TestDivideSumsToPerft(t *testing.T) {
	p := position.NewPosition()
	cache := NewCache(1 << 16)

	entries := Divide(&p, 4, cache)
	assert.Len(t, entries, len(movegen.LegalMoves(&p)))

	var sum uint64
	for _, e := range entries {
		sum += e.Count
	}
	assert.Equal(t, Serial(&p, 4, NewCache(1<<16)), sum)
}
