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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/bvargas/chessperft/internal/types"
)

func TestHashIsDeterministic(t *testing.T) {
	p := NewPosition()
	q := NewPosition()
	assert.Equal(t, p.Hash(), q.Hash())
}

func TestHashIsPathIndependent(t *testing.T) {
	start := NewPosition()

	viaKnight := start.Apply(NewMove(SqG1, SqF3, Normal, PtNone))
	viaKnight = viaKnight.Apply(NewMove(SqB8, SqC6, Normal, PtNone))
	viaKnight = viaKnight.Apply(NewMove(SqF3, SqG1, Normal, PtNone))
	viaKnight = viaKnight.Apply(NewMove(SqC6, SqB8, Normal, PtNone))

	assert.Equal(t, start.Hash(), viaKnight.Hash())
}

func TestHashDiffersForDifferentEnPassantTarget(t *testing.T) {
	p1, err := NewPositionFen("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	require.NoError(t, err)
	p2, err := NewPositionFen("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	require.NoError(t, err)
	assert.NotEqual(t, p1.Hash(), p2.Hash())
}

func TestHashDiffersForDifferentSideToMove(t *testing.T) {
	p1, err := NewPositionFen("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	p2, err := NewPositionFen("4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)
	assert.NotEqual(t, p1.Hash(), p2.Hash())
}

func TestHashDiffersForDifferentCastlingRights(t *testing.T) {
	p1, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	p2, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w Kk - 0 1")
	require.NoError(t, err)
	assert.NotEqual(t, p1.Hash(), p2.Hash())
}

func TestHashDiffersForDifferentPlacement(t *testing.T) {
	start := NewPosition()
	next := start.Apply(NewMove(SqE2, SqE4, Normal, PtNone))
	assert.NotEqual(t, start.Hash(), next.Hash())
}
