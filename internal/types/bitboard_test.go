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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardSetOps(t *testing.T) {
	a := SqA1.Bb() | SqB2.Bb() | SqC3.Bb()
	b := SqB2.Bb() | SqD4.Bb()

	assert.Equal(t, SqA1.Bb()|SqB2.Bb()|SqC3.Bb()|SqD4.Bb(), a.Union(b))
	assert.Equal(t, SqB2.Bb(), a.Intersect(b))
	assert.Equal(t, SqA1.Bb()|SqC3.Bb(), a.Without(b))
	assert.Equal(t, a^b, a.SymDiff(b))
	assert.Equal(t, ^a, a.Complement())
}

func TestBitboardPopCountLsb(t *testing.T) {
	b := SqA1.Bb() | SqH8.Bb() | SqD4.Bb()
	assert.Equal(t, 3, b.PopCount())
	assert.Equal(t, SqA1, b.Lsb())

	sq, rest := b.PopLsb()
	assert.Equal(t, SqA1, sq)
	assert.Equal(t, 2, rest.PopCount())
	assert.False(t, rest.Has(SqA1))

	empty := BbZero
	assert.Equal(t, SqNone, empty.Lsb())
	sq, rest = empty.PopLsb()
	assert.Equal(t, SqNone, sq)
	assert.Equal(t, BbZero, rest)
}

func TestShiftBitboardWrap(t *testing.T) {
	// a1 shifted west must vanish, not wrap to h-something.
	assert.Equal(t, BbZero, ShiftBitboard(SqA1.Bb(), West))
	assert.Equal(t, BbZero, ShiftBitboard(SqH1.Bb(), East))
	assert.Equal(t, SqB1.Bb(), ShiftBitboard(SqA1.Bb(), East))
	assert.Equal(t, SqA2.Bb(), ShiftBitboard(SqA1.Bb(), North))
}

func TestMirrorsAreInvolutions(t *testing.T) {
	b := SqA1.Bb() | SqD4.Bb() | SqH8.Bb() | SqB7.Bb()
	assert.Equal(t, b, b.FlipVertical().FlipVertical())
	assert.Equal(t, b, b.FlipHorizontal().FlipHorizontal())
	assert.Equal(t, b, b.FlipA1H8().FlipA1H8())
	assert.Equal(t, b, b.FlipA8H1().FlipA8H1())
}

func TestFlipVerticalMapsRanks(t *testing.T) {
	assert.Equal(t, SqA8.Bb(), SqA1.Bb().FlipVertical())
	assert.Equal(t, SqH1.Bb(), SqH8.Bb().FlipVertical())
}

func TestFileAndRankBb(t *testing.T) {
	assert.Equal(t, FileA_Bb, FileA.Bb())
	assert.Equal(t, Rank1_Bb, Rank1.Bb())
	assert.True(t, FileA.Bb().Has(SqA1))
	assert.True(t, FileA.Bb().Has(SqA8))
	assert.False(t, FileA.Bb().Has(SqB1))
}
