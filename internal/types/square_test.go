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
	"github.com/stretchr/testify/require"
)

func TestSquareOfAndAccessors(t *testing.T) {
	sq := SquareOf(FileE, Rank4)
	assert.Equal(t, FileE, sq.FileOf())
	assert.Equal(t, Rank4, sq.RankOf())
	assert.Equal(t, "e4", sq.String())
}

func TestSquareRoundTrip(t *testing.T) {
	for sq := SqA1; sq <= SqH8; sq++ {
		parsed, err := ParseSquare(sq.String())
		require.NoError(t, err)
		assert.Equal(t, sq, parsed)
	}
}

func TestParseSquareRejectsMalformed(t *testing.T) {
	cases := []string{"", "a", "a9", "i4", "e44", "44"}
	for _, c := range cases {
		_, err := ParseSquare(c)
		assert.Errorf(t, err, "expected error for %q", c)
	}
}

func TestSquareToRespectsEdges(t *testing.T) {
	assert.Equal(t, SqNone, SqA1.To(West))
	assert.Equal(t, SqNone, SqA1.To(South))
	assert.Equal(t, SqNone, SqH8.To(East))
	assert.Equal(t, SqNone, SqH8.To(North))
	assert.Equal(t, SqB1, SqA1.To(East))
}

func TestSqNoneString(t *testing.T) {
	assert.Equal(t, "-", SqNone.String())
	assert.False(t, SqNone.IsValid())
}
