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

// Color is one of the two sides.
type Color uint8

const (
	White Color = iota
	Black
	ColorNone
	ColorLength = ColorNone
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	return c ^ 1
}

// Direction returns +1 for White and -1 for Black, used to mirror
// step tables (pawn attacks, pawn pushes) across colors.
func (c Color) Direction() int {
	if c == White {
		return 1
	}
	return -1
}

// String returns "w" or "b".
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PromotionRank is the rank on which this color's pawns promote.
func (c Color) PromotionRank() Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}

// PawnStartRank is the rank this color's pawns start on.
func (c Color) PawnStartRank() Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}
