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

// CastlingRights is a 4-bit mask: white king-side/queen-side, black
// king-side/queen-side. Clearing a right is a simple AND-NOT; the
// king/rook-home invariant is enforced by Position, not by this type.
type CastlingRights uint8

const (
	CastlingWhiteOO CastlingRights = 1 << iota
	CastlingWhiteOOO
	CastlingBlackOO
	CastlingBlackOOO

	CastlingNone = CastlingRights(0)
	CastlingWhite = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlack = CastlingBlackOO | CastlingBlackOOO
	CastlingAny   = CastlingWhite | CastlingBlack
)

// Has reports whether all bits of other are set in c.
func (c CastlingRights) Has(other CastlingRights) bool {
	return c&other == other
}

// Clear returns c with the given rights removed.
func (c CastlingRights) Clear(other CastlingRights) CastlingRights {
	return c &^ other
}

// KingSideRight returns this color's king-side right.
func (c Color) KingSideRight() CastlingRights {
	if c == White {
		return CastlingWhiteOO
	}
	return CastlingBlackOO
}

// QueenSideRight returns this color's queen-side right.
func (c Color) QueenSideRight() CastlingRights {
	if c == White {
		return CastlingWhiteOOO
	}
	return CastlingBlackOOO
}

// BothRights returns both of this color's castling rights combined.
func (c Color) BothRights() CastlingRights {
	if c == White {
		return CastlingWhite
	}
	return CastlingBlack
}

// String renders the rights in canonical FEN order KQkq, or "-" if none.
func (c CastlingRights) String() string {
	if c == CastlingNone {
		return "-"
	}
	s := ""
	if c.Has(CastlingWhiteOO) {
		s += "K"
	}
	if c.Has(CastlingWhiteOOO) {
		s += "Q"
	}
	if c.Has(CastlingBlackOO) {
		s += "k"
	}
	if c.Has(CastlingBlackOOO) {
		s += "q"
	}
	return s
}
