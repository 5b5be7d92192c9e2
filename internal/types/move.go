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

import "fmt"

// MoveType distinguishes the four move encodings.
type MoveType uint8

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

// Move is a 16-bit encoded chess move:
//  BITMAP
//  1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//  5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  -------------------------------
//                      1 1 1 1 1 1  to
//          1 1 1 1 1 1              from
//      1 1                          promotion piece type (pt-Queen: Queen, Bishop, Knight, Rook -> 0..3)
//  1 1                              move type
// Castling is encoded as a king move two files sideways; en-passant as a
// diagonal pawn move to the en-passant target; promotion fills the
// promotion field with one of {Queen, Rook, Bishop, Knight}.
type Move uint16

// MoveNone is the zero value and is never a valid move.
const MoveNone Move = 0

const (
	fromShift     = 6
	promTypeShift = 12
	typeShift     = 14

	squareMask   Move = 0x3F
	fromMask          = squareMask << fromShift
	promTypeMask Move = 0x3 << promTypeShift
	typeMask     Move = 0x3 << typeShift
)

// promEncode maps a promotion PieceType to the 2-bit promotion field.
// The four promotable kinds in ascending PieceType order are Queen,
// Bishop, Knight, Rook, so storing promType-Queen gives Queen=0,
// Bishop=1, Knight=2, Rook=3.
func promEncode(pt PieceType) Move {
	return Move(pt - Queen)
}

func promDecode(bits Move) PieceType {
	return PieceType(bits) + Queen
}

// NewMove builds a move of the given type. promType is ignored unless t
// is Promotion.
func NewMove(from, to Square, t MoveType, promType PieceType) Move {
	var promBits Move
	if t == Promotion {
		promBits = promEncode(promType) << promTypeShift
	}
	return Move(to) | Move(from)<<fromShift | promBits | Move(t)<<typeShift
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m & squareMask)
}

// MoveType returns the move's encoding kind.
func (m Move) MoveType() MoveType {
	return MoveType((m & typeMask) >> typeShift)
}

// PromotionType returns the promoted-to piece kind. Only meaningful when
// MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return promDecode((m & promTypeMask) >> promTypeShift)
}

// IsValid reports whether m has well-formed squares. MoveNone is never valid.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid()
}

// StringUCI renders the move in UCI-like notation: from+to+optional
// lowercase promotion letter, e.g. "e2e4", "a7a8q".
func (m Move) StringUCI() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.MoveType() == Promotion {
		s += m.PromotionType().Char()
	}
	return s
}

// String is an alias for StringUCI with a label, handy in test failures.
func (m Move) String() string {
	return fmt.Sprintf("Move(%s)", m.StringUCI())
}
