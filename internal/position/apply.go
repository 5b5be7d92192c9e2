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
	. "github.com/bvargas/chessperft/internal/types"
)

// castlingRookSquares maps a king's castling destination square to the
// (rook-from, rook-to) pair that must move alongside it.
var castlingRookSquares = map[Square][2]Square{
	SqG1: {SqH1, SqF1},
	SqC1: {SqA1, SqD1},
	SqG8: {SqH8, SqF8},
	SqC8: {SqA8, SqD8},
}

// castlingRightsLostFrom clears whichever castling rights depend on the
// piece that just left sq (king leaving home loses both of its rights;
// a rook leaving or being captured on its home square loses that one).
func castlingRightsLostFrom(sq Square) CastlingRights {
	switch sq {
	case SqE1:
		return CastlingWhite
	case SqA1:
		return CastlingWhiteOOO
	case SqH1:
		return CastlingWhiteOO
	case SqE8:
		return CastlingBlack
	case SqA8:
		return CastlingBlackOOO
	case SqH8:
		return CastlingBlackOO
	default:
		return CastlingNone
	}
}

// Apply plays move m and returns the resulting position. The receiver is
// untouched: Position holds only arrays and scalars, so the value
// receiver below is a full copy and every mutation below happens on
// that copy. Apply does not check legality; callers that need to reject
// illegal moves use movegen.ValidateAndApply.
func (p Position) Apply(m Move) Position {
	from := m.From()
	to := m.To()
	moving := p.board[from]
	captured := p.board[to]
	us := p.sideToMove
	them := us.Opponent()

	lostRights := castlingRightsLostFrom(from) | castlingRightsLostFrom(to)

	isPawnMove := moving.TypeOf() == Pawn
	isCapture := captured != PieceNone

	switch m.MoveType() {
	case EnPassant:
		capturedSq := SquareOf(to.FileOf(), from.RankOf())
		(&p).removePiece(capturedSq)
		(&p).movePiece(from, to)
		isCapture = true

	case Castling:
		rookSquares := castlingRookSquares[to]
		(&p).movePiece(from, to)
		(&p).movePiece(rookSquares[0], rookSquares[1])

	case Promotion:
		(&p).removePiece(from)
		if isCapture {
			(&p).removePiece(to)
		}
		(&p).putPiece(MakePiece(us, m.PromotionType()), to)

	default: // Normal
		if isCapture {
			(&p).removePiece(to)
		}
		(&p).movePiece(from, to)
	}

	p.castlingRights = p.castlingRights.Clear(lostRights)

	p.enPassantSquare = SqNone
	if isPawnMove && m.MoveType() == Normal {
		if RankDistance(from.RankOf(), to.RankOf()) == 2 {
			p.enPassantSquare = SquareOf(from.FileOf(), (from.RankOf()+to.RankOf())/2)
		}
	}

	if isPawnMove || isCapture {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	if us == Black {
		p.fullMoveNumber++
	}
	p.sideToMove = them

	return p
}
