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

// Package position represents a chess position: piece placement, side to
// move, castling rights, en-passant target and move clocks, plus the
// FEN parser/emitter and the pure apply-move state transition.
//
// Position is a plain value (all fields are arrays or scalars), so it is
// trivially copyable: apply never mutates its receiver, it returns a new
// Position. Use NewPosition() for the standard starting position or
// NewPositionFen(fen) to load an arbitrary one.
package position

import (
	. "github.com/bvargas/chessperft/internal/types"
)

// Key is a Zobrist hash of a Position.
type Key uint64

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is the complete, immutable state of a chess game at one ply.
// Two Positions compare equal (==) iff every field is equal, since all
// fields are value types (arrays of fixed size, not slices/pointers).
type Position struct {
	pieces [ColorLength][PtLength]Bitboard
	occupied [ColorLength]Bitboard
	board  [SqLength]Piece // piece-at-square cache; redundant with pieces[][]

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square // SqNone if none
	halfMoveClock   int
	fullMoveNumber  int
}

// NewPosition returns the standard chess starting position.
func NewPosition() Position {
	p, err := NewPositionFen(StartFen)
	if err != nil {
		panic("unreachable: StartFen must always parse: " + err.Error())
	}
	return p
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the en-passant target square, or SqNone.
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }

// HalfMoveClock returns the plies since the last pawn move or capture.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// FullMoveNumber returns the full move number (starts at 1).
func (p *Position) FullMoveNumber() int { return p.fullMoveNumber }

// PieceAt returns the occupant of sq, or PieceNone if empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.board[sq]
}

// Pieces returns the bitboard of color c's pieces of kind pt.
func (p *Position) Pieces(c Color, pt PieceType) Bitboard {
	return p.pieces[c][pt]
}

// Occupied returns the bitboard of all of color c's pieces.
func (p *Position) Occupied(c Color) Bitboard {
	return p.occupied[c]
}

// OccupiedAll returns the bitboard of every occupied square.
func (p *Position) OccupiedAll() Bitboard {
	return p.occupied[White] | p.occupied[Black]
}

// KingSquare returns the square of color c's king, or SqNone if somehow
// absent (never true for a Position built via NewPosition/NewPositionFen
// from a well-formed FEN).
func (p *Position) KingSquare(c Color) Square {
	return p.pieces[c][King].Lsb()
}

// putPiece sets piece pc on sq in both the bitboards and the piece-at
// cache. sq must currently be empty.
func (p *Position) putPiece(pc Piece, sq Square) {
	p.pieces[pc.ColorOf()][pc.TypeOf()] |= sq.Bb()
	p.occupied[pc.ColorOf()] |= sq.Bb()
	p.board[sq] = pc
}

// removePiece clears whatever piece sits on sq.
func (p *Position) removePiece(sq Square) {
	pc := p.board[sq]
	if pc == PieceNone {
		return
	}
	p.pieces[pc.ColorOf()][pc.TypeOf()] &^= sq.Bb()
	p.occupied[pc.ColorOf()] &^= sq.Bb()
	p.board[sq] = PieceNone
}

// movePiece relocates whatever piece sits on `from` to `to`, which must
// currently be empty.
func (p *Position) movePiece(from, to Square) {
	pc := p.board[from]
	p.pieces[pc.ColorOf()][pc.TypeOf()] &^= from.Bb()
	p.pieces[pc.ColorOf()][pc.TypeOf()] |= to.Bb()
	p.occupied[pc.ColorOf()] &^= from.Bb()
	p.occupied[pc.ColorOf()] |= to.Bb()
	p.board[from] = PieceNone
	p.board[to] = pc
}

// verifyBoardCache rebuilds the piece-at cache from scratch out of the
// per-piece bitboards and returns it. Exposed for tests that
// check the invariant "piece-at cache equals bitboard scan".
func (p *Position) verifyBoardCache() [SqLength]Piece {
	var board [SqLength]Piece
	for sq := SqA1; sq <= SqH8; sq++ {
		board[sq] = PieceNone
	}
	for c := White; c <= Black; c++ {
		for pt := King; pt < PtNone; pt++ {
			bb := p.pieces[c][pt]
			for bb != BbZero {
				var sq Square
				sq, bb = bb.PopLsb()
				board[sq] = MakePiece(c, pt)
			}
		}
	}
	return board
}
