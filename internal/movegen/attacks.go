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

package movegen

import (
	"github.com/bvargas/chessperft/internal/position"
	. "github.com/bvargas/chessperft/internal/types"
)

// Attacks returns the union of the attack sets of every piece of color
// c, ignoring pins and ignoring whether a destination holds a piece of
// the same color. Pawn attacks are the diagonal capture squares only,
// never the push squares.
func Attacks(pos *position.Position, c Color) Bitboard {
	occAll := pos.OccupiedAll()
	var bb Bitboard

	pawns := pos.Pieces(c, Pawn)
	for pawns != BbZero {
		var sq Square
		sq, pawns = pawns.PopLsb()
		bb |= GetPawnAttacks(c, sq)
	}
	knights := pos.Pieces(c, Knight)
	for knights != BbZero {
		var sq Square
		sq, knights = knights.PopLsb()
		bb |= GetAttacksBb(Knight, sq, occAll)
	}
	kings := pos.Pieces(c, King)
	for kings != BbZero {
		var sq Square
		sq, kings = kings.PopLsb()
		bb |= GetAttacksBb(King, sq, occAll)
	}
	bishops := pos.Pieces(c, Bishop) | pos.Pieces(c, Queen)
	for bishops != BbZero {
		var sq Square
		sq, bishops = bishops.PopLsb()
		bb |= GetAttacksBb(Bishop, sq, occAll)
	}
	rooks := pos.Pieces(c, Rook) | pos.Pieces(c, Queen)
	for rooks != BbZero {
		var sq Square
		sq, rooks = rooks.PopLsb()
		bb |= GetAttacksBb(Rook, sq, occAll)
	}
	return bb
}

// IsSquareSetAttacked reports whether any square in mask is attacked by
// a piece of color c.
func IsSquareSetAttacked(pos *position.Position, c Color, mask Bitboard) bool {
	return Attacks(pos, c)&mask != BbZero
}

// IsOpposingKingInCheck reports whether the side NOT to move has a king
// attacked by a side-to-move piece. Called right after Position.Apply to
// test whether the move just played left its own mover in check (the
// mover is the side not to move in the resulting position).
func IsOpposingKingInCheck(pos *position.Position) bool {
	defender := pos.SideToMove().Opponent()
	kingSq := pos.KingSquare(defender)
	return squareAttackedBy(pos, kingSq, pos.SideToMove())
}

// squareAttackedBy tests whether sq is attacked by any piece of color
// attacker, short-circuiting per piece kind rather than building the
// full attacks(pos, attacker) bitboard.
func squareAttackedBy(pos *position.Position, sq Square, attacker Color) bool {
	occAll := pos.OccupiedAll()

	if GetPawnAttacks(attacker.Opponent(), sq)&pos.Pieces(attacker, Pawn) != BbZero {
		return true
	}
	if GetAttacksBb(Knight, sq, occAll)&pos.Pieces(attacker, Knight) != BbZero {
		return true
	}
	if GetAttacksBb(King, sq, occAll)&pos.Pieces(attacker, King) != BbZero {
		return true
	}
	if GetAttacksBb(Bishop, sq, occAll)&(pos.Pieces(attacker, Bishop)|pos.Pieces(attacker, Queen)) != BbZero {
		return true
	}
	if GetAttacksBb(Rook, sq, occAll)&(pos.Pieces(attacker, Rook)|pos.Pieces(attacker, Queen)) != BbZero {
		return true
	}
	return false
}
