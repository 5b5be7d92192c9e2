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

// Package movegen enumerates pseudo-legal and legal moves from a
// position, and the attack predicates (attacks, square-attacked,
// king-in-check) the legality filter and the castling rules build on.
package movegen

import (
	"github.com/bvargas/chessperft/internal/position"
	. "github.com/bvargas/chessperft/internal/types"
)

var promotionOrder = [4]PieceType{Bishop, Knight, Queen, Rook}

// PseudoMoves invokes emit for every pseudo-legal move from pos, in a
// fixed order: rook, then queen's rank/file component, then bishop,
// then queen's diagonal component, then pawns, then knights, then king
// (including castling). Within a phase, squares are visited in
// ascending index and destinations within a square in ascending index.
func PseudoMoves(pos *position.Position, emit func(Move)) {
	us := pos.SideToMove()
	own := pos.Occupied(us)
	occAll := pos.OccupiedAll()

	emitSlides(pos.Pieces(us, Rook), Rook, own, occAll, emit)
	emitSlides(pos.Pieces(us, Queen), Rook, own, occAll, emit)
	emitSlides(pos.Pieces(us, Bishop), Bishop, own, occAll, emit)
	emitSlides(pos.Pieces(us, Queen), Bishop, own, occAll, emit)

	emitPawnMoves(pos, us, emit)

	emitNonSlides(pos.Pieces(us, Knight), Knight, own, emit)
	emitNonSlides(pos.Pieces(us, King), King, own, emit)
	emitCastling(pos, us, emit)
}

func emitSlides(pieces Bitboard, attackKind PieceType, own, occAll Bitboard, emit func(Move)) {
	for pieces != BbZero {
		var from Square
		from, pieces = pieces.PopLsb()
		targets := GetAttacksBb(attackKind, from, occAll) &^ own
		for targets != BbZero {
			var to Square
			to, targets = targets.PopLsb()
			emit(NewMove(from, to, Normal, PtNone))
		}
	}
}

func emitNonSlides(pieces Bitboard, pt PieceType, own Bitboard, emit func(Move)) {
	for pieces != BbZero {
		var from Square
		from, pieces = pieces.PopLsb()
		targets := GetAttacksBb(pt, from, BbZero) &^ own
		for targets != BbZero {
			var to Square
			to, targets = targets.PopLsb()
			emit(NewMove(from, to, Normal, PtNone))
		}
	}
}

func emitPawnMoves(pos *position.Position, us Color, emit func(Move)) {
	them := us.Opponent()
	occAll := pos.OccupiedAll()
	theirs := pos.Occupied(them)
	promRank := us.PromotionRank()

	pawns := pos.Pieces(us, Pawn)
	for pawns != BbZero {
		var from Square
		from, pawns = pawns.PopLsb()

		pushDir := Direction(North)
		startRank := us.PawnStartRank()
		if us == Black {
			pushDir = South
		}

		if one := from.To(pushDir); one.IsValid() && !occAll.Has(one) {
			emitPawnDestination(from, one, promRank, emit)
			if from.RankOf() == startRank {
				if two := one.To(pushDir); two.IsValid() && !occAll.Has(two) {
					emit(NewMove(from, two, Normal, PtNone))
				}
			}
		}

		captureDirs := [2]Direction{Northeast, Northwest}
		if us == Black {
			captureDirs = [2]Direction{Southeast, Southwest}
		}
		for _, d := range captureDirs {
			to := from.To(d)
			if !to.IsValid() {
				continue
			}
			if theirs.Has(to) {
				emitPawnDestination(from, to, promRank, emit)
			} else if to == pos.EnPassantSquare() && pos.EnPassantSquare().IsValid() {
				emit(NewMove(from, to, EnPassant, PtNone))
			}
		}
	}
}

func emitPawnDestination(from, to Square, promRank Rank, emit func(Move)) {
	if to.RankOf() == promRank {
		for _, pt := range promotionOrder {
			emit(NewMove(from, to, Promotion, pt))
		}
		return
	}
	emit(NewMove(from, to, Normal, PtNone))
}

func emitCastling(pos *position.Position, us Color, emit func(Move)) {
	rights := pos.CastlingRights()
	occAll := pos.OccupiedAll()

	if rights.Has(us.KingSideRight()) {
		var kingFrom, kingTo, empty1, empty2, pathA, pathB, pathC Square
		if us == White {
			kingFrom, kingTo, empty1, empty2 = SqE1, SqG1, SqF1, SqG1
			pathA, pathB, pathC = SqE1, SqF1, SqG1
		} else {
			kingFrom, kingTo, empty1, empty2 = SqE8, SqG8, SqF8, SqG8
			pathA, pathB, pathC = SqE8, SqF8, SqG8
		}
		if !occAll.Has(empty1) && !occAll.Has(empty2) &&
			!squareAttackedBy(pos, pathA, us.Opponent()) &&
			!squareAttackedBy(pos, pathB, us.Opponent()) &&
			!squareAttackedBy(pos, pathC, us.Opponent()) {
			emit(NewMove(kingFrom, kingTo, Castling, PtNone))
		}
	}

	if rights.Has(us.QueenSideRight()) {
		var kingFrom, kingTo, emptyB, emptyC, emptyD, pathA, pathB, pathC Square
		if us == White {
			kingFrom, kingTo, emptyB, emptyC, emptyD = SqE1, SqC1, SqB1, SqC1, SqD1
			pathA, pathB, pathC = SqE1, SqD1, SqC1
		} else {
			kingFrom, kingTo, emptyB, emptyC, emptyD = SqE8, SqC8, SqB8, SqC8, SqD8
			pathA, pathB, pathC = SqE8, SqD8, SqC8
		}
		if !occAll.Has(emptyB) && !occAll.Has(emptyC) && !occAll.Has(emptyD) &&
			!squareAttackedBy(pos, pathA, us.Opponent()) &&
			!squareAttackedBy(pos, pathB, us.Opponent()) &&
			!squareAttackedBy(pos, pathC, us.Opponent()) {
			emit(NewMove(kingFrom, kingTo, Castling, PtNone))
		}
	}
}
