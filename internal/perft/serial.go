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

package perft

import (
	"github.com/bvargas/chessperft/internal/movegen"
	"github.com/bvargas/chessperft/internal/position"
	"github.com/bvargas/chessperft/internal/types"
)

// Serial counts the leaf nodes of pos's legal move tree at exactly
// depth, memoizing (hash, depth) -> count in cache. depth=0 always
// returns 1.
//
// Rather than verifying every pseudo-legal move's legality by applying
// it and checking the king, Serial applies the selective legality
// filter from the reference implementation: a move only needs the full
// apply-and-check treatment if the side to move is already in check, if
// the piece moving is the king itself, if its origin square is attacked
// by the opponent (a pinned-piece candidate), or if it's an en-passant
// capture (the only move type that can expose the king to a check along
// a rank). Every other pseudo-legal move cannot leave the mover's own
// king in check and is counted directly. This does not change any
// count, only how many positions get the expensive treatment.
func Serial(pos *position.Position, depth int, cache *Cache) uint64 {
	if depth == 0 {
		return 1
	}

	hash := pos.Hash()
	if count, ok := cache.Get(hash, depth); ok {
		return count
	}

	us := pos.SideToMove()
	them := us.Opponent()
	kingSq := pos.KingSquare(us)
	inCheck := movegen.IsSquareSetAttacked(pos, them, kingSq.Bb())

	var count uint64
	movegen.PseudoMoves(pos, func(m types.Move) {
		mustVerify := inCheck ||
			m.From() == kingSq ||
			m.MoveType() == types.EnPassant ||
			movegen.IsSquareSetAttacked(pos, them, m.From().Bb())

		next := pos.Apply(m)
		if mustVerify && movegen.IsOpposingKingInCheck(&next) {
			return
		}

		if depth == 1 {
			count++
			return
		}
		count += Serial(&next, depth-1, cache)
	})

	cache.Put(hash, depth, count)
	return count
}
