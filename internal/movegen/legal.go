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
	"fmt"

	"github.com/bvargas/chessperft/internal/position"
	. "github.com/bvargas/chessperft/internal/types"
)

// LegalMoves generates every pseudo-legal move from pos, applies each,
// and keeps only those that do not leave the mover's own king attacked.
// Preserves the pseudo emission order.
func LegalMoves(pos *position.Position) []Move {
	moves := make([]Move, 0, 48)
	PseudoMoves(pos, func(m Move) {
		next := pos.Apply(m)
		if !IsOpposingKingInCheck(&next) {
			moves = append(moves, m)
		}
	})
	return moves
}

// ValidateAndApply applies m to pos iff m is one of pos's legal moves.
// This is the one operation in the engine that can report an illegal
// move; Position.Apply itself assumes the move is at least pseudo-legal
// and never errors.
func ValidateAndApply(pos *position.Position, m Move) (position.Position, error) {
	for _, legal := range LegalMoves(pos) {
		if legal == m {
			return pos.Apply(m), nil
		}
	}
	return position.Position{}, fmt.Errorf("illegal move %s in position %s", m.StringUCI(), pos.Fen())
}
