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

// DivideEntry is the per-root-move breakdown of a Divide call: the root
// move and the leaf count of the subtree it heads.
type DivideEntry struct {
	Move  types.Move
	Count uint64
}

// Divide runs perft one ply at the root and reports the count
// contributed by each individual legal move, the classic debugging aid
// for isolating which root move a generator bug hides under.
func Divide(pos *position.Position, depth int, cache *Cache) []DivideEntry {
	if depth == 0 {
		return nil
	}
	roots := movegen.LegalMoves(pos)
	entries := make([]DivideEntry, 0, len(roots))
	for _, m := range roots {
		next := pos.Apply(m)
		entries = append(entries, DivideEntry{Move: m, Count: Serial(&next, depth-1, cache)})
	}
	return entries
}
