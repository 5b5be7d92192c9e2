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

// zobrist keys: one per (color, piece type, square), one per en-passant
// file, one per castling-rights value (16, since it's a 4-bit mask) and
// one to flip when black is to move. Built once at process start from a
// fixed seed, so two processes always agree on the hash of a position.
var (
	zobristPiece    [ColorLength][PtLength][SqLength]Key
	zobristEpFile   [FileLength]Key
	zobristCastling [16]Key
	zobristSide     Key
)

func init() {
	rng := newSplitMix64(0x9E3779B97F4A7C15)
	for c := White; c <= Black; c++ {
		for pt := King; pt < PtNone; pt++ {
			for sq := SqA1; sq <= SqH8; sq++ {
				zobristPiece[c][pt][sq] = Key(rng.next())
			}
		}
	}
	for f := FileA; f <= FileH; f++ {
		zobristEpFile[f] = Key(rng.next())
	}
	for i := range zobristCastling {
		zobristCastling[i] = Key(rng.next())
	}
	zobristSide = Key(rng.next())
}

// splitMix64 is a small deterministic generator used only to seed the
// zobrist tables at build time; never used on the hot path.
type splitMix64 struct{ s uint64 }

func newSplitMix64(seed uint64) *splitMix64 {
	return &splitMix64{s: seed}
}

func (g *splitMix64) next() uint64 {
	g.s += 0x9E3779B97F4A7C15
	z := g.s
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z = z ^ (z >> 31)
	return z
}

// Hash computes the Zobrist key of the position from scratch by XOR-ing
// together a key for every piece on the board plus the side, castling
// and en-passant keys. Two positions with identical piece placement,
// side to move, castling rights and en-passant target always hash the
// same regardless of the path taken to reach them.
func (p *Position) Hash() Key {
	var h Key
	for c := White; c <= Black; c++ {
		for pt := King; pt < PtNone; pt++ {
			bb := p.pieces[c][pt]
			for bb != BbZero {
				var sq Square
				sq, bb = bb.PopLsb()
				h ^= zobristPiece[c][pt][sq]
			}
		}
	}
	if p.enPassantSquare.IsValid() {
		h ^= zobristEpFile[p.enPassantSquare.FileOf()]
	}
	h ^= zobristCastling[p.castlingRights]
	if p.sideToMove == Black {
		h ^= zobristSide
	}
	return h
}
