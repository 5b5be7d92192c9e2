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

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares. Bit k set means square k (see
// Square) is a member. All operations are total on 64-bit inputs.
type Bitboard uint64

// Named constants.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = ^BbZero

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb          = FileA_Bb << 1
	FileC_Bb          = FileA_Bb << 2
	FileD_Bb          = FileA_Bb << 3
	FileE_Bb          = FileA_Bb << 4
	FileF_Bb          = FileA_Bb << 5
	FileG_Bb          = FileA_Bb << 6
	FileH_Bb          = FileA_Bb << 7

	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb          = Rank1_Bb << (8 * 1)
	Rank3_Bb          = Rank1_Bb << (8 * 2)
	Rank4_Bb          = Rank1_Bb << (8 * 3)
	Rank5_Bb          = Rank1_Bb << (8 * 4)
	Rank6_Bb          = Rank1_Bb << (8 * 5)
	Rank7_Bb          = Rank1_Bb << (8 * 6)
	Rank8_Bb          = Rank1_Bb << (8 * 7)

	Frame Bitboard = Rank1_Bb | Rank8_Bb | FileA_Bb | FileH_Bb

	notFileA Bitboard = ^FileA_Bb
	notFileH Bitboard = ^FileH_Bb
)

// diagA1H8 and diagA8H1 hold, for index k (0..14), the diagonal of length
// min(k+1, 15-k, 8): index 7 is the long a1-h8 / a8-h1 diagonal.
var diagA1H8 [15]Bitboard
var diagA8H1 [15]Bitboard

func init() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f := int(sq.FileOf())
		r := int(sq.RankOf())
		diagA1H8[7-r+f] |= sqBB(sq)
		diagA8H1[r+f] |= sqBB(sq)
	}
}

func sqBB(sq Square) Bitboard {
	return Bitboard(1) << sq
}

// Bb returns the singleton bitboard for the square.
func (sq Square) Bb() Bitboard {
	return sqBB(sq)
}

// Bb returns the bitboard of every square on this rank.
func (r Rank) Bb() Bitboard {
	return Rank1_Bb << (8 * uint(r))
}

// Bb returns the bitboard of every square on this file.
func (f File) Bb() Bitboard {
	return FileA_Bb << uint(f)
}

// Has tests if the square's bit is set.
func (b Bitboard) Has(sq Square) bool {
	return b&sqBB(sq) != 0
}

// Union, Intersect, Complement, SymDiff are the standard set operations.
func (b Bitboard) Union(o Bitboard) Bitboard     { return b | o }
func (b Bitboard) Intersect(o Bitboard) Bitboard { return b & o }
func (b Bitboard) Complement() Bitboard          { return ^b }
func (b Bitboard) SymDiff(o Bitboard) Bitboard   { return b ^ o }
func (b Bitboard) Without(o Bitboard) Bitboard   { return b &^ o }

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the index of the least-significant set bit, or SqNone if empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns (index-of-lsb, bitboard-with-lsb-removed).
func (b Bitboard) PopLsb() (Square, Bitboard) {
	if b == BbZero {
		return SqNone, b
	}
	sq := b.Lsb()
	return sq, b & (b - 1)
}

// ShiftBitboard moves every set bit one square in direction d, discarding
// bits that would fall off the board (E-family masks file A wrap,
// W-family masks file H wrap; N/S need no wrap mask).
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b & notFileH) << 1
	case West:
		return (b & notFileA) >> 1
	case Northeast:
		return (b & notFileH) << 9
	case Northwest:
		return (b & notFileA) << 7
	case Southeast:
		return (b & notFileH) >> 7
	case Southwest:
		return (b & notFileA) >> 9
	default:
		return b
	}
}

// Shifted composes a shift of dx files and dy ranks (each individually
// small, e.g. a knight's ±1/±2), applying the appropriate wrap mask at
// every single-step component.
func Shifted(b Bitboard, dx, dy int) Bitboard {
	for dx > 0 {
		b = ShiftBitboard(b, East)
		dx--
	}
	for dx < 0 {
		b = ShiftBitboard(b, West)
		dx++
	}
	for dy > 0 {
		b = ShiftBitboard(b, North)
		dy--
	}
	for dy < 0 {
		b = ShiftBitboard(b, South)
		dy++
	}
	return b
}

// FlipVertical mirrors the board top-to-bottom (rank i <-> rank 7-i).
func (b Bitboard) FlipVertical() Bitboard {
	return Bitboard(bits.ReverseBytes64(uint64(b)))
}

// FlipHorizontal mirrors the board left-to-right (bit-reverse each rank byte).
func (b Bitboard) FlipHorizontal() Bitboard {
	var out Bitboard
	for r := 0; r < 8; r++ {
		row := byte(b >> (8 * r))
		out |= Bitboard(bits.Reverse8(row)) << (8 * r)
	}
	return out
}

// FlipA1H8 transposes the board across the a1-h8 diagonal.
func (b Bitboard) FlipA1H8() Bitboard {
	var out Bitboard
	for sq := SqA1; sq <= SqH8; sq++ {
		if b.Has(sq) {
			mirrored := SquareOf(File(sq.RankOf()), Rank(sq.FileOf()))
			out |= mirrored.Bb()
		}
	}
	return out
}

// FlipA8H1 reflects the board across the a8-h1 anti-diagonal.
func (b Bitboard) FlipA8H1() Bitboard {
	return b.FlipA1H8().FlipVertical().FlipHorizontal()
}

// DiagA1H8 returns the a1-h8-family diagonal bitboard the square lies on.
func (sq Square) DiagA1H8() Bitboard {
	return diagA1H8[7-int(sq.RankOf())+int(sq.FileOf())]
}

// DiagA8H1 returns the a8-h1-family diagonal bitboard the square lies on.
func (sq Square) DiagA8H1() Bitboard {
	return diagA8H1[int(sq.RankOf())+int(sq.FileOf())]
}

// String renders the 64 bits MSB-first.
func (b Bitboard) String() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// DebugBoard renders the bitboard as an 8x8 ASCII grid, rank 8 on top,
// handy for test failure output.
func (b Bitboard) DebugBoard() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteString("X ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}
