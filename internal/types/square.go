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

// Package types holds the primitive value types of the engine: squares,
// files, ranks, colors, piece kinds, pieces, moves and bitboards, plus the
// precomputed attack and magic tables built on top of them.
package types

import "fmt"

// Square identifies one of the 64 board squares. Index = rank*8 + file,
// so SqA1 == 0 and SqH8 == 63. SqNone is the one-past-the-end sentinel.
type Square uint8

//noinspection GoUnusedConst
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
	SqLength = SqNone
)

// File is the 0=a .. 7=h column of a square.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
	FileLength = FileNone
)

// Rank is the 0=1st .. 7=8th row of a square.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankNone
	RankLength = RankNone
)

// SquareOf builds the Square for the given file/rank pair.
func SquareOf(f File, r Rank) Square {
	return Square(uint8(r)*8 + uint8(f))
}

// FileOf returns the file (a..h) of the square.
func (sq Square) FileOf() File {
	return File(sq % 8)
}

// RankOf returns the rank (1..8) of the square.
func (sq Square) RankOf() Rank {
	return Rank(sq / 8)
}

// IsValid reports whether sq is one of the 64 real squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// To returns the square one step away in the given direction, or SqNone
// if that step would leave the board.
func (sq Square) To(d Direction) Square {
	to := Square(int(sq) + int(d))
	if !to.IsValid() {
		return SqNone
	}
	// a single step can never change rank/file by more than one each
	if FileDistance(sq.FileOf(), to.FileOf()) > 1 || RankDistance(sq.RankOf(), to.RankOf()) > 1 {
		return SqNone
	}
	return to
}

// String returns algebraic notation, e.g. "e4". SqNone prints "-".
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(sq.FileOf()), '1'+byte(sq.RankOf()))
}

// String returns the file letter a..h.
func (f File) String() string {
	if f > FileH {
		return "-"
	}
	return string(rune('a' + byte(f)))
}

// String returns the rank digit 1..8.
func (r Rank) String() string {
	if r > Rank8 {
		return "-"
	}
	return string(rune('1' + byte(r)))
}

// ParseSquare parses algebraic notation, e.g. "e4". Returns an error
// naming the offending input on malformed square notation.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return SqNone, fmt.Errorf("malformed square notation %q: expected length 2", s)
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' {
		return SqNone, fmt.Errorf("malformed square notation %q: file %q not in a-h", s, f)
	}
	if r < '1' || r > '8' {
		return SqNone, fmt.Errorf("malformed square notation %q: rank %q not in 1-8", s, r)
	}
	return SquareOf(File(f-'a'), Rank(r-'1')), nil
}
