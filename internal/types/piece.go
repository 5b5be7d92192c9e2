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

import "fmt"

// PieceType is one of the six piece kinds. It carries no color.
type PieceType uint8

const (
	King PieceType = iota
	Queen
	Bishop
	Knight
	Rook
	Pawn
	PtNone
	PtLength = PtNone
)

// IsValid reports whether pt is one of the six real piece kinds.
func (pt PieceType) IsValid() bool {
	return pt < PtNone
}

// IsSlider reports whether pt slides (bishop, rook, queen).
func (pt PieceType) IsSlider() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

var pieceTypeChar = [...]byte{King: 'k', Queen: 'q', Bishop: 'b', Knight: 'n', Rook: 'r', Pawn: 'p'}

// Char returns the lowercase algebraic letter for the piece kind.
func (pt PieceType) Char() string {
	if !pt.IsValid() {
		return "-"
	}
	return string(pieceTypeChar[pt])
}

// ParsePromotionType parses one of qrbn (lowercase) into a PieceType.
// Any other letter, including k and p, is rejected per this spec's
// restriction to the four promotable piece kinds.
func ParsePromotionType(c byte) (PieceType, error) {
	switch c {
	case 'q':
		return Queen, nil
	case 'r':
		return Rook, nil
	case 'b':
		return Bishop, nil
	case 'n':
		return Knight, nil
	default:
		return PtNone, fmt.Errorf("malformed promotion letter %q: expected one of qrbn", c)
	}
}

// Piece is a (Color, PieceType) pair packed into a single byte, plus the
// PieceNone sentinel used by the piece-at-square cache.
type Piece uint8

const (
	WhiteKing Piece = iota
	WhiteQueen
	WhiteBishop
	WhiteKnight
	WhiteRook
	WhitePawn
	BlackKing
	BlackQueen
	BlackBishop
	BlackKnight
	BlackRook
	BlackPawn
	PieceNone
	PieceLength = PieceNone
)

// MakePiece packs a color and piece kind into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	if !pt.IsValid() {
		return PieceNone
	}
	return Piece(uint8(c)*6 + uint8(pt))
}

// ColorOf returns the color of the piece. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	if p >= BlackKing {
		return Black
	}
	return White
}

// TypeOf returns the piece kind. Undefined for PieceNone.
func (p Piece) TypeOf() PieceType {
	return PieceType(uint8(p) % 6)
}

// IsValid reports whether p is an actual piece (not PieceNone).
func (p Piece) IsValid() bool {
	return p < PieceNone
}

// Char returns the FEN letter for the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Char() string {
	if !p.IsValid() {
		return "-"
	}
	c := pieceTypeChar[p.TypeOf()]
	if p.ColorOf() == White {
		c -= 'a' - 'A'
	}
	return string(c)
}

// PieceFromChar parses a single FEN piece letter (KQBNRPkqbnrp).
func PieceFromChar(c byte) (Piece, error) {
	for p := WhiteKing; p < PieceNone; p++ {
		if p.Char() == string(c) {
			return p, nil
		}
	}
	return PieceNone, fmt.Errorf("malformed FEN: illegal piece character %q", c)
}
