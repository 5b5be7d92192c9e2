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

// Package notation renders and parses the external text formats: UCI-like
// move strings and the ASCII diagnostic board. FEN lives next to
// Position in internal/position since it constructs a Position directly.
package notation

import (
	"fmt"
	"strings"

	"github.com/bvargas/chessperft/internal/position"
	. "github.com/bvargas/chessperft/internal/types"
)

// ParseMove parses a UCI-like move string ("e2e4", "a7a8q") against pos
// and reconstructs its full encoding (castling/en-passant/promotion),
// since the wire format only spells out the promotion letter. The
// result is not checked for legality; pair with
// movegen.ValidateAndApply for that.
func ParseMove(pos *position.Position, s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return MoveNone, fmt.Errorf("malformed move string %q: expected length 4 or 5", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return MoveNone, fmt.Errorf("malformed move string %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return MoveNone, fmt.Errorf("malformed move string %q: %w", s, err)
	}

	var promo PieceType = PtNone
	if len(s) == 5 {
		promo, err = ParsePromotionType(s[4])
		if err != nil {
			return MoveNone, fmt.Errorf("malformed move string %q: %w", s, err)
		}
	}

	moving := pos.PieceAt(from)

	if promo != PtNone {
		return NewMove(from, to, Promotion, promo), nil
	}
	if moving.IsValid() && moving.TypeOf() == King && FileDistance(from.FileOf(), to.FileOf()) == 2 {
		return NewMove(from, to, Castling, PtNone), nil
	}
	if moving.IsValid() && moving.TypeOf() == Pawn && to == pos.EnPassantSquare() && to.IsValid() &&
		from.FileOf() != to.FileOf() {
		return NewMove(from, to, EnPassant, PtNone), nil
	}
	return NewMove(from, to, Normal, PtNone), nil
}

// FormatMove renders m in UCI-like notation.
func FormatMove(m Move) string {
	return m.StringUCI()
}

// DisplayBoard renders pos as an 8x8 ASCII grid with file/rank labels,
// uppercase letters for white pieces, lowercase for black, "-" for an
// empty square.
func DisplayBoard(pos *position.Position) string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for r := Rank8; ; r-- {
		sb.WriteString(r.String())
		sb.WriteByte(' ')
		for f := FileA; f <= FileH; f++ {
			pc := pos.PieceAt(SquareOf(f, r))
			if pc == PieceNone {
				sb.WriteString("- ")
			} else {
				sb.WriteString(pc.Char() + " ")
			}
		}
		sb.WriteString(r.String())
		sb.WriteByte('\n')
		if r == Rank1 {
			break
		}
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
