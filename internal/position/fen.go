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
	"fmt"
	"strconv"
	"strings"

	. "github.com/bvargas/chessperft/internal/types"
)

// NewPositionFen parses a FEN string into a Position. Only the first
// field (piece placement) is required; trailing fields default to white
// to move, no en-passant target, and clocks 0/1. Castling rights parsed
// from field 3 are filtered to the king/rook-home invariant before
// returning, matching what apply-move maintains afterwards.
func NewPositionFen(fen string) (Position, error) {
	var p Position
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) == 0 {
		return p, fmt.Errorf("malformed FEN %q: empty", fen)
	}

	if err := parsePlacement(&p, fields[0]); err != nil {
		return p, err
	}

	p.sideToMove = White
	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
			p.sideToMove = White
		case "b":
			p.sideToMove = Black
		default:
			return p, fmt.Errorf("malformed FEN %q: illegal side to move %q", fen, fields[1])
		}
	}

	p.castlingRights = CastlingNone
	if len(fields) >= 3 && fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castlingRights |= CastlingWhiteOO
			case 'Q':
				p.castlingRights |= CastlingWhiteOOO
			case 'k':
				p.castlingRights |= CastlingBlackOO
			case 'q':
				p.castlingRights |= CastlingBlackOOO
			default:
				return p, fmt.Errorf("malformed FEN %q: illegal castling token %q", fen, string(c))
			}
		}
	}
	p.castlingRights = homeSquareFilter(&p, p.castlingRights)

	p.enPassantSquare = SqNone
	if len(fields) >= 4 && fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return p, fmt.Errorf("malformed FEN %q: %w", fen, err)
		}
		p.enPassantSquare = sq
	}

	p.halfMoveClock = 0
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return p, fmt.Errorf("malformed FEN %q: illegal half-move clock %q", fen, fields[4])
		}
		p.halfMoveClock = n
	}

	p.fullMoveNumber = 1
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return p, fmt.Errorf("malformed FEN %q: illegal full-move number %q", fen, fields[5])
		}
		p.fullMoveNumber = n
	}

	return p, nil
}

func parsePlacement(p *Position, placement string) error {
	for sq := SqA1; sq <= SqH8; sq++ {
		p.board[sq] = PieceNone
	}
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("malformed FEN: piece placement %q does not have 8 ranks", placement)
	}
	for i, rankStr := range ranks {
		rank := Rank(7 - i) // ranks given 8 -> 1
		file := FileA
		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				file += File(c - '0')
			default:
				if file > FileH {
					return fmt.Errorf("malformed FEN: rank %q overflows the board", rankStr)
				}
				pc, err := PieceFromChar(byte(c))
				if err != nil {
					return err
				}
				p.putPiece(pc, SquareOf(file, rank))
				file++
			}
		}
		if file != FileNone {
			return fmt.Errorf("malformed FEN: rank %q does not sum to 8 files", rankStr)
		}
	}
	return nil
}

// homeSquareFilter clears any castling right whose king or rook is not
// on its home square, enforcing the invariant described in the data
// model: a castling flag is false unless king and rook are both home.
func homeSquareFilter(p *Position, rights CastlingRights) CastlingRights {
	if p.board[SqE1] != WhiteKing {
		rights &^= CastlingWhite
	}
	if p.board[SqH1] != WhiteRook {
		rights &^= CastlingWhiteOO
	}
	if p.board[SqA1] != WhiteRook {
		rights &^= CastlingWhiteOOO
	}
	if p.board[SqE8] != BlackKing {
		rights &^= CastlingBlack
	}
	if p.board[SqH8] != BlackRook {
		rights &^= CastlingBlackOO
	}
	if p.board[SqA8] != BlackRook {
		rights &^= CastlingBlackOOO
	}
	return rights
}

// Fen renders the position in canonical Forsyth-Edwards Notation.
func (p *Position) Fen() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			sb.WriteByte('/')
		}
		if r == Rank1 {
			break
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.castlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(p.enPassantSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullMoveNumber))
	return sb.String()
}

// String is an alias for Fen.
func (p *Position) String() string {
	return p.Fen()
}
