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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/bvargas/chessperft/internal/types"
)

func TestNewPositionStartingSetup(t *testing.T) {
	p := NewPosition()

	assert.Equal(t, SqA1.Bb()|SqH1.Bb()|SqA8.Bb()|SqH8.Bb(), p.Pieces(White, Rook)|p.Pieces(Black, Rook))
	assert.Equal(t, SqE1.Bb(), p.Pieces(White, King))
	assert.Equal(t, SqE8.Bb(), p.Pieces(Black, King))
	assert.Equal(t, Rank2_Bb, p.Pieces(White, Pawn))
	assert.Equal(t, Rank7_Bb, p.Pieces(Black, Pawn))
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, 0, p.HalfMoveClock())
	assert.Equal(t, 1, p.FullMoveNumber())
	assert.Equal(t, StartFen, p.Fen())
}

func TestPieceAtCacheMatchesBitboards(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, p.verifyBoardCache(), p.board)
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	p := NewPosition()
	m := NewMove(SqE2, SqE4, Normal, PtNone)
	next := p.Apply(m)

	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, PieceNone, p.PieceAt(SqE4))
	assert.Equal(t, Black, next.SideToMove())
	assert.Equal(t, WhitePawn, next.PieceAt(SqE4))
	assert.Equal(t, PieceNone, next.PieceAt(SqE2))
}

func TestApplyDoublePushSetsEnPassant(t *testing.T) {
	p := NewPosition()
	next := p.Apply(NewMove(SqE2, SqE4, Normal, PtNone))
	assert.Equal(t, SqE3, next.EnPassantSquare())
}

func TestApplyCastlingMovesRook(t *testing.T) {
	p, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	next := p.Apply(NewMove(SqE1, SqG1, Castling, PtNone))
	assert.Equal(t, WhiteKing, next.PieceAt(SqG1))
	assert.Equal(t, WhiteRook, next.PieceAt(SqF1))
	assert.Equal(t, PieceNone, next.PieceAt(SqE1))
	assert.Equal(t, PieceNone, next.PieceAt(SqH1))
	assert.False(t, next.CastlingRights().Has(CastlingWhite))
	assert.True(t, next.CastlingRights().Has(CastlingBlack))
}

func TestApplySinglePushClearsEnPassantTarget(t *testing.T) {
	p, err := NewPositionFen("rnbqkbnr/1ppppppp/8/p7/4P3/8/PPPP1PPP/RNBQKBNR w KQkq a6 0 2")
	require.NoError(t, err)

	// an en-passant target that is not used is dropped by the next move;
	// the en-passant capture itself is covered end to end by
	// TestEnPassantLegalAfterDoublePush in the movegen package.
	next := p.Apply(NewMove(SqE4, SqE5, Normal, PtNone))
	assert.Equal(t, SqNone, next.EnPassantSquare())
}

func TestApplyCaptureResetsHalfMoveClock(t *testing.T) {
	p, err := NewPositionFen("4k3/8/8/8/3p4/8/2P5/4K3 w - - 10 20")
	require.NoError(t, err)
	next := p.Apply(NewMove(SqC2, SqC4, Normal, PtNone))
	assert.Equal(t, 0, next.HalfMoveClock())

	p2, err := NewPositionFen("4k3/8/8/8/3p4/2P5/8/4K3 w - - 10 20")
	require.NoError(t, err)
	next2 := p2.Apply(NewMove(SqC3, SqD4, Normal, PtNone))
	assert.Equal(t, 0, next2.HalfMoveClock())
	assert.Equal(t, PieceNone, next2.PieceAt(SqC3))
	assert.Equal(t, WhitePawn, next2.PieceAt(SqD4))
}

func TestApplyFullMoveNumberIncrementsAfterBlack(t *testing.T) {
	p := NewPosition()
	afterWhite := p.Apply(NewMove(SqE2, SqE4, Normal, PtNone))
	assert.Equal(t, 1, afterWhite.FullMoveNumber())
	afterBlack := afterWhite.Apply(NewMove(SqE7, SqE5, Normal, PtNone))
	assert.Equal(t, 2, afterBlack.FullMoveNumber())
}

func TestApplyPromotion(t *testing.T) {
	p, err := NewPositionFen("8/P7/8/8/8/8/8/4K2k w - - 0 1")
	require.NoError(t, err)
	next := p.Apply(NewMove(SqA7, SqA8, Promotion, Queen))
	assert.Equal(t, WhiteQueen, next.PieceAt(SqA8))
	assert.Equal(t, PieceNone, next.PieceAt(SqA7))
}

func TestKingSquare(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
}
