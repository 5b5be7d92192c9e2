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

// Rook attacks are split into a rank table and a file table: the rank
// half of the occupancy maps to its index by a plain shift (the six
// inner squares of a rank already sit in contiguous, low-order bits
// once masked), the file half needs an actual magic multiply since its
// six relevant squares are spread 8 bits apart. One magic per file is
// enough since every square on a file sees the same spacing.
//
// Bishop attacks are split the same way across the two diagonal
// families (a1-h8 and a8-h1); both halves need a magic multiply since
// neither diagonal's relevant squares are contiguous.
//
// Magic numbers are hard-coded, not searched for at runtime: see
// https://www.chessprogramming.org/Magic_Bitboards.
var (
	rankMask  [SqLength]Bitboard
	rankShift [SqLength]uint

	fileMask  [SqLength]Bitboard
	fileMagic [SqLength]Bitboard

	rankAttacks [SqLength][64]Bitboard
	fileAttacks [SqLength][64]Bitboard

	a1h8Mask  [SqLength]Bitboard
	a1h8Magic [SqLength]Bitboard

	a8h1Mask  [SqLength]Bitboard
	a8h1Magic [SqLength]Bitboard

	a1h8Attacks [SqLength][64]Bitboard
	a8h1Attacks [SqLength][64]Bitboard

	pseudoAttacks [PtLength][SqLength]Bitboard
	pawnAttacks   [ColorLength][SqLength]Bitboard
)

// magicFile holds one magic multiplier per file, used to index a
// rook's file-attack table.
var magicFile = [8]Bitboard{
	0x8040201008040200,
	0x4020100804020100,
	0x2010080402010080,
	0x1008040201008040,
	0x0804020100804020,
	0x0402010080402010,
	0x0201008040201008,
	0x0100804020100804,
}

// magicA1H8 and magicA8H1 hold one magic multiplier per diagonal of
// the respective family (index 7 is the long diagonal through the
// corner). The four shortest diagonals (length 1 and 2) have no inner
// squares, so their masks are empty and their zero multipliers never
// affect the lookup index.
var magicA1H8 = [15]Bitboard{
	0x0,
	0x0,
	0x0101010101010100,
	0x0101010101010100,
	0x0101010101010100,
	0x0101010101010100,
	0x0101010101010100,
	0x0101010101010100,
	0x8080808080808000,
	0x4040404040400000,
	0x2020202020000000,
	0x1010101000000000,
	0x0808080000000000,
	0x0,
	0x0,
}

var magicA8H1 = [15]Bitboard{
	0x0,
	0x0,
	0x0101010101010100,
	0x0101010101010100,
	0x0101010101010100,
	0x0101010101010100,
	0x0101010101010100,
	0x0101010101010100,
	0x0080808080808080,
	0x0040404040404040,
	0x0020202020202020,
	0x0010101010101010,
	0x0008080808080808,
	0x0,
	0x0,
}

var rankDirections = []Direction{East, West}
var fileDirections = []Direction{North, South}
var a1h8Directions = []Direction{Northeast, Southwest}
var a8h1Directions = []Direction{Northwest, Southeast}

func init() {
	initNonSliderAttacks()
	initRookMagics()
	initBishopMagics()
}

// initNonSliderAttacks precomputes the king, knight and pawn attack
// tables by stepping from every square in every direction and masking
// off anything that would wrap around a board edge.
func initNonSliderAttacks() {
	kingSteps := []Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}
	knightSteps := [][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}

	for sq := SqA1; sq <= SqH8; sq++ {
		for _, d := range kingSteps {
			if to := sq.To(d); to.IsValid() {
				pseudoAttacks[King][sq] |= to.Bb()
			}
		}
		for _, step := range knightSteps {
			f := int(sq.FileOf()) + step[0]
			r := int(sq.RankOf()) + step[1]
			if f >= 0 && f < 8 && r >= 0 && r < 8 {
				pseudoAttacks[Knight][sq] |= SquareOf(File(f), Rank(r)).Bb()
			}
		}
		if to := sq.To(Northeast); to.IsValid() {
			pawnAttacks[White][sq] |= to.Bb()
		}
		if to := sq.To(Northwest); to.IsValid() {
			pawnAttacks[White][sq] |= to.Bb()
		}
		if to := sq.To(Southeast); to.IsValid() {
			pawnAttacks[Black][sq] |= to.Bb()
		}
		if to := sq.To(Southwest); to.IsValid() {
			pawnAttacks[Black][sq] |= to.Bb()
		}
	}
}

// initRookMagics builds the per-square rank/file masks, shifts and
// magic multipliers, then fills both attack tables by enumerating
// every real occupancy subset of each mask (Carry-Rippler) and
// recording the reference sliding attack at that occupancy's index.
func initRookMagics() {
	for sq := SqA1; sq <= SqH8; sq++ {
		rank := sq.RankOf()
		file := sq.FileOf()

		rankMask[sq] = rank.Bb() &^ (FileA_Bb | FileH_Bb)
		rankShift[sq] = uint(rank)*8 + 1

		fileMask[sq] = file.Bb() &^ (Rank1_Bb | Rank8_Bb)
		fileMagic[sq] = magicFile[file]

		for b := BbZero; ; {
			idx := (b & rankMask[sq]) >> rankShift[sq]
			rankAttacks[sq][idx] = slidingAttack(rankDirections, sq, b)

			b = (b - rankMask[sq]) & rankMask[sq]
			if b == BbZero {
				break
			}
		}
		for b := BbZero; ; {
			fIdx := (b & fileMask[sq]) * fileMagic[sq] >> 57
			fileAttacks[sq][fIdx] = slidingAttack(fileDirections, sq, b)

			b = (b - fileMask[sq]) & fileMask[sq]
			if b == BbZero {
				break
			}
		}
	}
}

// initBishopMagics is initRookMagics' counterpart for the two diagonal
// families.
func initBishopMagics() {
	for sq := SqA1; sq <= SqH8; sq++ {
		rank := int(sq.RankOf())
		file := int(sq.FileOf())

		a1h8Idx := 7 - rank + file
		a8h1Idx := rank + file

		a1h8Mask[sq] = sq.DiagA1H8() &^ Frame
		a1h8Magic[sq] = magicA1H8[a1h8Idx]

		a8h1Mask[sq] = sq.DiagA8H1() &^ Frame
		a8h1Magic[sq] = magicA8H1[a8h1Idx]

		for b := BbZero; ; {
			idx := (b & a1h8Mask[sq]) * a1h8Magic[sq] >> 57
			a1h8Attacks[sq][idx] = slidingAttack(a1h8Directions, sq, b)

			b = (b - a1h8Mask[sq]) & a1h8Mask[sq]
			if b == BbZero {
				break
			}
		}
		for b := BbZero; ; {
			idx2 := (b & a8h1Mask[sq]) * a8h1Magic[sq] >> 57
			a8h1Attacks[sq][idx2] = slidingAttack(a8h1Directions, sq, b)

			b = (b - a8h1Mask[sq]) & a8h1Mask[sq]
			if b == BbZero {
				break
			}
		}
	}
}

// slidingAttack walks outward from sq along each direction until (and
// including) the first blocker in occupied. Only used at table-build
// time, never on the move-generation hot path.
func slidingAttack(directions []Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for _, d := range directions {
		s := sq
		for {
			next := s.To(d)
			if !next.IsValid() {
				break
			}
			s = next
			attack |= s.Bb()
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// rookAttacksBb looks up a rook's attacks as the union of its rank and
// file sub-attacks.
func rookAttacksBb(sq Square, occupied Bitboard) Bitboard {
	rIdx := (occupied & rankMask[sq]) >> rankShift[sq]
	fIdx := (occupied & fileMask[sq]) * fileMagic[sq] >> 57
	return rankAttacks[sq][rIdx] | fileAttacks[sq][fIdx]
}

// bishopAttacksBb looks up a bishop's attacks as the union of its two
// diagonal-family sub-attacks.
func bishopAttacksBb(sq Square, occupied Bitboard) Bitboard {
	aIdx := (occupied & a1h8Mask[sq]) * a1h8Magic[sq] >> 57
	bIdx := (occupied & a8h1Mask[sq]) * a8h1Magic[sq] >> 57
	return a1h8Attacks[sq][aIdx] | a8h1Attacks[sq][bIdx]
}

// GetAttacksBb returns the attack bitboard of a piece of kind pt (not
// Pawn) standing on sq given the full board occupancy. Rook/Bishop/Queen
// use the magic-indexed tables; King/Knight use the direct pseudo-attack
// tables (occupied is ignored for those).
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return bishopAttacksBb(sq, occupied)
	case Rook:
		return rookAttacksBb(sq, occupied)
	case Queen:
		return bishopAttacksBb(sq, occupied) | rookAttacksBb(sq, occupied)
	default:
		return pseudoAttacks[pt][sq]
	}
}

// GetPawnAttacks returns the two diagonal capture squares of a pawn of
// the given color standing on sq (empty-board pseudo attack, no captures
// implied).
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}
