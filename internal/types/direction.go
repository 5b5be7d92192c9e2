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

// Direction is a square index delta for one-step shifts.
type Direction int

const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = North + East
	Northwest Direction = North + West
	Southeast Direction = South + East
	Southwest Direction = South + West
)

// Orientation indexes the eight ray directions. No code in this module
// currently uses it.
type Orientation int

const (
	N Orientation = iota
	E
	S
	W
	NE
	NW
	SE
	SW
	orientationLength
)

// FileDistance returns the absolute distance in files between two files.
func FileDistance(f1, f2 File) int {
	return abs(int(f2) - int(f1))
}

// RankDistance returns the absolute distance in ranks between two ranks.
func RankDistance(r1, r2 Rank) int {
	return abs(int(r2) - int(r1))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
