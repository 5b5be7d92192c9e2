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

// chessperft is the command line wrapper around the engine: it parses a
// depth and FEN, runs PerfT, and prints the resulting node count.
package main

import (
	"flag"
	"time"

	"github.com/pkg/profile"

	"github.com/bvargas/chessperft/internal/config"
	"github.com/bvargas/chessperft/internal/logging"
	"github.com/bvargas/chessperft/internal/notation"
	"github.com/bvargas/chessperft/internal/perft"
	"github.com/bvargas/chessperft/internal/position"
	"github.com/bvargas/chessperft/internal/util"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	depth := flag.Int("depth", 0, "perft search depth (0 uses the config/default depth)")
	fen := flag.String("fen", "", "FEN of the position to search (empty uses the config/default FEN)")
	cacheEntries := flag.Int("cache", 0, "transposition cache size in entries, rounded up to a power of two (0 uses the config/default size)")
	serial := flag.Bool("serial", false, "run the single-threaded driver instead of the parallel root")
	divide := flag.Bool("divide", false, "print the per-root-move leaf count breakdown")
	doProfile := flag.Bool("profile", false, "write a CPU profile of the run to the working directory")
	memStats := flag.Bool("memstats", false, "print heap/GC statistics before and after the run")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()

	if *doProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	log := logging.Get("perft")

	d := *depth
	if d == 0 {
		d = config.Settings.DefaultDepth
	}
	f := *fen
	if f == "" {
		f = config.Settings.DefaultFen
	}
	entries := *cacheEntries
	if entries == 0 {
		entries = config.Settings.PerftCacheEntries
	}

	pos, err := position.NewPositionFen(f)
	if err != nil {
		log.Errorf("could not parse FEN %q: %v", f, err)
		return
	}

	log.Infof("perft depth=%d fen=%q cache=%d entries", d, f, entries)
	logging.Out.Println(notation.DisplayBoard(&pos))

	if *memStats {
		log.Info(util.MemStat())
	}

	cache := perft.NewCache(entries)
	defer util.TimeTrack(time.Now(), "perft run")

	start := time.Now()
	var nodes uint64
	if *serial {
		nodes = perft.Serial(&pos, d, cache)
	} else {
		nodes = perft.Parallel(&pos, d, cache)
	}
	elapsed := time.Since(start)

	logging.Out.Printf("perft(%d) = %d  (%s, %d nps)\n", d, nodes, elapsed, util.Nps(nodes, elapsed))

	if *memStats {
		log.Info(util.GcWithStats())
	}
	stats := cache.Stats()
	log.Infof("cache hits=%d misses=%d", stats.Hits, stats.Misses)

	if *divide {
		for _, e := range perft.Divide(&pos, d, cache) {
			logging.Out.Printf("%s: %d\n", notation.FormatMove(e.Move), e.Count)
		}
	}
}
