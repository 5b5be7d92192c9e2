//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds globally available configuration variables,
// either set by defaults, read from a config file, or set by command
// line options.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

// ConfFile holds the path to the used config file (relative to the
// working directory).
var ConfFile = "./config.toml"

// Settings is the global configuration, seeded with defaults and then
// overwritten field-by-field by whatever config.toml provides.
var Settings = conf{
	LogLevel:          4,
	PerftCacheEntries: 1 << 22,
	Workers:           0,
	DefaultDepth:      7,
	DefaultFen:        "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
}

var initialized = false

type conf struct {
	// LogLevel is a github.com/op/go-logging Level value.
	LogLevel int
	// PerftCacheEntries is the PerfT transposition cache size in entries,
	// rounded up to the next power of two.
	PerftCacheEntries int
	// Workers caps concurrently running root-move workers in the
	// parallel PerfT driver; 0 means runtime.GOMAXPROCS(0).
	Workers int
	// DefaultDepth and DefaultFen seed the CLI when no flags are given.
	DefaultDepth int
	DefaultFen   string
}

// Setup reads ConfFile into Settings, keeping the compiled-in default
// for any field the file doesn't set. A missing or malformed file is
// not fatal: it's logged and the defaults apply.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config file not found or unreadable, using defaults (", err, ")")
	}
	initialized = true
}
