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

// Package logging is a thin helper over "github.com/op/go-logging" that
// hands out preconfigured *logging.Logger instances, one per named
// component, plus a shared printer for grouped-digit number formatting
// (node counts in the millions read a lot better as "4.865.609" than as
// a bare run of seven digits).
package logging

import (
	stdlog "log"
	"os"
	"sync"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bvargas/chessperft/internal/config"
)

// Out is the shared number-formatting printer used wherever the engine
// prints a node count.
var Out = message.NewPrinter(language.German)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`,
)

var (
	mu      sync.Mutex
	loggers = map[string]*logging.Logger{}
)

// Get returns the named logger, creating and configuring it on first
// use. Every call for the same name returns the same backend-configured
// instance; the configured level is read from config.Settings.LogLevel at
// creation time.
func Get(name string) *logging.Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[name]; ok {
		return l
	}

	backend := logging.NewLogBackend(os.Stdout, "", stdlog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.Settings.LogLevel), "")

	l := logging.MustGetLogger(name)
	l.SetBackend(leveled)
	loggers[name] = l
	return l
}
