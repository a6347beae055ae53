// SPDX-License-Identifier: EPL-2.0

// Package log writes leveled diagnostics to stderr.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

type Level int

const (
	LevelNone Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var (
	mu     sync.Mutex
	level            = LevelWarn
	out    io.Writer = os.Stderr
	indent int

	cyan   = color.New(color.FgCyan)
	yellow = color.New(color.FgYellow)
)

// SetLevel changes the verbosity for the whole process.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// CurrentLevel returns the verbosity set by SetLevel.
func CurrentLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return level
}

// SetOutput redirects all messages to w. It returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

func Warnf(f string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if LevelWarn <= level {
		yellow.Fprintf(out, "[WARNING] "+f+"\n", args...)
	}
}

func Infof(f string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if LevelInfo <= level {
		fmt.Fprintf(out, f+"\n", args...)
	}
}

func Debugf(f string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if LevelDebug <= level {
		cyan.Fprintf(out, strings.Repeat("  ", indent)+f+"\n", args...)
	}
}

// Enter indents the following debug lines one step.
func Enter() {
	mu.Lock()
	indent++
	mu.Unlock()
}

// Leave undoes one Enter.
func Leave() {
	mu.Lock()
	if indent > 0 {
		indent--
	}
	mu.Unlock()
}
