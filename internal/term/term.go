// Package term holds the ANSI color sequences shared by the logger and the
// banner, plus TTY detection.
//
// The sequences are plain package variables. While colors are off they are
// empty, so callers concatenate them unconditionally.
package term

import (
	"os"
	"strings"

	"github.com/backmassage/partname/internal/config"
	xterm "golang.org/x/term"
)

// Color sequences, empty while colors are off.
var (
	Red     string
	Green   string
	Yellow  string
	Blue    string
	Cyan    string
	Magenta string
	NC      string // Reset.
)

// palette pairs each sequence variable with its bright ANSI code.
var palette = []struct {
	v    *string
	code string
}{
	{&Red, "\033[1;91m"},
	{&Green, "\033[1;92m"},
	{&Yellow, "\033[1;93m"},
	{&Blue, "\033[1;94m"},
	{&Magenta, "\033[1;95m"},
	{&Cyan, "\033[1;96m"},
	{&NC, "\033[0m"},
}

// Configure turns colors on or off for mode. [logging.New] calls it once.
func Configure(mode config.ColorMode) {
	on := wantColor(mode, os.Stdout, os.Getenv)
	for _, p := range palette {
		*p.v = ""
		if on {
			*p.v = p.code
		}
	}
}

// Enabled reports whether colors are on.
func Enabled() bool { return NC != "" }

// wantColor decides auto mode from the stream and the NO_COLOR
// (https://no-color.org) and TERM variables.
func wantColor(mode config.ColorMode, out *os.File, getenv func(string) string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if getenv("NO_COLOR") != "" || strings.EqualFold(getenv("TERM"), "dumb") {
		return false
	}
	return IsTerminal(out)
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	return f != nil && xterm.IsTerminal(int(f.Fd()))
}
