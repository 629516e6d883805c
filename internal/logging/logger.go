// Package logging provides the leveled console logger used by every command.
// Lines look like "2006-01-02 15:04:05 [LEVEL] text"; the level tag is
// colored on a TTY, errors go to stderr, and an optional log file receives
// the same lines without color.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/backmassage/partname/internal/config"
	"github.com/backmassage/partname/internal/term"
	"github.com/sirupsen/logrus"
)

// labelKey carries a custom level tag (SUCCESS) through a logrus entry.
const labelKey = "label"

const timeLayout = "2006-01-02 15:04:05"

// Logger provides leveled, optionally colored logging with optional file sink.
// It is a thin facade over a logrus logger whose own output is discarded;
// the console and file sinks are logrus hooks.
type Logger struct {
	log  *logrus.Logger
	file *os.File
}

// New configures colors from cfg, writes console lines to stdout (errors to
// stderr) and optionally opens cfg.LogFile. Call Close() when done if LogFile
// was set.
func New(cfg *config.Config, stdout, stderr io.Writer) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	lg := logrus.New()
	lg.SetOutput(io.Discard)
	lg.SetLevel(logrus.InfoLevel)
	if cfg.Verbose {
		lg.SetLevel(logrus.DebugLevel)
	}
	lg.AddHook(&consoleHook{out: stdout, errOut: stderr})

	l := &Logger{log: lg}
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		lg.AddHook(&writerHook{w: f})
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

// Success logs at SUCCESS level (green). Gated like Info.
func (l *Logger) Success(format string, args ...interface{}) {
	l.log.WithField(labelKey, "SUCCESS").Infof(format, args...)
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log.Warnf(format, args...)
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

// Debug logs at DEBUG level (cyan) only when the config asked for verbose output.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

// --- hooks ---

// consoleHook writes colored lines to stdout, errors to stderr.
type consoleHook struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
}

func (h *consoleHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *consoleHook) Fire(e *logrus.Entry) error {
	label := levelLabel(e)
	out := h.out
	if e.Level <= logrus.ErrorLevel {
		out = h.errOut
	}
	line := e.Time.Format(timeLayout) + " [" + label + "] " + e.Message + "\n"
	if color := levelColor(label); color != "" {
		line = e.Time.Format(timeLayout) + " " + color + "[" + label + "]" + term.NC + " " + e.Message + "\n"
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(out, line)
	return err
}

// writerHook writes plain lines to w (the log file).
type writerHook struct {
	mu sync.Mutex
	w  io.Writer
}

func (h *writerHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *writerHook) Fire(e *logrus.Entry) error {
	line := e.Time.Format(timeLayout) + " [" + levelLabel(e) + "] " + e.Message + "\n"
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line)
	return err
}

func levelLabel(e *logrus.Entry) string {
	if v, ok := e.Data[labelKey].(string); ok {
		return v
	}
	switch e.Level {
	case logrus.WarnLevel:
		return "WARN"
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return "ERROR"
	default:
		return strings.ToUpper(e.Level.String())
	}
}

func levelColor(label string) string {
	switch label {
	case "INFO":
		return term.Blue
	case "SUCCESS":
		return term.Green
	case "WARN":
		return term.Yellow
	case "ERROR":
		return term.Red
	case "DEBUG":
		return term.Cyan
	}
	return ""
}
