package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Format selects how log lines are encoded.
type Format int

const (
	// FormatJSON writes one JSON object per line; used for log files.
	FormatJSON Format = iota
	// FormatConsole writes colourless, human-oriented lines for a terminal.
	FormatConsole
)

// Logger is the structured logger shared by the catalog client, the session
// and the browser. A nil *Logger discards everything.
type Logger struct {
	base zerolog.Logger
}

// New builds a logger writing to w. An empty level means info; "disabled"
// silences the logger entirely.
func New(w io.Writer, level string, format Format) (*Logger, error) {
	if w == nil {
		return nil, fmt.Errorf("logger: nil writer")
	}

	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		lvl = parsed
	}

	if format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly}
	}

	return &Logger{base: zerolog.New(w).Level(lvl).With().Timestamp().Logger()}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// With returns a derived logger carrying one extra field.
func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Interface(key, value).Logger()}
}

// WithFields returns a derived logger carrying every field in fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Fields(fields).Logger()}
}

func (l *Logger) Debug(msg string) { l.write(zerolog.DebugLevel, nil, msg) }
func (l *Logger) Info(msg string)  { l.write(zerolog.InfoLevel, nil, msg) }
func (l *Logger) Warn(msg string)  { l.write(zerolog.WarnLevel, nil, msg) }

// Debugf and Infof format msg only when the level is enabled.
func (l *Logger) Debugf(format string, args ...any) { l.writef(zerolog.DebugLevel, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.writef(zerolog.InfoLevel, format, args...) }

// Error logs msg at error level with err attached under "error".
func (l *Logger) Error(err error, msg string) { l.write(zerolog.ErrorLevel, err, msg) }

func (l *Logger) write(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.WithLevel(level)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}

func (l *Logger) writef(level zerolog.Level, format string, args ...any) {
	if l == nil {
		return
	}
	l.base.WithLevel(level).Msgf(format, args...)
}
