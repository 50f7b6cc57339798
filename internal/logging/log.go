package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	// Level is one of debug, info, warn or error. Anything else means info.
	Level string
	// File, when set, sends output to a size-rotated file instead of Out.
	File string
	// Out defaults to stdout.
	Out io.Writer
}

func ParseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// New returns a JSON logger tagged with component. The returned closer
// releases the log file, if any.
func New(component string, o Options) (*slog.Logger, io.Closer) {
	var w io.Writer = os.Stdout
	var c io.Closer = nopCloser{}
	switch {
	case o.File != "":
		lj := &lumberjack.Logger{
			Filename:   o.File,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		w, c = lj, lj
	case o.Out != nil:
		w = o.Out
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(o.Level)})
	return slog.New(h).With("component", component), c
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
