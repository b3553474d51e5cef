package main

import (
	"log/slog"
	"os"

	"github.com/phsym/console-slog"
)

const timeFormat string = "2006-01-02 15:04:05.000" // may be time.DateTime

var logLevel = new(slog.LevelVar)

func init() {
	logLevel.Set(slog.LevelInfo)
	setDefaultLogger(logLevel)
}

// setDefaultLogger logs to stderr, the stdout is reserved for config output
func setDefaultLogger(level slog.Leveler) {
	handler := console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level:      level,
		TimeFormat: timeFormat,
	})
	log := slog.New(handler)
	slog.SetDefault(log)
}
