package dd

import (
	"log/slog"
	"os"
)

// Tests log at debug level unless DD_TEST_LOG_LEVEL says otherwise
func init() {
	level := new(slog.LevelVar)
	level.Set(slog.LevelDebug)
	if s, ok := os.LookupEnv("DD_TEST_LOG_LEVEL"); ok {
		_ = level.UnmarshalText([]byte(s))
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
