package utils

import (
	"log/slog"

	"github.com/go-kit/log"
	slgk "github.com/tjhop/slog-gokit"
)

// SlogFromGoKit returns slog adapter for a go-kit logger.
// All log levels are enabled (no level filtering).
func SlogFromGoKit(logger log.Logger) *slog.Logger {
	return SlogFromGoKitWithLevel(logger, slog.LevelDebug)
}

// SlogFromGoKitWithLevel returns slog adapter for a go-kit logger that drops records below minLevel.
func SlogFromGoKitWithLevel(logger log.Logger, minLevel slog.Level) *slog.Logger {
	lvl := slog.LevelVar{}
	lvl.Set(minLevel)
	return slog.New(slgk.NewGoKitHandler(logger, &lvl))
}
