package log_test

import (
	"log/slog"
	"os"

	"github.com/ardnew/sitegen/log"
)

func Example_basic() {
	logger := log.Make(os.Stdout, log.WithTimeLayout("none"), log.WithPretty(false))
	logger.Info("build complete", slog.Int("files", 3))
	// Output: level=INFO msg="build complete" files=3
}

func Example_levels() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelWarn),
		log.WithTimeLayout("none"),
		log.WithPretty(false))
	logger.Info("info message")
	logger.Warn("unused keys", slog.Int("count", 2))
	// Output: level=WARN msg="unused keys" count=2
}
