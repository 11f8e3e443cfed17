// Command datablock inspects and exercises CosmoSIS datablocks through the
// Go binding. It is a development aid: the binding itself is a library and
// carries no CLI surface of its own.
package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// logLevel is adjusted by the --log-level flag before any command runs.
var logLevel = &slog.LevelVar{}

func main() {
	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      logLevel,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))
	slog.SetDefault(logger)

	Execute()
}
