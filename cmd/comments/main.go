package main

import (
	"log/slog"
	"os"

	"commentsview/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}
