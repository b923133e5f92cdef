package main

import (
	"log/slog"
	"os"
)

func main() {
	deps, err := NewDependencies()
	if err != nil {
		slog.Error("failed to initialize", slog.Any("error", err))
		os.Exit(1)
	}

	if err := deps.Scheduler.Start(); err != nil {
		deps.Logger.Error("failed to start scheduler", slog.Any("error", err))
		os.Exit(1)
	}
	defer deps.Scheduler.Stop()

	if err := deps.API.Start(); err != nil {
		deps.Logger.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}
