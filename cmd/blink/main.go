package main

import (
	"log/slog"

	"blink"
)

// The process reports status 0 for both a normal shutdown and a startup
// failure; failures only show up in the log.
func main() {
	sys, err := blink.NewSystem()
	if err != nil {
		slog.Error("starting blink", "error", err)
		return
	}
	window := blink.NewMainWindow()
	if err := window.Show(sys); err != nil {
		slog.Error("running blink", "error", err)
	}
}
