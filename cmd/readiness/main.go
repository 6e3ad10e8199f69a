package main

import (
	"context"
	"os"
	"os/signal"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Ctrl-C cancels in-flight probes; the remaining checks still report.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
