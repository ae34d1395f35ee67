// Command uidemo drives the layout engine on a real terminal and manages
// its configuration file.
//
// Usage:
//
//	uidemo run [--config ui.toml] [--debug-log ui.log]
//	uidemo config init [path] [--force]
//	uidemo config show [--config ui.toml]
//	uidemo version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
