// Command gendergap builds dense annual gender-gap series from CSV
// observations and reports frames, gaps and decade averages.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sartorproj/gendergap/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
