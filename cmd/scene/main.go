// Command scene loads TOML scene files and lays them out.
//
// Usage:
//
//	scene layout dashboard.toml          Print the settled layout as a table
//	scene render -o out.png dashboard.toml
//	scene dot --svg -o tree.svg dashboard.toml
//	scene serve --addr :8080 dashboard.toml
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := newCLI(os.Stdout, os.Stderr)
	if err := c.rootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
