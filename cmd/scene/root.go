package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-scene/internal/debug"
	"github.com/grindlemire/go-scene/internal/scenefile"
)

const version = "0.1.0"

// cli holds state shared by all commands.
type cli struct {
	out    io.Writer
	logger *log.Logger
}

func newCLI(out, errOut io.Writer) *cli {
	return &cli{
		out:    out,
		logger: debug.New(errOut, log.InfoLevel),
	}
}

func (c *cli) rootCommand() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "scene",
		Short:        "Lay out, render and inspect TOML scene files",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.logger.SetLevel(log.DebugLevel)
				debug.SetLogger(c.logger.WithPrefix("scene"))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.SetOut(c.out)

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.serveCommand())
	return root
}

// build loads and settles a scene file on the calling goroutine.
func (c *cli) build(path string) (*scenefile.Built, error) {
	doc, err := scenefile.Load(path)
	if err != nil {
		return nil, err
	}
	b, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.logger.Debug("scene built", "file", path, "nodes", b.Scene.NodeCount(), "window", b.Window.Name())
	return b, nil
}

// output returns where a command writes: the named file, or stdout.
func (c *cli) output(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return c.out, func() error { return nil }, nil
	}
	f, err := createFile(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
