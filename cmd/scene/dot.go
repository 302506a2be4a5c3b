package main

import (
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-scene/internal/dot"
)

func (c *cli) dotCommand() *cobra.Command {
	var (
		output   string
		detailed bool
		svg      bool
	)
	cmd := &cobra.Command{
		Use:   "dot [file]",
		Short: "Write the node tree of a scene file as Graphviz DOT or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := c.build(args[0])
			if err != nil {
				return err
			}
			src := dot.ToDOT(b.Window.Snapshot(), dot.Options{Detailed: detailed})
			data := []byte(src)
			if svg {
				if data, err = dot.RenderSVG(cmd.Context(), src); err != nil {
					return err
				}
			}

			w, closeFn, err := c.output(output)
			if err != nil {
				return err
			}
			if _, err := w.Write(data); err != nil {
				_ = closeFn()
				return err
			}
			return closeFn()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output path, - for stdout")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include policy, state and geometry in labels")
	cmd.Flags().BoolVar(&svg, "svg", false, "render SVG with Graphviz instead of writing DOT")
	return cmd
}
