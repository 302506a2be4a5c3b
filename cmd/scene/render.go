package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-scene/internal/compositor"
)

func (c *cli) renderCommand() *cobra.Command {
	var (
		output string
		labels bool
	)
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Paint the settled visual tree of a scene file to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := c.build(args[0])
			if err != nil {
				return err
			}
			tree := b.Window.Visuals()
			if tree == nil {
				return errors.New("window has no retained visual tree")
			}
			client := b.Window.ClientSize()
			width, height := int(math.Ceil(client.Width)), int(math.Ceil(client.Height))
			if width == 0 || height == 0 {
				return fmt.Errorf("window %q has an empty client area", b.Window.Name())
			}

			w, closeFn, err := c.output(output)
			if err != nil {
				return err
			}
			p := compositor.DefaultPainter()
			p.Labels = labels
			if err := p.EncodePNG(w, tree, width, height); err != nil {
				_ = closeFn()
				return fmt.Errorf("encoding png: %w", err)
			}
			if err := closeFn(); err != nil {
				return err
			}
			c.logger.Info("rendered", "file", args[0], "output", output, "width", width, "height", height)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "scene.png", "output PNG path, - for stdout")
	cmd.Flags().BoolVar(&labels, "labels", true, "draw node names")
	return cmd
}
