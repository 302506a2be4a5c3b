package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	scene "github.com/grindlemire/go-scene"
)

var (
	colorDim     = lipgloss.Color("240")
	colorGray    = lipgloss.Color("245")
	colorYellow  = lipgloss.Color("214")
	headerStyle  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	pendingStyle = lipgloss.NewStyle().Foreground(colorYellow)
	hiddenStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

func (c *cli) layoutCommand() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Print the settled layout of a scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := c.build(args[0])
			if err != nil {
				return err
			}
			if width <= 0 {
				width = terminalWidth(int(os.Stdout.Fd()))
			}
			fmt.Fprintln(c.out, layoutTable(b.Window.Snapshot(), width))
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "table width in cells (default: terminal width)")
	return cmd
}

// layoutTable renders one row per node, indented by depth.
func layoutTable(snap scene.Snapshot, width int) string {
	var (
		rows  [][]string
		nodes []*scene.NodeSnapshot
	)
	snap.Walk(func(n *scene.NodeSnapshot, depth int) {
		nodes = append(nodes, n)
		rows = append(rows, []string{
			strings.Repeat("  ", depth) + n.Label(),
			n.Policy,
			n.State,
			fmtSize(n.Desired),
			fmtRect(n.Bounds),
			n.Pending,
		})
	})

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Node", "Policy", "State", "Desired", "Bounds", "Pending").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < 0 || row >= len(nodes) {
				return base
			}
			switch n := nodes[row]; {
			case !n.Visible:
				return base.Inherit(hiddenStyle)
			case n.Pending != "":
				return base.Inherit(pendingStyle)
			}
			return base
		})
	if width > 0 {
		t = t.Width(width)
	}

	title := fmt.Sprintf("%s  %gx%g", snap.Window, snap.Client.Width, snap.Client.Height)
	return headerStyle.Render(title) + "\n" + t.Render()
}

func fmtSize(s *scene.Size) string {
	if s == nil {
		return "-"
	}
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

func fmtRect(r *scene.Rect) string {
	if r == nil {
		return "-"
	}
	return fmt.Sprintf("%g,%g %gx%g", r.X, r.Y, r.Width, r.Height)
}
