package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/urutau-nz/dash-evaluating-proximity/pkg/pipeline"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/resolve"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/sheet"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/style"
)

// resolveCommand creates the resolve command: one region at one width.
func (c *CLI) resolveCommand() *cobra.Command {
	var sheetPath string

	cmd := &cobra.Command{
		Use:   "resolve WIDTH REGION",
		Short: "Print the resolved styles of one region at a viewport width",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("width must be an integer, got %q", args[0])
			}

			runner, err := c.newRunner(true)
			if err != nil {
				return err
			}
			s, err := runner.Load(cmd.Context(), pipeline.Options{SheetPath: sheetPath})
			if err != nil {
				return err
			}
			res, err := resolve.New(s)
			if err != nil {
				return err
			}

			styles, err := res.Region(width, sheet.RegionID(args[1]))
			if err != nil {
				return err
			}

			printInfo("%s at %dpx", StyleHighlight.Render(args[1]), width)
			if bands := s.ActiveBands(width); len(bands) > 0 {
				printDetail("active bands: %v", bands)
			}
			fmt.Println(styleTable(styles))
			return nil
		},
	}

	cmd.Flags().StringVarP(&sheetPath, "sheet", "s", "", "sheet TOML file (default: built-in dashboard sheet)")
	return cmd
}

// styleTable renders a resolved style set as a two-column table in
// canonical property order.
func styleTable(styles resolve.Styles) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("PROPERTY", "VALUE")

	for _, p := range style.Properties {
		v, ok := styles[p]
		if !ok {
			continue
		}
		t.Row(string(p), v.CSS())
	}
	return t.Render()
}
