package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/urutau-nz/dash-evaluating-proximity/pkg/pipeline"
)

// checkCommand creates the check command for validating a sheet.
func (c *CLI) checkCommand() *cobra.Command {
	var sheetPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a sheet and report its breakpoint structure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(true)
			if err != nil {
				return err
			}

			s, err := runner.Load(cmd.Context(), pipeline.Options{SheetPath: sheetPath})
			if err != nil {
				printError("Sheet is invalid")
				return err
			}

			printSuccess("Sheet %s is valid", StyleHighlight.Render(s.Name))
			printKeyValue("regions", fmt.Sprintf("%d", s.Tree.Len()))
			printKeyValue("bands", fmt.Sprintf("%d", len(s.Bands)))
			printKeyValue("hash", s.Hash()[:12])

			thresholds := s.Thresholds()
			parts := make([]string, len(thresholds))
			for i, t := range thresholds {
				parts[i] = fmt.Sprintf("%d", t)
			}
			printKeyValue("thresholds", strings.Join(parts, " "))

			printNewline()
			for _, b := range s.Bands {
				cond := b.MediaQuery()
				if cond == "" {
					cond = "all widths"
				}
				printDetail("%-12s %s (%d decls)", b.Name, cond, len(b.Decls))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sheetPath, "sheet", "s", "", "sheet TOML file (default: built-in dashboard sheet)")
	return cmd
}
