package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/urutau-nz/dash-evaluating-proximity/pkg/pipeline"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/resolve"
)

// snapshotCommand creates the snapshot command: the full resolved layout at
// one width, as JSON.
func (c *CLI) snapshotCommand() *cobra.Command {
	var sheetPath, output string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "snapshot WIDTH",
		Short: "Print the full resolved layout at a viewport width",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("width must be an integer, got %q", args[0])
			}

			runner, err := c.newRunner(noCache)
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

			snap, cached, err := runner.SnapshotWithCacheInfo(cmd.Context(), res, width, false)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			printSuccess("Wrote snapshot at %dpx", width)
			printStats(len(snap.Regions), len(snap.Bands), cached)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&sheetPath, "sheet", "s", "", "sheet TOML file (default: built-in dashboard sheet)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the snapshot cache")
	return cmd
}
