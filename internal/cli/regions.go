package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/urutau-nz/dash-evaluating-proximity/pkg/diagram"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/pipeline"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/sheet"
)

// regionsCommand creates the regions command: the containment tree as
// indented text, DOT, or a rendered SVG.
func (c *CLI) regionsCommand() *cobra.Command {
	var sheetPath, dotPath, svgPath string

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "Show the region containment tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(true)
			if err != nil {
				return err
			}
			s, err := runner.Load(cmd.Context(), pipeline.Options{SheetPath: sheetPath})
			if err != nil {
				return err
			}

			if dotPath == "" && svgPath == "" {
				printTree(s.Tree, s.Tree.Root(), 0)
				return nil
			}

			dot := diagram.ToDOT(s.Tree, diagram.Options{Selectors: true})
			if dotPath != "" {
				if err := os.WriteFile(dotPath, []byte(dot), 0o644); err != nil {
					return err
				}
				printFile(dotPath)
			}
			if svgPath != "" {
				svg, err := diagram.RenderSVG(dot)
				if err != nil {
					return err
				}
				if err := os.WriteFile(svgPath, svg, 0o644); err != nil {
					return err
				}
				printFile(svgPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sheetPath, "sheet", "s", "", "sheet TOML file (default: built-in dashboard sheet)")
	cmd.Flags().StringVar(&dotPath, "dot", "", "write the tree as Graphviz DOT to this file")
	cmd.Flags().StringVar(&svgPath, "svg", "", "render the tree as SVG to this file")
	return cmd
}

// printTree prints the containment tree depth-first with indentation.
func printTree(t *sheet.Tree, id sheet.RegionID, depth int) {
	r, _ := t.Get(id)
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	line := indent + StyleValue.Render(string(id))
	if r.Selector != string(id) {
		line += " " + StyleDim.Render(r.Selector)
	}
	fmt.Println(line)
	for _, child := range t.Children(id) {
		printTree(t, child, depth+1)
	}
}
