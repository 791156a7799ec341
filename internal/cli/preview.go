package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/urutau-nz/dash-evaluating-proximity/pkg/dashboard"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/pipeline"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/resolve"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/sheet"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/style"
)

// previewStep is the width change per arrow key press.
const previewStep = 10

// previewRegions are the regions shown in the preview table, chosen to make
// every breakpoint visible while stepping.
var previewRegions = []struct {
	id    sheet.RegionID
	props []style.Property
}{
	{"top-row", []style.Property{style.FlexDirection, style.Margin}},
	{"top-row-graphs", []style.Property{style.FlexDirection}},
	{"map-container", []style.Property{style.Margin}},
	{"map", []style.Property{style.Height}},
	{"ecdf-container", []style.Property{style.MarginBottom}},
	{"ecdf-text", []style.Property{style.FontSize}},
	{"graph-title", []style.Property{style.FontSize}},
	{"banner-title", []style.Property{style.FontSize}},
	{"bottom-row", []style.Property{style.MarginTop}},
}

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var sheetPath string
	var startWidth int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Step through viewport widths interactively",
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
			res, err := resolve.New(s)
			if err != nil {
				return err
			}

			m := newPreviewModel(res, startWidth)
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&sheetPath, "sheet", "s", "", "sheet TOML file (default: built-in dashboard sheet)")
	cmd.Flags().IntVarP(&startWidth, "width", "w", 1200, "starting viewport width")
	return cmd
}

// =============================================================================
// previewModel - Interactive width stepping
// =============================================================================

// previewModel is the bubbletea model for the breakpoint preview.
type previewModel struct {
	resolver   *resolve.Resolver
	width      int
	thresholds []int
	amenities  []dashboard.Amenity
	amenity    int
	termWidth  int
}

func newPreviewModel(res *resolve.Resolver, width int) previewModel {
	if width < 0 {
		width = 0
	}
	return previewModel{
		resolver:   res,
		width:      width,
		thresholds: res.Sheet().Thresholds(),
		amenities:  dashboard.Amenities(),
		termWidth:  80,
	}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.width -= previewStep
			if m.width < 0 {
				m.width = 0
			}
		case "right", "l":
			m.width += previewStep
		case "[":
			m.width = m.prevThreshold()
		case "]":
			m.width = m.nextThreshold()
		case "a":
			m.amenity = (m.amenity + 1) % len(m.amenities)
		}
	}
	return m, nil
}

// prevThreshold returns the largest threshold below the current width, or 0.
func (m previewModel) prevThreshold() int {
	prev := 0
	for _, t := range m.thresholds {
		if t < m.width {
			prev = t
		}
	}
	return prev
}

// nextThreshold returns the smallest threshold above the current width, or
// the current width when already past the last one.
func (m previewModel) nextThreshold() int {
	for _, t := range m.thresholds {
		if t > m.width {
			return t
		}
	}
	return m.width
}

// rulerMax is the viewport width mapped to the ruler's right edge.
const rulerMax = 1800

// ruler draws the breakpoint thresholds on a horizontal scale with a
// marker at the current width.
func (m previewModel) ruler() string {
	cols := m.termWidth - 4
	if cols < 20 {
		cols = 20
	}
	cell := func(w int) int {
		c := w * (cols - 1) / rulerMax
		if c > cols-1 {
			c = cols - 1
		}
		return c
	}

	line := make([]rune, cols)
	for i := range line {
		line[i] = '─'
	}
	for _, t := range m.thresholds {
		line[cell(t)] = '┬'
	}
	line[cell(m.width)] = '●'
	return StyleDim.Render("  "+string(line[:cell(m.width)])) +
		StyleHighlight.Render(string(line[cell(m.width)])) +
		StyleDim.Render(string(line[cell(m.width)+1:]))
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Breakpoint Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ step  [/] jump breakpoint  a amenity  q quit"))
	b.WriteString("\n\n")

	b.WriteString(StyleHighlight.Render(fmt.Sprintf("viewport %dpx", m.width)))
	if bands := m.resolver.Sheet().ActiveBands(m.width); len(bands) > 0 {
		b.WriteString(StyleDim.Render("  " + strings.Join(bands, " ")))
	}
	b.WriteString("\n")
	b.WriteString(m.ruler())
	b.WriteString("\n")

	am := m.amenities[m.amenity]
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(am.Color))
	b.WriteString(StyleDim.Render("amenity: ") + swatch.Render("■ "+am.Label))
	b.WriteString("\n\n")

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("REGION", "PROPERTY", "VALUE")
	for _, pr := range previewRegions {
		styles, err := m.resolver.Region(m.width, pr.id)
		if err != nil {
			continue
		}
		for _, p := range pr.props {
			if v, ok := styles[p]; ok {
				t.Row(string(pr.id), string(p), v.CSS())
			}
		}
	}
	b.WriteString(t.Render())
	b.WriteString("\n")

	return b.String()
}
