package css

import (
	"strings"
	"testing"

	"github.com/urutau-nz/dash-evaluating-proximity/pkg/dashboard"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/sheet"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/style"
)

func testSheet(t *testing.T) *sheet.Sheet {
	t.Helper()
	tree := sheet.NewTree()
	sheet.MustAdd(tree, sheet.Region{ID: "body", Selector: "body"})
	sheet.MustAdd(tree, sheet.Region{ID: "map", Selector: "#map", Parent: "body"})

	return &sheet.Sheet{
		Name: "test",
		Fonts: []sheet.FontImport{
			{Family: "Open Sans", URL: "https://fonts.example/open-sans"},
		},
		Tree: tree,
		Base: []sheet.Decl{
			sheet.D("body", style.BackgroundColor, "#192444"),
			sheet.D("body", style.FontFamily, `"Open Sans", sans-serif`),
			sheet.D("map", style.Height, "45rem"),
		},
		Bands: []sheet.Band{
			sheet.MaxWidth(1000, sheet.D("map", style.Height, "38rem")),
		},
	}
}

func TestRender(t *testing.T) {
	got := Render(testSheet(t))

	want := `@import url("https://fonts.example/open-sans");

body {
  background-color: #192444;
  font-family: "Open Sans", sans-serif;
}

#map {
  height: 45rem;
}

@media (max-width: 1000px) {
  #map {
    height: 38rem;
  }
}
`
	if got != want {
		t.Errorf("Render mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

// The page owns the selectors; the stylesheet must emit them verbatim. The
// ecdf chart text is styled through the "#ecdf *" descendant selector, not a
// class of our own.
func TestRenderDashboardSelectors(t *testing.T) {
	got := Render(dashboard.Sheet())

	for _, sel := range []string{"#top-row", "#map-container", ".graph-title", "#ecdf *"} {
		if !strings.Contains(got, sel+" {") {
			t.Errorf("stylesheet missing selector %q", sel)
		}
	}
	if strings.Contains(got, ".ecdf-text") {
		t.Error("stylesheet emits an invented .ecdf-text selector")
	}
}

func TestRenderDeterministic(t *testing.T) {
	s := testSheet(t)
	if Render(s) != Render(s) {
		t.Error("repeated renders differ")
	}
}

func TestRenderUnboundedBand(t *testing.T) {
	s := testSheet(t)
	s.Bands = append(s.Bands, sheet.Band{
		Name:  "all",
		Decls: []sheet.Decl{sheet.D("body", style.Color, "#eee")},
	})

	got := Render(s)
	if strings.Contains(got, "@media  ") || strings.Contains(got, "@media {") {
		t.Errorf("unbounded band emitted as media block:\n%s", got)
	}
	if !strings.Contains(got, "color: #eee;") {
		t.Errorf("unbounded band rules missing:\n%s", got)
	}
}

func TestRenderSkipsEmptyBands(t *testing.T) {
	s := testSheet(t)
	s.Bands = append(s.Bands, sheet.MinWidth(1551))

	if strings.Contains(Render(s), "min-width: 1551px") {
		t.Error("empty band produced a media block")
	}
}
