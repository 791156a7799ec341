// Package dashboard carries the built-in proximity dashboard definition:
// the page region tree, the dark theme tokens, the amenity catalog, and the
// responsive sheet with its full breakpoint table.
//
// Everything here is static data. The sheet is authored in Go table form so
// the breakpoint cascade is reviewable in one place; Sheet() returns a
// fresh, validated-by-construction copy on every call.
package dashboard

import (
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/sheet"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/style"
)

// =============================================================================
// Theme
// =============================================================================

// Theme color tokens shared by the stylesheet and the chart configuration.
const (
	PageBackground  = "#1f2c56" // page and legend backdrop
	PanelBackground = "#192444" // map and chart panels
	TextColor       = "#eee"
	HeadingFont     = "Playfair Display"
	BodyFont        = "Open Sans"
	HeadingFontURL  = "https://fonts.googleapis.com/css2?family=Playfair+Display:wght@700&display=swap"
	BodyFontURL     = "https://fonts.googleapis.com/css2?family=Open+Sans:wght@400;600;700&display=swap"
)

// Map view defaults (Baltimore).
const (
	MapCenterLat = 39.292126
	MapCenterLon = -76.613632
	MapZoom      = 10.5
)

// Amenity is one of the urban destination types the dashboard compares.
type Amenity struct {
	ID    string `json:"id" bson:"id"`
	Label string `json:"label" bson:"label"`
	Color string `json:"color" bson:"color"`
}

// Amenities returns the destination catalog in display order.
func Amenities() []Amenity {
	return []Amenity{
		{ID: "hospital", Label: "Hospitals", Color: "#EA5138"},
		{ID: "supermarket", Label: "Supermarkets", Color: "#E4AE36"},
		{ID: "school", Label: "Schools", Color: "#1F386B"},
		{ID: "library", Label: "Libraries", Color: "#507332"},
	}
}

// ColorStop is one anchor of the distance choropleth ramp.
type ColorStop struct {
	At    float64 `json:"at" bson:"at"`
	Color string  `json:"color" bson:"color"`
}

// Colorscale returns the 11-stop ramp used for distance shading on the map,
// light near zero distance and dark far away.
func Colorscale() []ColorStop {
	return []ColorStop{
		{0.0, "rgb(253, 253, 204)"},
		{0.1, "rgb(201, 235, 177)"},
		{0.2, "rgb(145, 216, 163)"},
		{0.3, "rgb(102, 194, 163)"},
		{0.4, "rgb(81, 168, 162)"},
		{0.5, "rgb(72, 141, 157)"},
		{0.6, "rgb(64, 117, 152)"},
		{0.7, "rgb(61, 90, 146)"},
		{0.8, "rgb(65, 64, 123)"},
		{0.9, "rgb(55, 44, 80)"},
		{1.0, "rgb(39, 26, 44)"},
	}
}

// =============================================================================
// Regions
// =============================================================================

// Regions builds the dashboard's region containment tree. Selectors are an
// external contract shared with the page markup.
func Regions() *sheet.Tree {
	t := sheet.NewTree()
	for _, r := range []sheet.Region{
		{ID: "body", Selector: "body"},
		{ID: "top-row", Selector: "#top-row", Parent: "body"},
		{ID: "top-row-header", Selector: "#top-row-header", Parent: "top-row"},
		{ID: "header-container", Selector: "#header-container", Parent: "top-row-header"},
		{ID: "banner", Selector: ".banner", Parent: "header-container"},
		{ID: "banner-title", Selector: ".banner h6", Parent: "banner"},
		{ID: "instructions", Selector: "#instructions", Parent: "header-container"},
		{ID: "amenity-select", Selector: "#amenity-select", Parent: "header-container"},
		{ID: "top-row-graphs", Selector: "#top-row-graphs", Parent: "top-row"},
		{ID: "graph-title", Selector: ".graph-title", Parent: "top-row-graphs"},
		{ID: "map-container", Selector: "#map-container", Parent: "top-row-graphs"},
		{ID: "map", Selector: "#map", Parent: "map-container"},
		{ID: "ecdf-container", Selector: "#ecdf-container", Parent: "top-row-graphs"},
		{ID: "ecdf", Selector: "#ecdf", Parent: "ecdf-container"},
		{ID: "ecdf-text", Selector: "#ecdf *", Parent: "ecdf"},
		{ID: "bottom-row", Selector: "#bottom-row", Parent: "body"},
		{ID: "footer-row", Selector: "#footer-row", Parent: "body"},
		{ID: "footer-text", Selector: "#footer-text", Parent: "footer-row"},
	} {
		sheet.MustAdd(t, r)
	}
	return t
}

// =============================================================================
// Sheet
// =============================================================================

// Sheet builds the dashboard stylesheet: the base layer styling every
// region at all widths, then the breakpoint bands in cascade order. Every
// (region, property) pair any band touches has a base declaration, so
// resolution is total over [0, ∞).
func Sheet() *sheet.Sheet {
	d := sheet.D
	return &sheet.Sheet{
		Name: "proximity",
		Fonts: []sheet.FontImport{
			{Family: HeadingFont, URL: HeadingFontURL},
			{Family: BodyFont, URL: BodyFontURL},
		},
		Tree: Regions(),
		Base: []sheet.Decl{
			d("body", style.BackgroundColor, PageBackground),
			d("body", style.Color, TextColor),
			d("body", style.FontFamily, `"Open Sans", sans-serif`),
			d("body", style.FontSize, "1rem"),
			d("body", style.LineHeight, "1.5"),
			d("body", style.Margin, "0"),

			d("top-row", style.Display, "flex"),
			d("top-row", style.FlexDirection, "row"),
			d("top-row", style.Margin, "2rem 2rem 0 2rem"),

			d("top-row-header", style.Width, "30%"),
			d("header-container", style.Padding, "2rem"),

			d("banner", style.BackgroundColor, PageBackground),
			d("banner", style.Padding, "1rem 2rem"),
			d("banner-title", style.FontFamily, `"Playfair Display", serif`),
			d("banner-title", style.FontSize, "2.2rem"),
			d("banner-title", style.FontWeight, "700"),

			d("instructions", style.FontSize, "1rem"),
			d("instructions", style.MarginTop, "1rem"),
			d("amenity-select", style.FontSize, "1rem"),

			d("top-row-graphs", style.Display, "flex"),
			d("top-row-graphs", style.FlexDirection, "row"),

			d("graph-title", style.FontSize, "1.8rem"),
			d("graph-title", style.FontWeight, "600"),

			d("map-container", style.BackgroundColor, PanelBackground),
			d("map-container", style.Margin, "0"),
			d("map-container", style.Padding, "1rem"),
			d("map", style.Height, "45rem"),

			d("ecdf-container", style.BackgroundColor, PanelBackground),
			d("ecdf-container", style.MarginBottom, "2rem"),
			d("ecdf-container", style.Padding, "1rem"),
			d("ecdf", style.Height, "30rem"),
			d("ecdf-text", style.FontSize, "1rem"),

			d("bottom-row", style.MarginTop, "-4rem"),
			d("footer-row", style.Padding, "0 2rem"),
			d("footer-text", style.FontSize, "0.9rem"),
		},
		Bands: []sheet.Band{
			// Banner scales with the viewport once the layout is wide.
			sheet.MinWidth(1001,
				d("banner-title", style.FontSize, "2vw"),
			),
			sheet.MinWidth(1401,
				d("banner-title", style.FontSize, "1.8vw"),
			),
			sheet.MinWidth(1551,
				d("ecdf-text", style.FontSize, "1rem"),
				d("instructions", style.FontSize, "1.05rem"),
			),
			sheet.MaxWidth(1550,
				d("ecdf-text", style.FontSize, "0.85rem"),
				d("map", style.Height, "42rem"),
			),
			sheet.MaxWidth(1400,
				d("ecdf-text", style.FontSize, "1rem"),
				d("map", style.Height, "40rem"),
			),
			// Below 1000px the two-column layout stacks.
			sheet.MaxWidth(1000,
				d("top-row", style.FlexDirection, "column"),
				d("top-row-graphs", style.FlexDirection, "column"),
				d("top-row-header", style.Width, "100%"),
				d("map-container", style.Margin, "5rem 0 0 0"),
				d("ecdf-container", style.MarginBottom, "3rem"),
				d("map", style.Height, "38rem"),
			),
			sheet.MaxWidth(750,
				d("instructions", style.FontSize, "0.9rem"),
				d("footer-text", style.FontSize, "0.8rem"),
				d("bottom-row", style.MarginTop, "-6rem"),
				d("top-row", style.Margin, "1rem"),
				d("header-container", style.Padding, "1.5rem"),
			),
			sheet.MaxWidth(550,
				d("graph-title", style.FontSize, "1.5rem"),
				d("ecdf-container", style.MarginBottom, "0"),
				d("ecdf-text", style.FontSize, "1.2rem"),
				d("banner-title", style.FontSize, "1.6rem"),
				d("map", style.Height, "36rem"),
			),
			sheet.MaxWidth(400,
				d("header-container", style.Padding, "1rem"),
				d("instructions", style.FontSize, "0.85rem"),
				d("ecdf", style.Height, "24rem"),
			),
			sheet.MaxWidth(375,
				d("banner", style.Padding, "0.5rem 1rem"),
				d("amenity-select", style.FontSize, "0.9rem"),
			),
			sheet.MaxWidth(350,
				d("map", style.Height, "35rem"),
				d("bottom-row", style.MarginTop, "-8rem"),
				d("map-container", style.Margin, "3rem 0 0 0"),
				d("footer-row", style.Padding, "0 1rem"),
			),
		},
	}
}
