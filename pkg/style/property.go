// Package style defines the typed style properties and values the layout
// engine resolves.
//
// A style is a mapping from [Property] to [Value]. Properties are a fixed
// enumeration of the CSS properties the dashboard stylesheet uses; values
// are a typed union (lengths, colors, keywords, font stacks, numbers) that
// round-trips to and from CSS literal text.
//
// Viewport-relative lengths (vw) stay symbolic in resolved output; use
// [Length.Pixels] when a host needs absolute numbers.
package style

// Property identifies a single style property. The string form is the CSS
// property name and is part of the external contract with the rendering host.
type Property string

// The fixed property enumeration used by the dashboard stylesheet.
const (
	BackgroundColor Property = "background-color"
	Color           Property = "color"
	Padding         Property = "padding"
	Margin          Property = "margin"
	MarginTop       Property = "margin-top"
	MarginBottom    Property = "margin-bottom"
	FlexDirection   Property = "flex-direction"
	Display         Property = "display"
	FontSize        Property = "font-size"
	FontFamily      Property = "font-family"
	FontWeight      Property = "font-weight"
	Height          Property = "height"
	Width           Property = "width"
	ZIndex          Property = "z-index"
	Border          Property = "border"
	LineHeight      Property = "line-height"
)

// Properties lists every known property in canonical order.
// The order is used for deterministic serialization.
var Properties = []Property{
	BackgroundColor,
	Color,
	Padding,
	Margin,
	MarginTop,
	MarginBottom,
	FlexDirection,
	Display,
	FontSize,
	FontFamily,
	FontWeight,
	Height,
	Width,
	ZIndex,
	Border,
	LineHeight,
}

// known is the membership set for Valid.
var known = func() map[Property]bool {
	m := make(map[Property]bool, len(Properties))
	for _, p := range Properties {
		m[p] = true
	}
	return m
}()

// inherited marks the properties that propagate from parent to child region
// when the child does not set them, mirroring CSS inheritance.
var inherited = map[Property]bool{
	Color:      true,
	FontSize:   true,
	FontFamily: true,
	FontWeight: true,
	LineHeight: true,
}

// Valid reports whether p is a known property.
func (p Property) Valid() bool { return known[p] }

// Inherited reports whether p propagates to descendant regions.
func (p Property) Inherited() bool { return inherited[p] }

// String returns the CSS property name.
func (p Property) String() string { return string(p) }
