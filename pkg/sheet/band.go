package sheet

import (
	"fmt"

	"github.com/urutau-nz/dash-evaluating-proximity/pkg/style"
)

// Decl is a single (region, property, value) declaration.
type Decl struct {
	Region   RegionID       `json:"region" bson:"region"`
	Property style.Property `json:"property" bson:"property"`
	Value    style.Value    `json:"value" bson:"value"`
}

// Band is a half-open viewport-width interval [Min, Max) carrying an
// ordered list of declarations that are active inside it. Max == 0 means
// the interval is unbounded above.
//
// Bands may overlap; which declaration wins for a given (region, property)
// at a given width is decided purely by declaration order in the sheet
// (cascade semantics, later wins).
type Band struct {
	Name  string `json:"name" bson:"name"`
	Min   int    `json:"min,omitempty" bson:"min,omitempty"`
	Max   int    `json:"max,omitempty" bson:"max,omitempty"`
	Decls []Decl `json:"decls" bson:"decls"`
}

// MaxWidth creates a band equivalent to a CSS "max-width: px" media query:
// the half-open interval [0, px+1).
func MaxWidth(px int, decls ...Decl) Band {
	return Band{
		Name:  fmt.Sprintf("max-%d", px),
		Max:   px + 1,
		Decls: decls,
	}
}

// MinWidth creates a band equivalent to a CSS "min-width: px" media query:
// the unbounded interval [px, ∞).
func MinWidth(px int, decls ...Decl) Band {
	return Band{
		Name:  fmt.Sprintf("min-%d", px),
		Min:   px,
		Decls: decls,
	}
}

// Contains reports whether the viewport width w falls inside the band.
func (b Band) Contains(w int) bool {
	if w < b.Min {
		return false
	}
	return b.Max == 0 || w < b.Max
}

// Unbounded reports whether the band has no upper limit.
func (b Band) Unbounded() bool { return b.Max == 0 }

// MediaQuery returns the CSS media query condition for the band, or "" for
// a band covering [0, ∞).
func (b Band) MediaQuery() string {
	switch {
	case b.Min == 0 && b.Max == 0:
		return ""
	case b.Min == 0:
		return fmt.Sprintf("(max-width: %dpx)", b.Max-1)
	case b.Max == 0:
		return fmt.Sprintf("(min-width: %dpx)", b.Min)
	default:
		return fmt.Sprintf("(min-width: %dpx) and (max-width: %dpx)", b.Min, b.Max-1)
	}
}

// D is a declaration literal helper for static band tables.
func D(region RegionID, prop style.Property, literal string) Decl {
	return Decl{Region: region, Property: prop, Value: style.MustParse(literal)}
}
