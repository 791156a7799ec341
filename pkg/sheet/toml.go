package sheet

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/urutau-nz/dash-evaluating-proximity/pkg/errors"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/style"
)

// =============================================================================
// TOML Authoring Format
// =============================================================================

// sheetDoc is the TOML document shape. Bounds follow CSS media-query
// conventions: "max" is inclusive (max-width: 550 means w <= 550), "min" is
// inclusive (min-width: 1001 means w >= 1001). Declaration order in the
// document is cascade order.
//
//	name = "proximity"
//
//	[[font]]
//	family = "Open Sans"
//	url    = "https://fonts.googleapis.com/css2?family=Open+Sans"
//
//	[[region]]
//	id       = "body"
//	selector = "body"
//
//	[[region]]
//	id       = "top-row"
//	selector = "#top-row"
//	parent   = "body"
//
//	[[rule]]
//	region   = "top-row"
//	property = "flex-direction"
//	value    = "row"
//
//	[[band]]
//	name = "max-550"
//	max  = 550
//
//	  [[band.rule]]
//	  region   = "graph-title"
//	  property = "font-size"
//	  value    = "1.5rem"
type sheetDoc struct {
	Name    string       `toml:"name"`
	Fonts   []FontImport `toml:"font"`
	Regions []Region     `toml:"region"`
	Rules   []ruleDoc    `toml:"rule"`
	Bands   []bandDoc    `toml:"band"`
}

type ruleDoc struct {
	Region   string `toml:"region"`
	Property string `toml:"property"`
	Value    string `toml:"value"`
}

type bandDoc struct {
	Name  string    `toml:"name"`
	Min   int       `toml:"min"`
	Max   int       `toml:"max"`
	Rules []ruleDoc `toml:"rule"`
}

// =============================================================================
// Loading
// =============================================================================

// Load reads, parses, and validates a TOML sheet document from path.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "sheet file %s", path)
		}
		return nil, fmt.Errorf("read sheet %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses and validates a TOML sheet document.
func Parse(data []byte) (*Sheet, error) {
	var doc sheetDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSheet, err, "parse sheet document")
	}

	s := &Sheet{
		Name:  doc.Name,
		Fonts: doc.Fonts,
		Tree:  NewTree(),
	}

	for _, r := range doc.Regions {
		if err := s.Tree.Add(r); err != nil {
			return nil, err
		}
	}

	for _, rd := range doc.Rules {
		d, err := declFromDoc(rd)
		if err != nil {
			return nil, err
		}
		s.Base = append(s.Base, d)
	}

	for _, bd := range doc.Bands {
		band := Band{Name: bd.Name, Min: bd.Min}
		if bd.Max > 0 {
			band.Max = bd.Max + 1 // inclusive css max-width → half-open bound
		}
		if band.Name == "" {
			band.Name = defaultBandName(bd)
		}
		for _, rd := range bd.Rules {
			d, err := declFromDoc(rd)
			if err != nil {
				return nil, fmt.Errorf("band %s: %w", band.Name, err)
			}
			band.Decls = append(band.Decls, d)
		}
		s.Bands = append(s.Bands, band)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// declFromDoc converts a TOML rule into a typed declaration.
func declFromDoc(rd ruleDoc) (Decl, error) {
	v, err := style.Parse(rd.Value)
	if err != nil {
		return Decl{}, fmt.Errorf("rule %s/%s: %w", rd.Region, rd.Property, err)
	}
	return Decl{
		Region:   RegionID(rd.Region),
		Property: style.Property(rd.Property),
		Value:    v,
	}, nil
}

// defaultBandName derives a name from the interval when the document gives
// none.
func defaultBandName(bd bandDoc) string {
	switch {
	case bd.Min > 0 && bd.Max > 0:
		return fmt.Sprintf("between-%d-%d", bd.Min, bd.Max)
	case bd.Min > 0:
		return fmt.Sprintf("min-%d", bd.Min)
	case bd.Max > 0:
		return fmt.Sprintf("max-%d", bd.Max)
	default:
		return "all"
	}
}
