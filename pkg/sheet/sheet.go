package sheet

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"

	"github.com/urutau-nz/dash-evaluating-proximity/pkg/errors"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/style"
)

// FontImport names a remote web-font family the stylesheet pulls in.
// Loading is the host's concern; every font stack in the sheet must end in
// a generic family so a failed fetch degrades to the host default.
type FontImport struct {
	Family string `json:"family" bson:"family" toml:"family"`
	URL    string `json:"url" bson:"url" toml:"url"`
}

// Sheet is a complete responsive stylesheet: the region tree, the base
// declarations (active at every width), and the breakpoint bands in
// declaration order.
type Sheet struct {
	Name  string
	Fonts []FontImport
	Tree  *Tree
	Base  []Decl
	Bands []Band
}

// Gap is a coverage defect: a (region, property) pair that is set in some
// width-limited band but has no base declaration, leaving widths where the
// property has no defined value.
type Gap struct {
	Region   RegionID
	Property style.Property
	Band     string
}

// String describes the gap.
func (g Gap) String() string {
	return fmt.Sprintf("%s/%s set in band %s has no base declaration", g.Region, g.Property, g.Band)
}

// Validate checks structural soundness: every declaration names a known
// region and property, every value kind suits its property, every band
// interval is sane, and the band set is total over [0, ∞) for every
// declared (region, property) pair. The first defect found is returned.
func (s *Sheet) Validate() error {
	if s.Tree == nil || s.Tree.Len() == 0 {
		return errors.New(errors.ErrCodeInvalidSheet, "sheet %q has no regions", s.Name)
	}

	for i, d := range s.Base {
		if err := s.checkDecl(d); err != nil {
			return fmt.Errorf("base decl %d: %w", i, err)
		}
	}

	for _, b := range s.Bands {
		if b.Min < 0 || b.Max < 0 {
			return errors.New(errors.ErrCodeInvalidBand, "band %s: negative interval bound", b.Name)
		}
		if b.Max != 0 && b.Min >= b.Max {
			return errors.New(errors.ErrCodeInvalidBand, "band %s: empty interval [%d, %d)", b.Name, b.Min, b.Max)
		}
		for i, d := range b.Decls {
			if err := s.checkDecl(d); err != nil {
				return fmt.Errorf("band %s decl %d: %w", b.Name, i, err)
			}
		}
	}

	if gaps := s.Coverage(); len(gaps) > 0 {
		return errors.New(errors.ErrCodeCoverageGap, "%s", gaps[0].String())
	}

	return nil
}

// Coverage returns every coverage gap in the sheet. An empty result means
// the band set is total: every declared (region, property) pair has a
// well-defined value at every viewport width in [0, ∞).
func (s *Sheet) Coverage() []Gap {
	base := make(map[RegionID]map[style.Property]bool, s.Tree.Len())
	for _, d := range s.Base {
		if base[d.Region] == nil {
			base[d.Region] = make(map[style.Property]bool)
		}
		base[d.Region][d.Property] = true
	}

	var gaps []Gap
	seen := make(map[string]bool)
	for _, b := range s.Bands {
		if b.Min == 0 && b.Max == 0 {
			continue // unbounded band is itself total
		}
		for _, d := range b.Decls {
			if base[d.Region][d.Property] {
				continue
			}
			key := string(d.Region) + "\x00" + string(d.Property)
			if seen[key] {
				continue
			}
			seen[key] = true
			gaps = append(gaps, Gap{Region: d.Region, Property: d.Property, Band: b.Name})
		}
	}
	return gaps
}

// checkDecl validates a single declaration against the region tree and the
// property/value type rules.
func (s *Sheet) checkDecl(d Decl) error {
	if _, ok := s.Tree.Get(d.Region); !ok {
		return errors.New(errors.ErrCodeRegionNotFound, "unknown region %q", d.Region)
	}
	if !d.Property.Valid() {
		return errors.New(errors.ErrCodeInvalidProperty, "unknown property %q", d.Property)
	}
	if err := checkValueKind(d.Property, d.Value); err != nil {
		return err
	}
	return nil
}

// checkValueKind enforces which value kinds each property accepts.
func checkValueKind(p style.Property, v style.Value) error {
	ok := false
	switch p {
	case style.BackgroundColor, style.Color:
		ok = v.Kind == style.KindColor || v.Kind == style.KindKeyword
	case style.FlexDirection, style.Display:
		ok = v.Kind == style.KindKeyword
	case style.FontFamily:
		ok = v.Kind == style.KindFontStack || v.Kind == style.KindKeyword
	case style.FontWeight, style.ZIndex:
		ok = v.Kind == style.KindNumber || v.Kind == style.KindKeyword
	case style.LineHeight:
		ok = v.Kind == style.KindNumber || v.Kind == style.KindLength
	case style.Padding, style.Margin:
		ok = v.Kind == style.KindLength || v.Kind == style.KindLengthList
	case style.MarginTop, style.MarginBottom, style.FontSize, style.Height, style.Width:
		ok = v.Kind == style.KindLength
	case style.Border:
		ok = v.Kind == style.KindKeyword || v.Kind == style.KindLength
	default:
		ok = true
	}
	if !ok {
		return errors.New(errors.ErrCodeInvalidValue, "property %s cannot take a %s value (%s)", p, v.Kind, v.CSS())
	}
	return nil
}

// Fingerprint returns a stable canonical form of the sheet, suitable for
// hashing into cache keys. Two sheets with identical regions, declarations,
// and band order produce identical fingerprints.
func (s *Sheet) Fingerprint() string {
	var b strings.Builder
	b.WriteString("sheet:" + s.Name + "\n")
	for _, f := range s.Fonts {
		fmt.Fprintf(&b, "font:%s=%s\n", f.Family, f.URL)
	}
	for _, id := range s.Tree.IDs() {
		r, _ := s.Tree.Get(id)
		fmt.Fprintf(&b, "region:%s<%s:%s\n", r.ID, r.Parent, r.Selector)
	}
	for _, d := range s.Base {
		fmt.Fprintf(&b, "base:%s/%s=%s\n", d.Region, d.Property, d.Value.CSS())
	}
	for _, band := range s.Bands {
		fmt.Fprintf(&b, "band:%s[%d,%d)\n", band.Name, band.Min, band.Max)
		for _, d := range band.Decls {
			fmt.Fprintf(&b, "  %s/%s=%s\n", d.Region, d.Property, d.Value.CSS())
		}
	}
	return b.String()
}

// Hash returns the SHA-256 hex digest of the sheet fingerprint.
func (s *Sheet) Hash() string {
	sum := sha256.Sum256([]byte(s.Fingerprint()))
	return hex.EncodeToString(sum[:])
}

// ActiveBands returns the names of the bands containing width w, in
// declaration order. Used by the preview UI and the check command.
func (s *Sheet) ActiveBands(w int) []string {
	var names []string
	for _, b := range s.Bands {
		if b.Contains(w) {
			names = append(names, b.Name)
		}
	}
	return names
}

// Thresholds returns the sorted distinct interval bounds of all bands,
// i.e. the widths at which resolution can change.
func (s *Sheet) Thresholds() []int {
	set := map[int]bool{}
	for _, b := range s.Bands {
		if b.Min > 0 {
			set[b.Min] = true
		}
		if b.Max > 0 {
			set[b.Max] = true
		}
	}
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
