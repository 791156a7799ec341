// Package resolve turns a validated sheet plus a viewport width into
// concrete style values.
//
// Resolution is a pure fold: base declarations first, then every band
// containing the width in declaration order, later declarations overwriting
// earlier ones. Inheritable properties not set on a region are filled from
// its nearest ancestor. The same (width, region) input always produces the
// same output, and widths inside the same band slice resolve identically.
package resolve

import (
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/errors"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/sheet"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/style"
)

// Styles is the resolved property set of one region at one width.
type Styles map[style.Property]style.Value

// Resolver answers layout queries against a single validated sheet.
// It is immutable after construction and safe for concurrent use.
type Resolver struct {
	sheet *sheet.Sheet
}

// New builds a resolver. The sheet is validated first so that every later
// query is total: no width or region lookup can fail on a coverage gap.
func New(s *sheet.Sheet) (*Resolver, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{sheet: s}, nil
}

// Sheet returns the underlying sheet.
func (r *Resolver) Sheet() *sheet.Sheet { return r.sheet }

// =============================================================================
// Resolution
// =============================================================================

// Region resolves every property of one region at viewport width w,
// including values inherited from ancestor regions.
func (r *Resolver) Region(w int, id sheet.RegionID) (Styles, error) {
	if err := errors.ValidateWidth(w); err != nil {
		return nil, err
	}
	if _, ok := r.sheet.Tree.Get(id); !ok {
		return nil, errors.New(errors.ErrCodeRegionNotFound, "unknown region %q", id)
	}

	own := r.fold(w)
	st := make(Styles, len(own[id]))
	for p, v := range own[id] {
		st[p] = v
	}

	// Nearest ancestor wins for inheritable properties the region does not
	// set itself.
	for _, anc := range r.sheet.Tree.Ancestors(id) {
		for p, v := range own[anc] {
			if !p.Inherited() {
				continue
			}
			if _, set := st[p]; !set {
				st[p] = v
			}
		}
	}
	return st, nil
}

// Property resolves a single (region, property) pair at width w. The second
// return is false when the property is not defined for the region at that
// width, which is not an error: absence means the host default applies.
func (r *Resolver) Property(w int, id sheet.RegionID, p style.Property) (style.Value, bool, error) {
	if !p.Valid() {
		return style.Value{}, false, errors.New(errors.ErrCodeInvalidProperty, "unknown property %q", p)
	}
	st, err := r.Region(w, id)
	if err != nil {
		return style.Value{}, false, err
	}
	v, ok := st[p]
	return v, ok, nil
}

// fold applies the cascade at width w for all regions: base declarations,
// then each band containing w, in declaration order.
func (r *Resolver) fold(w int) map[sheet.RegionID]Styles {
	out := make(map[sheet.RegionID]Styles, r.sheet.Tree.Len())
	apply := func(d sheet.Decl) {
		if out[d.Region] == nil {
			out[d.Region] = make(Styles)
		}
		out[d.Region][d.Property] = d.Value
	}

	for _, d := range r.sheet.Base {
		apply(d)
	}
	for _, b := range r.sheet.Bands {
		if !b.Contains(w) {
			continue
		}
		for _, d := range b.Decls {
			apply(d)
		}
	}
	return out
}

// =============================================================================
// Snapshots
// =============================================================================

// RegionStyles is one region's resolved style set in serializable form.
// Properties are listed in canonical order for deterministic output.
type RegionStyles struct {
	Region   sheet.RegionID `json:"region" bson:"region"`
	Selector string         `json:"selector" bson:"selector"`
	Styles   []StyleEntry   `json:"styles" bson:"styles"`
}

// StyleEntry is a single resolved property with both its symbolic CSS form
// and, for lengths, an evaluated pixel figure.
type StyleEntry struct {
	Property style.Property `json:"property" bson:"property"`
	Value    string         `json:"value" bson:"value"`
	Pixels   float64        `json:"pixels,omitempty" bson:"pixels,omitempty"`
}

// Snapshot is the full resolved layout at one viewport width.
type Snapshot struct {
	Sheet   string         `json:"sheet" bson:"sheet"`
	Hash    string         `json:"hash" bson:"hash"`
	Width   int            `json:"width" bson:"width"`
	Bands   []string       `json:"bands,omitempty" bson:"bands,omitempty"`
	Regions []RegionStyles `json:"regions" bson:"regions"`
}

// RootFontSize is the rem base used when evaluating lengths to pixels.
const RootFontSize = 16.0

// Snapshot resolves every region of the sheet at width w into a
// deterministic, serializable document.
func (r *Resolver) Snapshot(w int) (*Snapshot, error) {
	if err := errors.ValidateWidth(w); err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Sheet: r.sheet.Name,
		Hash:  r.sheet.Hash(),
		Width: w,
		Bands: r.sheet.ActiveBands(w),
	}
	for _, id := range r.sheet.Tree.IDs() {
		st, err := r.Region(w, id)
		if err != nil {
			return nil, err
		}
		reg, _ := r.sheet.Tree.Get(id)
		rs := RegionStyles{Region: id, Selector: reg.Selector}
		for _, p := range style.Properties {
			v, ok := st[p]
			if !ok {
				continue
			}
			e := StyleEntry{Property: p, Value: v.CSS()}
			if v.Kind == style.KindLength && len(v.Lengths) == 1 {
				e.Pixels = v.Lengths[0].Pixels(w, RootFontSize)
			}
			rs.Styles = append(rs.Styles, e)
		}
		snap.Regions = append(snap.Regions, rs)
	}
	return snap, nil
}
