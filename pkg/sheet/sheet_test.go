package sheet

import (
	"strings"
	"testing"

	"github.com/urutau-nz/dash-evaluating-proximity/pkg/errors"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/style"
)

// testSheet builds a small valid sheet: two regions, a base layer covering
// everything the bands touch, and two overlapping bands.
func testSheet(t *testing.T) *Sheet {
	t.Helper()
	tree := NewTree()
	MustAdd(tree, Region{ID: "body", Selector: "body"})
	MustAdd(tree, Region{ID: "map", Selector: "#map", Parent: "body"})

	return &Sheet{
		Name: "test",
		Tree: tree,
		Base: []Decl{
			D("body", style.BackgroundColor, "#192444"),
			D("map", style.Height, "45rem"),
		},
		Bands: []Band{
			MaxWidth(1000, D("map", style.Height, "38rem")),
			MaxWidth(350, D("map", style.Height, "35rem")),
		},
	}
}

func TestSheetValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Sheet)
		wantCode errors.Code
	}{
		{
			name:   "Valid",
			mutate: func(s *Sheet) {},
		},
		{
			name:     "UnknownRegion",
			mutate:   func(s *Sheet) { s.Base = append(s.Base, D("ghost", style.Height, "1rem")) },
			wantCode: errors.ErrCodeRegionNotFound,
		},
		{
			name: "UnknownProperty",
			mutate: func(s *Sheet) {
				s.Base = append(s.Base, Decl{Region: "map", Property: "float", Value: style.Keyword("left")})
			},
			wantCode: errors.ErrCodeInvalidProperty,
		},
		{
			name: "KindMismatch",
			mutate: func(s *Sheet) {
				s.Base = append(s.Base, Decl{Region: "map", Property: style.Height, Value: style.Hex("#fff")})
			},
			wantCode: errors.ErrCodeInvalidValue,
		},
		{
			name: "EmptyInterval",
			mutate: func(s *Sheet) {
				s.Bands = append(s.Bands, Band{Name: "bad", Min: 500, Max: 400})
			},
			wantCode: errors.ErrCodeInvalidBand,
		},
		{
			name: "CoverageGap",
			mutate: func(s *Sheet) {
				s.Bands[0].Decls = append(s.Bands[0].Decls, D("body", style.MarginTop, "-4rem"))
			},
			wantCode: errors.ErrCodeCoverageGap,
		},
		{
			name:     "NoRegions",
			mutate:   func(s *Sheet) { s.Tree = NewTree() },
			wantCode: errors.ErrCodeInvalidSheet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSheet(t)
			tt.mutate(s)
			err := s.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("code = %s, want %s", got, tt.wantCode)
			}
		})
	}
}

func TestSheetCoverage(t *testing.T) {
	s := testSheet(t)
	if gaps := s.Coverage(); len(gaps) != 0 {
		t.Fatalf("Coverage() = %v, want none", gaps)
	}

	// A banded pair without a base declaration is a gap, reported once even
	// when two bands set it.
	s.Bands[0].Decls = append(s.Bands[0].Decls, D("body", style.MarginTop, "-6rem"))
	s.Bands[1].Decls = append(s.Bands[1].Decls, D("body", style.MarginTop, "-8rem"))
	gaps := s.Coverage()
	if len(gaps) != 1 {
		t.Fatalf("Coverage() = %v, want one gap", gaps)
	}
	g := gaps[0]
	if g.Region != "body" || g.Property != style.MarginTop || g.Band != "max-1000" {
		t.Errorf("gap = %+v", g)
	}
	if !strings.Contains(g.String(), "no base declaration") {
		t.Errorf("gap string = %q", g.String())
	}

	// A band covering all widths needs no base backing.
	s2 := testSheet(t)
	s2.Bands = append(s2.Bands, Band{Name: "all", Decls: []Decl{D("body", style.MarginTop, "0")}})
	if gaps := s2.Coverage(); len(gaps) != 0 {
		t.Errorf("unbounded band flagged as gap: %v", gaps)
	}
}

func TestSheetActiveBands(t *testing.T) {
	s := testSheet(t)

	if got := s.ActiveBands(340); len(got) != 2 || got[0] != "max-1000" || got[1] != "max-350" {
		t.Errorf("ActiveBands(340) = %v", got)
	}
	if got := s.ActiveBands(900); len(got) != 1 || got[0] != "max-1000" {
		t.Errorf("ActiveBands(900) = %v", got)
	}
	if got := s.ActiveBands(1600); got != nil {
		t.Errorf("ActiveBands(1600) = %v, want none", got)
	}
}

func TestSheetThresholds(t *testing.T) {
	s := testSheet(t)
	s.Bands = append(s.Bands, MinWidth(1001))

	got := s.Thresholds()
	want := []int{351, 1001}
	if len(got) != len(want) {
		t.Fatalf("Thresholds() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Thresholds()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSheetHash(t *testing.T) {
	a := testSheet(t)
	b := testSheet(t)
	if a.Hash() != b.Hash() {
		t.Error("identical sheets hash differently")
	}

	b.Bands[0].Decls[0].Value = style.Rem(39)
	if a.Hash() == b.Hash() {
		t.Error("distinct sheets share a hash")
	}

	// Band order is semantic; swapping it must change the hash.
	c := testSheet(t)
	c.Bands[0], c.Bands[1] = c.Bands[1], c.Bands[0]
	if a.Hash() == c.Hash() {
		t.Error("band reorder did not change hash")
	}
}
