package resolve

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/urutau-nz/dash-evaluating-proximity/pkg/errors"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/sheet"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/style"
)

// testResolver builds a three-region sheet exercising overlap, ordering,
// and inheritance: body sets inheritable text styles, map-container and map
// override heights across two overlapping max-width bands.
func testResolver(t *testing.T) *Resolver {
	t.Helper()
	tree := sheet.NewTree()
	sheet.MustAdd(tree, sheet.Region{ID: "body", Selector: "body"})
	sheet.MustAdd(tree, sheet.Region{ID: "map-container", Selector: "#map-container", Parent: "body"})
	sheet.MustAdd(tree, sheet.Region{ID: "map", Selector: "#map", Parent: "map-container"})

	s := &sheet.Sheet{
		Name: "test",
		Tree: tree,
		Base: []sheet.Decl{
			sheet.D("body", style.Color, "#eee"),
			sheet.D("body", style.FontSize, "1rem"),
			sheet.D("map-container", style.Margin, "0"),
			sheet.D("map", style.Height, "45rem"),
		},
		Bands: []sheet.Band{
			sheet.MaxWidth(1000,
				sheet.D("map", style.Height, "38rem"),
				sheet.D("map-container", style.Margin, "5rem 0 0 0"),
			),
			sheet.MaxWidth(550,
				sheet.D("map", style.Height, "36rem"),
			),
			sheet.MaxWidth(350,
				sheet.D("map", style.Height, "35rem"),
			),
			sheet.MinWidth(1551,
				sheet.D("body", style.FontSize, "1.05rem"),
			),
		},
	}
	r, err := New(s)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestRegionCascade(t *testing.T) {
	r := testResolver(t)

	tests := []struct {
		name   string
		width  int
		region sheet.RegionID
		prop   style.Property
		want   string
	}{
		// Base only.
		{"WideBase", 1600, "map", style.Height, "45rem"},
		// One band active.
		{"OneBand", 900, "map", style.Height, "38rem"},
		{"OneBandMargin", 900, "map-container", style.Margin, "5rem 0 0 0"},
		// Overlapping bands, last declaration wins.
		{"TwoBands", 500, "map", style.Height, "36rem"},
		{"ThreeBands", 340, "map", style.Height, "35rem"},
		// Band edges are half-open.
		{"MaxEdgeIn", 1000, "map", style.Height, "38rem"},
		{"MaxEdgeOut", 1001, "map", style.Height, "45rem"},
		{"MinEdgeIn", 1551, "body", style.FontSize, "1.05rem"},
		{"MinEdgeOut", 1550, "body", style.FontSize, "1rem"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := r.Region(tt.width, tt.region)
			if err != nil {
				t.Fatalf("Region(%d, %s): %v", tt.width, tt.region, err)
			}
			got, ok := st[tt.prop]
			if !ok {
				t.Fatalf("%s unset at width %d", tt.prop, tt.width)
			}
			if got.CSS() != tt.want {
				t.Errorf("%s = %s, want %s", tt.prop, got.CSS(), tt.want)
			}
		})
	}
}

func TestRegionInheritance(t *testing.T) {
	r := testResolver(t)

	// map sets no color or font-size of its own; both flow down from body
	// through map-container.
	st, err := r.Region(900, "map")
	if err != nil {
		t.Fatal(err)
	}
	if got := st[style.Color].CSS(); got != "#eee" {
		t.Errorf("inherited color = %s, want #eee", got)
	}
	if got := st[style.FontSize].CSS(); got != "1rem" {
		t.Errorf("inherited font-size = %s, want 1rem", got)
	}

	// Non-inheritable properties never flow down: body's margin stays on
	// map-container, not on map.
	if _, ok := st[style.Margin]; ok {
		t.Error("margin leaked through inheritance")
	}
}

func TestRegionErrors(t *testing.T) {
	r := testResolver(t)

	_, err := r.Region(-1, "map")
	if errors.GetCode(err) != errors.ErrCodeInvalidWidth {
		t.Errorf("negative width code = %s", errors.GetCode(err))
	}

	_, err = r.Region(900, "ghost")
	if errors.GetCode(err) != errors.ErrCodeRegionNotFound {
		t.Errorf("unknown region code = %s", errors.GetCode(err))
	}
}

func TestProperty(t *testing.T) {
	r := testResolver(t)

	v, ok, err := r.Property(900, "map", style.Height)
	if err != nil || !ok {
		t.Fatalf("Property: ok=%v err=%v", ok, err)
	}
	if v.CSS() != "38rem" {
		t.Errorf("height = %s", v.CSS())
	}

	// Undefined is not an error.
	_, ok, err = r.Property(900, "map", style.Display)
	if err != nil {
		t.Fatalf("Property: %v", err)
	}
	if ok {
		t.Error("display reported as defined")
	}

	_, _, err = r.Property(900, "map", "float")
	if errors.GetCode(err) != errors.ErrCodeInvalidProperty {
		t.Errorf("bad property code = %s", errors.GetCode(err))
	}
}

// Resolution must be stable: the same query twice, and any two widths inside
// the same band slice, give identical results.
func TestResolutionStability(t *testing.T) {
	r := testResolver(t)

	a, err := r.Region(500, "map")
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Region(500, "map")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("repeated query differs")
	}

	// 400 and 500 sit between thresholds 351 and 551: same active bands.
	c, err := r.Region(400, "map")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, c) {
		t.Errorf("widths in one band slice differ: %v vs %v", a, c)
	}
}

func TestSnapshot(t *testing.T) {
	r := testResolver(t)

	snap, err := r.Snapshot(900)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.Width != 900 || snap.Sheet != "test" || snap.Hash == "" {
		t.Errorf("snapshot header = %+v", snap)
	}
	if len(snap.Bands) != 1 || snap.Bands[0] != "max-1000" {
		t.Errorf("active bands = %v", snap.Bands)
	}
	if len(snap.Regions) != 3 || snap.Regions[0].Region != "body" {
		t.Fatalf("regions = %+v", snap.Regions)
	}

	// Lengths carry an evaluated pixel figure at the 16px rem base.
	var height *StyleEntry
	for i, e := range snap.Regions[2].Styles {
		if e.Property == style.Height {
			height = &snap.Regions[2].Styles[i]
		}
	}
	if height == nil {
		t.Fatal("map height missing from snapshot")
	}
	if height.Value != "38rem" || height.Pixels != 38*RootFontSize {
		t.Errorf("height entry = %+v", height)
	}

	// Snapshots are deterministic and JSON-serializable.
	j1, err := json.Marshal(snap)
	if err != nil {
		t.Fatal(err)
	}
	snap2, _ := r.Snapshot(900)
	j2, _ := json.Marshal(snap2)
	if string(j1) != string(j2) {
		t.Error("snapshot serialization not deterministic")
	}
}
