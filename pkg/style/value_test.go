package style

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Value
		wantErr bool
	}{
		{"Keyword", "column", Keyword("column"), false},
		{"Color", "#192444", Hex("#192444"), false},
		{"ColorCanonicalized", "#EA5138", Hex("#ea5138"), false},
		{"Rem", "1.5rem", Rem(1.5), false},
		{"NegativeRem", "-8rem", Rem(-8), false},
		{"ViewportWidth", "1.8vw", VW(1.8), false},
		{"Percent", "100%", Percent(100), false},
		{"BareZero", "0", Rem(0), false},
		{"MarginShorthand", "5rem 0 0 0", Shorthand(
			Length{Amount: 5, Unit: UnitRem}, Length{}, Length{}, Length{},
		), false},
		{"FontStack", `"Open Sans", sans-serif`, FontStack("Open Sans", "sans-serif"), false},
		{"Number", "700", Number(700), false},
		{"Empty", "", Value{}, true},
		{"Garbage", "5elephants", Value{}, true},
		{"MixedShorthand", "5rem red", Value{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			// BareZero parses as a single length, not a list; compare
			// semantically.
			if !got.Equal(tt.want) && !tt.want.Equal(got) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCSSRoundTrip(t *testing.T) {
	literals := []string{
		"row",
		"column",
		"none",
		"#192444",
		"1.5rem",
		"0.85rem",
		"-8rem",
		"1.8vw",
		"2vw",
		"35rem",
		"5rem 0 0 0",
		"0.5rem 1rem",
		"100%",
		`"Open Sans", "Helvetica Neue", sans-serif`,
		"700",
	}

	for _, lit := range literals {
		t.Run(lit, func(t *testing.T) {
			v, err := Parse(lit)
			if err != nil {
				t.Fatalf("Parse(%q): %v", lit, err)
			}
			out := v.CSS()
			if out != lit {
				t.Errorf("CSS() = %q, want %q", out, lit)
			}
			again, err := Parse(out)
			if err != nil {
				t.Fatalf("re-Parse(%q): %v", out, err)
			}
			if !again.Equal(v) {
				t.Errorf("round-trip changed value: %#v vs %#v", again, v)
			}
		})
	}
}

func TestLengthPixels(t *testing.T) {
	tests := []struct {
		name     string
		length   Length
		viewport int
		remPx    float64
		want     float64
	}{
		{"Rem", Length{Amount: 2, Unit: UnitRem}, 1600, 16, 32},
		{"VWWide", Length{Amount: 2, Unit: UnitVW}, 1600, 16, 32},
		{"VWNarrow", Length{Amount: 2, Unit: UnitVW}, 350, 16, 7},
		{"Px", Length{Amount: 20, Unit: UnitPx}, 1600, 16, 20},
		{"Percent", Length{Amount: 50, Unit: UnitPercent}, 1000, 16, 500},
		{"Zero", Length{}, 1600, 16, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.length.Pixels(tt.viewport, tt.remPx)
			if got != tt.want {
				t.Errorf("Pixels() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"SameKeyword", Keyword("row"), Keyword("row"), true},
		{"DiffKeyword", Keyword("row"), Keyword("column"), false},
		{"ZeroUnitsEquivalent", Rem(0), Px(0), true},
		{"DiffKind", Keyword("row"), Hex("#fff"), false},
		{"ShorthandZeros",
			Shorthand(Length{5, UnitRem}, Length{}, Length{}, Length{}),
			Shorthand(Length{5, UnitRem}, Length{0, UnitRem}, Length{}, Length{}),
			true},
		{"FontStacks", FontStack("Open Sans", "sans-serif"), FontStack("Open Sans", "sans-serif"), true},
		{"FontStackOrder", FontStack("a", "b"), FontStack("b", "a"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid literal")
		}
	}()
	MustParse("not a !! value ??")
}
