package style

import "testing"

func TestPropertyValid(t *testing.T) {
	for _, p := range Properties {
		if !p.Valid() {
			t.Errorf("property %q should be valid", p)
		}
	}

	if Property("text-shadow").Valid() {
		t.Error("unknown property should not be valid")
	}
	if Property("").Valid() {
		t.Error("empty property should not be valid")
	}
}

func TestPropertyInherited(t *testing.T) {
	tests := []struct {
		prop Property
		want bool
	}{
		{Color, true},
		{FontSize, true},
		{FontFamily, true},
		{FontWeight, true},
		{LineHeight, true},
		{BackgroundColor, false},
		{Margin, false},
		{FlexDirection, false},
		{Height, false},
		{ZIndex, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.prop), func(t *testing.T) {
			if got := tt.prop.Inherited(); got != tt.want {
				t.Errorf("Inherited() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPropertiesUnique(t *testing.T) {
	seen := map[Property]bool{}
	for _, p := range Properties {
		if seen[p] {
			t.Errorf("duplicate property in canonical order: %q", p)
		}
		seen[p] = true
	}
}
