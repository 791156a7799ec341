package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urutau-nz/dash-evaluating-proximity/pkg/errors"
)

// =============================================================================
// Kinds and Units
// =============================================================================

// Kind discriminates the typed value union.
type Kind int

// Value kinds.
const (
	KindKeyword Kind = iota
	KindColor
	KindLength
	KindLengthList
	KindFontStack
	KindNumber
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindKeyword:
		return "keyword"
	case KindColor:
		return "color"
	case KindLength:
		return "length"
	case KindLengthList:
		return "length-list"
	case KindFontStack:
		return "font-stack"
	case KindNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Unit is a CSS length unit.
type Unit string

// Supported length units. UnitNone is only legal for zero lengths.
const (
	UnitNone    Unit = ""
	UnitRem     Unit = "rem"
	UnitPx      Unit = "px"
	UnitVW      Unit = "vw"
	UnitPercent Unit = "%"
)

// =============================================================================
// Length
// =============================================================================

// Length is a single CSS length: an amount with a unit.
type Length struct {
	Amount float64 `json:"amount" bson:"amount" toml:"amount"`
	Unit   Unit    `json:"unit,omitempty" bson:"unit,omitempty" toml:"unit,omitempty"`
}

// CSS returns the canonical CSS literal for the length.
// Zero lengths serialize as a bare "0" regardless of unit.
func (l Length) CSS() string {
	if l.Amount == 0 {
		return "0"
	}
	return formatNum(l.Amount) + string(l.Unit)
}

// Pixels evaluates the length against a viewport width in pixels and a root
// font size (rem base). Viewport-relative units (vw, %) scale with the
// viewport; absolute px pass through.
func (l Length) Pixels(viewportWidth int, remPx float64) float64 {
	switch l.Unit {
	case UnitRem:
		return l.Amount * remPx
	case UnitVW, UnitPercent:
		return l.Amount * float64(viewportWidth) / 100
	default:
		return l.Amount
	}
}

// IsZero reports whether the length is exactly zero.
func (l Length) IsZero() bool { return l.Amount == 0 }

// =============================================================================
// Value
// =============================================================================

// Value is the typed union of style values. Kind selects which field is
// meaningful; the zero Value is the keyword "".
type Value struct {
	Kind    Kind     `json:"kind" bson:"kind"`
	Keyword string   `json:"keyword,omitempty" bson:"keyword,omitempty"`
	Color   string   `json:"color,omitempty" bson:"color,omitempty"`
	Lengths []Length `json:"lengths,omitempty" bson:"lengths,omitempty"`
	Fonts   []string `json:"fonts,omitempty" bson:"fonts,omitempty"`
	Number  float64  `json:"number,omitempty" bson:"number,omitempty"`
}

// Keyword constructs a keyword value ("row", "column", "flex", "none").
func Keyword(kw string) Value {
	return Value{Kind: KindKeyword, Keyword: kw}
}

// Hex constructs a color value from a hex token. The token is canonicalized
// to lowercase.
func Hex(color string) Value {
	return Value{Kind: KindColor, Color: strings.ToLower(color)}
}

// Rem constructs a single rem length value.
func Rem(amount float64) Value {
	return Value{Kind: KindLength, Lengths: []Length{{Amount: amount, Unit: UnitRem}}}
}

// Px constructs a single pixel length value.
func Px(amount float64) Value {
	return Value{Kind: KindLength, Lengths: []Length{{Amount: amount, Unit: UnitPx}}}
}

// VW constructs a viewport-relative length value.
func VW(amount float64) Value {
	return Value{Kind: KindLength, Lengths: []Length{{Amount: amount, Unit: UnitVW}}}
}

// Percent constructs a percentage length value.
func Percent(amount float64) Value {
	return Value{Kind: KindLength, Lengths: []Length{{Amount: amount, Unit: UnitPercent}}}
}

// Shorthand constructs a multi-length shorthand value ("5rem 0 0 0").
func Shorthand(lengths ...Length) Value {
	return Value{Kind: KindLengthList, Lengths: lengths}
}

// FontStack constructs a font-family value. The last entry should be a
// generic family (sans-serif, serif) so a failed web-font fetch degrades to
// the host default.
func FontStack(families ...string) Value {
	return Value{Kind: KindFontStack, Fonts: families}
}

// Number constructs a unitless numeric value (font-weight, z-index).
func Number(n float64) Value {
	return Value{Kind: KindNumber, Number: n}
}

// Length returns the single length of a KindLength value.
// For other kinds it returns the zero Length.
func (v Value) Length() Length {
	if v.Kind == KindLength && len(v.Lengths) == 1 {
		return v.Lengths[0]
	}
	return Length{}
}

// CSS returns the canonical CSS literal for the value.
func (v Value) CSS() string {
	switch v.Kind {
	case KindKeyword:
		return v.Keyword
	case KindColor:
		return v.Color
	case KindLength, KindLengthList:
		parts := make([]string, len(v.Lengths))
		for i, l := range v.Lengths {
			parts[i] = l.CSS()
		}
		return strings.Join(parts, " ")
	case KindFontStack:
		parts := make([]string, len(v.Fonts))
		for i, f := range v.Fonts {
			if strings.ContainsRune(f, ' ') {
				parts[i] = `"` + f + `"`
			} else {
				parts[i] = f
			}
		}
		return strings.Join(parts, ", ")
	case KindNumber:
		return formatNum(v.Number)
	default:
		return ""
	}
}

// Equal reports whether two values are semantically equal. Zero lengths
// compare equal regardless of unit, matching CSS semantics.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindKeyword:
		return v.Keyword == o.Keyword
	case KindColor:
		return v.Color == o.Color
	case KindLength, KindLengthList:
		if len(v.Lengths) != len(o.Lengths) {
			return false
		}
		for i := range v.Lengths {
			a, b := v.Lengths[i], o.Lengths[i]
			if a.IsZero() && b.IsZero() {
				continue
			}
			if a != b {
				return false
			}
		}
		return true
	case KindFontStack:
		if len(v.Fonts) != len(o.Fonts) {
			return false
		}
		for i := range v.Fonts {
			if v.Fonts[i] != o.Fonts[i] {
				return false
			}
		}
		return true
	case KindNumber:
		return v.Number == o.Number
	default:
		return false
	}
}

// =============================================================================
// Parsing
// =============================================================================

// Parse converts a CSS literal into a typed Value.
//
// Recognized forms, in order:
//   - hex color tokens ("#192444")
//   - comma-separated font stacks (`"Open Sans", sans-serif`)
//   - single lengths and space-separated length shorthands ("5rem 0 0 0")
//   - bare numbers ("700")
//   - single keywords ("row", "none")
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, errors.New(errors.ErrCodeInvalidValue, "empty value literal")
	}

	if strings.HasPrefix(s, "#") {
		if err := errors.ValidateHexColor(s); err != nil {
			return Value{}, err
		}
		return Hex(s), nil
	}

	if strings.Contains(s, ",") {
		return parseFontStack(s)
	}

	fields := strings.Fields(s)
	if allLengths(fields) {
		lengths := make([]Length, len(fields))
		for i, f := range fields {
			l, err := parseLength(f)
			if err != nil {
				return Value{}, err
			}
			lengths[i] = l
		}
		if len(lengths) == 1 {
			return Value{Kind: KindLength, Lengths: lengths}, nil
		}
		return Value{Kind: KindLengthList, Lengths: lengths}, nil
	}

	if len(fields) == 1 {
		if n, err := strconv.ParseFloat(fields[0], 64); err == nil {
			return Number(n), nil
		}
		if isKeyword(fields[0]) {
			return Keyword(fields[0]), nil
		}
	}

	return Value{}, errors.New(errors.ErrCodeInvalidValue, "unrecognized value literal: %q", s)
}

// MustParse is Parse that panics on error, for static tables.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("style: %v", err))
	}
	return v
}

// allLengths reports whether every field is a valid length literal.
// A single bare number field is not treated as a length (it parses as a
// KindNumber); bare zeros are.
func allLengths(fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	sawUnit := false
	for _, f := range fields {
		if errors.ValidateLengthLiteral(f) != nil {
			return false
		}
		if hasUnit(f) {
			sawUnit = true
		}
	}
	if len(fields) == 1 && !sawUnit {
		// "0" alone is a zero length; other bare numbers are rejected by
		// ValidateLengthLiteral already.
		return strings.Trim(strings.TrimLeft(fields[0], "-"), "0.") == ""
	}
	return true
}

func hasUnit(s string) bool {
	return strings.HasSuffix(s, "rem") || strings.HasSuffix(s, "px") ||
		strings.HasSuffix(s, "vw") || strings.HasSuffix(s, "%")
}

// parseLength parses a single validated length literal.
func parseLength(s string) (Length, error) {
	if err := errors.ValidateLengthLiteral(s); err != nil {
		return Length{}, err
	}

	unit := UnitNone
	num := s
	switch {
	case strings.HasSuffix(s, "rem"):
		unit, num = UnitRem, strings.TrimSuffix(s, "rem")
	case strings.HasSuffix(s, "px"):
		unit, num = UnitPx, strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "vw"):
		unit, num = UnitVW, strings.TrimSuffix(s, "vw")
	case strings.HasSuffix(s, "%"):
		unit, num = UnitPercent, strings.TrimSuffix(s, "%")
	}

	amount, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, errors.Wrap(errors.ErrCodeInvalidLength, err, "parse length %q", s)
	}
	return Length{Amount: amount, Unit: unit}, nil
}

// parseFontStack parses a comma-separated font-family list.
func parseFontStack(s string) (Value, error) {
	parts := strings.Split(s, ",")
	fonts := make([]string, 0, len(parts))
	for _, p := range parts {
		name := strings.Trim(strings.TrimSpace(p), `"'`)
		if name == "" {
			return Value{}, errors.New(errors.ErrCodeInvalidValue, "empty font family in %q", s)
		}
		fonts = append(fonts, name)
	}
	return FontStack(fonts...), nil
}

// keywordRegexp is kept simple: lowercase identifiers only.
func isKeyword(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && r != '-' {
			return false
		}
	}
	return s != ""
}

// formatNum renders a float without trailing zeros ("0.85", "5", "-8").
func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
