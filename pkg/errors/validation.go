package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// regionIDRegex matches valid region identifiers: lowercase kebab-case.
var regionIDRegex = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// ValidateRegionID validates a region identifier.
//
// Region IDs are lowercase kebab-case names ("top-row", "map-container").
// They become map keys, file name fragments, and URL query values, so the
// rules are intentionally conservative.
func ValidateRegionID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidRegion, "region id cannot be empty")
	}

	if len(id) > 64 {
		return New(ErrCodeInvalidRegion, "region id too long (max 64 characters)")
	}

	if !regionIDRegex.MatchString(id) {
		return New(ErrCodeInvalidRegion, "invalid region id: %q (want lowercase kebab-case)", id)
	}

	return nil
}

// ValidateSelector validates a CSS selector string.
//
// Selectors are an external contract shared with the page-structure document,
// so only a shape check is done: non-empty, printable, no braces or
// declarations smuggled in.
func ValidateSelector(sel string) error {
	if sel == "" {
		return New(ErrCodeInvalidInput, "selector cannot be empty")
	}

	if len(sel) > 128 {
		return New(ErrCodeInvalidInput, "selector too long (max 128 characters)")
	}

	for _, r := range sel {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "selector contains control characters")
		}
	}

	if strings.ContainsAny(sel, "{};") {
		return New(ErrCodeInvalidInput, "selector cannot contain declaration characters: %q", sel)
	}

	return nil
}

// hexColorRegex matches 3- or 6-digit hex color tokens.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor validates a hex color token like "#192444".
func ValidateHexColor(s string) error {
	if s == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}

	if !hexColorRegex.MatchString(s) {
		return New(ErrCodeInvalidColor, "invalid hex color: %q", s)
	}

	return nil
}

// lengthRegex matches a single CSS length literal: an optionally signed
// decimal number followed by a supported unit, or a bare 0.
var lengthRegex = regexp.MustCompile(`^-?(\d+(\.\d+)?|\.\d+)(rem|px|vw|%)?$`)

// ValidateLengthLiteral validates a single CSS length literal ("5rem",
// "-8rem", "1.8vw", "0"). A unitless value other than 0 is rejected.
func ValidateLengthLiteral(s string) error {
	if s == "" {
		return New(ErrCodeInvalidLength, "length cannot be empty")
	}

	if !lengthRegex.MatchString(s) {
		return New(ErrCodeInvalidLength, "invalid length literal: %q", s)
	}

	// Unitless is only legal for zero.
	if !strings.HasSuffix(s, "rem") && !strings.HasSuffix(s, "px") &&
		!strings.HasSuffix(s, "vw") && !strings.HasSuffix(s, "%") {
		trimmed := strings.TrimLeft(s, "-")
		trimmed = strings.Trim(trimmed, "0.")
		if trimmed != "" {
			return New(ErrCodeInvalidLength, "non-zero length needs a unit: %q", s)
		}
	}

	return nil
}

// ValidateWidth validates a viewport width in integer pixels.
func ValidateWidth(w int) error {
	if w < 0 {
		return New(ErrCodeInvalidWidth, "viewport width must be >= 0, got %d", w)
	}
	return nil
}

// ValidateFormat validates an output format name against the allowed set.
func ValidateFormat(format string, valid map[string]bool) error {
	if !valid[format] {
		return New(ErrCodeInvalidFormat, "unsupported format: %q", format)
	}
	return nil
}
