// Package pipeline provides the core compile pipeline for the proximity
// dashboard stylesheet.
//
// This package implements the complete load → resolve → render pipeline that
// can be used by CLI and API components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and validate a sheet (built-in table or TOML document)
//  2. Resolve: Compute layout snapshots at the requested viewport widths
//  3. Render: Generate output in various formats (CSS, JSON, DOT, SVG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Widths:  []int{360, 900, 1600},
//	    Formats: []string{"css"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	stylesheet := result.Artifacts["css"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// DefaultWidths are the snapshot widths used when none are given: one
// representative width per major device class.
var DefaultWidths = []int{340, 500, 900, 1200, 1600}

// DefaultTTL is how long cached snapshots and artifacts live. Sheet content
// hashes key every entry, so expiry only bounds store growth.
const DefaultTTL = 24 * time.Hour

// Format constants for output formats.
const (
	FormatCSS  = "css"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatCSS:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the compile pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options. An empty SheetPath selects the built-in dashboard sheet.
	SheetPath string `json:"sheet_path,omitempty"`

	// Resolve options
	Widths []int `json:"widths,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`

	// Refresh bypasses the cache and recomputes everything.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RegionCount int
	BandCount   int
	LoadTime    time.Duration
	ResolveTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SnapshotHits int  // Number of snapshot widths served from cache
	RenderHit    bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: css, json, dot, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateWidths checks that all snapshot widths are non-negative.
func ValidateWidths(widths []int) error {
	for _, w := range widths {
		if w < 0 {
			return fmt.Errorf("invalid width: %d (must be >= 0)", w)
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if len(o.Widths) == 0 {
		o.Widths = append([]int(nil), DefaultWidths...)
	}
	if err := ValidateWidths(o.Widths); err != nil {
		return err
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatCSS}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}
