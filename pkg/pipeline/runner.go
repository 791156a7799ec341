package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/urutau-nz/dash-evaluating-proximity/pkg/cache"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/css"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/dashboard"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/diagram"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/observability"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/resolve"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/sheet"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL bounds the lifetime of cached snapshots and artifacts.
	TTL time.Duration
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Sheet is the loaded, validated sheet.
	Sheet *sheet.Sheet

	// SheetHash is the content hash of the sheet.
	SheetHash string

	// Snapshots are the resolved layouts, one per requested width.
	Snapshots []*resolve.Snapshot

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    DefaultTTL,
	}
}

// Execute runs the complete load → resolve → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	s, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Sheet = s
	result.SheetHash = s.Hash()
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.RegionCount = s.Tree.Len()
	result.Stats.BandCount = len(s.Bands)

	r.Logger.Info("loaded sheet",
		"name", s.Name,
		"regions", s.Tree.Len(),
		"bands", len(s.Bands),
		"duration", result.Stats.LoadTime)

	res, err := resolve.New(s)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	// Stage 2: Resolve
	resolveStart := time.Now()
	for _, w := range opts.Widths {
		snap, hit, err := r.SnapshotWithCacheInfo(ctx, res, w, opts.Refresh)
		if err != nil {
			return nil, fmt.Errorf("resolve width %d: %w", w, err)
		}
		if hit {
			result.CacheInfo.SnapshotHits++
		}
		result.Snapshots = append(result.Snapshots, snap)
	}
	result.Stats.ResolveTime = time.Since(resolveStart)

	r.Logger.Info("resolved snapshots",
		"widths", opts.Widths,
		"cache_hits", result.CacheInfo.SnapshotHits,
		"duration", result.Stats.ResolveTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, s, result.Snapshots, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads and validates the sheet named by opts: the built-in dashboard
// table when SheetPath is empty, a TOML document otherwise.
func (r *Runner) Load(ctx context.Context, opts Options) (*sheet.Sheet, error) {
	source := opts.SheetPath
	if source == "" {
		source = "builtin"
	}
	observability.Pipeline().OnLoadStart(ctx, source)
	start := time.Now()

	var s *sheet.Sheet
	var err error
	if opts.SheetPath == "" {
		s = dashboard.Sheet()
		err = s.Validate()
	} else {
		s, err = sheet.Load(opts.SheetPath)
	}

	regions := 0
	if s != nil {
		regions = s.Tree.Len()
	}
	observability.Pipeline().OnLoadComplete(ctx, source, regions, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// SnapshotWithCacheInfo resolves one width with caching and reports whether
// the snapshot came from the cache.
func (r *Runner) SnapshotWithCacheInfo(ctx context.Context, res *resolve.Resolver, width int, refresh bool) (*resolve.Snapshot, bool, error) {
	key := r.Keyer.SnapshotKey(res.Sheet().Hash(), width)

	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var snap resolve.Snapshot
			if err := json.Unmarshal(data, &snap); err == nil {
				observability.Cache().OnCacheHit(ctx, "snapshot")
				return &snap, true, nil
			}
			// Corrupt entry, fall through and recompute.
			_ = r.Cache.Delete(ctx, key)
		}
	}
	observability.Cache().OnCacheMiss(ctx, "snapshot")

	observability.Pipeline().OnResolveStart(ctx, res.Sheet().Name, width)
	start := time.Now()
	snap, err := res.Snapshot(width)
	observability.Pipeline().OnResolveComplete(ctx, res.Sheet().Name, width, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(snap); err == nil {
		setErr := cache.RetryWithBackoff(ctx, func() error {
			return r.Cache.Set(ctx, key, data, r.TTL)
		})
		if setErr != nil {
			r.Logger.Warn("snapshot cache write failed", "key", key, "error", setErr)
		} else {
			observability.Cache().OnCacheSet(ctx, "snapshot", len(data))
		}
	}

	return snap, false, nil
}

// RenderWithCacheInfo renders the requested formats with caching. The hit
// flag is true only when every artifact came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, s *sheet.Sheet, snaps []*resolve.Snapshot, opts Options) (map[string][]byte, bool, error) {
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts := make(map[string][]byte, len(opts.Formats))
	allHit := true
	var renderErr error

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(s.Hash(), format)

		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}
		allHit = false

		data, err := r.renderFormat(s, snaps, format)
		if err != nil {
			renderErr = fmt.Errorf("render %s: %w", format, err)
			break
		}
		artifacts[format] = data

		setErr := cache.RetryWithBackoff(ctx, func() error {
			return r.Cache.Set(ctx, key, data, r.TTL)
		})
		if setErr != nil {
			r.Logger.Warn("artifact cache write failed", "key", key, "error", setErr)
		} else {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), renderErr)
	if renderErr != nil {
		return nil, false, renderErr
	}
	return artifacts, allHit, nil
}

// renderFormat serializes one output format.
func (r *Runner) renderFormat(s *sheet.Sheet, snaps []*resolve.Snapshot, format string) ([]byte, error) {
	switch format {
	case FormatCSS:
		return []byte(css.Render(s)), nil
	case FormatJSON:
		return json.MarshalIndent(snaps, "", "  ")
	case FormatDOT:
		return []byte(diagram.ToDOT(s.Tree, diagram.Options{Selectors: true})), nil
	case FormatSVG:
		dot := diagram.ToDOT(s.Tree, diagram.Options{Selectors: true})
		return diagram.RenderSVG(dot)
	default:
		return nil, fmt.Errorf("invalid format: %q", format)
	}
}
