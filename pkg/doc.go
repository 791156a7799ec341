// Package pkg provides the core libraries for the proximity dashboard layout
// resolver.
//
// # Overview
//
// The resolver turns a declarative breakpoint table into concrete styling:
// given a viewport width, a region of the dashboard, and a property, it
// answers what value applies. The pkg directory is organized around that
// flow:
//
//  1. [style] - Typed CSS values and the supported property set
//  2. [sheet] - The stylesheet model: region tree, base rules, width bands
//  3. [resolve] - Cascade resolution at a viewport width
//  4. [css] - Rendering a sheet back to a stylesheet
//  5. [dashboard] - The built-in proximity dashboard sheet and theme
//  6. [diagram] - Region tree diagrams (DOT, SVG)
//  7. [pipeline] - Orchestration (load → resolve → render) with caching
//  8. [cache] - Artifact cache backends (file, Redis, MongoDB)
//
// # Quick Start
//
// Resolve the built-in sheet at one width and render the stylesheet:
//
//	import (
//	    "github.com/urutau-nz/dash-evaluating-proximity/pkg/css"
//	    "github.com/urutau-nz/dash-evaluating-proximity/pkg/dashboard"
//	    "github.com/urutau-nz/dash-evaluating-proximity/pkg/resolve"
//	)
//
//	// 1. Load the sheet
//	s := dashboard.Sheet()
//
//	// 2. Resolve one region at a viewport width
//	res, _ := resolve.New(s)
//	styles, _ := res.Region(340, "map")
//	_ = styles["height"] // 35rem
//
//	// 3. Render the full responsive stylesheet
//	stylesheet := css.Render(s)
//
// Sheets can also be authored as TOML documents and loaded with sheet.Load;
// see examples/sheet/proximity.toml for the format.
//
// # Supporting Packages
//
// [errors] - Coded errors shared by validation, resolution, and the HTTP
// service.
//
// [observability] - Pluggable hooks for pipeline stages, cache access, and
// HTTP requests.
//
// [buildinfo] - Version metadata injected at build time.
package pkg
