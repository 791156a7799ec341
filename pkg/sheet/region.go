// Package sheet models the responsive stylesheet: the named page regions,
// the breakpoint bands with their style overrides, and the declaration
// order that drives cascade resolution.
//
// A [Sheet] is static configuration. It is authored once (in Go table form
// or as a TOML document), validated at build/check time, and never mutated
// afterwards. Resolution against a viewport width lives in package resolve.
package sheet

import (
	"fmt"

	"github.com/urutau-nz/dash-evaluating-proximity/pkg/errors"
)

// RegionID identifies a named layout region ("top-row", "map-container").
type RegionID string

// String returns the region identifier.
func (id RegionID) String() string { return string(id) }

// Region is a named, structurally fixed area of the page layout.
//
// The Selector is an external contract shared with the page-structure
// document; it must never be renamed unilaterally.
type Region struct {
	ID       RegionID `json:"id" bson:"id" toml:"id"`
	Selector string   `json:"selector" bson:"selector" toml:"selector"`
	Parent   RegionID `json:"parent,omitempty" bson:"parent,omitempty" toml:"parent"`
}

// Tree is the region containment tree. Regions are kept in declaration
// order for deterministic serialization.
type Tree struct {
	regions map[RegionID]Region
	order   []RegionID
}

// NewTree creates an empty region tree.
func NewTree() *Tree {
	return &Tree{regions: make(map[RegionID]Region)}
}

// Add inserts a region. The first region added is the root and must have no
// parent; every later region must name an already-added parent.
func (t *Tree) Add(r Region) error {
	if err := errors.ValidateRegionID(string(r.ID)); err != nil {
		return err
	}
	if err := errors.ValidateSelector(r.Selector); err != nil {
		return fmt.Errorf("region %s: %w", r.ID, err)
	}

	if _, exists := t.regions[r.ID]; exists {
		return errors.New(errors.ErrCodeInvalidRegion, "duplicate region %q", r.ID)
	}

	if len(t.order) == 0 {
		if r.Parent != "" {
			return errors.New(errors.ErrCodeInvalidRegion, "root region %q cannot have a parent", r.ID)
		}
	} else {
		if r.Parent == "" {
			return errors.New(errors.ErrCodeInvalidRegion, "region %q needs a parent (tree already has root %q)", r.ID, t.order[0])
		}
		if _, ok := t.regions[r.Parent]; !ok {
			return errors.New(errors.ErrCodeInvalidRegion, "region %q references unknown parent %q", r.ID, r.Parent)
		}
	}

	t.regions[r.ID] = r
	t.order = append(t.order, r.ID)
	return nil
}

// MustAdd is Add that panics on error, for static tables.
func MustAdd(t *Tree, r Region) {
	if err := t.Add(r); err != nil {
		panic(fmt.Sprintf("sheet: %v", err))
	}
}

// Get returns the region with the given ID.
func (t *Tree) Get(id RegionID) (Region, bool) {
	r, ok := t.regions[id]
	return r, ok
}

// Root returns the root region ID, or "" for an empty tree.
func (t *Tree) Root() RegionID {
	if len(t.order) == 0 {
		return ""
	}
	return t.order[0]
}

// IDs returns all region IDs in declaration order.
func (t *Tree) IDs() []RegionID {
	out := make([]RegionID, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of regions.
func (t *Tree) Len() int { return len(t.order) }

// Ancestors returns the chain of ancestors of id, nearest first, ending at
// the root. Returns nil for the root or an unknown region.
func (t *Tree) Ancestors(id RegionID) []RegionID {
	var out []RegionID
	r, ok := t.regions[id]
	if !ok {
		return nil
	}
	for r.Parent != "" {
		out = append(out, r.Parent)
		r = t.regions[r.Parent]
	}
	return out
}

// Children returns the direct children of id in declaration order.
func (t *Tree) Children(id RegionID) []RegionID {
	var out []RegionID
	for _, cid := range t.order {
		if t.regions[cid].Parent == id {
			out = append(out, cid)
		}
	}
	return out
}
