package sheet

import "testing"

func buildTree(t *testing.T) *Tree {
	t.Helper()
	tree := NewTree()
	regions := []Region{
		{ID: "body", Selector: "body"},
		{ID: "top-row", Selector: "#top-row", Parent: "body"},
		{ID: "top-row-graphs", Selector: "#top-row-graphs", Parent: "top-row"},
		{ID: "map-container", Selector: "#map-container", Parent: "top-row-graphs"},
		{ID: "map", Selector: "#map", Parent: "map-container"},
		{ID: "footer-row", Selector: "#footer-row", Parent: "body"},
	}
	for _, r := range regions {
		if err := tree.Add(r); err != nil {
			t.Fatalf("Add(%s): %v", r.ID, err)
		}
	}
	return tree
}

func TestTreeAdd(t *testing.T) {
	tests := []struct {
		name    string
		build   func(*Tree) error
		wantErr bool
	}{
		{
			name:    "RootWithParent",
			build:   func(tr *Tree) error { return tr.Add(Region{ID: "body", Selector: "body", Parent: "x"}) },
			wantErr: true,
		},
		{
			name: "SecondWithoutParent",
			build: func(tr *Tree) error {
				if err := tr.Add(Region{ID: "body", Selector: "body"}); err != nil {
					return err
				}
				return tr.Add(Region{ID: "top-row", Selector: "#top-row"})
			},
			wantErr: true,
		},
		{
			name: "UnknownParent",
			build: func(tr *Tree) error {
				if err := tr.Add(Region{ID: "body", Selector: "body"}); err != nil {
					return err
				}
				return tr.Add(Region{ID: "map", Selector: "#map", Parent: "missing"})
			},
			wantErr: true,
		},
		{
			name: "Duplicate",
			build: func(tr *Tree) error {
				if err := tr.Add(Region{ID: "body", Selector: "body"}); err != nil {
					return err
				}
				return tr.Add(Region{ID: "body", Selector: "body", Parent: "body"})
			},
			wantErr: true,
		},
		{
			name:    "BadID",
			build:   func(tr *Tree) error { return tr.Add(Region{ID: "Body!", Selector: "body"}) },
			wantErr: true,
		},
		{
			name:    "BadSelector",
			build:   func(tr *Tree) error { return tr.Add(Region{ID: "body", Selector: "body{}"}) },
			wantErr: true,
		},
		{
			name: "Valid",
			build: func(tr *Tree) error {
				if err := tr.Add(Region{ID: "body", Selector: "body"}); err != nil {
					return err
				}
				return tr.Add(Region{ID: "top-row", Selector: "#top-row", Parent: "body"})
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build(NewTree())
			if (err != nil) != tt.wantErr {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTreeAncestors(t *testing.T) {
	tree := buildTree(t)

	got := tree.Ancestors("map")
	want := []RegionID{"map-container", "top-row-graphs", "top-row", "body"}
	if len(got) != len(want) {
		t.Fatalf("Ancestors(map) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Ancestors(map)[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if anc := tree.Ancestors("body"); anc != nil {
		t.Errorf("Ancestors(body) = %v, want nil", anc)
	}
	if anc := tree.Ancestors("missing"); anc != nil {
		t.Errorf("Ancestors(missing) = %v, want nil", anc)
	}
}

func TestTreeChildren(t *testing.T) {
	tree := buildTree(t)

	got := tree.Children("body")
	if len(got) != 2 || got[0] != "top-row" || got[1] != "footer-row" {
		t.Errorf("Children(body) = %v, want [top-row footer-row]", got)
	}
	if kids := tree.Children("map"); kids != nil {
		t.Errorf("Children(map) = %v, want nil", kids)
	}
}

func TestTreeRootAndOrder(t *testing.T) {
	tree := buildTree(t)

	if tree.Root() != "body" {
		t.Errorf("Root() = %s, want body", tree.Root())
	}
	ids := tree.IDs()
	if len(ids) != tree.Len() || ids[0] != "body" {
		t.Errorf("IDs() = %v", ids)
	}
	// Returned slice must be a copy.
	ids[0] = "mutated"
	if tree.Root() != "body" {
		t.Error("IDs() exposed internal slice")
	}
}
