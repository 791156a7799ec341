package cli

import (
	"context"
	"reflect"
	"testing"
)

func TestNewCacheDisabled(t *testing.T) {
	store, err := newCache(true)
	if err != nil {
		t.Fatalf("newCache(true) error: %v", err)
	}
	defer store.Close()

	// The null backend never stores anything.
	ctx := context.Background()
	if err := store.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Error("null cache reported a hit")
	}
}

func TestNewCacheFile(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	store, err := newCache(false)
	if err != nil {
		t.Fatalf("newCache(false) error: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	data, ok, err := store.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v, %v", data, ok, err)
	}
	if string(data) != "v" {
		t.Errorf("Get() = %q, want %q", data, "v")
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"Empty", "", []string{"css"}},
		{"Single", "json", []string{"json"}},
		{"Multiple", "css,json,svg", []string{"css", "json", "svg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
