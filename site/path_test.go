package site

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

const pathFixture = `
title: Launch Day
team:
  lead: Ada
  members: [Ada, Grace]
2024: leap
nothing: null
"dotted.key": hidden
empty: {}
`

func TestData_Resolve(t *testing.T) {
	d := mustParse(t, pathFixture)

	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"title", "Launch Day", true},
		{"team.lead", "Ada", true},
		{"team.members", `["Ada","Grace"]`, true},
		{"2024", "leap", true},
		{"team.members.0", "", false},
		{"team.*", "", false},
		{"title.length", "", false},
		{"missing", "", false},
		{"team.missing", "", false},
		{"", "", false},
		{"team..lead", "", false},
		{".title", "", false},
		{"dotted.key", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := d.Lookup(tt.path)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Lookup(%q) = %q, %v; want %q, %v",
					tt.path, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestData_Resolve_NullAndSubtree(t *testing.T) {
	d := mustParse(t, pathFixture)

	v, ok := d.Resolve("nothing")
	if !ok || v != nil {
		t.Errorf("Resolve(nothing) = %v, %v; want nil, true", v, ok)
	}

	if _, ok := d.Lookup("nothing"); ok {
		t.Error("Lookup(nothing) should report false for null")
	}

	v, ok = d.Resolve("team")
	if !ok {
		t.Fatal("Resolve(team) not found")
	}

	if _, isMap := v.(yaml.MapSlice); !isMap {
		t.Errorf("Resolve(team) = %T, want yaml.MapSlice", v)
	}
}

func TestData_Resolve_NilData(t *testing.T) {
	var d *Data

	if _, ok := d.Resolve("title"); ok {
		t.Error("nil data must not resolve")
	}

	if keys := d.Keys(); len(keys) != 0 {
		t.Errorf("nil data keys = %v", keys)
	}
}

func TestData_Resolve_GoMaps(t *testing.T) {
	d := NewData(yaml.MapSlice{
		{Key: "site", Value: map[string]any{"name": "LIFTS", "year": 2025}},
	})

	if got, _ := d.Lookup("site.name"); got != "LIFTS" {
		t.Errorf("Lookup(site.name) = %q", got)
	}

	if diff := cmp.Diff([]string{"site.name", "site.year"}, d.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestData_Flatten_DocumentOrder(t *testing.T) {
	d := mustParse(t, pathFixture)

	want := []string{"title", "team.lead", "team.members", "2024", "nothing"}
	if diff := cmp.Diff(want, d.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestData_Flatten_ResolvesBack(t *testing.T) {
	d := mustParse(t, pathFixture+`
deep:
  a:
    b:
      c: 1.5
      d: [1, {x: y}]
`)

	for _, leaf := range d.Flatten() {
		got, ok := d.Resolve(leaf.Path)
		if !ok {
			t.Errorf("Resolve(%q) not found", leaf.Path)

			continue
		}

		if diff := cmp.Diff(leaf.Value, got); diff != "" {
			t.Errorf("Resolve(%q) mismatch (-flat +resolved):\n%s", leaf.Path, diff)
		}
	}
}
