package site

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSuggest(t *testing.T) {
	d := mustParse(t, "title: Launch Day\nteam:\n  lead: Ada\n  size: 3\nnothing: null\n")

	tests := []struct {
		name  string
		key   string
		limit int
		want  []string
	}{
		{"missing prefix", "lead", 3, []string{"team.lead"}},
		{"abbreviation", "tm.sz", 3, []string{"team.size"}},
		{"no match", "zzz", 3, nil},
		{"zero limit", "lead", 0, nil},
		{"null leaf excludes itself", "nothing", 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Suggest(tt.key, d, tt.limit)); diff != "" {
				t.Errorf("Suggest(%q) mismatch (-want +got):\n%s", tt.key, diff)
			}
		})
	}
}
