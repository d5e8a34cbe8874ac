package site

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"none", "<p>plain</p>", nil},
		{"single", "{{ title }}", []string{"title"}},
		{"no spaces", "{{team.lead}}", []string{"team.lead"}},
		{"extra spaces", "{{   a_b.c1   }}", []string{"a_b.c1"}},
		{"newline inside", "{{\n  title\n}}", []string{"title"}},
		{"duplicates kept in order", "{{ b }}{{ a }}{{ b }}", []string{"b", "a", "b"}},
		{"hyphen is not a placeholder", "{{ a-b }} {{ ok }}", []string{"ok"}},
		{"inner space is not a placeholder", "{{ a b }}", nil},
		{"empty braces", "{{}} {{ }}", nil},
		{"non-ascii is not a placeholder", "{{ café }}", nil},
		{"single braces", "{ title }", nil},
		{"triple braces", "{{{ title }}}", []string{"title"}},
		{"index syntax", "{{ list[0] }}", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Scan(tt.text)); diff != "" {
				t.Errorf("Scan(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestHasPlaceholder(t *testing.T) {
	if !HasPlaceholder("Hi {{ name }}") {
		t.Error("expected placeholder")
	}

	if HasPlaceholder("Hi {{ first name }}") {
		t.Error("expected no placeholder")
	}
}
