package site

import (
	"math"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
)

func TestText(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   string
		wantOK bool
	}{
		{"null", nil, "", false},
		{"string", "Launch Day", "Launch Day", true},
		{"empty string", "", "", true},
		{"bool true", true, "true", true},
		{"bool false", false, "false", true},
		{"int", 42, "42", true},
		{"uint64", uint64(42), "42", true},
		{"negative int64", int64(-7), "-7", true},
		{"float", 3.5, "3.5", true},
		{"whole float", 3.0, "3", true},
		{"small float", 0.000001, "0.000001", true},
		{"tiny float", 1.5e-7, "1.5e-7", true},
		{"huge float", 1e21, "1e+21", true},
		{"negative zero", math.Copysign(0, -1), "0", true},
		{"infinity", math.Inf(1), "Infinity", true},
		{"negative infinity", math.Inf(-1), "-Infinity", true},
		{"nan", math.NaN(), "NaN", true},
		{"date", time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), "2025-03-14", true},
		{"timestamp", time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC), "2025-03-14T09:30:00Z", true},
		{"sequence", []any{"a", uint64(1), nil}, `["a",1,null]`, true},
		{"mapping", yaml.MapSlice{{Key: "k", Value: "<b>"}}, `{"k":"<b>"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Text(tt.value)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Text(%v) = %q, %v; want %q, %v", tt.value, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
