package site

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Text returns the canonical text of a resolved value as inserted in place
// of a placeholder. Strings are returned verbatim, numbers and booleans in
// their JavaScript literal form, timestamps as a date or RFC 3339 time, and
// mappings and sequences as compact JSON. Text reports false for null.
func Text(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case int:
		return strconv.Itoa(x), true
	case int8, int16, int32, int64:
		return fmt.Sprint(x), true
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x), true
	case float32:
		return formatNumber(float64(x)), true
	case float64:
		return formatNumber(x), true
	case time.Time:
		return formatTime(x), true
	}

	if _, ok := entries(v); ok {
		return compactJSON(v), true
	}

	if _, ok := v.([]any); ok {
		return compactJSON(v), true
	}

	return fmt.Sprint(v), true
}

func compactJSON(v any) string {
	var buf bytes.Buffer

	if err := writeJSON(&buf, v, "", 0); err != nil {
		return fmt.Sprint(v)
	}

	return buf.String()
}

// formatNumber renders f the way JavaScript's Number.prototype.toString
// does, so substituted text and the exported script agree.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	// Go pads the exponent to two digits ("1e-07"); JavaScript does not.
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")

	return mant + "e" + sign + digits
}

func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 &&
		t.Nanosecond() == 0 && t.Location() == time.UTC {
		return t.Format(time.DateOnly)
	}

	return t.Format(time.RFC3339Nano)
}
