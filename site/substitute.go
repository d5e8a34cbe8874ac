package site

import "strings"

// Step records the resolution of one placeholder occurrence.
type Step struct {
	Key   string
	Value string
	Found bool
}

// Substitution is the result of [Substitute].
type Substitution struct {
	Text  string
	Count int
	Steps []Step
}

// Substitute replaces every placeholder in text whose key resolves to a
// non-null value in d with the value's [Text]. Other placeholders are kept
// byte for byte. Count is the number of replaced occurrences and Steps lists
// every occurrence in order.
func Substitute(text string, d *Data) Substitution {
	matches := placeholderPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return Substitution{Text: text}
	}

	var (
		sb   strings.Builder
		last int
	)

	result := Substitution{Steps: make([]Step, 0, len(matches))}

	sb.Grow(len(text))

	for _, m := range matches {
		start, end := m[0], m[1]
		key := text[m[2]:m[3]]

		sb.WriteString(text[last:start])

		value, ok := d.Lookup(key)
		if ok {
			sb.WriteString(value)
			result.Count++
		} else {
			sb.WriteString(text[start:end])
		}

		result.Steps = append(result.Steps, Step{Key: key, Value: value, Found: ok})
		last = end
	}

	sb.WriteString(text[last:])
	result.Text = sb.String()

	return result
}
