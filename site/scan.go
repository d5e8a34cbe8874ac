package site

import "regexp"

// placeholderPattern matches {{ key.path }}. Only ASCII word characters and
// dots are allowed in the path, so any other brace content is not a
// placeholder and is never touched.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([\w.]+)\s*\}\}`)

// Scan returns the key path of every placeholder in text, in order of
// appearance and including duplicates.
func Scan(text string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	keys := make([]string, len(matches))
	for i, m := range matches {
		keys[i] = m[1]
	}

	return keys
}

// HasPlaceholder reports whether text contains at least one placeholder.
func HasPlaceholder(text string) bool {
	return placeholderPattern.MatchString(text)
}
