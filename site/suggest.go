package site

import "github.com/sahilm/fuzzy"

// Suggest returns up to limit flattened keys of d that fuzzily match key,
// best match first. Characters of key must appear in order in a candidate,
// so abbreviated or partial paths like "lead" or "tm.ld" find "team.lead".
func Suggest(key string, d *Data, limit int) []string {
	if limit <= 0 {
		return nil
	}

	var out []string

	for _, m := range fuzzy.Find(key, d.Keys()) {
		if m.Str == key {
			continue
		}

		out = append(out, m.Str)
		if len(out) == limit {
			break
		}
	}

	return out
}
