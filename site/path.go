package site

import (
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
)

// PathSeparator separates the segments of a key path.
const PathSeparator = "."

// Resolve walks path one segment at a time from the root mapping. It reports
// false if any segment is not a key of a mapping at that point; index and
// wildcard segments are not supported and simply do not resolve. A path
// that reaches an explicit null resolves to (nil, true). Keys that are not
// strings match by their text form, so the key 2024 resolves "years.2024".
func (d *Data) Resolve(path string) (any, bool) {
	if d == nil {
		return nil, false
	}

	var cur any = d.root

	for seg := range strings.SplitSeq(path, PathSeparator) {
		items, ok := entries(cur)
		if !ok {
			return nil, false
		}

		cur, ok = lookup(items, seg)
		if !ok {
			return nil, false
		}
	}

	return cur, true
}

// Lookup resolves path and returns the canonical text of its value. It
// reports false if the path does not resolve or resolves to null.
func (d *Data) Lookup(path string) (string, bool) {
	v, ok := d.Resolve(path)
	if !ok {
		return "", false
	}

	return Text(v)
}

// Leaf is a single entry of the flattened key set.
type Leaf struct {
	Path  string
	Value any
}

// Flatten returns every leaf reachable from the root with its full key path,
// in document order. Nested mappings are descended into and never appear as
// leaves themselves; sequences are leaves. Keys containing the path
// separator cannot be addressed by a path and are omitted with their
// subtrees.
func (d *Data) Flatten() []Leaf {
	if d == nil {
		return nil
	}

	return flatten(nil, "", d.root)
}

// Keys returns the paths of [Data.Flatten].
func (d *Data) Keys() []string {
	leaves := d.Flatten()
	keys := make([]string, len(leaves))

	for i, leaf := range leaves {
		keys[i] = leaf.Path
	}

	return keys
}

func flatten(acc []Leaf, prefix string, items yaml.MapSlice) []Leaf {
	for _, item := range items {
		key := keyText(item.Key)
		if strings.Contains(key, PathSeparator) {
			continue
		}

		path := key
		if prefix != "" {
			path = prefix + PathSeparator + key
		}

		if nested, ok := entries(item.Value); ok {
			acc = flatten(acc, path, nested)

			continue
		}

		acc = append(acc, Leaf{Path: path, Value: item.Value})
	}

	return acc
}

// entries returns the items of a mapping value. Plain Go maps are accepted
// for data built in code and are visited in key order.
func entries(v any) (yaml.MapSlice, bool) {
	switch m := v.(type) {
	case yaml.MapSlice:
		return m, true

	case map[string]any:
		items := make(yaml.MapSlice, 0, len(m))
		for _, k := range slices.Sorted(maps.Keys(m)) {
			items = append(items, yaml.MapItem{Key: k, Value: m[k]})
		}

		return items, true

	default:
		return nil, false
	}
}

func lookup(items yaml.MapSlice, key string) (any, bool) {
	for _, item := range items {
		if keyText(item.Key) == key {
			return item.Value, true
		}
	}

	return nil, false
}

// keyText is the canonical string form of a mapping key, so that a key
// written as 2024 is addressed by the segment "2024".
func keyText(k any) string {
	if s, ok := k.(string); ok {
		return s
	}

	if s, ok := Text(k); ok {
		return s
	}

	return "null"
}
