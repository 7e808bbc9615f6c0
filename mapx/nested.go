package mapx

import (
	"strings"

	"github.com/hasbyte1/go-iter-utils/sentinel"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-path access to nested map[string]any structures
//
// A path is a dot-separated chain of keys: "user.address.city". Lookups
// must distinguish "path absent" from "path present with a nil value", so
// the shared traversal reports a miss with an identity-distinct sentinel
// that no user value can collide with; the public API exposes it as a
// (value, ok) pair.
// ─────────────────────────────────────────────────────────────────────────────

var missing = sentinel.New("mapx.missing")

// asStringMap unwraps both raw map[string]any values and NestedMap nodes.
func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case NestedMap:
		return m, true
	default:
		return nil, false
	}
}

func lookup(m map[string]any, segments []string) any {
	current := m
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return missing
		}
		if i == len(segments)-1 {
			return val
		}
		nested, ok := asStringMap(val)
		if !ok {
			return missing
		}
		current = nested
	}
	return missing
}

// GetPath retrieves the value at a dot-separated path. The second result
// is false when any segment of the path is absent or a non-map value is
// hit before the final segment; a stored nil is returned as (nil, true).
//
//	city, ok := mapx.GetPath(m, "user.address.city")
func GetPath(m map[string]any, path string) (any, bool) {
	v := lookup(m, strings.Split(path, "."))
	if v == missing {
		return nil, false
	}
	return v, true
}

// HasPath reports whether the dot-separated path exists in m.
func HasPath(m map[string]any, path string) bool {
	return lookup(m, strings.Split(path, ".")) != missing
}

// SetPath writes value at a dot-separated path, creating intermediate maps
// as needed and overwriting any non-map value standing in the way. Mutates
// m in place.
func SetPath(m map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	current := m
	for _, seg := range segments[:len(segments)-1] {
		nested, ok := asStringMap(current[seg])
		if !ok {
			nested = make(map[string]any)
			current[seg] = nested
		}
		current = nested
	}
	current[segments[len(segments)-1]] = value
}

// ForgetPath removes the value at a dot-separated path, if present.
// Mutates m in place; intermediate maps are left even when emptied.
func ForgetPath(m map[string]any, path string) {
	segments := strings.Split(path, ".")
	current := m
	for _, seg := range segments[:len(segments)-1] {
		nested, ok := asStringMap(current[seg])
		if !ok {
			return
		}
		current = nested
	}
	delete(current, segments[len(segments)-1])
}

// Flatten collapses a nested map into a single-level map with dot-notation
// keys.
//
//	mapx.Flatten(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
func Flatten(m map[string]any) map[string]any {
	out := make(map[string]any)
	flattenInto("", m, out)
	return out
}

func flattenInto(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := asStringMap(v); ok {
			flattenInto(key, nested, out)
			continue
		}
		out[key] = v
	}
}

// Expand is the inverse of [Flatten]: it rebuilds a nested map from a flat
// map with dot-notation keys.
func Expand(m map[string]any) map[string]any {
	out := make(map[string]any)
	for key, val := range m {
		SetPath(out, key, val)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Self-nesting tree map
// ─────────────────────────────────────────────────────────────────────────────

// NestedMap is a map[string]any whose branches vivify themselves: walking
// to a child that does not exist creates it, so arbitrary-depth trees can
// be built without initializing every level.
//
//	tree := mapx.NestedMap{}
//	tree.Descend("uk", "london").Set("population", 9_000_000)
type NestedMap map[string]any

// Descend walks the given keys, creating a NestedMap branch at every
// missing or non-map position, and returns the final branch. With no keys
// it returns the receiver.
func (n NestedMap) Descend(keys ...string) NestedMap {
	current := n
	for _, k := range keys {
		child, ok := current[k].(NestedMap)
		if !ok {
			child = NestedMap{}
			current[k] = child
		}
		current = child
	}
	return current
}

// Set stores a leaf value directly on this branch.
func (n NestedMap) Set(key string, value any) {
	n[key] = value
}

// Get retrieves a value directly from this branch. The second result is
// false when the key is absent.
func (n NestedMap) Get(key string) (any, bool) {
	v, ok := n[key]
	return v, ok
}

// SetPath writes a leaf value at a dot-separated path below this branch,
// vivifying intermediate branches.
func (n NestedMap) SetPath(path string, value any) {
	segments := strings.Split(path, ".")
	branch := n.Descend(segments[:len(segments)-1]...)
	branch[segments[len(segments)-1]] = value
}

// GetPath retrieves the value at a dot-separated path below this branch.
func (n NestedMap) GetPath(path string) (any, bool) {
	return GetPath(n, path)
}
