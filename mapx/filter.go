package mapx

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
//
// Keep/Drop take an explicit key set; Filter/Reject take a predicate.
// Every function returns a newly allocated map.
// ─────────────────────────────────────────────────────────────────────────────

// KeepKeys returns the entries of m whose key appears in keys. Keys absent
// from m are ignored.
func KeepKeys[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// DropKeys returns the entries of m whose key does not appear in keys.
func DropKeys[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	drop := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		if _, skip := drop[k]; !skip {
			out[k] = v
		}
	}
	return out
}

// FilterKeys returns the entries of m whose key satisfies where.
func FilterKeys[K comparable, V any](m map[K]V, where func(K) bool) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		if where(k) {
			out[k] = v
		}
	}
	return out
}

// RejectKeys returns the entries of m whose key does not satisfy where.
func RejectKeys[K comparable, V any](m map[K]V, where func(K) bool) map[K]V {
	return FilterKeys(m, func(k K) bool { return !where(k) })
}

// FilterValues returns the entries of m whose value satisfies where.
func FilterValues[K comparable, V any](m map[K]V, where func(V) bool) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		if where(v) {
			out[k] = v
		}
	}
	return out
}

// RejectValues returns the entries of m whose value does not satisfy where.
func RejectValues[K comparable, V any](m map[K]V, where func(V) bool) map[K]V {
	return FilterValues(m, func(v V) bool { return !where(v) })
}

// FilterItems returns the entries of m satisfying where(key, value).
func FilterItems[K comparable, V any](m map[K]V, where func(K, V) bool) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		if where(k, v) {
			out[k] = v
		}
	}
	return out
}

// RejectItems returns the entries of m not satisfying where(key, value).
func RejectItems[K comparable, V any](m map[K]V, where func(K, V) bool) map[K]V {
	return FilterItems(m, func(k K, v V) bool { return !where(k, v) })
}

// IsOneToOne reports whether the values of m are all distinct. Map keys
// are unique by construction, so a one-to-one map inverts without
// collisions.
func IsOneToOne[K, V comparable](m map[K]V) bool {
	seen := make(map[V]struct{}, len(m))
	for _, v := range m {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}
