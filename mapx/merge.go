package mapx

// Merge combines any number of maps into a new one. Later arguments win on
// key collision. Inputs are not modified.
func Merge[K comparable, V any](ms ...map[K]V) map[K]V {
	size := 0
	for _, m := range ms {
		size += len(m)
	}
	out := make(map[K]V, size)
	for _, m := range ms {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// DeepMerge recursively merges any number of nested map[string]any values
// into a new one. Where two arguments carry a nested map at the same key,
// the maps merge recursively; everywhere else the later argument's value
// overwrites the earlier one — a later non-map value replaces an entire
// earlier subtree, and vice versa.
//
//	mapx.DeepMerge(
//	    map[string]any{"a": map[string]any{"b": 1}},
//	    map[string]any{"a": map[string]any{"c": 2}},
//	)
//	// → {"a": {"b": 1, "c": 2}}
//
// Nested maps from the inputs are copied, never aliased, so mutating the
// result cannot affect the arguments. [NestedMap] values are treated as
// nested maps.
func DeepMerge(ms ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, m := range ms {
		deepMergeInto(out, m)
	}
	return out
}

func deepMergeInto(dst, src map[string]any) {
	for k, v := range src {
		sub, ok := asStringMap(v)
		if !ok {
			dst[k] = v
			continue
		}
		if existing, ok := asStringMap(dst[k]); ok {
			deepMergeInto(existing, sub)
			continue
		}
		branch := make(map[string]any, len(sub))
		deepMergeInto(branch, sub)
		dst[k] = branch
	}
}
