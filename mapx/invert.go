package mapx

import "iter"

// ─────────────────────────────────────────────────────────────────────────────
// Inversion
//
// Inverting swaps keys and values, so colliding values need an explicit
// policy. The first-seen/last-seen policies only make sense over an
// ordered item stream; the aggregating policies (group, set, count) lose
// no data and are provided for streams so that group order is stable.
// ─────────────────────────────────────────────────────────────────────────────

// Invert returns the value→key inversion of m. When several keys share a
// value, which key survives is unspecified, because map iteration order
// is. Use [IsOneToOne] to rule collisions out, or an ordered stream with
// [InvertFirstSeen] / [InvertLastSeen] to resolve them deterministically.
func Invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// InvertLastSeen inverts an ordered item stream; on collision the key of
// the last item carrying the value wins.
func InvertLastSeen[K, V comparable](items iter.Seq2[K, V]) map[V]K {
	out := make(map[V]K)
	for k, v := range items {
		out[v] = k
	}
	return out
}

// InvertFirstSeen inverts an ordered item stream; on collision the key of
// the first item carrying the value wins.
func InvertFirstSeen[K, V comparable](items iter.Seq2[K, V]) map[V]K {
	out := make(map[V]K)
	for k, v := range items {
		if _, seen := out[v]; !seen {
			out[v] = k
		}
	}
	return out
}

// InvertGroup inverts an ordered item stream, aggregating colliding keys
// into a slice in stream order. No information is lost.
func InvertGroup[K, V comparable](items iter.Seq2[K, V]) map[V][]K {
	out := make(map[V][]K)
	for k, v := range items {
		out[v] = append(out[v], k)
	}
	return out
}

// InvertSet inverts an ordered item stream, aggregating colliding keys
// into a set.
func InvertSet[K, V comparable](items iter.Seq2[K, V]) map[V]map[K]struct{} {
	out := make(map[V]map[K]struct{})
	for k, v := range items {
		set, ok := out[v]
		if !ok {
			set = make(map[K]struct{})
			out[v] = set
		}
		set[k] = struct{}{}
	}
	return out
}

// InvertCount inverts an ordered item stream, aggregating collisions into
// the number of keys that carried each value.
func InvertCount[K, V comparable](items iter.Seq2[K, V]) map[V]int {
	out := make(map[V]int)
	for _, v := range items {
		out[v]++
	}
	return out
}
