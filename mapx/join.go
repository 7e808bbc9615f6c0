package mapx

// ─────────────────────────────────────────────────────────────────────────────
// Relational joins
//
// Dual-mapping joins pair heterogeneous value types per key; multi-mapping
// joins align any number of same-typed maps into per-key rows. Inner keeps
// keys present everywhere, left keeps the first map's keys, outer keeps
// the union, with missing positions filled by a caller default.
// ─────────────────────────────────────────────────────────────────────────────

// Joined holds the per-key result of a dual-mapping join.
type Joined[V, W any] struct {
	Left  V
	Right W
}

// InnerJoin pairs the values of left and right for every key present in
// both.
//
//	ages := map[string]int{"alice": 30, "bob": 41}
//	pets := map[string]string{"alice": "cat", "carol": "dog"}
//	mapx.InnerJoin(ages, pets) // {"alice": {30, "cat"}}
func InnerJoin[K comparable, V, W any](left map[K]V, right map[K]W) map[K]Joined[V, W] {
	out := make(map[K]Joined[V, W])
	for k, v := range left {
		if w, ok := right[k]; ok {
			out[k] = Joined[V, W]{Left: v, Right: w}
		}
	}
	return out
}

// LeftJoin pairs the values of left and right for every key of left,
// substituting def for keys missing from right.
func LeftJoin[K comparable, V, W any](left map[K]V, right map[K]W, def W) map[K]Joined[V, W] {
	out := make(map[K]Joined[V, W], len(left))
	for k, v := range left {
		w, ok := right[k]
		if !ok {
			w = def
		}
		out[k] = Joined[V, W]{Left: v, Right: w}
	}
	return out
}

// OuterJoin pairs the values of left and right for every key of either,
// substituting defLeft or defRight for the side missing that key.
func OuterJoin[K comparable, V, W any](left map[K]V, right map[K]W, defLeft V, defRight W) map[K]Joined[V, W] {
	out := make(map[K]Joined[V, W], len(left)+len(right))
	for k, v := range left {
		w, ok := right[k]
		if !ok {
			w = defRight
		}
		out[k] = Joined[V, W]{Left: v, Right: w}
	}
	for k, w := range right {
		if _, done := out[k]; !done {
			out[k] = Joined[V, W]{Left: defLeft, Right: w}
		}
	}
	return out
}

// InnerJoinAll aligns first and the other maps into per-key rows for every
// key present in all of them. Row position i holds the value from the i-th
// map argument.
func InnerJoinAll[K comparable, V any](first map[K]V, others ...map[K]V) map[K][]V {
	out := make(map[K][]V)
	for k, v := range first {
		row := make([]V, 0, 1+len(others))
		row = append(row, v)
		complete := true
		for _, other := range others {
			w, ok := other[k]
			if !ok {
				complete = false
				break
			}
			row = append(row, w)
		}
		if complete {
			out[k] = row
		}
	}
	return out
}

// LeftJoinAll aligns first and the other maps into per-key rows for every
// key of first, substituting def for maps missing that key.
func LeftJoinAll[K comparable, V any](first map[K]V, def V, others ...map[K]V) map[K][]V {
	out := make(map[K][]V, len(first))
	for k, v := range first {
		row := make([]V, 0, 1+len(others))
		row = append(row, v)
		for _, other := range others {
			w, ok := other[k]
			if !ok {
				w = def
			}
			row = append(row, w)
		}
		out[k] = row
	}
	return out
}

// OuterJoinAll aligns any number of maps into per-key rows for every key
// of any of them, substituting def for maps missing that key. Row position
// i holds the value from the i-th map argument.
func OuterJoinAll[K comparable, V any](def V, ms ...map[K]V) map[K][]V {
	out := make(map[K][]V)
	for _, m := range ms {
		for k := range m {
			if _, done := out[k]; done {
				continue
			}
			row := make([]V, 0, len(ms))
			for _, other := range ms {
				w, ok := other[k]
				if !ok {
					w = def
				}
				row = append(row, w)
			}
			out[k] = row
		}
	}
	return out
}
