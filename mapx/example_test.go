package mapx_test

import (
	"fmt"

	"github.com/hasbyte1/go-iter-utils/mapx"
)

func ExampleKeepKeys() {
	m := map[string]int{"a": 1, "b": 2, "c": 3}
	fmt.Println(mapx.KeepKeys(m, "a", "c"))
	// Output: map[a:1 c:3]
}

func ExampleGroupBy() {
	words := []string{"apple", "banana", "avocado"}
	groups := mapx.GroupBy(words, func(w string) byte { return w[0] })
	fmt.Println(groups['a'])
	// Output: [apple avocado]
}

func ExampleInvert() {
	m := map[string]int{"a": 1, "b": 2}
	fmt.Println(mapx.Invert(m))
	// Output: map[1:a 2:b]
}

func ExampleInvertGroup() {
	scores := map[string]int{"ada": 1, "alan": 1, "grace": 2}
	groups := mapx.InvertGroup(mapx.SortedItems(scores))
	fmt.Println(groups[1])
	// Output: [ada alan]
}

func ExampleArgSort() {
	weights := map[string]int{"a": 3, "b": 1, "c": 2}
	fmt.Println(mapx.ArgSort(weights))
	// Output: [b c a]
}

func ExampleInnerJoin() {
	ages := map[string]int{"alice": 30, "bob": 41}
	pets := map[string]string{"alice": "cat", "carol": "dog"}
	joined := mapx.InnerJoin(ages, pets)
	fmt.Println(joined["alice"].Left, joined["alice"].Right)
	// Output: 30 cat
}

func ExampleDeepMerge() {
	merged := mapx.DeepMerge(
		map[string]any{"db": map[string]any{"host": "localhost"}},
		map[string]any{"db": map[string]any{"port": 5432}},
	)
	fmt.Println(merged["db"].(map[string]any)["host"])
	fmt.Println(merged["db"].(map[string]any)["port"])
	// Output:
	// localhost
	// 5432
}

func ExampleGetPath() {
	m := map[string]any{
		"user": map[string]any{"name": "ada"},
	}
	name, ok := mapx.GetPath(m, "user.name")
	fmt.Println(name, ok)
	// Output: ada true
}

func ExampleFlatten() {
	m := map[string]any{"a": map[string]any{"b": 1}}
	fmt.Println(mapx.Flatten(m))
	// Output: map[a.b:1]
}

func ExampleNestedMap() {
	tree := mapx.NestedMap{}
	tree.Descend("uk", "london").Set("population", 9_000_000)

	v, _ := tree.GetPath("uk.london.population")
	fmt.Println(v)
	// Output: 9000000
}

func ExampleOrderedMap() {
	m := mapx.NewOrderedMap[string, int]()
	m.Set("first", 1)
	m.Set("second", 2)
	m.Set("first", 10)

	for k, v := range m.All() {
		fmt.Println(k, v)
	}
	// Output:
	// first 10
	// second 2
}

func ExampleCounter_MostCommon() {
	c := mapx.NewCounter[string]()
	c.AddN("error", 7)
	c.AddN("warn", 12)
	c.AddN("info", 3)

	for _, entry := range c.MostCommon(2) {
		fmt.Println(entry.Key, entry.N)
	}
	// Output:
	// warn 12
	// error 7
}

func ExampleDefaultMap() {
	groups := mapx.NewDefaultMap[byte](func() []string { return nil })
	for _, w := range []string{"apple", "banana", "avocado"} {
		groups.Set(w[0], append(groups.Get(w[0]), w))
	}
	fmt.Println(groups.Get('a'))
	// Output: [apple avocado]
}
