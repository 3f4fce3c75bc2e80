package mergesort_test

import (
	"cmp"
	"context"
	"fmt"

	"github.com/geofduf/merge-sort/mergesort"
)

func ExampleSort() {
	s := []int{5, 4, 1, 8, 7, 2, 6, 3}
	fmt.Println(mergesort.Sort(s))
	fmt.Println(s)
	// Output:
	// [1 2 3 4 5 6 7 8]
	// [5 4 1 8 7 2 6 3]
}

func ExampleSortFunc() {
	type person struct {
		name string
		age  int
	}
	people := []person{{"Alice", 30}, {"Bob", 25}, {"Carol", 30}, {"Dan", 25}}

	sorted := mergesort.SortFunc(people, func(a, b person) int {
		return cmp.Compare(a.age, b.age)
	})

	for _, p := range sorted {
		fmt.Println(p.name, p.age)
	}
	// Output:
	// Bob 25
	// Dan 25
	// Alice 30
	// Carol 30
}

func ExampleMerge() {
	fmt.Println(mergesort.Merge([]int{1, 3, 5}, []int{2, 4, 6}))
	// Output: [1 2 3 4 5 6]
}

func ExampleSortParallel() {
	s := []float64{0.5, -2, 3.25, 1}

	sorted, err := mergesort.SortParallel(context.Background(), s, mergesort.WithThreshold(2))
	if err != nil {
		fmt.Println("Sort failed:", err)
	}

	fmt.Println(sorted)
	// Output: [-2 0.5 1 3.25]
}
