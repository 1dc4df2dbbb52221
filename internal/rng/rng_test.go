package rng

import (
	"sort"
	"testing"
)

func TestSeeded_Deterministic(t *testing.T) {
	a := Seeded(42)
	b := Seeded(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed diverged on Float64")
		}
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("same seed diverged on Intn")
		}
	}
}

func TestShuffle_Permutation(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	Shuffle(Seeded(7), s)

	sorted := append([]int(nil), s...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i+1 {
			t.Fatalf("shuffle lost elements: %v", s)
		}
	}
}

func TestShuffle_Empty(t *testing.T) {
	Shuffle(Default(), []int(nil))
	Shuffle(Default(), []int{1})
}
