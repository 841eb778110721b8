package quiz

import (
	"slices"
	"testing"
)

func TestShuffle_IsPermutation(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e", "f", "g"}
	rng := NewRand(42)
	for range 50 {
		out := Shuffle(in, rng)
		if len(out) != len(in) {
			t.Fatalf("len = %d, want %d", len(out), len(in))
		}
		sorted := slices.Clone(out)
		slices.Sort(sorted)
		if !slices.Equal(sorted, in) {
			t.Fatalf("Shuffle(%v) = %v, not a permutation", in, out)
		}
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	orig := slices.Clone(in)
	out := Shuffle(in, NewRand(1))
	if !slices.Equal(in, orig) {
		t.Errorf("input changed to %v", in)
	}
	out[0] = 99
	if in[0] == 99 {
		t.Error("output shares backing array with input")
	}
}

func TestShuffle_EmptyAndSingle(t *testing.T) {
	if got := Shuffle([]string{}, nil); len(got) != 0 {
		t.Errorf("Shuffle(empty) = %v", got)
	}
	if got := Shuffle[string](nil, nil); got == nil || len(got) != 0 {
		t.Errorf("Shuffle(nil) = %#v, want empty non-nil slice", got)
	}
	if got := Shuffle([]string{"x"}, NewRand(3)); !slices.Equal(got, []string{"x"}) {
		t.Errorf("Shuffle(single) = %v", got)
	}
}

func TestShuffle_SeedIsReproducible(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e"}
	first := Shuffle(in, NewRand(9))
	second := Shuffle(in, NewRand(9))
	if !slices.Equal(first, second) {
		t.Errorf("same seed gave %v and %v", first, second)
	}
}

func TestShuffle_ReachesEveryPosition(t *testing.T) {
	in := []int{0, 1, 2, 3}
	rng := NewRand(11)
	seen := make(map[int]map[int]bool)
	for range 500 {
		for pos, v := range Shuffle(in, rng) {
			if seen[v] == nil {
				seen[v] = map[int]bool{}
			}
			seen[v][pos] = true
		}
	}
	for _, v := range in {
		if len(seen[v]) != len(in) {
			t.Errorf("value %d only reached positions %v", v, seen[v])
		}
	}
}
