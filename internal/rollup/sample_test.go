package rollup

import (
	"slices"
	"testing"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

func TestSample_BelowCapPassesThrough(t *testing.T) {
	rows := seq(10)

	for _, n := range []int{10, 11, 1000} {
		got := Sample(rows, n, 42)
		if !slices.Equal(got, rows) {
			t.Errorf("Sample(10 rows, %d) = %v, want input unchanged", n, got)
		}
	}
}

func TestSample_ExactCount(t *testing.T) {
	rows := seq(1000)

	got := Sample(rows, 100, 42)
	if len(got) != 100 {
		t.Fatalf("Sample returned %d rows, want 100", len(got))
	}

	if !slices.IsSorted(got) {
		t.Error("sampled rows should keep table order")
	}

	if len(slices.Compact(slices.Clone(got))) != 100 {
		t.Error("sampled rows contain duplicates")
	}

	if !slices.Equal(rows, seq(1000)) {
		t.Error("Sample mutated its input")
	}
}

func TestSample_Deterministic(t *testing.T) {
	rows := seq(5000)

	a := Sample(rows, 250, 42)
	b := Sample(rows, 250, 42)
	if !slices.Equal(a, b) {
		t.Error("same seed produced different samples")
	}

	c := Sample(rows, 250, 7)
	if slices.Equal(a, c) {
		t.Error("different seeds produced identical samples")
	}
}

func TestSample_Zero(t *testing.T) {
	if got := Sample(seq(5), 0, 1); len(got) != 0 {
		t.Errorf("Sample(n=0) = %v, want empty", got)
	}
}
