package rollup

import (
	"math/rand/v2"
	"slices"
)

// Sample returns exactly n rows chosen uniformly at random with a PCG source
// seeded by seed. Rows keep their relative order. When len(rows) <= n the
// input is returned unchanged.
func Sample[T any](rows []T, n int, seed uint64) []T {
	if n < 0 {
		n = 0
	}

	if len(rows) <= n {
		return rows
	}

	rng := rand.New(rand.NewPCG(seed, seed))

	// Partial Fisher-Yates over the index space.
	idx := make([]int, len(rows))
	for i := range idx {
		idx[i] = i
	}

	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	picked := idx[:n]
	slices.Sort(picked)

	out := make([]T, n)
	for i, p := range picked {
		out[i] = rows[p]
	}

	return out
}
