package board

import "math/rand/v2"

// placeMines returns a row-major mine layout with exactly mineCount mines.
// Each of the C(total, mineCount) layouts is equally likely.
func placeMines(total, mineCount int, r *rand.Rand) []bool {
	mines := make([]bool, total)

	candidates := make([]int, total)
	for i := range candidates {
		candidates[i] = i
	}

	/*
	 * Pick mineCount cells off the candidate list, moving the last
	 * remaining candidate into each picked slot.
	 */
	k := total
	for range mineCount {
		i := r.IntN(k)
		mines[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	return mines
}
