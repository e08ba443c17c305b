package sampling

import "math/rand"

// aliasTable draws indices from a discrete weighted distribution in O(1)
// per draw after O(n) setup (Vose's alias method). Weights that are zero
// or negative simply never win a draw.
type aliasTable struct {
	prob  []float64
	alias []int
}

func newAliasTable(weights []float32) *aliasTable {
	n := len(weights)
	t := &aliasTable{
		prob:  make([]float64, n),
		alias: make([]int, n),
	}

	var total float64
	for _, w := range weights {
		if w > 0 {
			total += float64(w)
		}
	}
	if n == 0 || total <= 0 {
		return t
	}

	scaled := make([]float64, n)
	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, w := range weights {
		if w > 0 {
			scaled[i] = float64(w) * float64(n) / total
		}
		if scaled[i] < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		t.prob[s] = scaled[s]
		t.alias[s] = l
		scaled[l] -= 1 - scaled[s]
		if scaled[l] < 1 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}
	// Leftovers in either worklist are 1 up to rounding error.
	for _, i := range large {
		t.prob[i] = 1
	}
	for _, i := range small {
		t.prob[i] = 1
	}
	return t
}

// draw returns a weighted random index, or -1 for an empty table.
func (t *aliasTable) draw(rng *rand.Rand) int {
	if len(t.prob) == 0 {
		return -1
	}
	i := rng.Intn(len(t.prob))
	if rng.Float64() < t.prob[i] {
		return i
	}
	return t.alias[i]
}
