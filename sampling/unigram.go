// Package sampling provides the two biased-random components of training:
// the unigram table behind negative sampling and the frequency down-sampler.
// Both are immutable after construction and safe for concurrent reads; every
// random draw comes from a caller-supplied thread-local generator.
package sampling

import (
	"math"
	"math/rand"
)

// Power applied to raw frequencies when building the unigram distribution.
// The 3/4 exponent flattens the distribution so rare words are drawn more
// often than their raw frequency would allow.
const Power = 0.75

// UnigramTable maps a uniformly drawn slot to a vocabulary id with
// probability proportional to count^Power. Approximate inverse CDF: slot i
// holds the id whose cumulative range contains i/len(table).
type UnigramTable struct {
	table []int32
}

// NewUnigramTable fills a table of size slots from counts. Ids with zero
// count get zero mass.
func NewUnigramTable(counts []int, size int) *UnigramTable {
	v := len(counts)
	table := make([]int32, size)
	if v == 0 || size == 0 {
		return &UnigramTable{table: table}
	}
	var totalPow float64
	for _, c := range counts {
		totalPow += math.Pow(float64(c), Power)
	}
	i := 0
	d1 := math.Pow(float64(counts[i]), Power) / totalPow
	for a := 0; a < size; a++ {
		table[a] = int32(i)
		if float64(a)/float64(size) > d1 {
			i++
			if i >= v {
				i = v - 1
			}
			d1 += math.Pow(float64(counts[i]), Power) / totalPow
		}
	}
	return &UnigramTable{table: table}
}

// Sample draws a vocabulary id other than exclude. On a collision it walks
// forward to the next slot holding a different id; -1 means no such id
// exists (single-word vocabulary).
func (u *UnigramTable) Sample(r *rand.Rand, exclude int) int {
	n := len(u.table)
	if n == 0 {
		return -1
	}
	i := r.Intn(n)
	for scanned := 0; scanned < n; scanned++ {
		w := int(u.table[i])
		if w != exclude {
			return w
		}
		i++
		if i == n {
			i = 0
		}
	}
	return -1
}

// Len reports the number of table slots.
func (u *UnigramTable) Len() int {
	return len(u.table)
}
