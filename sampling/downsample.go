package sampling

import (
	"math"
	"math/rand"
)

// DownSampler decides, per occurrence, whether a frequent word is dropped
// from a sentence before training. The same word can survive in one context
// and be dropped in another; nothing is memoized across occurrences.
type DownSampler struct {
	counts []int
	total  float64
	sample float64
}

// NewDownSampler builds a sampler over counts for a corpus of trainWords
// tokens. sample is the sub-sampling threshold; 0 disables dropping.
func NewDownSampler(counts []int, trainWords int, sample float64) *DownSampler {
	return &DownSampler{
		counts: counts,
		total:  float64(trainWords),
		sample: sample,
	}
}

// KeepProb returns the probability that one occurrence of word survives:
// (sqrt(f/sample) + 1) * (sample/f) with f the word's relative frequency,
// clamped to [0, 1].
func (d *DownSampler) KeepProb(word int) float64 {
	if d.sample == 0 || d.total == 0 {
		return 1
	}
	c := float64(d.counts[word])
	if c == 0 {
		return 1
	}
	f := c / d.total
	p := (math.Sqrt(f/d.sample) + 1) * (d.sample / f)
	if p > 1 {
		p = 1
	}
	return p
}

// Keep draws the per-occurrence decision for word.
func (d *DownSampler) Keep(r *rand.Rand, word int) bool {
	p := d.KeepProb(word)
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}
