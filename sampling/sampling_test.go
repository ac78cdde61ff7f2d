package sampling

import (
	"math"
	"math/rand"
	"testing"
)

func TestUnigramEmpiricalDistribution(t *testing.T) {
	counts := []int{1000, 100, 10, 1}
	u := NewUnigramTable(counts, 100000)
	r := rand.New(rand.NewSource(42))

	draws := 200000
	hist := make([]float64, len(counts))
	for i := 0; i < draws; i++ {
		w := u.Sample(r, -1)
		hist[w]++
	}

	var totalPow float64
	for _, c := range counts {
		totalPow += math.Pow(float64(c), Power)
	}
	for w, c := range counts {
		want := math.Pow(float64(c), Power) / totalPow
		got := hist[w] / float64(draws)
		if math.Abs(got-want) > 0.01 {
			t.Fatalf("word %d: empirical %.4f, want %.4f +- 0.01", w, got, want)
		}
	}
}

func TestUnigramNeverReturnsExcluded(t *testing.T) {
	u := NewUnigramTable([]int{50, 50}, 1000)
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 5000; i++ {
		if w := u.Sample(r, 0); w == 0 {
			t.Fatal("sampler returned the excluded id")
		}
	}
}

func TestUnigramSingleWordVocabulary(t *testing.T) {
	u := NewUnigramTable([]int{5}, 100)
	r := rand.New(rand.NewSource(1))
	if w := u.Sample(r, 0); w != -1 {
		t.Fatalf("expected -1 when every slot holds the excluded id, got %d", w)
	}
	if w := u.Sample(r, 3); w != 0 {
		t.Fatalf("expected the only id 0, got %d", w)
	}
}

func TestDownSamplerDisabled(t *testing.T) {
	d := NewDownSampler([]int{1000000, 1}, 1000001, 0)
	for w := 0; w < 2; w++ {
		if p := d.KeepProb(w); p != 1 {
			t.Fatalf("sample=0: keep probability for word %d = %v, want 1", w, p)
		}
	}
}

func TestDownSamplerDecreasesWithFrequency(t *testing.T) {
	// Counts chosen so every keep probability is below the clamp.
	counts := []int{1000, 5000, 20000, 100000}
	d := NewDownSampler(counts, 200000, 1e-3)
	prev := 2.0
	for w := range counts {
		p := d.KeepProb(w)
		if p <= 0 || p >= 1 {
			t.Fatalf("word %d: keep probability %v outside (0, 1)", w, p)
		}
		if p >= prev {
			t.Fatalf("keep probability not decreasing: word %d has %v, previous %v", w, p, prev)
		}
		prev = p
	}
}

func TestDownSamplerThresholdBoundary(t *testing.T) {
	// A word sitting exactly at the threshold frequency keeps probability 1:
	// (sqrt(1)+1) * 1 = 2 before the clamp.
	total := 1000000
	sample := 1e-4
	counts := []int{int(sample * float64(total))}
	d := NewDownSampler(counts, total, sample)
	if p := d.KeepProb(0); p != 1 {
		t.Fatalf("threshold word: keep probability %v, want 1", p)
	}
}

func TestDownSamplerZeroCountKept(t *testing.T) {
	d := NewDownSampler([]int{0, 100}, 100, 1e-3)
	r := rand.New(rand.NewSource(3))
	if !d.Keep(r, 0) {
		t.Fatal("zero-count word must always be kept")
	}
}
