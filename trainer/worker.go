package trainer

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/cran/wordvector/params"
)

// Workers recompute the shared learning rate after this many locally
// processed tokens. Coarse on purpose; stale reads by other workers are
// acceptable.
const alphaUpdateEvery = 10000

// The learning rate never decays below this fraction of its initial value.
const minAlphaFrac = 1e-4

// worker owns one contiguous, disjoint range of the corpus's texts and runs
// the SGD loop over it. All of its buffers and its generator are local; the
// only shared writes go to the two weight matrices and the two atomics.
type worker struct {
	id       int
	st       *trainState
	from, to int

	rng    *rand.Rand
	hidden []float64 // projection-layer accumulator (CBOW average)
	herr   []float64 // accumulated gradient for the input vectors
	sen    []int     // down-sampled sentence, reused across texts

	pending int64 // tokens not yet pushed to the shared counter
}

func newWorker(id, from, to int, st *trainState) *worker {
	return &worker{
		id:     id,
		st:     st,
		from:   from,
		to:     to,
		rng:    rand.New(rand.NewSource(int64(st.settings.Seed) + int64(id))),
		hidden: make([]float64, st.size),
		herr:   make([]float64, st.size),
	}
}

func (w *worker) run() {
	cbow := w.st.settings.Type == params.CBOW
	for it := 0; it < w.st.settings.Iterations; it++ {
		for t := w.from; t < w.to; t++ {
			text := w.st.corpus.Texts[t]
			w.subsample(text)
			if cbow {
				w.cbow(w.sen)
			} else {
				w.skipGram(w.sen)
			}
			w.tally(int64(len(text)))
		}
	}
	w.flush()
}

// subsample rebuilds w.sen from text, stochastically dropping frequent words.
func (w *worker) subsample(text []int) {
	w.sen = w.sen[:0]
	for _, id := range text {
		if w.st.down.Keep(w.rng, id) {
			w.sen = append(w.sen, id)
		}
	}
}

// cbow averages the context embeddings into the hidden buffer, takes one
// gradient step predicting the center word, then spreads the accumulated
// error back onto every contributing context embedding.
func (w *worker) cbow(sen []int) {
	window := w.st.settings.Window
	for pos, word := range sen {
		win := 1 + w.rng.Intn(window)
		zero(w.hidden)
		zero(w.herr)
		cw := 0
		for c := pos - win; c <= pos+win; c++ {
			if c == pos || c < 0 || c >= len(sen) {
				continue
			}
			floats.Add(w.hidden, w.st.inputRow(sen[c]))
			cw++
		}
		if cw == 0 {
			continue
		}
		floats.Scale(1/float64(cw), w.hidden)
		alpha := w.st.alpha()
		if w.st.settings.HS {
			w.hierarchicalSoftmax(word, w.hidden, alpha)
		} else {
			w.negativeSampling(word, w.hidden, alpha)
		}
		for c := pos - win; c <= pos+win; c++ {
			if c == pos || c < 0 || c >= len(sen) {
				continue
			}
			floats.Add(w.st.inputRow(sen[c]), w.herr)
		}
	}
}

// skipGram runs one gradient step per (center, context) pair, predicting the
// context word from the center word's own embedding. The center row doubles
// as the hidden layer, so its update lands directly on the shared matrix.
func (w *worker) skipGram(sen []int) {
	window := w.st.settings.Window
	for pos, word := range sen {
		win := 1 + w.rng.Intn(window)
		center := w.st.inputRow(word)
		for c := pos - win; c <= pos+win; c++ {
			if c == pos || c < 0 || c >= len(sen) {
				continue
			}
			zero(w.herr)
			alpha := w.st.alpha()
			if w.st.settings.HS {
				w.hierarchicalSoftmax(sen[c], center, alpha)
			} else {
				w.negativeSampling(sen[c], center, alpha)
			}
			floats.Add(center, w.herr)
		}
	}
}

// hierarchicalSoftmax walks the Huffman path of target. At each internal
// node: dot product, sigmoid lookup, error against the path bit, then an
// in-place update of the node's output row. Gradient for the input side
// accumulates into w.herr. Dots outside the sigmoid clamp range carry no
// usable gradient and are skipped.
func (w *worker) hierarchicalSoftmax(target int, hidden []float64, alpha float64) {
	code := w.st.tree.Codes[target]
	point := w.st.tree.Points[target]
	maxExp := w.st.sigmoid.Max()
	for d := range code {
		row := w.st.outputRow(point[d])
		f := floats.Dot(hidden, row)
		if f >= maxExp || f <= -maxExp {
			continue
		}
		g := (1 - float64(code[d]) - w.st.sigmoid.Sigmoid(f)) * alpha
		floats.AddScaled(w.herr, g, row)
		floats.AddScaled(row, g, hidden)
	}
}

// negativeSampling takes one positive step against the true word's output
// row and Negative steps against sampler-drawn rows, accumulating the input
// gradient into w.herr.
func (w *worker) negativeSampling(target int, hidden []float64, alpha float64) {
	maxExp := w.st.sigmoid.Max()
	for d := 0; d <= w.st.settings.Negative; d++ {
		sample := target
		label := 1.0
		if d > 0 {
			sample = w.st.unigram.Sample(w.rng, target)
			if sample < 0 {
				continue
			}
			label = 0
		}
		row := w.st.outputRow(sample)
		f := floats.Dot(hidden, row)
		var g float64
		switch {
		case f > maxExp:
			g = (label - 1) * alpha
		case f < -maxExp:
			g = label * alpha
		default:
			g = (label - w.st.sigmoid.Sigmoid(f)) * alpha
		}
		floats.AddScaled(w.herr, g, row)
		floats.AddScaled(row, g, hidden)
	}
}

// tally accumulates raw token counts and, at a coarse interval, publishes
// them and refreshes the shared learning rate.
func (w *worker) tally(n int64) {
	w.pending += n
	if w.pending >= alphaUpdateEvery {
		w.flush()
	}
}

func (w *worker) flush() {
	if w.pending == 0 {
		return
	}
	processed := w.st.processed.Add(w.pending)
	w.pending = 0
	w.st.setAlpha(lrFor(w.st.settings.Alpha, processed, w.st.totalWords))
}

func zero(v []float64) {
	for i := range v {
		v[i] = 0
	}
}
