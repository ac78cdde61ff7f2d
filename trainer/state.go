package trainer

import (
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/cran/wordvector/corpus"
	"github.com/cran/wordvector/huffman"
	"github.com/cran/wordvector/params"
	"github.com/cran/wordvector/sampling"
	"github.com/cran/wordvector/utils"
)

// trainState is everything the workers share for the duration of one run.
// The two weight matrices are deliberately unsynchronized: concurrent
// overlapping row updates race (Hogwild), trading strict consistency for
// throughput. The only atomics are the processed-token counter and the
// current learning rate; all remaining shared fields are immutable once the
// workers launch.
type trainState struct {
	settings *params.Settings
	corpus   *corpus.Corpus

	size      int
	vocabSize int

	// Flat row-major matrices, vocabSize*size each. input holds the
	// embeddings returned to the caller; output holds the auxiliary
	// weights of the hierarchical-softmax nodes or negative-sampling rows.
	input  []float64
	output []float64

	sigmoid *utils.SigmoidTable
	tree    *huffman.Encoder     // hierarchical softmax only
	unigram *sampling.UnigramTable // negative sampling only
	down    *sampling.DownSampler

	processed  atomic.Int64  // raw tokens consumed across all workers
	alphaBits  atomic.Uint64 // current learning rate, stored as float bits
	totalWords int64         // iterations * trainWords, decay denominator
}

func newTrainState(s *params.Settings, c *corpus.Corpus) *trainState {
	vocabSize := c.Vocab.Size()
	st := &trainState{
		settings:   s,
		corpus:     c,
		size:       s.Size,
		vocabSize:  vocabSize,
		output:     make([]float64, vocabSize*s.Size),
		sigmoid:    utils.NewSigmoidTable(s.ExpTableSize, s.MaxExp),
		down:       sampling.NewDownSampler(c.Vocab.Counts, c.TrainWords, s.Sample),
		totalWords: int64(s.Iterations) * int64(c.TrainWords),
	}
	r := rand.New(rand.NewSource(int64(s.Seed)))
	st.input = utils.UniformArray(vocabSize*s.Size, initScale, r)
	if s.HS {
		st.tree = huffman.New(c.Vocab.Counts)
	} else {
		st.unigram = sampling.NewUnigramTable(c.Vocab.Counts, s.NSTableSize)
	}
	st.setAlpha(s.Alpha)
	return st
}

// initScale bounds the uniform initialization of the input matrix.
const initScale = 0.005

func (st *trainState) inputRow(id int) []float64 {
	return st.input[id*st.size : (id+1)*st.size]
}

func (st *trainState) outputRow(id int) []float64 {
	return st.output[id*st.size : (id+1)*st.size]
}

func (st *trainState) alpha() float64 {
	return math.Float64frombits(st.alphaBits.Load())
}

func (st *trainState) setAlpha(a float64) {
	st.alphaBits.Store(math.Float64bits(a))
}
