// Package trainer is the multi-threaded word-embedding engine. It learns
// dense vectors for a fixed vocabulary by stochastic gradient descent over a
// pre-indexed corpus, with CBOW or skip-gram as the objective and
// hierarchical softmax or negative sampling as the output approximation.
// Workers update the shared weight matrices without locks (Hogwild); see
// trainState for the exact sharing contract.
package trainer

import (
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/cran/wordvector/corpus"
	"github.com/cran/wordvector/params"
	"github.com/cran/wordvector/utils"
)

// How often the orchestrating goroutine samples the shared counters for
// progress reporting. Workers are never blocked by it.
const progressEvery = 100 * time.Millisecond

// Result carries the trained embeddings out of a successful run.
type Result struct {
	Words   []string   // vocabulary tokens, row order of Vectors
	Vectors *mat.Dense // vocabSize x size input embeddings
	Output  *mat.Dense // auxiliary output weights; nil unless Settings.KeepOutput
}

// Train validates the configuration, initializes the shared state, runs one
// worker goroutine per configured thread over disjoint corpus partitions,
// and assembles the result after all workers join. Any worker panic is
// recovered and surfaced as the run's error; partial matrices never escape.
func Train(settings params.Settings, c *corpus.Corpus) (*Result, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if c == nil || c.Vocab == nil || c.Vocab.Size() == 0 {
		return nil, errors.New("vocabulary is empty")
	}
	if c.TrainWords <= 0 {
		return nil, errors.New("corpus has no trainable tokens")
	}

	st := newTrainState(&settings, c)

	parts := partition(len(c.Texts), settings.Threads)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var workerErr error
	start := time.Now()
	for i, p := range parts {
		w := newWorker(i, p.from, p.to, st)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					mu.Lock()
					if workerErr == nil {
						workerErr = fmt.Errorf("worker %d: %v", w.id, r)
					}
					mu.Unlock()
				}
			}()
			w.run()
		}()
	}

	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()

	if settings.Verbose || settings.Progress != nil {
		ticker := time.NewTicker(progressEvery)
	poll:
		for {
			select {
			case <-finished:
				break poll
			case <-ticker.C:
				report(&settings, st, start)
			}
		}
		ticker.Stop()
	} else {
		<-finished
	}

	if workerErr != nil {
		return nil, workerErr
	}

	res := &Result{
		Words:   c.Vocab.IDToToken,
		Vectors: mat.NewDense(st.vocabSize, st.size, st.input),
	}
	if settings.KeepOutput {
		res.Output = mat.NewDense(st.vocabSize, st.size, st.output)
	}
	if settings.Normalize {
		utils.NormalizeRows(res.Vectors)
	}
	if settings.Progress != nil {
		settings.Progress(st.alpha(), 1)
	}
	if settings.Verbose {
		log.Infof("trained %d words in %s", c.TrainWords*settings.Iterations, time.Since(start).Round(time.Millisecond))
	}
	return res, nil
}

func report(s *params.Settings, st *trainState, start time.Time) {
	processed := st.processed.Load()
	done := float64(processed) / float64(st.totalWords+1)
	if done > 1 {
		done = 1
	}
	alpha := st.alpha()
	if s.Progress != nil {
		s.Progress(alpha, done)
	}
	if s.Verbose {
		iter := float64(processed) / float64(st.corpus.TrainWords)
		log.Infof("progress %5.1f%%  iteration %.1f/%d  alpha %.5f  elapsed %s",
			done*100, iter, s.Iterations, alpha, time.Since(start).Round(time.Millisecond))
	}
}

func lrFor(alpha0 float64, processed, total int64) float64 {
	return utils.LRSchedule(alpha0, processed, total, minAlphaFrac)
}

type span struct {
	from, to int
}

// partition splits n texts into at most threads contiguous ranges of
// ceil(n/threads) texts each. Ranges are pairwise disjoint and cover [0, n).
func partition(n, threads int) []span {
	if n == 0 {
		return nil
	}
	per := (n + threads - 1) / threads
	parts := make([]span, 0, threads)
	for from := 0; from < n; from += per {
		to := from + per
		if to > n {
			to = n
		}
		parts = append(parts, span{from: from, to: to})
	}
	return parts
}
