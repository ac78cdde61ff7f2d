package params

import (
	"errors"
	"fmt"
	"runtime"
)

// ModelType selects the prediction objective.
type ModelType int

const (
	// CBOW predicts the center word from the average of its context.
	CBOW ModelType = iota
	// SkipGram predicts each context word independently from the center word.
	SkipGram
)

func (t ModelType) String() string {
	switch t {
	case CBOW:
		return "cbow"
	case SkipGram:
		return "skip-gram"
	}
	return fmt.Sprintf("ModelType(%d)", int(t))
}

// ProgressFunc is invoked on a best-effort cadence while training runs.
// alpha is the current learning rate, done the fraction of work completed.
type ProgressFunc func(alpha, done float64)

// Settings holds every knob of a training run. A Settings value is shared
// read-only by all workers once training starts.
type Settings struct {
	Size       int       // vector dimensionality
	Window     int       // max context window on each side of the center word
	Sample     float64   // down-sampling threshold; 0 disables
	HS         bool      // hierarchical softmax; when false, negative sampling is used
	Negative   int       // negative samples per positive example (ignored when HS)
	Threads    int       // worker goroutines
	Iterations int       // passes over the corpus
	Alpha      float64   // initial learning rate
	Type       ModelType // CBOW or SkipGram

	ExpTableSize int     // sigmoid lookup table resolution
	MaxExp       float64 // sigmoid clamp range: inputs outside [-MaxExp, MaxExp] saturate
	NSTableSize  int     // unigram table slots for negative sampling

	Seed      uint64 // base seed; each worker derives its own generator from it
	Verbose   bool   // log progress while training
	Normalize bool   // L2-normalize result vectors after training

	// KeepOutput retains the auxiliary output-weight matrix in the result.
	KeepOutput bool

	Progress ProgressFunc // optional progress callback
}

// Reasonable defaults for word-vector training.
var Default = Settings{
	Size:       100,
	Window:     5,
	Sample:     1e-3,
	HS:         false,
	Negative:   5,
	Threads:    runtime.NumCPU(),
	Iterations: 5,
	Alpha:      0.025,
	Type:       CBOW,

	ExpTableSize: 1000,
	MaxExp:       6.0,
	NSTableSize:  1e7,

	Seed: 1,
}

// DefaultSettings returns a copy of Default.
func DefaultSettings() Settings {
	return Default
}

// Validate reports the first fatal configuration error, if any. Corpus-level
// checks (vocabulary size, trainable token count) happen in the trainer.
func (s *Settings) Validate() error {
	switch {
	case s.Size <= 0:
		return errors.New("vector size must be > 0")
	case s.Window <= 0:
		return errors.New("window must be > 0")
	case s.Sample < 0:
		return errors.New("sample must be >= 0")
	case s.Negative < 0:
		return errors.New("negative must be >= 0")
	case s.Threads < 1:
		return errors.New("threads must be >= 1")
	case s.Iterations <= 0:
		return errors.New("iterations must be > 0")
	case s.Alpha <= 0:
		return errors.New("alpha must be > 0")
	case s.ExpTableSize <= 0:
		return errors.New("sigmoid table size must be > 0")
	case s.MaxExp <= 0:
		return errors.New("sigmoid clamp range must be > 0")
	case !s.HS && s.NSTableSize <= 0:
		return errors.New("negative sampling table size must be > 0")
	}
	return nil
}
