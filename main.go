package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/cran/wordvector/corpus"
	"github.com/cran/wordvector/params"
	"github.com/cran/wordvector/trainer"
)

func main() {
	var (
		trainFile = flag.String("train", "", "training text file, one sentence per line")
		outFile   = flag.String("output", "vectors.txt", "where to write the trained vectors")
		tokFile   = flag.String("tokenizer", "models/tokenizer.json", "tokenizer file; trained on -train when missing")
		vocabSize = flag.Int("vocab-size", 30000, "tokenizer vocabulary budget")
		size      = flag.Int("size", params.Default.Size, "vector dimensionality")
		window    = flag.Int("window", params.Default.Window, "context window")
		sample    = flag.Float64("sample", params.Default.Sample, "down-sampling threshold, 0 disables")
		hs        = flag.Bool("hs", false, "use hierarchical softmax instead of negative sampling")
		negative  = flag.Int("negative", params.Default.Negative, "negative samples per positive example")
		iter      = flag.Int("iter", params.Default.Iterations, "training iterations")
		threads   = flag.Int("threads", params.Default.Threads, "worker goroutines")
		alpha     = flag.Float64("alpha", params.Default.Alpha, "initial learning rate")
		skipgram  = flag.Bool("skipgram", false, "train skip-gram instead of cbow")
		seed      = flag.Uint64("seed", params.Default.Seed, "random seed")
		binary    = flag.Bool("binary", false, "write vectors in binary format")
		normalize = flag.Bool("normalize", false, "L2-normalize vectors before writing")
		near      = flag.String("near", "", "after training, print words nearest to this comma-separated list")
		quiet     = flag.Bool("quiet", false, "suppress progress logging")
	)
	flag.Parse()

	if *trainFile == "" {
		fmt.Fprintln(os.Stderr, "usage: wordvector -train corpus.txt [-output vectors.txt] ...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	t0 := time.Now()
	tok, err := corpus.TrainOrLoadTokenizer(*trainFile, *tokFile, *vocabSize)
	if err != nil {
		log.Fatalf("tokenizer: %v", err)
	}
	c, err := corpus.BuildFromFile(tok, *trainFile)
	if err != nil {
		log.Fatalf("corpus: %v", err)
	}
	log.Infof("corpus: %d texts, %d tokens, vocabulary %d (%s)",
		len(c.Texts), c.TrainWords, c.Vocab.Size(), time.Since(t0).Round(time.Millisecond))

	settings := params.DefaultSettings()
	settings.Size = *size
	settings.Window = *window
	settings.Sample = *sample
	settings.HS = *hs
	settings.Negative = *negative
	settings.Iterations = *iter
	settings.Threads = *threads
	settings.Alpha = *alpha
	settings.Seed = *seed
	settings.Normalize = *normalize
	settings.Verbose = !*quiet
	if *skipgram {
		settings.Type = params.SkipGram
	}

	res, err := trainer.Train(settings, c)
	if err != nil {
		log.Fatalf("training failed: %v", err)
	}

	if err := SaveVectors(res, *outFile, *binary); err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Infof("wrote %d vectors to %s", len(res.Words), *outFile)

	for _, probe := range splitList(*near) {
		matches, err := Nearest(res, probe, 10)
		if err != nil {
			log.Warnf("near %q: %v", probe, err)
			continue
		}
		fmt.Printf("%s:\n", probe)
		for _, m := range matches {
			fmt.Printf("  %-20s %.4f\n", m.Word, m.Similarity)
		}
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
