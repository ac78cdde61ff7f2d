package corpus

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	tk "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/models"
	"github.com/sugarme/tokenizer/normalizers"
	"github.com/sugarme/tokenizer/pretokenizers"
	"github.com/sugarme/tokenizer/trainers"
)

// TrainOrLoadTokenizer loads the tokenizer at tokPath, or trains one on
// corpusPath and saves it there when the file does not exist. The trained
// tokenizer normalizes to NFKC lowercase and splits on whitespace.
func TrainOrLoadTokenizer(corpusPath, tokPath string, vocabSize int) (*tk.Tokenizer, error) {
	if _, err := os.Stat(tokPath); err == nil {
		return tk.FromFile(tokPath)
	}

	bpe := models.NewBPE()
	t := tk.NewTokenizer(bpe)

	t.WithNormalizer(normalizers.NewSequence(
		normalizers.NewNFKC(),
		normalizers.NewLowercase(),
	))
	t.WithPreTokenizer(pretokenizers.NewWhitespaceSplit())

	tr := trainers.NewBpeTrainer()
	tr.VocabSize = vocabSize
	tr.SpecialTokens = []string{"<unk>"}

	if err := t.Train(tr, []string{corpusPath}); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(tokPath), 0o755); err != nil {
		return nil, err
	}
	if err := t.Save(tokPath); err != nil {
		return nil, err
	}
	return t, nil
}

// BuildFromFile encodes path line by line with t and assembles a Corpus.
// Vocabulary ids are the tokenizer's own ids; counts come from the encoded
// text, so tokens that never occur in path keep a zero count.
func BuildFromFile(t *tk.Tokenizer, path string) (*Corpus, error) {
	raw := t.GetVocab(true)
	id2tok := make([]string, len(raw))
	tok2id := make(map[string]int, len(raw))
	for tok, id := range raw {
		if id < 0 || id >= len(raw) {
			return nil, fmt.Errorf("corpus: tokenizer vocabulary is not dense (id %d of %d)", id, len(raw))
		}
		tok2id[tok] = id
		id2tok[id] = tok
	}
	vocab := &Vocabulary{
		TokenToID: tok2id,
		IDToToken: id2tok,
		Counts:    make([]int, len(raw)),
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var texts [][]int
	n := 0
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		enc, err := t.EncodeSingle(line)
		if err != nil {
			return nil, err
		}
		ids := make([]int, 0, len(enc.Ids))
		for _, v := range enc.Ids {
			id := int(v)
			if id < 0 || id >= vocab.Size() {
				continue
			}
			vocab.Counts[id]++
			ids = append(ids, id)
		}
		if len(ids) == 0 {
			continue
		}
		texts = append(texts, ids)
		n += len(ids)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &Corpus{Texts: texts, Vocab: vocab, TrainWords: n}, nil
}
