// Package corpus holds the inputs the trainer consumes: a finalized
// vocabulary and an ordered collection of token-index texts. Building these
// from raw text is the caller's job; helpers here cover the common cases.
package corpus

import (
	"fmt"
)

// Vocabulary maps tokens to dense 0-based ids and tracks occurrence counts.
// Ids are fixed once assigned; everything downstream refers to words by id.
type Vocabulary struct {
	TokenToID map[string]int
	IDToToken []string
	Counts    []int
}

func NewVocabulary() *Vocabulary {
	return &Vocabulary{TokenToID: make(map[string]int)}
}

// Add inserts token if unseen and bumps its count. Returns the token's id.
func (v *Vocabulary) Add(token string) int {
	id, ok := v.TokenToID[token]
	if !ok {
		id = len(v.IDToToken)
		v.TokenToID[token] = id
		v.IDToToken = append(v.IDToToken, token)
		v.Counts = append(v.Counts, 0)
	}
	v.Counts[id]++
	return id
}

// ID returns the id for token, if present.
func (v *Vocabulary) ID(token string) (int, bool) {
	id, ok := v.TokenToID[token]
	return id, ok
}

func (v *Vocabulary) Size() int {
	return len(v.IDToToken)
}

// Corpus is an ordered sequence of texts, each a sequence of vocabulary ids.
// TrainWords is the total token count used for progress and decay math.
type Corpus struct {
	Texts      [][]int
	Vocab      *Vocabulary
	TrainWords int
}

// New wraps already-indexed texts. Every id must fall inside the vocabulary;
// TrainWords is recomputed from the texts.
func New(texts [][]int, vocab *Vocabulary) (*Corpus, error) {
	if vocab == nil {
		return nil, fmt.Errorf("corpus: nil vocabulary")
	}
	n := 0
	for i, text := range texts {
		for _, id := range text {
			if id < 0 || id >= vocab.Size() {
				return nil, fmt.Errorf("corpus: text %d has id %d outside vocabulary of %d", i, id, vocab.Size())
			}
		}
		n += len(text)
	}
	return &Corpus{Texts: texts, Vocab: vocab, TrainWords: n}, nil
}

// FromTokens builds a vocabulary and an indexed corpus from pre-tokenized
// texts in one pass. Ids are assigned in first-seen order.
func FromTokens(texts [][]string) *Corpus {
	vocab := NewVocabulary()
	indexed := make([][]int, len(texts))
	n := 0
	for i, text := range texts {
		ids := make([]int, len(text))
		for j, tok := range text {
			ids[j] = vocab.Add(tok)
		}
		indexed[i] = ids
		n += len(text)
	}
	return &Corpus{Texts: indexed, Vocab: vocab, TrainWords: n}
}
