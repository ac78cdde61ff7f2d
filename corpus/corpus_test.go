package corpus

import (
	"testing"
)

func TestFromTokens(t *testing.T) {
	c := FromTokens([][]string{
		{"the", "cat", "sat"},
		{"the", "dog", "sat", "down"},
	})
	if c.TrainWords != 7 {
		t.Fatalf("trainWords = %d, want 7", c.TrainWords)
	}
	if c.Vocab.Size() != 5 {
		t.Fatalf("vocabulary size = %d, want 5", c.Vocab.Size())
	}
	// First-seen order fixes the ids.
	id, ok := c.Vocab.ID("the")
	if !ok || id != 0 {
		t.Fatalf(`id("the") = %d, %v`, id, ok)
	}
	if got := c.Vocab.Counts[id]; got != 2 {
		t.Fatalf(`count("the") = %d, want 2`, got)
	}
	for i, text := range c.Texts {
		for _, w := range text {
			if w < 0 || w >= c.Vocab.Size() {
				t.Fatalf("text %d holds out-of-range id %d", i, w)
			}
		}
	}
}

func TestNewValidatesIndices(t *testing.T) {
	vocab := NewVocabulary()
	vocab.Add("a")
	vocab.Add("b")

	if _, err := New([][]int{{0, 1, 0}}, vocab); err != nil {
		t.Fatalf("valid texts rejected: %v", err)
	}
	if _, err := New([][]int{{0, 2}}, vocab); err == nil {
		t.Fatal("id outside the vocabulary must be rejected")
	}
	if _, err := New([][]int{{-1}}, vocab); err == nil {
		t.Fatal("negative id must be rejected")
	}
	if _, err := New(nil, nil); err == nil {
		t.Fatal("nil vocabulary must be rejected")
	}
}

func TestVocabularyAddIsIdempotentOnIDs(t *testing.T) {
	v := NewVocabulary()
	a := v.Add("w")
	b := v.Add("w")
	if a != b {
		t.Fatalf("repeated Add returned %d then %d", a, b)
	}
	if v.Counts[a] != 2 {
		t.Fatalf("count = %d, want 2", v.Counts[a])
	}
}
