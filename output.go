package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/cran/wordvector/trainer"
	"github.com/cran/wordvector/utils"
)

// SaveVectors writes the result in the conventional word2vec format: a
// "vocabSize size" header line, then one word per line. Text mode writes
// the components as decimals; binary mode writes them as little-endian
// float32 after the word and a space.
func SaveVectors(res *trainer.Result, path string, asBinary bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	rows, cols := res.Vectors.Dims()
	fmt.Fprintf(w, "%d %d\n", rows, cols)
	for i := 0; i < rows; i++ {
		row := res.Vectors.RawRowView(i)
		if asBinary {
			fmt.Fprintf(w, "%s ", res.Words[i])
			for _, v := range row {
				if err := binary.Write(w, binary.LittleEndian, float32(v)); err != nil {
					return err
				}
			}
			fmt.Fprintln(w)
		} else {
			fmt.Fprint(w, res.Words[i])
			for _, v := range row {
				fmt.Fprintf(w, " %g", v)
			}
			fmt.Fprintln(w)
		}
	}
	return w.Flush()
}

// Match is one nearest-neighbor hit.
type Match struct {
	Word       string
	Similarity float64
}

// Nearest returns the k words closest to word by cosine similarity. The
// score for every row comes from one matrix-vector product over unit-length
// copies of the embeddings.
func Nearest(res *trainer.Result, word string, k int) ([]Match, error) {
	id := -1
	for i, w := range res.Words {
		if w == word {
			id = i
			break
		}
	}
	if id < 0 {
		return nil, fmt.Errorf("unknown word %q", word)
	}

	unit := mat.DenseCopyOf(res.Vectors)
	utils.NormalizeRows(unit)
	rows, cols := unit.Dims()

	query := mat.NewVecDense(cols, nil)
	query.CopyVec(unit.RowView(id))
	scores := mat.NewVecDense(rows, nil)
	scores.MulVec(unit, query)

	matches := make([]Match, 0, rows-1)
	for i := 0; i < rows; i++ {
		if i == id {
			continue
		}
		matches = append(matches, Match{Word: res.Words[i], Similarity: scores.AtVec(i)})
	}
	sort.Slice(matches, func(a, b int) bool { return matches[a].Similarity > matches[b].Similarity })
	if k < len(matches) {
		matches = matches[:k]
	}
	return matches, nil
}
