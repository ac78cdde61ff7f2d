// Package huffman builds the frequency-weighted binary tree used by
// hierarchical softmax. Higher-frequency words end up closer to the root, so
// their root-to-leaf codes are shorter and their updates cheaper.
package huffman

import (
	"math"
	"sort"
)

// Encoder holds, for every vocabulary id, its Huffman code (one bit per tree
// level, root to leaf) and the internal-node ids along the same path. Both
// slices for a word have equal length; internal ids lie in [0, V-1).
type Encoder struct {
	Codes  [][]byte
	Points [][]int
}

// New constructs the tree over counts with the classic greedy two-pointer
// walk on 2V-1 nodes. Ties break by vocabulary id, so the result is
// deterministic for a given frequency vector.
func New(counts []int) *Encoder {
	v := len(counts)
	e := &Encoder{
		Codes:  make([][]byte, v),
		Points: make([][]int, v),
	}
	if v == 0 {
		return e
	}

	// The two-pointer construction needs leaves ordered by descending count:
	// pos1 walks from the tail, consuming the rarest words first.
	order := make([]int, v)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] > counts[order[b]]
	})

	count := make([]int64, 2*v-1)
	parent := make([]int, 2*v-1)
	bit := make([]byte, 2*v-1)
	for i := 0; i < v; i++ {
		count[i] = int64(counts[order[i]])
	}
	for i := v; i < 2*v-1; i++ {
		count[i] = math.MaxInt64 / 2 // not merged yet
	}

	pos1 := v - 1
	pos2 := v
	for a := 0; a < v-1; a++ {
		var min1, min2 int
		if pos1 >= 0 && count[pos1] < count[pos2] {
			min1 = pos1
			pos1--
		} else {
			min1 = pos2
			pos2++
		}
		if pos1 >= 0 && count[pos1] < count[pos2] {
			min2 = pos1
			pos1--
		} else {
			min2 = pos2
			pos2++
		}
		count[v+a] = count[min1] + count[min2]
		parent[min1] = v + a
		parent[min2] = v + a
		bit[min2] = 1
	}

	root := 2*v - 2
	for a := 0; a < v; a++ {
		var code []byte
		var point []int
		for b := a; b != root; b = parent[b] {
			code = append(code, bit[b])
			point = append(point, parent[b]-v)
		}
		// Collected leaf to root; the trainer walks root to leaf.
		for i, j := 0, len(code)-1; i < j; i, j = i+1, j-1 {
			code[i], code[j] = code[j], code[i]
			point[i], point[j] = point[j], point[i]
		}
		w := order[a]
		e.Codes[w] = code
		e.Points[w] = point
	}
	return e
}

// CodeLen returns the path length for word id. Zero only when the
// vocabulary has a single entry.
func (e *Encoder) CodeLen(id int) int {
	return len(e.Codes[id])
}
