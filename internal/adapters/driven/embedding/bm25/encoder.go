// Package bm25 provides the local sparse query encoder for the lexical
// fusion channel. Terms are Unicode word segments, lowercased and hashed
// to 32-bit ids with FNV-1a, weighted by a BM25-style term frequency
// saturation. The hashing and weighting must match the indexing pipeline's
// sparse model or the lexical channel ranks noise.
package bm25

import (
	"hash/fnv"
	"sort"
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"

	"github.com/openparl/parliament-mcp/internal/core/ports/driven"
)

// DefaultK1 is the standard BM25 term frequency saturation parameter.
const DefaultK1 = 1.2

// Encoder encodes query text into sparse term vectors. It holds only
// read-only state and is safe for concurrent use.
type Encoder struct {
	k1 float64
}

var _ driven.SparseEmbedder = (*Encoder)(nil)

// New creates an encoder with the given saturation parameter; zero or
// negative means DefaultK1.
func New(k1 float64) *Encoder {
	if k1 <= 0 {
		k1 = DefaultK1
	}
	return &Encoder{k1: k1}
}

// Embed encodes the text. Indices are sorted ascending; encoding the same
// text always yields the same vector.
func (e *Encoder) Embed(text string) driven.SparseVector {
	frequencies := make(map[uint32]int)
	tokens := words.FromString(text)
	for tokens.Next() {
		term := normaliseTerm(tokens.Value())
		if term == "" {
			continue
		}
		frequencies[hashTerm(term)]++
	}
	if len(frequencies) == 0 {
		return driven.SparseVector{}
	}

	indices := make([]uint32, 0, len(frequencies))
	for index := range frequencies {
		indices = append(indices, index)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	values := make([]float32, len(indices))
	for i, index := range indices {
		tf := float64(frequencies[index])
		values[i] = float32(tf * (e.k1 + 1) / (tf + e.k1))
	}
	return driven.SparseVector{Indices: indices, Values: values}
}

// normaliseTerm lowercases a segment and drops punctuation-only and
// whitespace segments, which the word segmenter emits alongside words.
func normaliseTerm(segment string) string {
	for _, r := range segment {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return strings.ToLower(segment)
		}
	}
	return ""
}

func hashTerm(term string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(term))
	return h.Sum32()
}
