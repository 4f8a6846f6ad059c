package zlib

import (
	"bytes"
	"testing"
)

// tokensExpand replays a token sequence back into bytes, independent of the
// bit I/O and Huffman layers, to check the match finder in isolation.
func tokensExpand(tokens []token) ([]byte, error) {
	var out []byte
	var err error
	for _, tk := range tokens {
		if !tk.isMatch() {
			out = append(out, tk.lit)
			continue
		}
		out, err = appendBackRef(out, tk.dist, tk.length)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func TestMatchFinder_TokenizeReproducesInput(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			mf := &matchFinder{}
			tokens := mf.tokenize(in.data)

			out, err := tokensExpand(tokens)
			if err != nil {
				t.Fatalf("tokensExpand failed: %v", err)
			}
			if !bytes.Equal(out, in.data) {
				t.Fatalf("tokenize/expand mismatch: got=%d want=%d", len(out), len(in.data))
			}
		})
	}
}

func TestMatchFinder_EveryMatchIsDistanceSafe(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 3000)
	mf := &matchFinder{}
	tokens := mf.tokenize(data)

	pos := 0
	for _, tk := range tokens {
		if !tk.isMatch() {
			pos++
			continue
		}
		if tk.dist < 1 || tk.dist > pos {
			t.Fatalf("match at output position %d has out-of-range distance %d", pos, tk.dist)
		}
		if tk.length < minMatchLen || tk.length > maxMatchLen {
			t.Fatalf("match at output position %d has out-of-range length %d", pos, tk.length)
		}
		pos += tk.length
	}
}

func TestMatchFinderPool_ResetsBetweenAcquisitions(t *testing.T) {
	first := acquireMatchFinder()
	first.tokenize([]byte("priming the pool with some data"))
	releaseMatchFinder(first)

	second := acquireMatchFinder()
	defer releaseMatchFinder(second)

	out, err := tokensExpand(second.tokenize([]byte("a completely different input")))
	if err != nil {
		t.Fatalf("tokensExpand failed: %v", err)
	}
	if string(out) != "a completely different input" {
		t.Fatalf("got %q", out)
	}
}
