// SPDX-License-Identifier: MIT
// Copyright (c) 2026 flatepack
// Source: github.com/flatepack/zlib

package zlib

// matchFinder holds the 32 KiB sliding-window hash-chain index used by the
// LZ77 search (spec.md §4.4). It is sized and indexed the way the teacher
// codec's sliding-window dictionary is (head/chain arrays keyed by a
// rolling hash, absolute positions used directly rather than wrapped into a
// circular buffer — spec.md §9 "Window representation", option (i)), but
// carries a single 3-byte hash chain instead of LZO's paired 2-byte/3-byte
// chains, since DEFLATE's minimum match length is fixed at 3.
type matchFinder struct {
	data []byte
	head [windowSize]int32 // hash -> most recent absolute position, or -1
	prev [windowSize]int32 // pos mod windowSize -> previous position with same hash
}

// reset prepares the match finder for a fresh tokenize call over data. The
// hash heads are cleared; prev slots are left as-is (see matchfinder_pool.go)
// because every chain walk only ever reaches positions inserted during the
// current call, transitively, starting from a freshly-cleared head.
func (m *matchFinder) reset(data []byte) {
	m.data = data
	for i := range m.head {
		m.head[i] = -1
	}
}

// hash3 computes the spec's rolling hash of the 3 bytes at data[p:p+3].
func hash3(data []byte, p int) uint32 {
	h := uint32(data[p])<<10 ^ uint32(data[p+1])<<5 ^ uint32(data[p+2])
	return h & (windowSize - 1)
}

// insert records position p's 3-byte hash in the chain, returning the chain
// it now heads (i.e. the previous head[h], the first candidate to probe).
func (m *matchFinder) insert(p int) int32 {
	h := hash3(m.data, p)
	prevHead := m.head[h]
	m.prev[p%windowSize] = prevHead
	m.head[h] = int32(p) //nolint:gosec // G115: p bounded by len(data), which tokenize never lets exceed int32 range in practice
	return prevHead
}

// commonPrefixLen measures the common prefix of data[a:] and data[b:], up to
// maxMatchLen bytes and the end of input.
func commonPrefixLen(data []byte, a, b int) int {
	limit := len(data) - a
	if limit > maxMatchLen {
		limit = maxMatchLen
	}
	l := 0
	for l < limit && data[b+l] == data[a+l] {
		l++
	}
	return l
}

// findMatch walks the hash chain at position p (already inserted via
// insert) looking for the longest prior occurrence of data[p:], per the
// greedy search algorithm of spec.md §4.4 step 3. It returns the best
// length and distance found, or (0, 0) if nothing reaches minMatchLen.
func (m *matchFinder) findMatch(p int, chainHead int32) (bestLen, bestDist int) {
	candidate := chainHead
	for steps := 0; candidate >= 0 && steps < greedyChainLimit; steps++ {
		c := int(candidate)
		dist := p - c
		if dist <= 0 || dist > windowSize {
			break
		}

		length := commonPrefixLen(m.data, p, c)
		if length > bestLen {
			bestLen, bestDist = length, dist
			if bestLen >= goodEnoughMatchLen {
				break
			}
		}

		candidate = m.prev[c%windowSize]
	}
	return bestLen, bestDist
}

// tokenize runs the full LZ77 parse of spec.md §4.4 and returns a sequence
// of tokens that, expanded, reproduce data exactly.
func (m *matchFinder) tokenize(data []byte) []token {
	m.reset(data)
	n := len(data)
	tokens := make([]token, 0, n/4+1)

	pos := 0
	for pos < n {
		if n-pos < minMatchLen {
			tokens = append(tokens, literalToken(data[pos]))
			pos++
			continue
		}

		chainHead := m.insert(pos)
		bestLen, bestDist := m.findMatch(pos, chainHead)

		if bestLen < minMatchLen {
			tokens = append(tokens, literalToken(data[pos]))
			pos++
			continue
		}

		tokens = append(tokens, matchToken(bestLen, bestDist))
		for i := pos + 1; i < pos+bestLen; i++ {
			if n-i < minMatchLen {
				break
			}
			m.insert(i)
		}
		pos += bestLen
	}

	return tokens
}
