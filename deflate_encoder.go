// SPDX-License-Identifier: MIT
// Copyright (c) 2026 flatepack
// Source: github.com/flatepack/zlib

package zlib

// deflateEncode tokenises data via the LZ77 match finder and emits a single
// DEFLATE block with BFINAL=1, BTYPE=2 (dynamic Huffman), per spec.md §4.7.
// This orchestrator plays the role the teacher codec's compress9x.go does
// for LZO1X-999: it wires the match finder, the Huffman builder, and the
// bit writer together, but emits exactly one block (Non-goals: no multiple
// output blocks per call) using canonical DEFLATE symbols instead of LZO
// opcodes.
func deflateEncode(data []byte) ([]byte, error) {
	mf := acquireMatchFinder()
	defer releaseMatchFinder(mf)
	tokens := mf.tokenize(data)

	litLenFreq := make([]uint32, numLitLenSyms)
	distFreq := make([]uint32, numDistSyms)
	litLenFreq[endOfBlockSym] = 1

	for _, t := range tokens {
		if !t.isMatch() {
			litLenFreq[t.lit]++
			continue
		}
		if t.length < minMatchLen || t.length > maxMatchLen || t.dist < 1 || t.dist > windowSize {
			return nil, errCompressInternal
		}
		litLenFreq[257+lenCodeForLength(t.length)]++
		distFreq[distCodeForDistance(t.dist)]++
	}

	// RFC 1951 §3.2.7 requires at least one distance code even when no match
	// is ever emitted, to keep the distance tree's code-length alphabet
	// well-formed; the degenerate case in huffmanCodeLengths handles the
	// resulting single-leaf tree.
	if sumFreq(distFreq) == 0 {
		distFreq[0] = 1
	}

	litLenCodes := buildHuffmanCodes(litLenFreq)
	distCodes := buildHuffmanCodes(distFreq)

	w := &bitWriter{}
	w.writeBits(1, 1) // BFINAL
	w.writeBits(2, 2) // BTYPE = dynamic Huffman

	if err := emitDynamicHeader(w, litLenCodes, distCodes); err != nil {
		return nil, err
	}

	for _, t := range tokens {
		if !t.isMatch() {
			emitSymbol(w, litLenCodes, uint16(t.lit))
			continue
		}

		lc := lenCodeForLength(t.length)
		emitSymbol(w, litLenCodes, uint16(257+lc))
		if lengthExtraBits[lc] > 0 {
			w.writeBits(uint32(t.length-lengthBase[lc]), lengthExtraBits[lc])
		}

		dc := distCodeForDistance(t.dist)
		emitSymbol(w, distCodes, uint16(dc))
		if distExtraBits[dc] > 0 {
			w.writeBits(uint32(t.dist-distBase[dc]), distExtraBits[dc])
		}
	}

	emitSymbol(w, litLenCodes, endOfBlockSym)
	return w.finish(), nil
}

// emitSymbol writes sym's canonical code, bit-reversed as the MSB/LSB
// convention of spec.md §4.5 requires.
func emitSymbol(w *bitWriter, codes []huffmanCode, sym uint16) {
	c := codes[sym]
	w.writeHuffmanCode(uint32(reverseBits(c.code, c.length)), uint(c.length))
}

// emitDynamicHeader writes HLIT/HDIST/HCLEN, the code-length-alphabet
// lengths, and the run-length-encoded concatenation of the two trees'
// lengths, per spec.md §4.7.1.
func emitDynamicHeader(w *bitWriter, litLenCodes, distCodes []huffmanCode) error {
	cl := make([]uint8, numLitLenSyms+numDistSyms)
	for s, c := range litLenCodes {
		cl[s] = c.length
	}
	for s, c := range distCodes {
		cl[numLitLenSyms+s] = c.length
	}

	syms, extraBits, extraVals, clFreq := rleEncodeCodeLengths(cl)
	clCodes := buildHuffmanCodes(clFreq[:])

	k := -1
	for i := len(codeLengthOrder) - 1; i >= 0; i-- {
		if clCodes[codeLengthOrder[i]].length != 0 {
			k = i
			break
		}
	}
	if k < 3 {
		k = 3
	}
	hclen := k - 3

	w.writeBits(uint32(numLitLenSyms-257), 5) // HLIT
	w.writeBits(uint32(numDistSyms-1), 5)     // HDIST
	w.writeBits(uint32(hclen), 4)             // HCLEN

	for j := 0; j < hclen+4; j++ {
		w.writeBits(uint32(clCodes[codeLengthOrder[j]].length), 3)
	}

	for i, sym := range syms {
		emitSymbol(w, clCodes, sym)
		if extraBits[i] > 0 {
			w.writeBits(extraVals[i], extraBits[i])
		}
	}

	return nil
}

// rleEncodeCodeLengths run-length encodes cl (the concatenated literal/
// length and distance code lengths) over the 19-symbol code-length
// alphabet, following the greedy policy of spec.md §4.7.1, and returns the
// emitted symbol/extra-bits sequence alongside the alphabet's frequencies.
func rleEncodeCodeLengths(cl []uint8) (syms []uint16, extraBits []uint, extraVals []uint32, freq [numCLenSyms]uint32) {
	emit := func(sym uint16, bits uint, val uint32) {
		syms = append(syms, sym)
		extraBits = append(extraBits, bits)
		extraVals = append(extraVals, val)
		freq[sym]++
	}

	i := 0
	for i < len(cl) {
		v := cl[i]
		run := 1
		for i+run < len(cl) && cl[i+run] == v {
			run++
		}
		remaining := run

		if v == 0 {
			for remaining >= 11 {
				chunk := min(remaining, 138)
				emit(18, 7, uint32(chunk-11))
				remaining -= chunk
			}
			for remaining >= 3 {
				chunk := min(remaining, 10)
				emit(17, 3, uint32(chunk-3))
				remaining -= chunk
			}
			for remaining > 0 {
				emit(0, 0, 0)
				remaining--
			}
		} else {
			emit(uint16(v), 0, 0)
			remaining--
			for remaining >= 3 {
				chunk := min(remaining, 6)
				emit(16, 2, uint32(chunk-3))
				remaining -= chunk
			}
			for remaining > 0 {
				emit(uint16(v), 0, 0)
				remaining--
			}
		}

		i += run
	}

	return syms, extraBits, extraVals, freq
}

func sumFreq(freq []uint32) uint32 {
	var s uint32
	for _, f := range freq {
		s += f
	}
	return s
}
