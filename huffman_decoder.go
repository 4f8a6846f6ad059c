// SPDX-License-Identifier: MIT
// Copyright (c) 2026 flatepack
// Source: github.com/flatepack/zlib

package zlib

// decodeEntry is one slot of a huffmanDecoder's lookup table: the code
// length consumed to reach this symbol, the symbol itself, and whether the
// slot is reachable at all (spec.md §4.6).
type decodeEntry struct {
	length uint8
	symbol uint16
	valid  bool
}

// huffmanDecoder is a direct lookup table keyed by the next maxLen bits of
// the stream (LSB-first, as bitReader.peekBits returns them).
type huffmanDecoder struct {
	maxLen uint8
	table  []decodeEntry
}

// newHuffmanDecoder builds a decode table from a set of canonical code
// lengths (spec.md §4.6). It fails if any length exceeds maxCodeBits.
func newHuffmanDecoder(lens []uint8) (*huffmanDecoder, error) {
	for _, l := range lens {
		if l > maxCodeBits {
			return nil, ErrTooManyBits
		}
	}

	codes := assignCanonicalCodes(lens)
	maxLen := maxUsedLength(codes)

	d := &huffmanDecoder{maxLen: maxLen}
	if maxLen == 0 {
		return d, nil
	}

	d.table = make([]decodeEntry, 1<<maxLen)
	for s, c := range codes {
		if c.length == 0 {
			continue
		}
		r := reverseBits(c.code, c.length)
		step := uint32(1) << c.length
		entry := decodeEntry{length: c.length, symbol: uint16(s), valid: true}
		for j := uint32(r); j < uint32(len(d.table)); j += step {
			d.table[j] = entry
		}
	}
	return d, nil
}

// decode reads the next symbol from r using d's table: it peeks maxLen bits
// (zero-padded past end of input), looks up the table, and consumes exactly
// the recorded code length. An unreachable table entry signals a corrupt
// stream; a code longer than the bits left in the input is ErrShortInput.
func (d *huffmanDecoder) decode(r *bitReader) (uint16, error) {
	if d.maxLen == 0 {
		return 0, ErrBadHuffmanCode
	}
	idx := r.peekBits(uint(d.maxLen))
	entry := d.table[idx]
	if !entry.valid {
		return 0, ErrBadHuffmanCode
	}
	if uint(entry.length) > r.numBits {
		return 0, ErrShortInput
	}
	r.dropBits(uint(entry.length))
	return entry.symbol, nil
}
