// SPDX-License-Identifier: MIT
// Copyright (c) 2026 flatepack
// Source: github.com/flatepack/zlib

package zlib

// DEFLATE (RFC 1951) and ZLIB (RFC 1950) wire-format constants: the window
// and match-finder bounds, the length/distance symbol tables, and the
// code-length-alphabet transmission order.

// LZ77 window and match bounds (RFC 1951 §3.2.5).
const (
	windowSize  = 1 << 15 // maximum back-reference distance (32 KiB)
	minMatchLen = 3       // shortest run the format can encode as a match
	maxMatchLen = 258     // longest run a single length symbol can encode
)

// Huffman alphabet sizes.
const (
	numLitLenSyms = 286 // literal (0-255) + end-of-block (256) + length codes (257-285)
	numDistSyms   = 30  // distance codes 0-29 (codes 30-31 are reserved and not part of this alphabet)
	numCLenSyms   = 19  // code-length alphabet used to transmit the two trees above
	maxCodeBits   = 15  // hard cap on any canonical code length (RFC 1951 §3.2.2)

	endOfBlockSym = 256 // literal/length symbol marking the end of a block's data

	// numFixedLitLenSyms is the fixed-Huffman literal/length table's size
	// (RFC 1951 §3.2.6): 288 slots, not numLitLenSyms's 286. Symbols 286 and
	// 287 are unused (assigned length 8 like 280-287) but still occupy table
	// slots, the way compress/flate's own fixed-Huffman table does.
	numFixedLitLenSyms = 288
)

// lengthBase and lengthExtraBits give, for literal/length symbols 257..285
// (indexed 0..28), the smallest length that symbol represents and how many
// extra bits follow to select the exact length within its range.
var lengthBase = [29]int{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31, 35, 43, 51, 59,
	67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lengthExtraBits = [29]uint{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3,
	4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// distBase and distExtraBits give, for distance symbols 0..29, the smallest
// distance that symbol represents and how many extra bits follow.
var distBase = [30]int{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193, 257, 385, 513,
	769, 1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

var distExtraBits = [30]uint{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8,
	9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// codeLengthOrder is the order in which code-length-alphabet lengths are
// transmitted in a dynamic Huffman header (RFC 1951 §3.2.7): the symbols
// most likely to be used (and therefore most likely to shorten HCLEN) come first.
var codeLengthOrder = [numCLenSyms]int{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// fixedLitLenLens and fixedDistLens are the RFC 1951 §3.2.6 code lengths for
// BTYPE=1 (fixed Huffman) blocks. The encoder never emits BTYPE=1 (it only
// emits dynamic blocks), but the decoder must accept it from any conforming peer.
var fixedLitLenLens = func() [numFixedLitLenSyms]uint8 {
	var lens [numFixedLitLenSyms]uint8
	for i := 0; i <= 143; i++ {
		lens[i] = 8
	}
	for i := 144; i <= 255; i++ {
		lens[i] = 9
	}
	for i := 256; i <= 279; i++ {
		lens[i] = 7
	}
	for i := 280; i <= 287; i++ {
		lens[i] = 8
	}
	return lens
}()

var fixedDistLens = func() [numDistSyms]uint8 {
	var lens [numDistSyms]uint8
	for i := range lens {
		lens[i] = 5
	}
	return lens
}()

// lenCodeForLength returns the literal/length-alphabet index (0..28) into
// lengthBase/lengthExtraBits for a match of the given length.
func lenCodeForLength(length int) int {
	i := 0
	for i+1 < len(lengthBase) && lengthBase[i+1] <= length {
		i++
	}
	return i
}

// distCodeForDistance returns the distance-alphabet symbol (0..29) for a
// back-reference of the given distance.
func distCodeForDistance(dist int) int {
	i := 0
	for i+1 < len(distBase) && distBase[i+1] <= dist {
		i++
	}
	return i
}
