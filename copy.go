// SPDX-License-Identifier: MIT
// Copyright (c) 2026 flatepack
// Source: github.com/flatepack/zlib

package zlib

// appendBackRef grows dst by length bytes, copying from dst[len(dst)-dist:]
// forward. If dist < length, DEFLATE's back-reference semantics require
// "forward" expansion: newly appended bytes become valid source for the
// remainder of the match (this is how runs of a single repeated unit are
// encoded in few bits). This is implemented with repeated doubling: seed
// with one full distance chunk, then copy from the already-expanded tail,
// which is much cheaper than a byte-by-byte loop while still observing
// every intermediate write, exactly as a byte-by-byte loop would.
func appendBackRef(dst []byte, dist, length int) ([]byte, error) {
	outPos := len(dst)
	mPos := outPos - dist
	if dist <= 0 || mPos < 0 {
		return nil, ErrBadDistance
	}

	dst = append(dst, make([]byte, length)...)

	if dist >= length {
		copy(dst[outPos:outPos+length], dst[mPos:mPos+length])
		return dst, nil
	}

	// Seed with one original distance chunk.
	copy(dst[outPos:outPos+dist], dst[mPos:outPos])
	copied := dist

	// Grow the copied region exponentially from the output produced so far.
	for copied < length {
		n := copy(dst[outPos+copied:outPos+length], dst[outPos:outPos+copied])
		copied += n
	}

	return dst, nil
}
