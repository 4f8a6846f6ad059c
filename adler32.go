// SPDX-License-Identifier: MIT
// Copyright (c) 2026 flatepack
// Source: github.com/flatepack/zlib

package zlib

// adler32Mod is the largest prime below 2^16 and the modulus of both
// Adler-32 accumulators (RFC 1950 §9).
const adler32Mod = 65521

// adler32NMax is the largest number of consecutive byte-steps that can be
// taken before s1/s2 risk overflowing their 32-bit accumulators, allowing
// the modulus reduction to be deferred instead of applied every byte.
// Starting from reduced values, n steps bring s2 to at most
// 255*n*(n+1)/2 + (n+1)*65520; 5552 is the largest n for which that still
// fits in 32 bits (the classic zlib bound).
const adler32NMax = 5552

// adler32 computes the Adler-32 checksum of data starting from the given
// initial accumulator value (pass 1 for a fresh checksum). For empty input
// it returns initial unchanged.
func adler32(data []byte, initial uint32) uint32 {
	s1 := initial & 0xffff
	s2 := initial >> 16

	for len(data) > 0 {
		n := len(data)
		if n > adler32NMax {
			n = adler32NMax
		}
		chunk := data[:n]
		data = data[n:]

		for _, b := range chunk {
			s1 += uint32(b)
			s2 += s1
		}
		s1 %= adler32Mod
		s2 %= adler32Mod
	}

	return (s2 << 16) | s1
}
