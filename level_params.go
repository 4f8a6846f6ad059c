// SPDX-License-Identifier: MIT
// Copyright (c) 2026 flatepack
// Source: github.com/flatepack/zlib

package zlib

// These are the match finder's fixed tuning constants. Unlike
// the teacher codec this package is grounded on, there is exactly one set of
// these: Non-goals rule out selectable compression levels, so there is no
// per-level table here, only the single fixed strategy RFC 1951 allows an
// encoder to use at its own discretion.
const (
	// greedyChainLimit bounds how many candidates the hash chain walk in
	// matchFinder.findMatch (matchfinder.go) examines per position, capping
	// worst-case compression time on pathological inputs (spec.md §4.4).
	greedyChainLimit = 128

	// goodEnoughMatchLen stops the chain walk early once a match of this
	// length is found, since spec.md §4.4 only requires the walk to stop at
	// maxMatchLen; this is an implementation-level early-out within that
	// bound, not a second strategy.
	goodEnoughMatchLen = maxMatchLen
)
